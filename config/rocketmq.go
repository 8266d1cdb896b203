package config

// RocketMQConfig configures activity event delivery. Nothing is sent when endpoint is empty.
type RocketMQConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Namespace    string `yaml:"namespace"`
	Topic        string `yaml:"topic"`
	AccessKey    string `yaml:"access_key"`
	AccessSecret string `yaml:"access_secret"`
}

func (r *RocketMQConfig) Enabled() bool {
	return r != nil && r.Endpoint != "" && r.Topic != ""
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
