package config

type App struct {
	Env         string `json:"env" yaml:"env"`
	Debug       bool   `json:"debug" yaml:"debug"`
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
	NodeID      int64  `json:"node_id" yaml:"node_id"`
}
