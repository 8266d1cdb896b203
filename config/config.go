package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of configs/config.<env>.yaml.
type Config struct {
	App       *App            `json:"app" yaml:"app"`
	Server    *Server         `json:"server" yaml:"server"`
	Database  *Database       `json:"database" yaml:"database"`
	Redis     *Redis          `json:"redis" yaml:"redis"`
	Jwt       *Jwt            `json:"jwt" yaml:"jwt"`
	Session   *Session        `json:"session" yaml:"session"`
	RocketMQ  *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	RateLimit *RateLimit      `json:"rate_limit" yaml:"rate_limit"`
	Feed      *Feed           `json:"feed" yaml:"feed"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// RateLimit applies per client IP to the auth endpoints.
type RateLimit struct {
	RPS   float64 `json:"rps" yaml:"rps"`
	Burst int     `json:"burst" yaml:"burst"`
}

// Feed bounds list pagination.
type Feed struct {
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
	MaxLimit     int `json:"max_limit" yaml:"max_limit"`
}

func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads a YAML file, applies environment overrides and fills defaults.
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	conf.applyEnv()
	conf.setDefaults()
	return &conf, nil
}

// Debug reports whether debug mode is on.
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "127.0.0.1"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpireHours <= 0 {
		c.Jwt.ExpireHours = 24 * 7
	}
	if c.Session == nil {
		c.Session = &Session{}
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "chirp_session"
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}
	if c.RateLimit.RPS <= 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 10
	}
	if c.Feed == nil {
		c.Feed = &Feed{}
	}
	if c.Feed.DefaultLimit <= 0 {
		c.Feed.DefaultLimit = 20
	}
	if c.Feed.MaxLimit <= 0 {
		c.Feed.MaxLimit = 100
	}
}
