package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env into the process environment if the file exists.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Path returns the config file for APP_ENV, defaulting to dev.
func Path() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return "configs/config." + env + ".yaml"
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		if c.Database == nil {
			c.Database = &Database{}
		}
		c.Database.DSN = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		if c.Database == nil {
			c.Database = &Database{}
		}
		c.Database.Driver = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		if c.Jwt == nil {
			c.Jwt = &Jwt{}
		}
		c.Jwt.Secret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		if c.Redis == nil {
			c.Redis = &Redis{}
		}
		c.Redis.Password = v
	}
}
