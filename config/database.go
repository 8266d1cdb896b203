package config

import (
	"fmt"
	"time"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	DSN      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Params   string `json:"params" yaml:"params"`

	MaxOpenConns    int           `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// Dsn builds the driver connection string. An explicit dsn wins.
func (d *Database) Dsn() string {
	if d.DSN != "" {
		return d.DSN
	}
	switch d.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			d.Host, d.Port, d.User, d.Password, d.Name)
		if d.Params != "" {
			dsn += " " + d.Params
		}
		return dsn
	case DriverSQLite:
		if d.Name == "" {
			return "file::memory:"
		}
		return d.Name
	default:
		params := d.Params
		if params == "" {
			params = "charset=utf8mb4&parseTime=True&loc=Local"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			d.User, d.Password, d.Host, d.Port, d.Name, params)
	}
}
