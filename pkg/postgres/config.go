// Package postgres provides PostgreSQL database infrastructure components
package postgres

import "fmt"

// Config holds the PostgreSQL database configuration
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Schema   string `mapstructure:"schema"`
	SSLMode  string `mapstructure:"sslmode"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime is in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"`
	// ConnMaxLifetime is in minutes
	ConnMaxLifetime int  `mapstructure:"conn_max_lifetime"`
	Debug           bool `mapstructure:"debug"`
	// ConnectTimeout is in seconds
	ConnectTimeout int  `mapstructure:"connect_timeout"`
	IsUseMigrate   bool `mapstructure:"is_use_migrate"`
}

// DSN renders the libpq connection string
func (c Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s search_path=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.Schema, c.SSLMode)
	if c.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", c.ConnectTimeout)
	}
	return dsn
}

// Enabled reports whether a database host is configured
func (c Config) Enabled() bool {
	return c.Host != ""
}
