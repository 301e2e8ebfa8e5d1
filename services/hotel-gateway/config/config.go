// Package config handles application configuration loading and management
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"hotelhub/pkg/jwt"
	"hotelhub/pkg/kafka"
	"hotelhub/pkg/postgres"
	"hotelhub/pkg/redis"
)

// Config holds the entire application configuration
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Logger contains log output settings
	Logger LoggerConfig `mapstructure:"logger"`
	// Suppliers lists the upstream hotel suppliers, asked in this order
	Suppliers []SupplierConfig `mapstructure:"suppliers"`
	// Token contains supplier token caching settings
	Token jwt.Config `mapstructure:"token"`
	// Enrichment contains facility metadata lookup settings
	Enrichment EnrichmentConfig `mapstructure:"enrichment"`
	// RoomDetail contains room detail resolution settings
	RoomDetail RoomDetailConfig `mapstructure:"room_detail"`
	// Metadata contains the facility metadata service settings
	Metadata MetadataConfig `mapstructure:"metadata"`
	// Infrastructure contains infrastructure connection settings
	Infrastructure InfrastructureConfig `mapstructure:"infrastructure"`
	// Security contains security-related settings
	Security SecurityConfig `mapstructure:"security"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout is in seconds
	ReadTimeout int `mapstructure:"read_timeout"`
	// WriteTimeout is in seconds
	WriteTimeout int `mapstructure:"write_timeout"`
	// ShutdownTimeout is in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// LoggerConfig holds the log output configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SupplierConfig describes one upstream supplier
type SupplierConfig struct {
	// Code is the stable identifier carried in booking codes
	Code    string `mapstructure:"code"`
	Name    string `mapstructure:"name"`
	BaseURL string `mapstructure:"base_url"`
	// Username and Password are the default login used when a client has no override
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
	LoginPath  string        `mapstructure:"login_path"`
	// CheckInTime and CheckOutTime apply when neither the offer nor the facility has one
	CheckInTime  string `mapstructure:"check_in_time"`
	CheckOutTime string `mapstructure:"check_out_time"`
}

// EnrichmentConfig holds the facility metadata lookup configuration
type EnrichmentConfig struct {
	PageSize           int `mapstructure:"page_size"`
	BookingConcurrency int `mapstructure:"booking_concurrency"`
}

// RoomDetailConfig holds the room detail resolution configuration
type RoomDetailConfig struct {
	FallbackEnabled bool `mapstructure:"fallback_enabled"`
}

// MetadataConfig holds the facility metadata service configuration
type MetadataConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

// InfrastructureConfig holds the infrastructure configuration.
// Redis, Postgres and Kafka are optional; unset sections fall back to
// in-process implementations.
type InfrastructureConfig struct {
	Redis    redis.Config    `mapstructure:"redis"`
	Postgres postgres.Config `mapstructure:"postgres"`
	Kafka    KafkaConfig     `mapstructure:"kafka"`
}

// KafkaConfig holds the Kafka configuration
type KafkaConfig struct {
	kafka.Config `mapstructure:",squash"`
	// Topics contains topic names for different message types
	Topics KafkaTopics `mapstructure:"topics"`
}

// KafkaTopics holds specific topic names for different message types
type KafkaTopics struct {
	PriceCompare string `mapstructure:"price_compare"`
}

// Enabled reports whether any broker is configured
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// SecurityConfig holds the security configuration
type SecurityConfig struct {
	Encryption EncryptionConfig `mapstructure:"encryption"`
}

// EncryptionConfig holds the encryption configuration
type EncryptionConfig struct {
	// Key is the 32-byte AES key protecting stored credential overrides
	Key string `mapstructure:"key"`
}

// SupplierCodes returns the configured supplier codes in order
func (c *Config) SupplierCodes() []string {
	codes := make([]string, 0, len(c.Suppliers))
	for _, s := range c.Suppliers {
		codes = append(codes, s.Code)
	}
	return codes
}

// LoadConfig loads the application configuration from hotel-gateway.yaml,
// environment variables prefixed with HOTEL_GATEWAY_ and default values
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("hotel-gateway")
	v.SetConfigType("yaml")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	return load(v)
}

// LoadConfigFile loads the application configuration from an explicit file
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("HOTEL_GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Println("Config file not found, using environment variables and defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("application.name", "Hotel Gateway")
	v.SetDefault("application.version", "1.0")
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 15)     // seconds
	v.SetDefault("server.write_timeout", 60)    // seconds
	v.SetDefault("server.shutdown_timeout", 30) // seconds
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("token.ttl", 23*time.Hour)
	v.SetDefault("token.safety_margin", 5*time.Minute)
	v.SetDefault("enrichment.page_size", 1000)
	v.SetDefault("enrichment.booking_concurrency", 8)
	v.SetDefault("room_detail.fallback_enabled", true)
	v.SetDefault("metadata.timeout", 10*time.Second)
	v.SetDefault("metadata.retry_count", 1)
	v.SetDefault("infrastructure.postgres.port", 5432)
	v.SetDefault("infrastructure.postgres.schema", "public")
	v.SetDefault("infrastructure.postgres.sslmode", "disable")
	v.SetDefault("infrastructure.postgres.max_idle_conns", 10)
	v.SetDefault("infrastructure.postgres.max_open_conns", 50)
	v.SetDefault("infrastructure.postgres.conn_max_idle_time", 5) // minutes
	v.SetDefault("infrastructure.postgres.conn_max_lifetime", 60) // minutes
	v.SetDefault("infrastructure.kafka.client_id", "hotel-gateway")
	v.SetDefault("infrastructure.kafka.topics.price_compare", "hotel-gateway.price.compare")
}

// validate checks required settings
func (c *Config) validate() error {
	if len(c.Suppliers) == 0 {
		return errors.New("at least one supplier is required")
	}
	seen := make(map[string]struct{}, len(c.Suppliers))
	for i, s := range c.Suppliers {
		if s.Code == "" {
			return fmt.Errorf("supplier %d: code is required", i)
		}
		if strings.Contains(s.Code, ":") {
			return fmt.Errorf("supplier %s: code must not contain ':'", s.Code)
		}
		if _, dup := seen[s.Code]; dup {
			return fmt.Errorf("supplier %s: duplicate code", s.Code)
		}
		seen[s.Code] = struct{}{}
		if s.BaseURL == "" {
			return fmt.Errorf("supplier %s: base url is required", s.Code)
		}
	}

	if c.Metadata.BaseURL == "" {
		return errors.New("metadata base url is required")
	}

	if c.Infrastructure.Postgres.Enabled() {
		if c.Infrastructure.Postgres.User == "" {
			return errors.New("database user is required")
		}
		if c.Infrastructure.Postgres.Password == "" {
			return errors.New("database password is required")
		}
		if len(c.Security.Encryption.Key) != 32 {
			return errors.New("encryption key of 32 bytes is required when credential overrides are stored")
		}
	}
	return nil
}
