// Package config provides configuration management for the application
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Storage backends for the hotel snapshot
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// ErrInvalidStorage is returned when HOTEL_STORAGE names an unknown backend
var ErrInvalidStorage = errors.New("invalid storage backend")

// Config holds the application configuration
type Config struct {
	Env          string `mapstructure:"APP_ENV"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	Port         string `mapstructure:"PORT"`
	HTTPEnabled  bool   `mapstructure:"HTTP_ENABLED"`
	ShellEnabled bool   `mapstructure:"HOTEL_SHELL"`
	Storage      string `mapstructure:"HOTEL_STORAGE"`
	SnapshotPath string `mapstructure:"HOTEL_SNAPSHOT_PATH"`

	Redis RedisConfig `mapstructure:"-"`
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string `mapstructure:"REDIS_URI_HOTEL"`
	Host      string `mapstructure:"REDIS_HOST_HOTEL"`
	Port      string `mapstructure:"REDIS_PORT_HOTEL"`
	Username  string `mapstructure:"REDIS_USERNAME_HOTEL"`
	Password  string `mapstructure:"REDIS_PASSWORD_HOTEL"`
	DB        int    `mapstructure:"REDIS_DB"`
	KeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`
	// TTL for the stored snapshot (0 means no expiration)
	SnapshotTTL time.Duration `mapstructure:"REDIS_SNAPSHOT_TTL"`
}

// Load reads configuration from the environment and an optional config.yaml
// in the working directory or ./config
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HTTP_ENABLED", false)
	v.SetDefault("HOTEL_SHELL", true)
	v.SetDefault("HOTEL_STORAGE", StorageFile)
	v.SetDefault("HOTEL_SNAPSHOT_PATH", "data/hotel-data.csv")

	v.SetDefault("REDIS_URI_HOTEL", "")
	v.SetDefault("REDIS_HOST_HOTEL", "localhost")
	v.SetDefault("REDIS_PORT_HOTEL", "6379")
	v.SetDefault("REDIS_USERNAME_HOTEL", "")
	v.SetDefault("REDIS_PASSWORD_HOTEL", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "hotel:")
	v.SetDefault("REDIS_SNAPSHOT_TTL", "0s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := v.Unmarshal(&cfg.Redis); err != nil {
		return Config{}, fmt.Errorf("failed to load redis config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that have a fixed set of options
func (c Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorage, c.Storage)
	}
	if c.Storage == StorageFile && c.SnapshotPath == "" {
		return errors.New("HOTEL_SNAPSHOT_PATH cannot be empty for file storage")
	}
	if !c.HTTPEnabled && !c.ShellEnabled {
		return errors.New("at least one of HTTP_ENABLED and HOTEL_SHELL must be set")
	}
	return nil
}

// IsProduction reports whether the application runs in production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
