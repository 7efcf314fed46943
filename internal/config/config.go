package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Share   ShareConfig
	Output  OutputConfig
	Metrics MetricsConfig
	Logging LogConfig
}

// ShareConfig holds the shared folder the CLI operates on.
type ShareConfig struct {
	Root string `envconfig:"SHAREDFS_ROOT"`
}

// OutputConfig holds listing output settings.
type OutputConfig struct {
	Format string `envconfig:"SHAREDFS_FORMAT" default:"json"`
}

// MetricsConfig holds metrics export settings. An empty path disables export.
type MetricsConfig struct {
	TextfilePath string `envconfig:"SHAREDFS_METRICS_FILE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
