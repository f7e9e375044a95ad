// Package config loads tool settings from H5TABLE_* environment variables.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "H5TABLE"

// Config holds the settings shared by all tools.
type Config struct {
	Logging   LoggingConfig
	Container ContainerConfig
}

// LoggingConfig controls the diagnostic logger.
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	Format string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

// ContainerConfig controls how containers are written.
type ContainerConfig struct {
	// SuperblockVersion 0 keeps files readable by HDF5 1.8 tools.
	SuperblockVersion uint8 `envconfig:"SUPERBLOCK" default:"2" validate:"oneof=0 2"`
}

// Load reads the configuration from the environment and validates it.
// Unset variables take their defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to load logging config from env: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg.Container); err != nil {
		return nil, fmt.Errorf("failed to load container config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Logging:   LoggingConfig{Level: "warn", Format: "text"},
		Container: ContainerConfig{SuperblockVersion: 2},
	}
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
