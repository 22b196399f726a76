// Package config provides configuration management for mcpfleet using Viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mcpfleet/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mcpfleet"

// Config represents the top-level configuration structure.
type Config struct {
	Version         int           `mapstructure:"version" yaml:"version"`
	DefaultDocument string        `mapstructure:"default_document" yaml:"default_document"`
	DefaultTimeout  time.Duration `mapstructure:"default_timeout" yaml:"default_timeout"`
	LogFormat       string        `mapstructure:"log_format" yaml:"log_format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MCPFLEET")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_timeout", 30*time.Second)
	viper.SetDefault("log_format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with default values, without touching
// the filesystem.
func Default() *Config {
	return &Config{
		Version:        1,
		DefaultTimeout: 30 * time.Second,
		LogFormat:      "text",
	}
}
