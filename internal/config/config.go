package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Seed     SeedConfig     `yaml:"seed"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port             int      `yaml:"port"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

// SnapshotConfig contains the daily metrics snapshot settings
type SnapshotConfig struct {
	DailyEnabled bool   `yaml:"daily_enabled"`
	DailyTime    string `yaml:"daily_time"` // HH:MM
	HistoryLimit int    `yaml:"history_limit"`
}

// SeedConfig controls whether the demo portfolio is loaded at startup
type SeedConfig struct {
	Demo bool `yaml:"demo"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             8084,
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Snapshot: SnapshotConfig{
			DailyEnabled: true,
			DailyTime:    "02:00",
			HistoryLimit: 90,
		},
		Seed: SeedConfig{
			Demo: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	// Read file
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
