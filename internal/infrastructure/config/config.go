// Package config loads backend configuration from environment variables,
// with an optional TOML file override pointed at by CONFIG_FILE.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
	Upload    UploadConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000" toml:"port"`
	Host string `envconfig:"HOST" default:"0.0.0.0" toml:"host"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" toml:"enabled"`
}

// SeedConfig controls demo-content seeding at startup.
type SeedConfig struct {
	Enabled      bool   `envconfig:"SEED_ENABLED" default:"true" toml:"enabled"`
	ManifestPath string `envconfig:"SEED_MANIFEST" default:"" toml:"manifest_path"`
}

// UploadConfig bounds the simulated upload endpoint.
type UploadConfig struct {
	MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"104857600" toml:"max_bytes"`
}

// Load loads configuration from environment variables, then applies the TOML
// file named by CONFIG_FILE on top, if any.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
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
		Server:    ServerConfig{Port: "8000", Host: "0.0.0.0"},
		Logging:   LogConfig{Level: "info", Development: false},
		RateLimit: RateLimitConfig{RequestsPerSecond: 100, Burst: 200, Enabled: true},
		Seed:      SeedConfig{Enabled: true},
		Upload:    UploadConfig{MaxBytes: 100 << 20},
	}
}
