// Package common provides shared utilities for Nivesh
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Nivesh
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Clients     ClientsConfig `toml:"clients"`
	Refresh     RefreshConfig `toml:"refresh"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the data directory for the embedded store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	QuoteAPI QuoteAPIConfig `toml:"quote_api"`
}

// QuoteAPIConfig holds quote resolution service configuration
type QuoteAPIConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *QuoteAPIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// RefreshConfig holds the periodic price refresh settings.
type RefreshConfig struct {
	Interval          string  `toml:"interval"`            // duration string, default "5s"
	AlertThresholdPct float64 `toml:"alert_threshold_pct"` // minimum |%move| to raise an alert, default 5.0
}

// GetInterval parses and returns the refresh interval duration
func (c *RefreshConfig) GetInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path: "data/nivesh",
		},
		Clients: ClientsConfig{
			QuoteAPI: QuoteAPIConfig{
				BaseURL:   "http://localhost:8000",
				RateLimit: 10,
				Timeout:   "30s",
			},
		},
		Refresh: RefreshConfig{
			Interval:          "5s",
			AlertThresholdPct: 5.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("NIVESH_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("NIVESH_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("NIVESH_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("NIVESH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("NIVESH_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if url := os.Getenv("NIVESH_QUOTE_BASE_URL"); url != "" {
		config.Clients.QuoteAPI.BaseURL = url
	}

	if interval := os.Getenv("NIVESH_REFRESH_INTERVAL"); interval != "" {
		config.Refresh.Interval = interval
	}

	if threshold := os.Getenv("NIVESH_ALERT_THRESHOLD_PCT"); threshold != "" {
		if t, err := strconv.ParseFloat(threshold, 64); err == nil && t > 0 {
			config.Refresh.AlertThresholdPct = t
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
