// Package config loads client configuration from the environment and an
// optional YAML file. Environment variables establish the baseline, the
// file overrides them, and command-line flags override both.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the resource client.
type Config struct {
	APIURL     string        `envconfig:"RESOURCE_API_URL" default:"https://api.example.com" yaml:"api_url"`
	APIKey     string        `envconfig:"RESOURCE_API_KEY" yaml:"api_key"`
	Timeout    time.Duration `envconfig:"RESOURCE_TIMEOUT" default:"30s" yaml:"timeout"`
	MaxRetries int           `envconfig:"RESOURCE_MAX_RETRIES" default:"3" yaml:"max_retries"`

	CacheCapacity int           `envconfig:"RESOURCE_CACHE_CAPACITY" default:"10000" yaml:"cache_capacity"`
	CacheTTL      time.Duration `envconfig:"RESOURCE_CACHE_TTL" default:"5m" yaml:"cache_ttl"`

	LogFormat string `envconfig:"RESOURCE_LOG_FORMAT" default:"text" yaml:"log_format"`
	LogLevel  string `envconfig:"RESOURCE_LOG_LEVEL" default:"info" yaml:"log_level"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads environment configuration, then overlays values from the
// YAML file at path.
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries cannot be negative, got %d", c.MaxRetries)
	}
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("cache_capacity must be positive, got %d", c.CacheCapacity)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %v", c.CacheTTL)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
