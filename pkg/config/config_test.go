package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("expected default api url, got %q", cfg.APIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text log format, got %q", cfg.LogFormat)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RESOURCE_API_URL", "https://api.internal.test")
	t.Setenv("RESOURCE_API_KEY", "secret")
	t.Setenv("RESOURCE_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIURL != "https://api.internal.test" {
		t.Errorf("expected the env url, got %q", cfg.APIURL)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("expected the env key, got %q", cfg.APIKey)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Timeout)
	}
}

func TestLoadFileOverridesEnvironment(t *testing.T) {
	t.Setenv("RESOURCE_API_URL", "https://from-env.test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_url: https://from-file.test\ntimeout: 10s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIURL != "https://from-file.test" {
		t.Errorf("expected the file to win, got %q", cfg.APIURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout from file, got %v", cfg.Timeout)
	}
	// Untouched fields keep their env/default values.
	if cfg.MaxRetries != 3 {
		t.Errorf("expected default retries, got %d", cfg.MaxRetries)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			APIURL:        "https://api.example.com",
			Timeout:       time.Second,
			MaxRetries:    3,
			CacheCapacity: 100,
			CacheTTL:      time.Minute,
			LogFormat:     "text",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.APIURL = "" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }},
		{"zero capacity", func(c *Config) { c.CacheCapacity = 0 }},
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }},
		{"bad log format", func(c *Config) { c.LogFormat = "pretty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected the base config to validate: %v", err)
	}
}
