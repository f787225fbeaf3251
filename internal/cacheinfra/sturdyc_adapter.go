package cacheinfra

import (
	"context"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc cache adapter.
type Config struct {
	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0.
	NumShards int

	// TTL is the default time-to-live for cached entries. Must be greater
	// than 0.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict when
	// the cache reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EarlyRefresh configures early refresh behavior for cached entries.
	// If nil, early refresh is disabled.
	EarlyRefresh *EarlyRefreshConfig

	// MissingRecordStorage remembers keys that returned no results to
	// prevent repeated upstream requests for non-existent records.
	MissingRecordStorage bool

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the sturdyc default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig configures early refresh behavior. Early refresh
// prevents cache stampedes by refreshing frequently accessed entries before
// they expire.
type EarlyRefreshConfig struct {
	// MinAsyncRefreshTime is the minimum time after which an async refresh can occur
	MinAsyncRefreshTime time.Duration

	// MaxAsyncRefreshTime is the maximum time after which an async refresh can occur
	MaxAsyncRefreshTime time.Duration

	// SyncRefreshTime is when a refresh becomes synchronous instead of async
	SyncRefreshTime time.Duration

	// RetryBaseDelay is the base delay for retry attempts when early refresh fails
	RetryBaseDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
// The 5 minute TTL matches the staleness window of the resource snapshot
// cache, so both caches age out on the same schedule.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EarlyRefresh: &EarlyRefreshConfig{
			MinAsyncRefreshTime: 10 * time.Second,
			MaxAsyncRefreshTime: 20 * time.Second,
			SyncRefreshTime:     30 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		},
		MissingRecordStorage: true,
		EvictionInterval:     0,
	}
}

// ToSturdycOptions converts the Config to a sturdyc.Option slice. Capacity,
// NumShards, TTL and EvictionPercentage are passed directly to sturdyc.New
// and are not included here.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EarlyRefresh != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}

	if c.MissingRecordStorage {
		options = append(options, sturdyc.WithMissingRecordStorage())
	}

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EarlyRefresh != nil {
		if c.EarlyRefresh.MinAsyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.MinAsyncRefreshTime", Message: "must be non-negative"}
		}
		if c.EarlyRefresh.MaxAsyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.MaxAsyncRefreshTime", Message: "must be non-negative"}
		}
		if c.EarlyRefresh.SyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.SyncRefreshTime", Message: "must be non-negative"}
		}
		if c.EarlyRefresh.RetryBaseDelay < 0 {
			return &ConfigError{Field: "EarlyRefresh.RetryBaseDelay", Message: "must be non-negative"}
		}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// sturdycService wraps a sturdyc client providing caching behaviour.
type sturdycService struct {
	client *sturdyc.Client[any]
}

// NewSturdycService creates a new sturdyc cache service adapter. It
// validates the configuration and initializes a sturdyc client with the
// provided settings.
func NewSturdycService(cfg Config) (*sturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycService{client: client}, nil
}

// GetOrFetch returns the cached value for key, or runs fetch, stores the
// result and returns it. Concurrent callers for the same key share one
// in-flight fetch (sturdyc's stampede protection).
func (s *sturdycService) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	return s.client.GetOrFetch(ctx, key, fetch)
}

// Delete removes a single entry from the cache, ensuring the next
// GetOrFetch for the key goes to the source of truth.
func (s *sturdycService) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// DeleteByPrefix removes every entry whose key starts with prefix. Useful
// for invalidating all entries related to one entity.
func (s *sturdycService) DeleteByPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}
