// Package di wires the client's components together: configuration, the
// HTTP client, the cache backend and the services on top of them. It
// manages singleton instances so every consumer shares the same cache and
// upstream connection.
package di

import (
	"log/slog"
	"os"

	"github.com/goliatone/go-resource-client/apiclient"
	"github.com/goliatone/go-resource-client/cache"
	"github.com/goliatone/go-resource-client/directory"
	"github.com/goliatone/go-resource-client/pkg/config"
	"github.com/goliatone/go-resource-client/resourceservice"
)

// Container holds the shared component instances.
type Container struct {
	cfg           *config.Config
	logger        *slog.Logger
	client        *apiclient.Client
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	resources     *resourceservice.ResourceService
	users         *directory.Directory
}

// New builds a container from the given configuration. Pass a nil logger
// to log to stderr in the configured format.
func New(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewLogger(cfg)
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL:    cfg.APIURL,
		APIKey:     cfg.APIKey,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
	})
	if err != nil {
		return nil, err
	}

	cacheCfg := cache.DefaultConfig()
	cacheCfg.Capacity = cfg.CacheCapacity
	cacheCfg.TTL = cfg.CacheTTL
	cacheService, err := cache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, err
	}

	keySerializer := cache.NewDefaultKeySerializer()

	return &Container{
		cfg:           cfg,
		logger:        logger,
		client:        client,
		cacheService:  cacheService,
		keySerializer: keySerializer,
		resources:     resourceservice.New(client, resourceservice.DefaultRegistry(logger)),
		users:         directory.New(client, cacheService, keySerializer),
	}, nil
}

// NewWithDefaults builds a container from environment configuration.
func NewWithDefaults() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg, nil)
}

// NewLogger builds a slog.Logger on stderr honoring the configured format
// and level.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// Config returns the configuration this container was built from.
func (c *Container) Config() *config.Config { return c.cfg }

// Logger returns the shared logger.
func (c *Container) Logger() *slog.Logger { return c.logger }

// Client returns the shared API client.
func (c *Container) Client() *apiclient.Client { return c.client }

// CacheService returns the shared cache backend.
func (c *Container) CacheService() cache.CacheService { return c.cacheService }

// KeySerializer returns the shared key serializer.
func (c *Container) KeySerializer() cache.KeySerializer { return c.keySerializer }

// Resources returns the shared resource service.
func (c *Container) Resources() *resourceservice.ResourceService { return c.resources }

// Users returns the shared user directory.
func (c *Container) Users() *directory.Directory { return c.users }
