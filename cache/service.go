package cache

import (
	"context"
	"fmt"
)

// KeySerializer builds a cache key from a method name + arbitrary args.
// It is responsible for producing stable keys across calls.
type KeySerializer interface {
	SerializeKey(method string, args ...any) string
}

// FetchFn is the function signature CacheService expects when fetching from
// the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService exposes the read-through caching operations used by the
// directory and any other component that caches per-key upstream reads.
// It is exported so callers can provide alternate cache backends.
type CacheService interface {
	GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// GetOrFetch is a type-safe wrapper over CacheService.GetOrFetch. It adapts
// a typed fetch function and asserts the cached value back to T.
func GetOrFetch[T any](ctx context.Context, service CacheService, key string, fetch FetchFn[T]) (T, error) {
	result, err := service.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: key %q holds %T, want %T", key, result, zero)
	}
	return typed, nil
}
