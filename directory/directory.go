package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-resource-client/apiclient"
	"github.com/goliatone/go-resource-client/cache"
	"github.com/goliatone/go-resource-client/model"
)

// ErrUserNotFound reports a user ID the upstream does not know.
var ErrUserNotFound = errors.New("user not found")

// API is the slice of the apiclient surface the directory needs.
// *apiclient.Client satisfies it.
type API interface {
	Get(ctx context.Context, path string, out any) error
}

// Directory serves user lookups through a read-through cache. Individual
// lookups are cached per ID under "User::<id>", and the full roster under
// "Roster". Every key handed to the cache is tracked in a registry so
// invalidation can delete by prefix without scanning the backend.
type Directory struct {
	api           API
	cache         cache.CacheService
	keySerializer cache.KeySerializer
	keyRegistry   *xsync.MapOf[string, struct{}]
}

// New creates a Directory over the given API client and cache backend.
func New(api API, cacheService cache.CacheService, keySerializer cache.KeySerializer) *Directory {
	return &Directory{
		api:           api,
		cache:         cacheService,
		keySerializer: keySerializer,
		keyRegistry:   xsync.NewMapOf[string, struct{}](),
	}
}

// User returns a user by ID, serving from the cache when possible.
func (d *Directory) User(ctx context.Context, id string) (model.User, error) {
	key := d.keySerializer.SerializeKey("User", id)
	d.trackKey(key)
	user, err := cache.GetOrFetch(ctx, d.cache, key, func(ctx context.Context) (model.User, error) {
		var u model.User
		if err := d.api.Get(ctx, "users/"+id, &u); err != nil {
			if errors.Is(err, apiclient.ErrNotFound) {
				return model.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
			}
			return model.User{}, err
		}
		return u, nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Roster returns all known users, cached as a single unit.
func (d *Directory) Roster(ctx context.Context) ([]model.User, error) {
	key := d.keySerializer.SerializeKey("Roster")
	d.trackKey(key)
	return cache.GetOrFetch(ctx, d.cache, key, func(ctx context.Context) ([]model.User, error) {
		var users []model.User
		if err := d.api.Get(ctx, "users", &users); err != nil {
			return nil, err
		}
		return users, nil
	})
}

// Invalidate drops the cached entry for a single user and the roster, since
// the roster may contain a stale copy of that user.
func (d *Directory) Invalidate(ctx context.Context, id string) error {
	userKey := d.keySerializer.SerializeKey("User", id)
	if err := d.dropKey(ctx, userKey); err != nil {
		return err
	}
	return d.dropKey(ctx, d.keySerializer.SerializeKey("Roster"))
}

// InvalidateAll drops every key this directory has handed to the cache.
func (d *Directory) InvalidateAll(ctx context.Context) error {
	var firstErr error
	d.keyRegistry.Range(func(key string, _ struct{}) bool {
		if err := d.cache.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
		d.keyRegistry.Delete(key)
		return true
	})
	return firstErr
}

// InvalidateUsers drops every per-user entry, leaving the roster intact.
func (d *Directory) InvalidateUsers(ctx context.Context) error {
	prefix := d.keySerializer.SerializeKey("User") + cache.KeySeparator

	var keys []string
	d.keyRegistry.Range(func(key string, _ struct{}) bool {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
		return true
	})

	var firstErr error
	for _, key := range keys {
		if err := d.dropKey(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (d *Directory) trackKey(key string) {
	d.keyRegistry.Store(key, struct{}{})
}

func (d *Directory) dropKey(ctx context.Context, key string) error {
	if err := d.cache.Delete(ctx, key); err != nil {
		return err
	}
	d.keyRegistry.Delete(key)
	return nil
}
