// Package cache provides caching contracts and key serialization for the
// read-through caches in this client.
//
// # Overview
//
// Two interfaces and their default implementations:
//
//   - CacheService: read-through caching with per-key and prefix deletion
//   - KeySerializer: builds stable cache keys from method names and arguments
//
// The default CacheService is backed by sturdyc (see internal/cacheinfra),
// which brings sharding, TTL eviction and cache stampede protection. The
// directory package layers user lookups on top of it.
//
// # Basic Usage
//
//	service, err := cache.NewCacheService(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	serializer := cache.NewDefaultKeySerializer()
//
//	key := serializer.SerializeKey("User", "u-123")
//	user, err := cache.GetOrFetch(ctx, service, key, func(ctx context.Context) (model.User, error) {
//		return fetchUserFromAPI(ctx, "u-123")
//	})
//
// # Key Serialization
//
// Keys look like "method::arg::arg". Strings and fmt.Stringers pass through,
// scalars format with %v, maps serialize with sorted keys, and structs fall
// back to JSON. All of this is deterministic across runs; there is no
// pointer-based formatting, so keys are safe to use with external cache
// backends too.
//
// # Relationship to the Resource Snapshot Cache
//
// The resourceservice package deliberately does not use this package. Its
// contract is a single list snapshot with one staleness timestamp that
// writes force-expire, which a per-key TTL cache cannot express. This
// package serves the lookups where per-key read-through is the contract.
package cache
