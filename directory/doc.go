// Package directory resolves users from the upstream API through a
// read-through cache.
//
// Unlike the resource snapshot, which is one list refreshed wholesale, user
// lookups cache per key: each User call is stored under its own ID and the
// roster under a single key, both expiring on the cache backend's TTL. The
// directory tracks every key it creates so Invalidate and InvalidateAll can
// delete precisely without scanning the backend.
package directory
