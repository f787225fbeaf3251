package resourceservice

import (
	"sync"
	"time"

	"github.com/goliatone/go-resource-client/model"
)

// StaleAfter is the staleness window of the resource snapshot. A snapshot
// strictly older than this must be refreshed from the upstream API.
const StaleAfter = 5 * time.Minute

// snapshot is the in-memory resource cache: an unordered list plus the time
// it was last refreshed, guarded by a single reader/writer lock. Reads
// proceed concurrently; writes are exclusive.
//
// A zero lastRefreshed means "never refreshed", so a fresh snapshot starts
// stale and the first List goes upstream.
type snapshot struct {
	mu            sync.RWMutex
	resources     []model.Resource
	lastRefreshed time.Time

	// now is swappable for tests.
	now func() time.Time
}

func newSnapshot() *snapshot {
	return &snapshot{now: time.Now}
}

// stale reports whether the snapshot is older than StaleAfter. Exactly
// StaleAfter old is still fresh; staleness is strict.
func (s *snapshot) stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.staleLocked()
}

func (s *snapshot) staleLocked() bool {
	return s.now().Sub(s.lastRefreshed) > StaleAfter
}

// get returns a resource by ID when the snapshot is fresh and contains it.
func (s *snapshot) get(id string) (model.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.staleLocked() {
		return model.Resource{}, false
	}
	for _, r := range s.resources {
		if r.ID == id {
			return r, true
		}
	}
	return model.Resource{}, false
}

// list returns a copy of the snapshot contents. The second return value is
// false when the snapshot is stale and must not be served.
func (s *snapshot) list() ([]model.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.staleLocked() {
		return nil, false
	}
	return append([]model.Resource(nil), s.resources...), true
}

// replace overwrites the entire snapshot and marks it fresh.
func (s *snapshot) replace(resources []model.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resources = append([]model.Resource(nil), resources...)
	s.lastRefreshed = s.now()
}

// invalidate forces the snapshot stale so the next read refetches.
func (s *snapshot) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefreshed = time.Time{}
}
