package store

import (
	"context"
	"sync"
)

// Repository is the generic persistence contract for local records.
type Repository[T any] interface {
	Save(ctx context.Context, record T) error
	FindByID(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int, error)
}

// IDFunc extracts the storage key from a record.
type IDFunc[T any] func(record T) string

var _ Repository[struct{}] = (*MemoryRepository[struct{}])(nil)

// MemoryRepository is a map-backed Repository guarded by a reader/writer
// lock. Save overwrites existing records.
type MemoryRepository[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	idOf    IDFunc[T]
}

// NewMemoryRepository creates an empty in-memory repository. idOf extracts
// the key under which each record is stored.
func NewMemoryRepository[T any](idOf IDFunc[T]) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		records: make(map[string]T),
		idOf:    idOf,
	}
}

// Save stores the record, overwriting any existing record with the same ID.
func (r *MemoryRepository[T]) Save(_ context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[r.idOf(record)] = record
	return nil
}

// Insert stores the record only when no record with the same ID exists.
func (r *MemoryRepository[T]) Insert(_ context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.idOf(record)
	if _, exists := r.records[id]; exists {
		return conflict(id)
	}
	r.records[id] = record
	return nil
}

// FindByID returns the record stored under id.
func (r *MemoryRepository[T]) FindByID(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		var zero T
		return zero, notFound(id)
	}
	return record, nil
}

// Delete removes the record stored under id.
func (r *MemoryRepository[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return notFound(id)
	}
	delete(r.records, id)
	return nil
}

// FindAll returns every stored record in unspecified order.
func (r *MemoryRepository[T]) FindAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

// Count returns the number of stored records.
func (r *MemoryRepository[T]) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
