// Package memory implements an in-memory resource repository.
package memory

import (
	"context"
	"sync"

	"octosupply/pkg/resource"
)

// Repository provides an in-memory implementation of resource.Repository.
// Records are kept in insertion order.
type Repository[T resource.Record] struct {
	mu      sync.RWMutex
	records []T
}

// New creates a repository holding a copy of seed.
func New[T resource.Record](seed []T) *Repository[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Repository[T]{records: records}
}

// List returns all records.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Get retrieves the first record with the given id.
func (r *Repository[T]) Get(ctx context.Context, id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i >= 0 {
		return r.records[i], nil
	}
	var zero T
	return zero, resource.ErrNotFound
}

// Create appends the record unchanged.
func (r *Repository[T]) Create(ctx context.Context, v T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, v)
	return v, nil
}

// Update replaces the first record with the given id.
func (r *Repository[T]) Update(ctx context.Context, id int, v T) (T, error) {
	return r.UpdateFunc(ctx, id, resource.Replace(v))
}

// UpdateFunc replaces the first record with the given id by fn's result.
func (r *Repository[T]) UpdateFunc(ctx context.Context, id int, fn func(T) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	i := r.index(id)
	if i < 0 {
		return zero, resource.ErrNotFound
	}
	v, err := fn(r.records[i])
	if err != nil {
		return zero, err
	}
	r.records[i] = v
	return v, nil
}

// Delete removes the first record with the given id.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return resource.ErrNotFound
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

// index must be called with mu held.
func (r *Repository[T]) index(id int) int {
	for i, v := range r.records {
		if got, ok := v.RecordID(); ok && got == id {
			return i
		}
	}
	return -1
}

var _ resource.Repository[resource.Record] = (*Repository[resource.Record])(nil)
