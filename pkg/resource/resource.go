// Package resource defines the contract shared by every entity collection
// exposed through the API.
package resource

import (
	"context"
	"errors"
)

// Record is a flat entity identified by a numeric id.
type Record interface {
	// RecordID reports the record's id. ok is false when the record carries
	// no integer id; such a record is stored but never matched.
	RecordID() (id int, ok bool)
}

// Repository stores one ordered collection of records.
//
// Lookups return the first record, in insertion order, whose id matches.
// Ids are not required to be unique.
type Repository[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id int, v T) (T, error)
	// UpdateFunc replaces the first record matching id with the value
	// returned by fn. The read and the write happen atomically.
	UpdateFunc(ctx context.Context, id int, fn func(T) (T, error)) (T, error)
	Delete(ctx context.Context, id int) error
}

// ErrNotFound indicates no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Replace returns an UpdateFunc callback that discards the stored record and
// substitutes v.
func Replace[T Record](v T) func(T) (T, error) {
	return func(T) (T, error) { return v, nil }
}
