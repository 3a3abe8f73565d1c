// Package redisstore keeps each resource collection in a Redis list of JSON
// documents.
//
// Writes run as optimistic WATCH/MULTI transactions so concurrent API
// instances cannot lose each other's updates.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"octosupply/pkg/resource"
)

// DefaultKeyPrefix namespaces collection keys.
const DefaultKeyPrefix = "octosupply:resource:"

// maxRetries bounds WATCH retries when another writer touches the list.
const maxRetries = 16

// ErrConflict is returned when a write kept losing the WATCH race.
var ErrConflict = errors.New("concurrent modification, retries exhausted")

// Repository stores one named collection.
type Repository[T resource.Record] struct {
	client *redis.Client
	key    string
}

// New creates a repository for the collection called name. An empty prefix
// selects DefaultKeyPrefix.
func New[T resource.Record](client *redis.Client, prefix, name string) *Repository[T] {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repository[T]{client: client, key: prefix + name}
}

// Key returns the Redis key holding the collection.
func (r *Repository[T]) Key() string { return r.key }

// Seed pushes seed when the list does not exist yet.
func (r *Repository[T]) Seed(ctx context.Context, seed []T) error {
	if len(seed) == 0 {
		return nil
	}
	values := make([]any, 0, len(seed))
	for _, v := range seed {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", r.key, err)
		}
		values = append(values, raw)
	}
	return r.watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, r.key).Result()
		if err != nil || n > 0 {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.RPush(ctx, r.key, values...)
			return nil
		})
		return err
	})
}

// List returns the collection in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	vals, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.key, err)
	}
	out := make([]T, 0, len(vals))
	for _, s := range vals {
		v, err := decode[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Get retrieves the first record with the given id.
func (r *Repository[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	vals, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return zero, fmt.Errorf("get %s %d: %w", r.key, id, err)
	}
	i, v, err := find[T](vals, id)
	if err != nil {
		return zero, err
	}
	if i < 0 {
		return zero, resource.ErrNotFound
	}
	return v, nil
}

// Create appends the record.
func (r *Repository[T]) Create(ctx context.Context, v T) (T, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.client.RPush(ctx, r.key, raw).Err(); err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", r.key, err)
	}
	return v, nil
}

// Update replaces the first record with the given id.
func (r *Repository[T]) Update(ctx context.Context, id int, v T) (T, error) {
	return r.UpdateFunc(ctx, id, resource.Replace(v))
}

// UpdateFunc replaces the first record with the given id by fn's result.
func (r *Repository[T]) UpdateFunc(ctx context.Context, id int, fn func(T) (T, error)) (T, error) {
	var next T
	err := r.watch(ctx, func(tx *redis.Tx) error {
		vals, err := tx.LRange(ctx, r.key, 0, -1).Result()
		if err != nil {
			return err
		}
		i, cur, err := find[T](vals, id)
		if err != nil {
			return err
		}
		if i < 0 {
			return resource.ErrNotFound
		}
		if next, err = fn(cur); err != nil {
			return err
		}
		raw, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode %s: %w", r.key, err)
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.LSet(ctx, r.key, int64(i), raw)
			return nil
		})
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return next, nil
}

// Delete removes the first record with the given id.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	return r.watch(ctx, func(tx *redis.Tx) error {
		vals, err := tx.LRange(ctx, r.key, 0, -1).Result()
		if err != nil {
			return err
		}
		i, _, err := find[T](vals, id)
		if err != nil {
			return err
		}
		if i < 0 {
			return resource.ErrNotFound
		}
		// Lists have no remove-by-index; mark the slot, then drop the mark.
		tombstone := "deleted:" + uuid.NewString()
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.LSet(ctx, r.key, int64(i), tombstone)
			p.LRem(ctx, r.key, 1, tombstone)
			return nil
		})
		return err
	})
}

func (r *Repository[T]) watch(ctx context.Context, fn func(tx *redis.Tx) error) error {
	for range maxRetries {
		err := r.client.Watch(ctx, fn, r.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

func find[T resource.Record](vals []string, id int) (int, T, error) {
	for i, s := range vals {
		v, err := decode[T](s)
		if err != nil {
			return -1, v, err
		}
		if got, ok := v.RecordID(); ok && got == id {
			return i, v, nil
		}
	}
	var zero T
	return -1, zero, nil
}

func decode[T resource.Record](s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("decode record: %w", err)
	}
	return v, nil
}

var _ resource.Repository[resource.Record] = (*Repository[resource.Record])(nil)
