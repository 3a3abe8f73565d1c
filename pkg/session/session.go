// Package session stores login sessions for the optional write guard.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession indicates the id is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Store creates and resolves sessions.
type Store interface {
	Create(ctx context.Context, username string) (string, error)
	Lookup(ctx context.Context, id string) (string, error)
}

const keyPrefix = "session:"

// redisClient is the subset of *redis.Client the store needs.
type redisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore keeps sessions in Redis with a TTL.
type RedisStore struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client redisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create opens a session for username and returns its id.
func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+id, username, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Lookup returns the username bound to id.
func (s *RedisStore) Lookup(ctx context.Context, id string) (string, error) {
	user, err := s.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) || (err == nil && user == "") {
		return "", ErrNoSession
	}
	return user, err
}

// MemoryStore keeps sessions in process. Expired sessions are dropped on
// lookup and by a sweep that Create runs at most once per TTL.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	sessions  map[string]entry
}

type entry struct {
	user    string
	expires time.Time
}

// NewMemoryStore creates an in-process store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: make(map[string]entry)}
}

// Create opens a session for username and returns its id.
func (s *MemoryStore) Create(ctx context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		s.sweep(now)
	}
	id := uuid.NewString()
	s.sessions[id] = entry{user: username, expires: now.Add(s.ttl)}
	return id, nil
}

// sweep must be called with mu held.
func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.sessions {
		if !now.Before(e.expires) {
			delete(s.sessions, id)
		}
	}
	s.lastSweep = now
}

// Lookup returns the username bound to id. Expired sessions are dropped.
func (s *MemoryStore) Lookup(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return "", ErrNoSession
	}
	if !s.now().Before(e.expires) {
		delete(s.sessions, id)
		return "", ErrNoSession
	}
	return e.user, nil
}
