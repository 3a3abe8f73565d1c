package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	f.ttl[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	s := NewRedisStore(fake, time.Hour)

	id, err := s.Create(ctx, "manager")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, fake.ttl["session:"+id])

	user, err := s.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "manager", user)

	_, err = s.Lookup(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStoreError(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("down")
	_, err := NewRedisStore(fake, time.Hour).Create(context.Background(), "manager")
	assert.EqualError(t, err, "down")
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	id, err := s.Create(ctx, "manager")
	require.NoError(t, err)

	user, err := s.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "manager", user)

	now = now.Add(time.Minute)
	_, err = s.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreSweepsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for range 5 {
		_, err := s.Create(ctx, "visitor")
		require.NoError(t, err)
	}
	assert.Len(t, s.sessions, 5)

	now = now.Add(2 * time.Minute)
	id, err := s.Create(ctx, "manager")
	require.NoError(t, err)
	assert.Len(t, s.sessions, 1)
	assert.Contains(t, s.sessions, id)
}
