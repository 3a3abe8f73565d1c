package redisstore

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octosupply/pkg/resource"
	"octosupply/pkg/supply"
)

func TestFind(t *testing.T) {
	vals := []string{`{"branchId":1,"name":"a"}`, `{"branchId":2,"name":"b"}`, `{"branchId":2,"name":"c"}`}

	i, v, err := find[supply.Branch](vals, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", v.Name)

	i, _, err = find[supply.Branch](vals, 9)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	_, _, err = find[supply.Branch]([]string{"not json"}, 1)
	assert.Error(t, err)

	docs := []string{`{"branchId":"2","name":"quoted"}`, `{"name":"none"}`, `{"branchId":2,"name":"real"}`}
	i, d, err := find[resource.Document[supply.Branch]](docs, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, `{"branchId":2,"name":"real"}`, string(d.Bytes()))
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, DefaultKeyPrefix+"branches", New[supply.Branch](nil, "", "branches").Key())
	assert.Equal(t, "x:branches", New[supply.Branch](nil, "x:", "branches").Key())
}

// newTestRepo connects to the Redis server returned by testRedisAddr and
// namespaces the collection under a fresh prefix.
func newTestRepo[T resource.Record](t *testing.T, name string) *Repository[T] {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr(t)})
	prefix := "octosupply-test:" + uuid.NewString() + ":"
	repo := New[T](client, prefix, name)
	t.Cleanup(func() {
		client.Del(context.Background(), repo.Key())
		client.Close()
	})
	return repo
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo[supply.Branch](t, "branches")

	require.NoError(t, repo.Seed(ctx, []supply.Branch{{BranchID: 1}, {BranchID: 2}}))
	require.NoError(t, repo.Seed(ctx, []supply.Branch{{BranchID: 99}}))

	_, err := repo.Create(ctx, supply.Branch{BranchID: 3, Name: "Eastside"})
	require.NoError(t, err)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	got, err := repo.Update(ctx, 3, supply.Branch{BranchID: 3, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, repo.Delete(ctx, 3))
	_, err = repo.Get(ctx, 3)
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 3), resource.ErrNotFound)
}

func TestRedisConcurrentUpdateFunc(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo[supply.OrderDetailDelivery](t, "order-detail-deliveries")
	require.NoError(t, repo.Seed(ctx, []supply.OrderDetailDelivery{{OrderDetailDeliveryID: 1}}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateFunc(ctx, 1, func(d supply.OrderDetailDelivery) (supply.OrderDetailDelivery, error) {
				d.Quantity++
				return d, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantity)
}

func TestRedisKeepsDocumentsVerbatim(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo[resource.Document[supply.Product]](t, "products")

	body := `{"productId":5,"name":"LaserChaser","price":"free","colour":"red"}`
	d, err := resource.ParseDocument[supply.Product]([]byte(body))
	require.NoError(t, err)
	_, err = repo.Create(ctx, d)
	require.NoError(t, err)

	got, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, body, string(got.Bytes()))

	renamed, err := got.With("name", []byte(`"LaserChaser 2"`))
	require.NoError(t, err)
	_, err = repo.Update(ctx, 5, renamed)
	require.NoError(t, err)
	got, err = repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, `{"productId":5,"name":"LaserChaser 2","price":"free","colour":"red"}`, string(got.Bytes()))
}
