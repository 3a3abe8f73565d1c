//go:build integration

package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"octosupply/pkg/resource"
	"octosupply/pkg/supply"
)

func TestPostgresContainer(t *testing.T) {
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("octosupply"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx, Postgres, dsn)
	require.NoError(t, err)
	defer db.Close()

	seed := supply.SeedData(time.Now())
	repo := New[supply.Product](db, Postgres, "products")
	require.NoError(t, repo.Seed(ctx, seed.Products))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(seed.Products))
	assert.Equal(t, seed.Products[0], list[0])

	_, err = repo.Update(ctx, 1, supply.Product{ProductID: 1, Name: "Replaced"})
	require.NoError(t, err)
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.Discount)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, resource.ErrNotFound)
}
