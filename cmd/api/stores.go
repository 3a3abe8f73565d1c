package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"octosupply/pkg/api"
	"octosupply/pkg/config"
	"octosupply/pkg/resource"
	"octosupply/pkg/resource/redisstore"
	"octosupply/pkg/resource/sqlstore"
	"octosupply/pkg/supply"
)

// seeder is implemented by the persistent repositories. Seed only writes
// to an empty collection.
type seeder[T resource.Record] interface {
	resource.Repository[T]
	Seed(ctx context.Context, seed []T) error
}

type persistentStores struct {
	suppliers             seeder[resource.Document[supply.Supplier]]
	products              seeder[resource.Document[supply.Product]]
	headquarters          seeder[resource.Document[supply.Headquarters]]
	branches              seeder[resource.Document[supply.Branch]]
	orders                seeder[resource.Document[supply.Order]]
	orderDetails          seeder[resource.Document[supply.OrderDetail]]
	deliveries            seeder[resource.Document[supply.Delivery]]
	orderDetailDeliveries seeder[resource.Document[supply.OrderDetailDelivery]]
}

// seedDocuments encodes vs and seeds s with the result.
func seedDocuments[K resource.Keyed](ctx context.Context, s seeder[resource.Document[K]], vs []K) error {
	docs, err := resource.Documents(vs)
	if err != nil {
		return err
	}
	return s.Seed(ctx, docs)
}

func (p persistentStores) seed(ctx context.Context, s supply.Seed) error {
	steps := []func() error{
		func() error { return seedDocuments(ctx, p.suppliers, s.Suppliers) },
		func() error { return seedDocuments(ctx, p.products, s.Products) },
		func() error { return seedDocuments(ctx, p.headquarters, s.Headquarters) },
		func() error { return seedDocuments(ctx, p.branches, s.Branches) },
		func() error { return seedDocuments(ctx, p.orders, s.Orders) },
		func() error { return seedDocuments(ctx, p.orderDetails, s.OrderDetails) },
		func() error { return seedDocuments(ctx, p.deliveries, s.Deliveries) },
		func() error { return seedDocuments(ctx, p.orderDetailDeliveries, s.OrderDetailDeliveries) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}

func (p persistentStores) stores() api.Stores {
	return api.Stores{
		Suppliers:             p.suppliers,
		Products:              p.products,
		Headquarters:          p.headquarters,
		Branches:              p.branches,
		Orders:                p.orders,
		OrderDetails:          p.orderDetails,
		Deliveries:            p.deliveries,
		OrderDetailDeliveries: p.orderDetailDeliveries,
	}
}

func sqlStores(db *sql.DB, d sqlstore.Dialect) persistentStores {
	return persistentStores{
		suppliers:             sqlstore.New[resource.Document[supply.Supplier]](db, d, "suppliers"),
		products:              sqlstore.New[resource.Document[supply.Product]](db, d, "products"),
		headquarters:          sqlstore.New[resource.Document[supply.Headquarters]](db, d, "headquarters"),
		branches:              sqlstore.New[resource.Document[supply.Branch]](db, d, "branches"),
		orders:                sqlstore.New[resource.Document[supply.Order]](db, d, "orders"),
		orderDetails:          sqlstore.New[resource.Document[supply.OrderDetail]](db, d, "order-details"),
		deliveries:            sqlstore.New[resource.Document[supply.Delivery]](db, d, "deliveries"),
		orderDetailDeliveries: sqlstore.New[resource.Document[supply.OrderDetailDelivery]](db, d, "order-detail-deliveries"),
	}
}

func redisStores(rdb *redis.Client, prefix string) persistentStores {
	return persistentStores{
		suppliers:             redisstore.New[resource.Document[supply.Supplier]](rdb, prefix, "suppliers"),
		products:              redisstore.New[resource.Document[supply.Product]](rdb, prefix, "products"),
		headquarters:          redisstore.New[resource.Document[supply.Headquarters]](rdb, prefix, "headquarters"),
		branches:              redisstore.New[resource.Document[supply.Branch]](rdb, prefix, "branches"),
		orders:                redisstore.New[resource.Document[supply.Order]](rdb, prefix, "orders"),
		orderDetails:          redisstore.New[resource.Document[supply.OrderDetail]](rdb, prefix, "order-details"),
		deliveries:            redisstore.New[resource.Document[supply.Delivery]](rdb, prefix, "deliveries"),
		orderDetailDeliveries: redisstore.New[resource.Document[supply.OrderDetailDelivery]](rdb, prefix, "order-detail-deliveries"),
	}
}

// openStores builds the repositories of the configured backend. The
// returned func releases backend connections.
func openStores(ctx context.Context, cfg *config.Config, rdb *redis.Client, now time.Time) (api.Stores, func(), error) {
	seed := supply.Seed{}
	if cfg.Store.Seed {
		seed = supply.SeedData(now)
	}
	noop := func() {}

	var p persistentStores
	closeFn := noop
	switch cfg.Store.Backend {
	case "memory":
		return api.NewMemoryStores(seed), noop, nil
	case "postgres", "sqlite":
		d, dsn := sqlstore.Postgres, cfg.Store.DatabaseURL
		if cfg.Store.Backend == "sqlite" {
			d, dsn = sqlstore.SQLite, cfg.Store.SQLitePath
		}
		db, err := sqlstore.Open(ctx, d, dsn)
		if err != nil {
			return api.Stores{}, nil, err
		}
		p = sqlStores(db, d)
		closeFn = func() { db.Close() }
	case "redis":
		if err := rdb.Ping(ctx).Err(); err != nil {
			return api.Stores{}, nil, fmt.Errorf("ping redis: %w", err)
		}
		p = redisStores(rdb, cfg.Store.KeyPrefix)
	default:
		return api.Stores{}, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Store.Seed {
		if err := p.seed(ctx, seed); err != nil {
			closeFn()
			return api.Stores{}, nil, err
		}
	}
	return p.stores(), closeFn, nil
}
