package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"octosupply/pkg/client"
	"octosupply/pkg/resource"
)

// collection erases the record type of a client.Resource so commands can
// pick one by name.
type collection interface {
	list(ctx context.Context) (any, error)
	get(ctx context.Context, id int) (any, error)
	create(ctx context.Context, data []byte) (any, error)
	update(ctx context.Context, id int, data []byte) (any, error)
	remove(ctx context.Context, id int) error
}

type record interface {
	resource.Record
	resource.Keyed
}

// typed lists and reads records through their struct view and writes the
// --data document exactly as given.
type typed[T record] struct {
	r    *client.Resource[T]
	docs *client.Resource[resource.Document[T]]
}

func newTyped[T record](r *client.Resource[T]) typed[T] {
	return typed[T]{r: r, docs: client.Verbatim(r)}
}

func (t typed[T]) list(ctx context.Context) (any, error) { return t.r.List(ctx) }

func (t typed[T]) get(ctx context.Context, id int) (any, error) { return t.r.Get(ctx, id) }

func (t typed[T]) create(ctx context.Context, data []byte) (any, error) {
	doc, err := resource.ParseDocument[T](data)
	if err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	created, err := t.docs.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	return created.Typed(), nil
}

func (t typed[T]) update(ctx context.Context, id int, data []byte) (any, error) {
	doc, err := resource.ParseDocument[T](data)
	if err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	updated, err := t.docs.Update(ctx, id, doc)
	if err != nil {
		return nil, err
	}
	return updated.Typed(), nil
}

func (t typed[T]) remove(ctx context.Context, id int) error { return t.r.Delete(ctx, id) }

func collections(c *client.Client) map[string]collection {
	return map[string]collection{
		"suppliers":               newTyped(c.Suppliers()),
		"products":                newTyped(c.Products()),
		"headquarters":            newTyped(c.Headquarters()),
		"branches":                newTyped(c.Branches()),
		"orders":                  newTyped(c.Orders()),
		"order-details":           newTyped(c.OrderDetails()),
		"deliveries":              newTyped(c.Deliveries()),
		"order-detail-deliveries": newTyped(c.OrderDetailDeliveries()),
	}
}

func collectionNames() string {
	names := make([]string, 0, 8)
	for name := range collections(client.New("", nil)) {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupCollection(c *client.Client, name string) (collection, error) {
	coll, ok := collections(c)[name]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q (valid: %s)", name, collectionNames())
	}
	return coll, nil
}
