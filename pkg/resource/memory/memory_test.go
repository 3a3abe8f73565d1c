package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"octosupply/pkg/resource"
	"octosupply/pkg/supply"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New[supply.Branch](nil)
	b := supply.Branch{BranchID: 1, Name: "Meowtown"}
	if _, err := repo.Create(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Meowtown" {
		t.Fatalf("expected Meowtown, got %s", got.Name)
	}
	b.Name = "Tabby Terrace"
	if _, err := repo.Update(ctx, 1, b); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].Name != "Tabby Terrace" {
		t.Fatalf("expected Tabby Terrace, got %s", list[0].Name)
	}
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSeedIsCopied(t *testing.T) {
	seed := []supply.Branch{{BranchID: 1}, {BranchID: 2}}
	repo := New(seed)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if seed[0].BranchID != 1 || len(seed) != 2 {
		t.Fatalf("seed slice was mutated: %+v", seed)
	}
}

func TestFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo := New([]supply.Branch{
		{BranchID: 5, Name: "first"},
		{BranchID: 5, Name: "second"},
	})

	got, err := repo.Get(ctx, 5)
	if err != nil || got.Name != "first" {
		t.Fatalf("get: %v %+v", err, got)
	}
	if _, err := repo.Update(ctx, 5, supply.Branch{BranchID: 5, Name: "updated"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := repo.List(ctx)
	if list[0].Name != "updated" || list[1].Name != "second" {
		t.Fatalf("unexpected list after update: %+v", list)
	}
	if err := repo.Delete(ctx, 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.Get(ctx, 5)
	if err != nil || got.Name != "second" {
		t.Fatalf("get after delete: %v %+v", err, got)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	repo := New([]supply.Branch{{BranchID: 1, Name: "Meowtown", Phone: "555-0201"}})

	got, err := repo.Update(ctx, 1, supply.Branch{BranchID: 9, Name: "Renamed"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Phone != "" || got.BranchID != 9 {
		t.Fatalf("expected whole-record replacement, got %+v", got)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("old id should be gone, got %v", err)
	}
}

func TestUpdateFuncError(t *testing.T) {
	ctx := context.Background()
	repo := New([]supply.Delivery{{DeliveryID: 1, Status: "pending"}})
	boom := errors.New("boom")

	_, err := repo.UpdateFunc(ctx, 1, func(d supply.Delivery) (supply.Delivery, error) {
		d.Status = "delivered"
		return d, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, _ := repo.Get(ctx, 1)
	if got.Status != "pending" {
		t.Fatalf("failed UpdateFunc must not write, got %s", got.Status)
	}
}

func TestMissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := New([]supply.Branch{{BranchID: 1}})
	if _, err := repo.Get(ctx, 999); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("get: %v", err)
	}
	if _, err := repo.Update(ctx, 999, supply.Branch{}); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Delete(ctx, 999); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := New[supply.Order](nil)
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			repo.Create(ctx, supply.Order{OrderID: id})
		}(i)
	}
	wg.Wait()
	list, _ := repo.List(ctx)
	if len(list) != 100 {
		t.Fatalf("expected 100 orders, got %d", len(list))
	}
}

func TestRecordsWithoutIDNeverMatch(t *testing.T) {
	ctx := context.Background()
	var docs []resource.Document[supply.Branch]
	for _, body := range []string{`{"branchId":"1","name":"quoted"}`, `{"name":"none"}`, `{"branchId":1,"name":"real"}`} {
		d, err := resource.ParseDocument[supply.Branch]([]byte(body))
		if err != nil {
			t.Fatalf("parse %s: %v", body, err)
		}
		docs = append(docs, d)
	}
	repo := New(docs)

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Typed().Name != "real" {
		t.Fatalf("expected the numeric id to match, got %s", got.Bytes())
	}
	if _, err := repo.Get(ctx, 0); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("a missing id must not match 0, got %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 3 {
		t.Fatalf("expected all 3 records listed, got %d", len(list))
	}
}
