// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func monitor(id int64, title string, price float64) *models.Monitor {
	return &models.Monitor{ID: id, Title: title, Price: price, RefreshRate: 165}
}

func TestStore_AddListRemove(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	item, added, err := s.Add(ctx, "user-1", monitor(2, "ASUS TUF Gaming VG27AQ", 4500000))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !added || item.ProductType != models.ProductTypeMonitor || item.Monitor.Title != "ASUS TUF Gaming VG27AQ" {
		t.Errorf("Add = %+v, added=%v", item, added)
	}

	if _, _, err := s.Add(ctx, "user-1", monitor(5, "KOORUI 24E3", 1600000)); err != nil {
		t.Fatalf("Add second: %v", err)
	}
	if _, _, err := s.Add(ctx, "user-2", monitor(1, "LG UltraGear 27GR95QE-B", 14500000)); err != nil {
		t.Fatalf("Add other user: %v", err)
	}

	items, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.UserID != "user-1" {
			t.Errorf("leaked item from %q", it.UserID)
		}
	}

	ok, err := s.Contains(ctx, "user-1", 5)
	if err != nil || !ok {
		t.Errorf("Contains(5) = %v, %v", ok, err)
	}

	if err := s.Remove(ctx, "user-1", 5); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Remove(ctx, "user-1", 5); !errors.Is(err, ErrNotInWishlist) {
		t.Errorf("second Remove = %v, want ErrNotInWishlist", err)
	}
	ok, _ = s.Contains(ctx, "user-1", 5)
	if ok {
		t.Error("monitor still present after Remove")
	}
}

func TestStore_AddIsIdempotentAndKeepsSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	m := monitor(3, "BenQ ZOWIE XL2546K", 7200000)
	first, _, err := s.Add(ctx, "user-1", m)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	m.Price = 6500000
	second, added, err := s.Add(ctx, "user-1", m)
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if added {
		t.Error("second Add reported added=true")
	}
	if second.Monitor.Price != 7200000 || !second.AddedAt.Equal(first.AddedAt) {
		t.Errorf("snapshot changed: %+v", second.Monitor)
	}

	items, _ := s.List(ctx, "user-1")
	if len(items) != 1 {
		t.Errorf("len(items) = %d, want 1", len(items))
	}
}

func TestStore_PrefixIsolation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	// "user-1" must not see entries of "user-10".
	if _, _, err := s.Add(ctx, "user-10", monitor(1, "A", 1)); err != nil {
		t.Fatal(err)
	}
	items, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("List(user-1) = %d items, want 0", len(items))
	}
}

func TestStore_AddValidation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	if _, _, err := s.Add(ctx, "", monitor(1, "A", 1)); err == nil {
		t.Error("expected error for empty user id")
	}
	if _, _, err := s.Add(ctx, "a:b", monitor(1, "A", 1)); err == nil {
		t.Error("expected error for user id containing ':'")
	}
	if _, _, err := s.Add(ctx, "user-1", nil); err == nil {
		t.Error("expected error for nil monitor")
	}
}

func TestOpen_InMemory(t *testing.T) {
	t.Parallel()

	s, err := Open(&config.WishlistConfig{InMemory: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	if _, _, err := s.Add(context.Background(), "user-1", monitor(1, "A", 1)); err != nil {
		t.Errorf("Add: %v", err)
	}
	if err := s.RunGC(context.Background()); err != nil {
		t.Errorf("RunGC on in-memory store: %v", err)
	}
}
