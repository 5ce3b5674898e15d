// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package wishlist stores per-user monitor wishlists in BadgerDB.
//
// Each entry keeps a snapshot of the monitor taken when it was added, so a
// wishlist still renders after the catalog entry changes or is deleted.
package wishlist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

// Key prefix for BadgerDB storage: wishlist:<user id>:<monitor id>
const wishlistKeyPrefix = "wishlist:"

// ErrNotInWishlist is returned when removing a monitor the user never added.
var ErrNotInWishlist = errors.New("monitor not in wishlist")

// Store implements a durable wishlist on BadgerDB.
type Store struct {
	db     *badger.DB
	ownsDB bool
}

// Open opens (or creates) the BadgerDB directory described by cfg.
func Open(cfg *config.WishlistConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = newBadgerLogger()

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open wishlist store: %w", err)
	}
	return &Store{db: db, ownsDB: true}, nil
}

// NewStore wraps an already open BadgerDB. Close does not close db.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying database when the store opened it.
func (s *Store) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// RunGC reclaims value log space. It is a no-op for in-memory stores and
// when there is nothing to rewrite.
func (s *Store) RunGC(ctx context.Context) error {
	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(0.5)
		if err == nil {
			continue
		}
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		return fmt.Errorf("wishlist value log GC: %w", err)
	}
	return ctx.Err()
}

func itemKey(userID string, monitorID int64) []byte {
	return []byte(userPrefix(userID) + strconv.FormatInt(monitorID, 10))
}

func userPrefix(userID string) string {
	return wishlistKeyPrefix + userID + ":"
}

// Add stores a snapshot of m in the user's wishlist. Adding a monitor that is
// already present keeps the existing entry and reports added=false.
func (s *Store) Add(ctx context.Context, userID string, m *models.Monitor) (item *models.WishlistItem, added bool, err error) {
	defer func() { metrics.RecordWishlistOperation("add", err) }()

	if userID == "" || strings.Contains(userID, ":") {
		return nil, false, fmt.Errorf("invalid user id %q", userID)
	}
	if m == nil {
		return nil, false, errors.New("monitor is required")
	}

	key := itemKey(userID, m.ID)
	err = s.db.Update(func(txn *badger.Txn) error {
		existing, getErr := txn.Get(key)
		if getErr == nil {
			var current models.WishlistItem
			if err := existing.Value(func(val []byte) error {
				return json.Unmarshal(val, &current)
			}); err != nil {
				return fmt.Errorf("unmarshal wishlist item: %w", err)
			}
			item = &current
			return nil
		}
		if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("get wishlist item: %w", getErr)
		}

		snapshot := *m
		item = &models.WishlistItem{
			UserID:      userID,
			ProductID:   m.ID,
			ProductType: models.ProductTypeMonitor,
			Monitor:     &snapshot,
			AddedAt:     time.Now().UTC(),
		}
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal wishlist item: %w", err)
		}
		added = true
		return txn.Set(key, data)
	})
	if err != nil {
		return nil, false, err
	}
	return item, added, nil
}

// Remove deletes a monitor from the user's wishlist.
func (s *Store) Remove(ctx context.Context, userID string, monitorID int64) (err error) {
	defer func() { metrics.RecordWishlistOperation("remove", err) }()

	key := itemKey(userID, monitorID)
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotInWishlist
			}
			return fmt.Errorf("get wishlist item: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete wishlist item: %w", err)
		}
		return nil
	})
}

// Contains reports whether the monitor is in the user's wishlist.
func (s *Store) Contains(ctx context.Context, userID string, monitorID int64) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(itemKey(userID, monitorID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// List returns the user's wishlist, oldest first.
func (s *Store) List(ctx context.Context, userID string) (items []models.WishlistItem, err error) {
	defer func() { metrics.RecordWishlistOperation("list", err) }()

	items = make([]models.WishlistItem, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userPrefix(userID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var item models.WishlistItem
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			}); err != nil {
				return fmt.Errorf("unmarshal wishlist item: %w", err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items, nil
}

// badgerLogger routes badger's internal logging through zerolog.
type badgerLogger struct{}

func newBadgerLogger() badger.Logger { return badgerLogger{} }

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Str("component", "wishlist").Msgf(strings.TrimSpace(format), args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Str("component", "wishlist").Msgf(strings.TrimSpace(format), args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Str("component", "wishlist").Msgf(strings.TrimSpace(format), args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Str("component", "wishlist").Msgf(strings.TrimSpace(format), args...)
}
