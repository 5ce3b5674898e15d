// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package cache provides the in-memory response cache used by the catalog
// listing endpoints.
//
// Entries expire after a fixed TTL and the least recently used entry is
// evicted when the cache is full. Catalog writes clear the whole cache, so a
// listing never outlives the change that made it stale.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/metrics"
)

// Defaults applied by New for non-positive arguments.
const (
	DefaultCapacity = 512
	DefaultTTL      = time.Minute
)

type entry struct {
	key       string
	value     interface{}
	prev      *entry
	next      *entry
	expiresAt time.Time
}

// LRU is a thread-safe least recently used cache with TTL support.
// Get, Set and Delete are O(1).
type LRU struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[string]*entry

	// head.next is the most recently used, tail.prev the least
	head *entry
	tail *entry

	hits   int64
	misses int64
}

// New creates a cache holding up to capacity entries for ttl each.
func New(capacity int, ttl time.Duration) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &LRU{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*entry, capacity),
		head:     &entry{},
		tail:     &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key when present and not expired.
func (c *LRU) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if ok && c.now().After(e.expiresAt) {
		c.remove(e)
		ok = false
	}
	metrics.RecordCacheLookup(ok)
	if !ok {
		c.misses++
		return nil, false
	}

	c.moveToFront(e)
	c.hits++
	return e.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.remove(c.tail.prev)
	}
	metrics.CacheEntries.Set(float64(len(c.items)))
}

// Delete removes key and reports whether it was present.
func (c *LRU) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if ok {
		c.remove(e)
		metrics.CacheEntries.Set(float64(len(c.items)))
	}
	return ok
}

// Clear drops every entry.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry, c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	metrics.CacheEntries.Set(0)
}

// Len returns the number of entries, expired ones included.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit and miss counts and the current size.
func (c *LRU) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// Must be called with the lock held.
func (c *LRU) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRU) moveToFront(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRU) remove(e *entry) {
	if e == c.head || e == c.tail {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

// GenerateKey builds a compact key from a prefix and JSON-serializable params.
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", prefix, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
