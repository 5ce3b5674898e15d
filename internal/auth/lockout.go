// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package auth

import (
	"strings"
	"sync"
	"time"
)

// LockoutConfig holds configuration for the account lockout system.
type LockoutConfig struct {
	// MaxAttempts is the number of failed attempts before lockout.
	MaxAttempts int

	// LockoutDuration is the base lockout period.
	LockoutDuration time.Duration

	// MaxLockoutDuration caps the doubled lockout period.
	MaxLockoutDuration time.Duration
}

// DefaultLockoutConfig returns the production lockout settings.
func DefaultLockoutConfig() LockoutConfig {
	return LockoutConfig{
		MaxAttempts:        5,
		LockoutDuration:    15 * time.Minute,
		MaxLockoutDuration: 24 * time.Hour,
	}
}

type lockoutEntry struct {
	failedAttempts int
	lockoutCount   int
	lockedUntil    time.Time
}

// Lockout tracks failed logins per username in memory.
type Lockout struct {
	cfg     LockoutConfig
	mu      sync.Mutex
	entries map[string]*lockoutEntry
	now     func() time.Time
}

// NewLockout creates a lockout tracker.
func NewLockout(cfg LockoutConfig) *Lockout {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultLockoutConfig()
	}
	return &Lockout{
		cfg:     cfg,
		entries: make(map[string]*lockoutEntry),
		now:     time.Now,
	}
}

func lockoutKey(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}

// Locked reports whether subject is locked and for how much longer.
func (l *Lockout) Locked(subject string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[lockoutKey(subject)]
	if !ok {
		return false, 0
	}
	now := l.now()
	if now.Before(entry.lockedUntil) {
		return true, entry.lockedUntil.Sub(now)
	}
	return false, 0
}

// RecordFailure counts a failed attempt and reports whether it locked subject.
func (l *Lockout) RecordFailure(subject string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := lockoutKey(subject)
	entry, ok := l.entries[key]
	if !ok {
		entry = &lockoutEntry{}
		l.entries[key] = entry
	}

	entry.failedAttempts++
	if entry.failedAttempts < l.cfg.MaxAttempts {
		return false
	}

	duration := l.cfg.LockoutDuration << entry.lockoutCount
	if duration <= 0 || duration > l.cfg.MaxLockoutDuration {
		duration = l.cfg.MaxLockoutDuration
	}
	entry.lockoutCount++
	entry.failedAttempts = 0
	entry.lockedUntil = l.now().Add(duration)
	return true
}

// RecordSuccess clears the failure history for subject.
func (l *Lockout) RecordSuccess(subject string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, lockoutKey(subject))
}
