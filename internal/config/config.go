// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package config loads RigBudget configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/rigbudget/config.yaml)
//  3. Environment variables (see envTransformFunc for the full list)
//
// Load validates the merged result before returning it.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Wishlist WishlistConfig `koanf:"wishlist"`
}

// DatabaseConfig holds DuckDB settings for the catalog store.
//
// Environment Variables:
//   - DUCKDB_PATH: database file, ":memory:" for an ephemeral store
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 512MB)
//   - DUCKDB_THREADS: worker threads, 0 = runtime.NumCPU()
//   - SEED_CATALOG: insert the starter catalog when tables are empty
type DatabaseConfig struct {
	Path        string `koanf:"path"`
	MaxMemory   string `koanf:"max_memory"`
	Threads     int    `koanf:"threads"`
	SeedCatalog bool   `koanf:"seed_catalog"`
	SkipIndexes bool   `koanf:"skip_indexes"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig holds request handling limits.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
}

// SecurityConfig holds authentication and HTTP hardening settings.
//
// AuthMode "jwt" requires JWT_SECRET, ADMIN_USERNAME and ADMIN_PASSWORD; the
// admin account is created on startup. AuthMode "none" disables the admin
// checks entirely and is refused in production.
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"`
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	AdminUsername     string        `koanf:"admin_username"`
	AdminPassword     string        `koanf:"admin_password"`
	AdminEmail        string        `koanf:"admin_email"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig selects where recommendation runs read the catalog from.
//
// Source "database" reads the local DuckDB store. Source "remote" reads
// another catalog server over HTTP (RemoteURL), behind a circuit breaker and
// a client-side rate limit of RemoteRateLimit requests per second.
type CatalogConfig struct {
	Source          string        `koanf:"source"`
	RemoteURL       string        `koanf:"remote_url"`
	RemoteTimeout   time.Duration `koanf:"remote_timeout"`
	RemoteRateLimit float64       `koanf:"remote_rate_limit"`
	RemoteBurst     int           `koanf:"remote_burst"`
}

// WishlistConfig holds the BadgerDB location for user wishlists.
type WishlistConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// Catalog sources.
const (
	CatalogSourceDatabase = "database"
	CatalogSourceRemote   = "remote"
)
