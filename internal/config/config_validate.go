// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that the merged configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateWishlist(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 || c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE must be >= 1 and <= API_MAX_PAGE")
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("API_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

var validAuthModes = map[string]bool{
	"none": true,
	"jwt":  true,
}

func (c *Config) validateSecurity() error {
	if !validAuthModes[c.Security.AuthMode] {
		return fmt.Errorf("AUTH_MODE must be one of: none, jwt")
	}
	if c.Security.AuthMode == "none" && c.IsProduction() {
		return fmt.Errorf("AUTH_MODE=none is not allowed when ENVIRONMENT=production")
	}
	if c.Security.AuthMode != "none" && c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production with authentication enabled; " +
			"set specific origins, e.g. CORS_ORIGINS=https://rigbudget.example.com")
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if c.Security.AuthMode == "jwt" {
		return c.validateJWTAuth()
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports a wildcard origin combined with authentication.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.Security.AuthMode != "none" && c.hasWildcardCORS()
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateJWTAuth() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate one with: openssl rand -base64 32")
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if c.Security.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required when AUTH_MODE is jwt")
	}
	if len(c.Security.AdminPassword) < 8 {
		return fmt.Errorf("ADMIN_PASSWORD must be at least 8 characters when AUTH_MODE is jwt")
	}
	if containsPlaceholder(c.Security.AdminPassword) {
		return fmt.Errorf("ADMIN_PASSWORD contains a placeholder value - set a real password")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case CatalogSourceDatabase:
		return nil
	case CatalogSourceRemote:
		if c.Catalog.RemoteURL == "" {
			return fmt.Errorf("CATALOG_REMOTE_URL is required when CATALOG_SOURCE=remote")
		}
		u, err := url.Parse(c.Catalog.RemoteURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("CATALOG_REMOTE_URL must be an absolute http(s) URL")
		}
		if c.Catalog.RemoteTimeout <= 0 {
			return fmt.Errorf("CATALOG_TIMEOUT must be positive")
		}
		if c.Catalog.RemoteRateLimit <= 0 || c.Catalog.RemoteBurst < 1 {
			return fmt.Errorf("CATALOG_RATE_LIMIT must be positive and CATALOG_BURST at least 1")
		}
		return nil
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: database, remote")
	}
}

func (c *Config) validateWishlist() error {
	if !c.Wishlist.InMemory && c.Wishlist.Path == "" {
		return fmt.Errorf("WISHLIST_PATH is required unless WISHLIST_IN_MEMORY=true")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction reports ENVIRONMENT=production (or prod).
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment reports an empty, development or dev ENVIRONMENT.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_PASSWORD",
	"PLACEHOLDER",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, p := range placeholderPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}
