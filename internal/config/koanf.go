// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/rigbudget/config.yaml",
	"/etc/rigbudget/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        "/data/rigbudget.duckdb",
			MaxMemory:   "512MB",
			Threads:     0,
			SeedCatalog: true,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     500,
			RequestTimeout:  10 * time.Second,
		},
		Security: SecurityConfig{
			AuthMode:        "jwt",
			SessionTimeout:  24 * time.Hour,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
			TrustedProxies:  []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			Source:          CatalogSourceDatabase,
			RemoteTimeout:   10 * time.Second,
			RemoteRateLimit: 5,
			RemoteBurst:     5,
		},
		Wishlist: WishlistConfig{
			Path: "/data/wishlist",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoadWithKoanf is the layered loader behind Load.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
		if err := k.Set(path, values); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
// Unlisted variables are ignored.
var envMappings = map[string]string{
	"duckdb_path":         "database.path",
	"duckdb_max_memory":   "database.max_memory",
	"duckdb_threads":      "database.threads",
	"seed_catalog":        "database.seed_catalog",
	"skip_indexes":        "database.skip_indexes",
	"http_port":           "server.port",
	"http_host":           "server.host",
	"http_timeout":        "server.timeout",
	"environment":         "server.environment",
	"api_default_page":    "api.default_page_size",
	"api_max_page":        "api.max_page_size",
	"api_request_timeout": "api.request_timeout",
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"session_timeout":     "security.session_timeout",
	"admin_username":      "security.admin_username",
	"admin_password":      "security.admin_password",
	"admin_email":         "security.admin_email",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",
	"log_level":           "logging.level",
	"log_format":          "logging.format",
	"log_caller":          "logging.caller",
	"catalog_source":      "catalog.source",
	"catalog_remote_url":  "catalog.remote_url",
	"catalog_timeout":     "catalog.remote_timeout",
	"catalog_rate_limit":  "catalog.remote_rate_limit",
	"catalog_burst":       "catalog.remote_burst",
	"wishlist_path":       "wishlist.path",
	"wishlist_in_memory":  "wishlist.in_memory",
}

// envTransformFunc maps an environment variable name to its koanf path.
//
// Examples:
//   - DUCKDB_PATH -> database.path
//   - CATALOG_REMOTE_URL -> catalog.remote_url
//   - CORS_ORIGINS -> security.cors_origins
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
