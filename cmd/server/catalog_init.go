// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package main

import (
	"fmt"

	"github.com/tomtom215/rigbudget/internal/catalog"
	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/logging"
)

// initCatalogSource picks where recommendation runs read the catalog from.
// The REST catalog endpoints always use the local store.
func initCatalogSource(cfg *config.CatalogConfig, store catalog.Store) (catalog.Source, error) {
	switch cfg.Source {
	case config.CatalogSourceRemote:
		src, err := catalog.NewRemoteSource(catalog.RemoteConfig{
			BaseURL:   cfg.RemoteURL,
			Timeout:   cfg.RemoteTimeout,
			RateLimit: cfg.RemoteRateLimit,
			Burst:     cfg.RemoteBurst,
		})
		if err != nil {
			return nil, fmt.Errorf("remote catalog: %w", err)
		}
		logging.Info().
			Str("url", cfg.RemoteURL).
			Float64("rate_limit", cfg.RemoteRateLimit).
			Msg("Recommendations read the remote catalog")
		return src, nil
	case config.CatalogSourceDatabase, "":
		return catalog.NewDatabaseSource(store), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
