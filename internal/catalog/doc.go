// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package catalog loads the component and monitor catalog for a single
// request.
//
// An Accessor reads the full list from its Source on every call. There is no
// caching and no incremental update: each recommendation runs against a fresh
// snapshot. When the source fails the Accessor returns an empty, non-nil
// slice together with an error wrapping ErrCatalogUnavailable, so callers can
// keep serving a degraded answer.
//
// Sources:
//   - DatabaseSource reads the local DuckDB catalog store.
//   - RemoteSource reads another server's legacy /api/components and
//     /api/monitors endpoints, guarded by a circuit breaker and a client-side
//     rate limiter. String-encoded decimal prices are accepted.
//   - FileSource reads a JSON export from disk, used by the CLI.
package catalog
