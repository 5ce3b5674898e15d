// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package middleware provides HTTP middleware shared by the API router:
// request IDs wired into the logging context, structured access logs,
// Prometheus request metrics keyed by chi route pattern, and gzip
// compression.
//
// All middleware use the func(http.Handler) http.Handler shape so they
// compose with chi's Use and With.
package middleware
