// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package api provides the HTTP interface of RigBudget.

All versioned endpoints live under /api/v1 and answer with the envelope

	{"status": "success"|"error", "data": ..., "metadata": {...}, "error": {...}}

The router is built on chi. Global middleware adds request IDs, access logs,
Prometheus metrics, CORS and gzip; route groups add rate limits (go-chi/httprate),
authentication (internal/auth) and Casbin authorization (internal/authz).

Endpoint groups:

  - Health: /health, /health/live, /health/ready
  - Catalog: /components and /monitors (reads are public, writes admin-only)
  - Builds: /recommend and /compatibility
  - Accounts: /auth/register, /auth/login, /auth/logout, /auth/me
  - Wishlist: /wishlist (per-user monitor wishlist)
  - Realtime: /ws (catalog change feed)

Two unversioned routes, GET /api/components and GET /api/monitors, return
bare JSON arrays for clients of the original catalog server, and /metrics
exposes Prometheus metrics.

Handler methods are split across files:

  - handlers.go: Handler struct and constructor
  - handlers_helpers.go: response writers and request parsing
  - handlers_health.go, handlers_components.go, handlers_monitors.go
  - handlers_recommend.go: recommendation and compatibility checks
  - handlers_auth.go, handlers_wishlist.go, handlers_legacy.go
*/
package api
