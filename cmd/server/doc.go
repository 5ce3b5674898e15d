// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package main is the entry point for the RigBudget server.

RigBudget serves a PC component and monitor catalog over REST, recommends
budget builds from it, checks CPU/motherboard socket compatibility, and keeps
per-user monitor wishlists.

# Application Architecture

Long-running pieces run under a Suture v4 supervisor tree:

	rigbudget
	├── store-layer
	│   ├── duckdb-checkpoint (periodic CHECKPOINT)
	│   └── wishlist-gc (badger value log GC)
	├── feed-layer
	│   └── catalog-feed (websocket hub)
	└── api-layer
	    └── catalog-api (HTTP server)

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output
 3. Catalog store: DuckDB, seeded with the starter catalog when empty
 4. Catalog source for recommendations: database or remote server
 5. Wishlist store: BadgerDB
 6. Authentication (JWT or none) and Casbin authorization
 7. WebSocket hub, HTTP router, supervisor tree

# Configuration

Common environment variables:

	HTTP_PORT=8080
	DUCKDB_PATH=/data/rigbudget.duckdb
	WISHLIST_PATH=/data/wishlist
	AUTH_MODE=jwt
	JWT_SECRET=...            # 32+ characters
	ADMIN_USERNAME=admin
	ADMIN_PASSWORD=...
	CATALOG_SOURCE=remote
	CATALOG_REMOTE_URL=http://catalog.internal:5000

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests, the hub closes client connections, and the stores are closed after
the tree stops.
*/
package main
