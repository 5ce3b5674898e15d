// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package supervisor runs RigBudget's long-lived services under a suture tree.

	rigbudget (root)
	├── store-layer  store maintenance (DuckDB checkpoint, badger GC)
	├── feed-layer   websocket catalog change feed
	└── api-layer    REST server

A service that returns an error or panics is restarted by its layer's
supervisor with backoff; a crash in one layer does not stop the others.
Supervisor events are logged through zerolog via sutureslog and the slog
adapter in package logging.

Service wrappers live in the services subpackage.
*/
package supervisor
