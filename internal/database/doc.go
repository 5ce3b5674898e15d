// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package database provides the DuckDB-backed catalog store.

It owns three tables: components, monitors and users. The schema is created
on startup, versioned migrations are applied exactly once through the
schema_migrations table, and an empty catalog is optionally seeded with the
default component and monitor set.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	components, err := db.ListComponents(ctx, database.ComponentFilter{Type: models.TypeGPU})

# Prices

Prices are stored as DECIMAL(15,2) in the smallest currency unit and read
back as float64. Marketplace links are stored as JSON text.

# Errors

Lookups return ErrComponentNotFound, ErrMonitorNotFound or ErrUserNotFound
when no row matches. Creating a user with a taken username or email returns
ErrUserExists. All other errors are wrapped with context and can be
inspected with errors.Is.

# Testing

Tests use an in-memory database:

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB"})
*/
package database
