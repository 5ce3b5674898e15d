// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext bounds DDL statements run during startup
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// createTables creates the catalog and user tables.
// marketplace_links is added by migration 1 so older databases pick it up too.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS components_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS monitors_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS components (
			id BIGINT PRIMARY KEY DEFAULT nextval('components_id_seq'),
			name VARCHAR NOT NULL,
			type VARCHAR NOT NULL,
			price DECIMAL(15,2) NOT NULL,
			image_url VARCHAR,
			specs VARCHAR,
			description VARCHAR,
			marketplace_link VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS monitors (
			id BIGINT PRIMARY KEY DEFAULT nextval('monitors_id_seq'),
			title VARCHAR NOT NULL,
			description VARCHAR,
			resolution VARCHAR,
			refresh_rate INTEGER,
			panel_type VARCHAR,
			screen_size DECIMAL(5,2),
			price DECIMAL(15,2) NOT NULL,
			rating DECIMAL(3,2) DEFAULT 0,
			featured BOOLEAN DEFAULT false,
			image_url VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR PRIMARY KEY,
			username VARCHAR NOT NULL UNIQUE,
			email VARCHAR NOT NULL UNIQUE,
			role VARCHAR NOT NULL DEFAULT 'user',
			password_hash VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// createIndexes adds the lookup indexes used by list filters
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_components_type ON components(type)`,
		`CREATE INDEX IF NOT EXISTS idx_monitors_featured ON monitors(featured)`,
	}

	for _, idx := range indexes {
		if _, err := db.conn.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
