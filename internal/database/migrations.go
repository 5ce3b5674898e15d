// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/rigbudget/internal/logging"
)

// schemaChange is one numbered, append-only change to the catalog schema.
type schemaChange struct {
	version int
	name    string
	stmt    string
}

// catalogSchemaChanges must only ever grow; a shipped entry is never edited.
var catalogSchemaChanges = []schemaChange{
	{1, "component_marketplace_links", `ALTER TABLE components ADD COLUMN IF NOT EXISTS marketplace_links VARCHAR`},
	{2, "monitor_marketplace_links", `ALTER TABLE monitors ADD COLUMN IF NOT EXISTS marketplace_links VARCHAR`},
}

// migrate applies every schema change newer than the recorded version. Each
// change and its bookkeeping row commit together.
func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       VARCHAR NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	applied := 0
	for _, change := range catalogSchemaChanges {
		if change.version <= current {
			continue
		}
		tx, err := db.conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration v%d: %w", change.version, err)
		}
		if _, err := tx.ExecContext(ctx, change.stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration v%d (%s) failed: %w", change.version, change.name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			change.version, change.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration v%d: %w", change.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration v%d: %w", change.version, err)
		}
		applied++
	}

	if applied > 0 {
		logging.Info().Int("applied", applied).Int("schema_version", current+applied).Msg("Catalog schema migrated")
	}
	return nil
}

// SchemaVersion returns the newest applied schema change, 0 for a fresh store.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var version int
	if err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
