// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

// ComponentFilter narrows ListComponents. Zero values match everything.
type ComponentFilter struct {
	Type  models.ComponentType
	Query string // case-insensitive substring of name
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches q as a literal substring in an ILIKE ... ESCAPE '\' clause.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

const componentColumns = `id, name, type, CAST(price AS DOUBLE), COALESCE(image_url, ''),
	COALESCE(specs, ''), COALESCE(description, ''), COALESCE(marketplace_link, ''),
	marketplace_links, created_at, updated_at`

// ListComponents returns catalog components in insertion order.
func (db *DB) ListComponents(ctx context.Context, filter ComponentFilter) ([]models.Component, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	query := `SELECT ` + componentColumns + ` FROM components WHERE 1=1`
	args := []any{}
	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, string(filter.Type))
	}
	if filter.Query != "" {
		query += ` AND name ILIKE ? ESCAPE '\'`
		args = append(args, containsPattern(filter.Query))
	}
	query += " ORDER BY id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery("SELECT", "components", time.Since(start), err)
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	defer rows.Close()

	components := make([]models.Component, 0)
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan component: %w", err)
		}
		components = append(components, *c)
	}
	err = rows.Err()
	metrics.RecordDBQuery("SELECT", "components", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate components: %w", err)
	}

	return components, nil
}

// GetComponent retrieves a component by ID.
func (db *DB) GetComponent(ctx context.Context, id int64) (*models.Component, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `SELECT `+componentColumns+` FROM components WHERE id = ?`, id)
	c, err := scanComponent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrComponentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get component %d: %w", id, err)
	}
	return c, nil
}

// CreateComponent inserts c and sets its ID and timestamps.
func (db *DB) CreateComponent(ctx context.Context, c *models.Component) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	links, err := encodeLinks(c.MarketplaceLinks)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = c.CreatedAt

	err = db.conn.QueryRowContext(ctx, `INSERT INTO components (
		name, type, price, image_url, specs, description, marketplace_link,
		marketplace_links, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		c.Name, string(c.Type), c.Price, c.ImageURL, c.Specs, c.Description, c.MarketplaceLink,
		links, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	metrics.RecordDBQuery("INSERT", "components", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to create component: %w", err)
	}
	return nil
}

// UpdateComponent overwrites every mutable field of the component with c.ID.
func (db *DB) UpdateComponent(ctx context.Context, c *models.Component) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	links, err := encodeLinks(c.MarketplaceLinks)
	if err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()

	result, err := db.conn.ExecContext(ctx, `UPDATE components SET
		name = ?, type = ?, price = ?, image_url = ?, specs = ?, description = ?,
		marketplace_link = ?, marketplace_links = ?, updated_at = ?
	WHERE id = ?`,
		c.Name, string(c.Type), c.Price, c.ImageURL, c.Specs, c.Description,
		c.MarketplaceLink, links, c.UpdatedAt, c.ID,
	)
	metrics.RecordDBQuery("UPDATE", "components", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to update component %d: %w", c.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrComponentNotFound
	}

	// Refresh created_at so the caller sees the stored row.
	stored, err := db.GetComponent(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

// DeleteComponent removes the component with the given ID.
func (db *DB) DeleteComponent(ctx context.Context, id int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	result, err := db.conn.ExecContext(ctx, `DELETE FROM components WHERE id = ?`, id)
	metrics.RecordDBQuery("DELETE", "components", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete component %d: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrComponentNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComponent(row rowScanner) (*models.Component, error) {
	var (
		c        models.Component
		compType string
		links    sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &compType, &c.Price, &c.ImageURL,
		&c.Specs, &c.Description, &c.MarketplaceLink,
		&links, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Type = models.ComponentType(compType)
	if c.MarketplaceLinks, err = decodeLinks(links); err != nil {
		return nil, err
	}
	return &c, nil
}

// encodeLinks renders links as JSON text, or NULL when none are set.
func encodeLinks(links *models.MarketplaceLinks) (sql.NullString, error) {
	if links == nil || links.IsZero() {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(links)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode marketplace links: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeLinks(s sql.NullString) (*models.MarketplaceLinks, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var links models.MarketplaceLinks
	if err := json.Unmarshal([]byte(s.String), &links); err != nil {
		return nil, fmt.Errorf("failed to decode marketplace links: %w", err)
	}
	if links.IsZero() {
		return nil, nil
	}
	return &links, nil
}
