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
	"time"

	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

// MonitorFilter narrows ListMonitors. Zero values match everything.
type MonitorFilter struct {
	Category     models.MonitorCategory
	Query        string // case-insensitive substring of title or description
	FeaturedOnly bool
}

const monitorColumns = `id, title, COALESCE(description, ''), COALESCE(resolution, ''),
	COALESCE(refresh_rate, 0), COALESCE(panel_type, ''), CAST(COALESCE(screen_size, 0) AS DOUBLE),
	CAST(price AS DOUBLE), CAST(COALESCE(rating, 0) AS DOUBLE), COALESCE(featured, false),
	COALESCE(image_url, ''), marketplace_links, created_at, updated_at`

// ListMonitors returns monitors with featured ones first, then by rating.
func (db *DB) ListMonitors(ctx context.Context, filter MonitorFilter) ([]models.Monitor, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	query := `SELECT ` + monitorColumns + ` FROM monitors WHERE 1=1`
	args := []any{}
	switch filter.Category {
	case models.MonitorCategoryGaming:
		query += " AND refresh_rate >= ?"
		args = append(args, models.GamingMinRefreshRate)
	case models.MonitorCategoryProfessional:
		query += " AND screen_size >= ?"
		args = append(args, models.ProfessionalMinSize)
	case models.MonitorCategoryBudget:
		query += " AND price <= ?"
		args = append(args, models.BudgetMaxMonitorPrice)
	}
	if filter.Query != "" {
		query += ` AND (title ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\')`
		pattern := containsPattern(filter.Query)
		args = append(args, pattern, pattern)
	}
	if filter.FeaturedOnly {
		query += " AND featured = true"
	}
	query += " ORDER BY featured DESC, rating DESC, id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery("SELECT", "monitors", time.Since(start), err)
		return nil, fmt.Errorf("failed to list monitors: %w", err)
	}
	defer rows.Close()

	monitors := make([]models.Monitor, 0)
	for rows.Next() {
		m, err := scanMonitor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monitor: %w", err)
		}
		monitors = append(monitors, *m)
	}
	err = rows.Err()
	metrics.RecordDBQuery("SELECT", "monitors", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate monitors: %w", err)
	}

	return monitors, nil
}

// GetMonitor retrieves a monitor by ID.
func (db *DB) GetMonitor(ctx context.Context, id int64) (*models.Monitor, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `SELECT `+monitorColumns+` FROM monitors WHERE id = ?`, id)
	m, err := scanMonitor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMonitorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monitor %d: %w", id, err)
	}
	return m, nil
}

// CreateMonitor inserts m and sets its ID and timestamps.
func (db *DB) CreateMonitor(ctx context.Context, m *models.Monitor) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	links, err := encodeLinks(m.MarketplaceLinks)
	if err != nil {
		return err
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.UpdatedAt = m.CreatedAt

	err = db.conn.QueryRowContext(ctx, `INSERT INTO monitors (
		title, description, resolution, refresh_rate, panel_type, screen_size,
		price, rating, featured, image_url, marketplace_links, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		m.Title, m.Description, m.Resolution, m.RefreshRate, m.PanelType, m.ScreenSize,
		m.Price, m.Rating, m.Featured, m.ImageURL, links, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	metrics.RecordDBQuery("INSERT", "monitors", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}
	return nil
}

// UpdateMonitor overwrites every mutable field of the monitor with m.ID.
func (db *DB) UpdateMonitor(ctx context.Context, m *models.Monitor) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	links, err := encodeLinks(m.MarketplaceLinks)
	if err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()

	result, err := db.conn.ExecContext(ctx, `UPDATE monitors SET
		title = ?, description = ?, resolution = ?, refresh_rate = ?, panel_type = ?,
		screen_size = ?, price = ?, rating = ?, featured = ?, image_url = ?,
		marketplace_links = ?, updated_at = ?
	WHERE id = ?`,
		m.Title, m.Description, m.Resolution, m.RefreshRate, m.PanelType,
		m.ScreenSize, m.Price, m.Rating, m.Featured, m.ImageURL,
		links, m.UpdatedAt, m.ID,
	)
	metrics.RecordDBQuery("UPDATE", "monitors", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to update monitor %d: %w", m.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrMonitorNotFound
	}

	stored, err := db.GetMonitor(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *stored
	return nil
}

// DeleteMonitor removes the monitor with the given ID.
func (db *DB) DeleteMonitor(ctx context.Context, id int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	result, err := db.conn.ExecContext(ctx, `DELETE FROM monitors WHERE id = ?`, id)
	metrics.RecordDBQuery("DELETE", "monitors", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete monitor %d: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrMonitorNotFound
	}
	return nil
}

func scanMonitor(row rowScanner) (*models.Monitor, error) {
	var (
		m     models.Monitor
		links sql.NullString
	)
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Resolution,
		&m.RefreshRate, &m.PanelType, &m.ScreenSize,
		&m.Price, &m.Rating, &m.Featured,
		&m.ImageURL, &links, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if m.MarketplaceLinks, err = decodeLinks(links); err != nil {
		return nil, err
	}
	return &m, nil
}
