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

	"github.com/google/uuid"

	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

const userColumns = `id, username, email, role, password_hash, created_at`

// CreateUser inserts u, assigning an ID and creation time when unset.
// Returns ErrUserExists when the username or email is already taken.
func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	start := time.Now()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.Role, u.PasswordHash, u.CreatedAt)
	metrics.RecordDBQuery("INSERT", "users", time.Since(start), err)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return db.getUser(ctx, "id", id)
}

// GetUserByUsername retrieves a user by username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return db.getUser(ctx, "username", username)
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return db.getUser(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (db *DB) getUser(ctx context.Context, column, value string) (*models.User, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	// column is one of the fixed identifiers above, never user input.
	row := db.conn.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value)

	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// CountUsersByRole returns the number of users holding role.
func (db *DB) CountUsersByRole(ctx context.Context, role string) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, role).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
