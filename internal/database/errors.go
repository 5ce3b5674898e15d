// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package database

import (
	"errors"
	"io"
	"strings"
)

// Catalog store errors
var (
	ErrComponentNotFound = errors.New("component not found")
	ErrMonitorNotFound   = errors.New("monitor not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user with this username or email already exists")
)

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// isUniqueConstraintError reports whether err is a DuckDB unique or primary key violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "primary key constraint")
}
