// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package catalog

import (
	"context"

	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/models"
)

// Store is the subset of the catalog store a DatabaseSource reads from.
type Store interface {
	ListComponents(ctx context.Context, filter database.ComponentFilter) ([]models.Component, error)
	ListMonitors(ctx context.Context, filter database.MonitorFilter) ([]models.Monitor, error)
}

// DatabaseSource reads the catalog from the local store.
type DatabaseSource struct {
	store Store
}

// NewDatabaseSource creates a source backed by store.
func NewDatabaseSource(store Store) *DatabaseSource {
	return &DatabaseSource{store: store}
}

// Name implements Source.
func (s *DatabaseSource) Name() string { return "database" }

// FetchComponents implements Source.
func (s *DatabaseSource) FetchComponents(ctx context.Context) ([]models.Component, error) {
	return s.store.ListComponents(ctx, database.ComponentFilter{})
}

// FetchMonitors implements Source.
func (s *DatabaseSource) FetchMonitors(ctx context.Context) ([]models.Monitor, error) {
	return s.store.ListMonitors(ctx, database.MonitorFilter{})
}
