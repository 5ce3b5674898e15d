// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

// ErrCatalogUnavailable wraps every source failure returned by an Accessor.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Source fetches the full catalog from one backend.
type Source interface {
	// Name identifies the source in logs and metrics ("database", "remote", "file").
	Name() string
	FetchComponents(ctx context.Context) ([]models.Component, error)
	FetchMonitors(ctx context.Context) ([]models.Monitor, error)
}

// Accessor loads catalog snapshots from a Source.
type Accessor struct {
	source Source
	logger zerolog.Logger
}

// NewAccessor creates an accessor over source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAccessor(source Source, logger zerolog.Logger) *Accessor {
	return &Accessor{
		source: source,
		logger: logger.With().Str("component", "catalog").Str("source", source.Name()).Logger(),
	}
}

// SourceName returns the name of the underlying source.
func (a *Accessor) SourceName() string {
	return a.source.Name()
}

// Components returns every catalog component. On failure it returns an empty
// slice and an error wrapping ErrCatalogUnavailable.
func (a *Accessor) Components(ctx context.Context) ([]models.Component, error) {
	components, err := a.source.FetchComponents(ctx)
	metrics.RecordCatalogFetch(a.source.Name(), "components", len(components), err)
	if err != nil {
		a.logger.Warn().Err(err).Msg("Failed to fetch components")
		return []models.Component{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if components == nil {
		components = []models.Component{}
	}
	return components, nil
}

// Monitors returns every catalog monitor. On failure it returns an empty
// slice and an error wrapping ErrCatalogUnavailable.
func (a *Accessor) Monitors(ctx context.Context) ([]models.Monitor, error) {
	monitors, err := a.source.FetchMonitors(ctx)
	metrics.RecordCatalogFetch(a.source.Name(), "monitors", len(monitors), err)
	if err != nil {
		a.logger.Warn().Err(err).Msg("Failed to fetch monitors")
		return []models.Monitor{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if monitors == nil {
		monitors = []models.Monitor{}
	}
	return monitors, nil
}
