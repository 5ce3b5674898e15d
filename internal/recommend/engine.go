// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

// ErrInvalidBudget is returned when the total budget is not a positive finite number.
var ErrInvalidBudget = errors.New("budget must be a positive number")

// WarningCatalogUnavailable is attached to results built from an empty
// catalog because the source failed.
const WarningCatalogUnavailable = "catalog unavailable; build contains no selections"

// CatalogProvider supplies the component snapshot for one recommendation run.
// On failure implementations return an empty slice alongside the error.
type CatalogProvider interface {
	Components(ctx context.Context) ([]models.Component, error)
}

// Request is a validated recommendation input.
type Request struct {
	Budget    float64
	Platform  models.PlatformFilter
	GPUVendor models.GPUVendorFilter
}

// EngineResult is a Result plus request-level diagnostics.
type EngineResult struct {
	Result
	Warning string `json:"warning,omitempty"`
}

// Engine serves recommendations against a catalog provider.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	catalog CatalogProvider
	table   AllocationTable
	logger  zerolog.Logger
}

// NewEngine creates an engine using the default allocation table.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(catalog CatalogProvider, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		table:   DefaultAllocation(),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// WithAllocation replaces the allocation table after validating it.
func (e *Engine) WithAllocation(table AllocationTable) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid allocation table: %w", err)
	}
	e.table = table
	return e, nil
}

// Allocation returns a copy of the table the engine uses.
func (e *Engine) Allocation() AllocationTable {
	cp := make(AllocationTable, len(e.table))
	for k, v := range e.table {
		cp[k] = v
	}
	return cp
}

// Recommend validates the budget, fetches a catalog snapshot and selects a build.
// A catalog failure is not an error: the result is an empty build with Warning set.
func (e *Engine) Recommend(ctx context.Context, req Request) (*EngineResult, error) {
	if req.Budget <= 0 || math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) {
		return nil, ErrInvalidBudget
	}
	if req.Platform == "" {
		req.Platform = models.PlatformAll
	}
	if req.GPUVendor == "" {
		req.GPUVendor = models.GPUVendorAll
	}

	start := time.Now()
	out := &EngineResult{}

	components, err := e.catalog.Components(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Float64("budget", req.Budget).Msg("Catalog fetch failed, returning empty build")
		out.Warning = WarningCatalogUnavailable
		components = nil
	}

	out.Result = RecommendWithTable(components, req.Budget, e.table, req.Platform, req.GPUVendor)

	for _, a := range out.Allocation {
		metrics.RecordSelectionSource(string(a.Category), string(a.Source))
	}
	duration := time.Since(start)
	metrics.RecordRecommendation(string(req.Platform), string(req.GPUVendor), duration)

	e.logger.Debug().
		Float64("budget", req.Budget).
		Str("platform", string(req.Platform)).
		Str("gpu_vendor", string(req.GPUVendor)).
		Int("selected", out.Build.Selected()).
		Float64("total_price", out.Build.TotalPrice).
		Dur("duration", duration).
		Msg("Build recommended")

	return out, nil
}
