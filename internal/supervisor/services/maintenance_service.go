// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package services

import (
	"context"
	"time"

	"github.com/tomtom215/rigbudget/internal/logging"
)

// MaintenanceTask is one periodic store upkeep step, e.g. a DuckDB
// checkpoint or a badger value log GC.
type MaintenanceTask func(ctx context.Context) error

// MaintenanceService runs a task on a fixed interval. A failing run is
// logged and retried at the next tick; it does not restart the service.
type MaintenanceService struct {
	name     string
	interval time.Duration
	task     MaintenanceTask
}

// NewMaintenanceService creates a periodic task service. interval defaults
// to five minutes.
func NewMaintenanceService(name string, interval time.Duration, task MaintenanceTask) *MaintenanceService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &MaintenanceService{name: name, interval: interval, task: task}
}

// Serve implements suture.Service.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.task(ctx); err != nil && ctx.Err() == nil {
				logging.Warn().Err(err).Str("service", s.name).Msg("Maintenance task failed")
				continue
			}
			logging.Debug().Str("service", s.name).Dur("duration", time.Since(start)).Msg("Maintenance task completed")
		}
	}
}

// String implements fmt.Stringer for suture's logs.
func (s *MaintenanceService) String() string {
	return s.name
}
