// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/rigbudget/internal/models"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	CatalogSource     string  `json:"catalog_source"`
	SchemaVersion     int     `json:"schema_version"`
	Components        int64   `json:"components"`
	Monitors          int64   `json:"monitors"`
	WebSocketClients  int     `json:"websocket_clients"`
	Uptime            float64 `json:"uptime"`
}

// Health reports overall service status. It always answers 200; a failed
// database ping shows up as status "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := HealthStatus{
		Status:  "healthy",
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.config != nil {
		health.CatalogSource = h.config.Catalog.Source
	}
	if h.notifier != nil {
		health.WebSocketClients = h.notifier.ClientCount()
	}

	health.DatabaseConnected = h.store != nil && h.store.Ping(r.Context()) == nil
	if health.DatabaseConnected {
		components, monitors, err := h.store.GetRecordCounts(r.Context())
		if err == nil {
			health.Components = components
			health.Monitors = monitors
		}
		if v, err := h.store.SchemaVersion(r.Context()); err == nil {
			health.SchemaVersion = v
		}
	} else {
		health.Status = "degraded"
	}

	respondData(w, http.StatusOK, health, start, nil)
}

// HealthLive answers 200 while the process is running, regardless of
// dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now(), nil)
}

// HealthReady answers 200 only when the catalog database responds.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ready := h.store != nil && h.store.Ping(r.Context()) == nil
	resp := &models.APIResponse{
		Status: "success",
		Data:   map[string]interface{}{"ready": ready},
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	}
	if !ready {
		resp.Status = "error"
		resp.Error = &models.APIError{Code: ErrCodeServiceUnavailable, Message: "database not reachable"}
		respondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
