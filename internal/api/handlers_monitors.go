// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/rigbudget/internal/cache"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/websocket"
)

// ListMonitors handles GET /monitors?category=&q=&limit=&offset=
// Featured monitors come first.
func (h *Handler) ListMonitors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	req := MonitorListRequest{
		Category: strings.ToLower(strings.TrimSpace(q.Get("category"))),
		Query:    strings.TrimSpace(q.Get("q")),
		Limit:    getIntParam(r, "limit", 0),
		Offset:   getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	filter := database.MonitorFilter{
		Category: models.MonitorCategory(req.Category),
		Query:    req.Query,
	}
	h.serveMonitors(w, r, filter, req.Offset, req.Limit, start)
}

// FeaturedMonitors handles GET /monitors/featured
func (h *Handler) FeaturedMonitors(w http.ResponseWriter, r *http.Request) {
	h.serveMonitors(w, r, database.MonitorFilter{FeaturedOnly: true}, 0, 0, time.Now())
}

func (h *Handler) serveMonitors(w http.ResponseWriter, r *http.Request, filter database.MonitorFilter, offset, limit int, start time.Time) {
	key := cache.GenerateKey("monitors", filter)

	var monitors []models.Monitor
	if cached, ok := h.cache.Get(key); ok {
		monitors = cached.([]models.Monitor)
	} else {
		var err error
		monitors, err = h.store.ListMonitors(r.Context(), filter)
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to list monitors", err)
			return
		}
		h.cache.Set(key, monitors)
	}

	from, to := paginate(len(monitors), offset, h.clampLimit(limit))
	page := monitors[from:to]

	publicCache(w)
	respondData(w, http.StatusOK, page, start, intPtr(len(page)))
}

// GetMonitor handles GET /monitors/{id}
func (h *Handler) GetMonitor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	monitor, err := h.store.GetMonitor(r.Context(), id)
	if err != nil {
		h.respondMonitorError(w, err, "Failed to get monitor")
		return
	}

	publicCache(w)
	respondData(w, http.StatusOK, monitor, start, nil)
}

// CreateMonitor handles POST /monitors (admin)
func (h *Handler) CreateMonitor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MonitorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	monitor := req.toModel()
	if err := h.store.CreateMonitor(r.Context(), monitor); err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to create monitor", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("monitor_id", monitor.ID).Msg("Monitor created")
	h.catalogChanged(websocket.KindMonitor, websocket.ActionCreated, monitor.ID)

	respondData(w, http.StatusCreated, monitor, start, nil)
}

// UpdateMonitor handles PUT /monitors/{id} (admin)
func (h *Handler) UpdateMonitor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req MonitorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	monitor := req.toModel()
	monitor.ID = id
	if err := h.store.UpdateMonitor(r.Context(), monitor); err != nil {
		h.respondMonitorError(w, err, "Failed to update monitor")
		return
	}

	logging.Ctx(r.Context()).Info().Int64("monitor_id", id).Msg("Monitor updated")
	h.catalogChanged(websocket.KindMonitor, websocket.ActionUpdated, id)

	respondData(w, http.StatusOK, monitor, start, nil)
}

// DeleteMonitor handles DELETE /monitors/{id} (admin). Wishlist entries keep
// their snapshot of the deleted monitor.
func (h *Handler) DeleteMonitor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteMonitor(r.Context(), id); err != nil {
		h.respondMonitorError(w, err, "Failed to delete monitor")
		return
	}

	logging.Ctx(r.Context()).Info().Int64("monitor_id", id).Msg("Monitor deleted")
	h.catalogChanged(websocket.KindMonitor, websocket.ActionDeleted, id)

	respondData(w, http.StatusOK, map[string]interface{}{"id": id, "deleted": true}, start, nil)
}

func (h *Handler) respondMonitorError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, database.ErrMonitorNotFound) {
		respondError(w, http.StatusNotFound, ErrCodeMonitorNotFound, "Monitor not found", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, ErrCodeDatabase, message, err)
}
