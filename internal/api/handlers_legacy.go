// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/logging"
)

// legacyErrorBody is the failure body of the unversioned endpoints.
var legacyErrorBody = []byte(`{"error":"Internal server error"}`)

// LegacyComponents handles GET /api/components: a bare JSON array of every
// component, prices as numbers.
func (h *Handler) LegacyComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.listComponents(r, database.ComponentFilter{})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Legacy component listing failed")
		writeLegacy(w, http.StatusInternalServerError, legacyErrorBody)
		return
	}
	data, err := json.Marshal(components)
	if err != nil {
		writeLegacy(w, http.StatusInternalServerError, legacyErrorBody)
		return
	}
	writeLegacy(w, http.StatusOK, data)
}

// LegacyMonitors handles GET /api/monitors: a bare JSON array of every
// monitor, featured first.
func (h *Handler) LegacyMonitors(w http.ResponseWriter, r *http.Request) {
	monitors, err := h.store.ListMonitors(r.Context(), database.MonitorFilter{})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Legacy monitor listing failed")
		writeLegacy(w, http.StatusInternalServerError, legacyErrorBody)
		return
	}
	data, err := json.Marshal(monitors)
	if err != nil {
		writeLegacy(w, http.StatusInternalServerError, legacyErrorBody)
		return
	}
	writeLegacy(w, http.StatusOK, data)
}

func writeLegacy(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write legacy response")
	}
}
