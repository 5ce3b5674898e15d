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

// ListComponents handles GET /components?type=&q=&limit=&offset=
func (h *Handler) ListComponents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	req := ComponentListRequest{
		Type:   strings.TrimSpace(q.Get("type")),
		Query:  strings.TrimSpace(q.Get("q")),
		Limit:  getIntParam(r, "limit", 0),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	filter := database.ComponentFilter{Query: req.Query}
	if req.Type != "" {
		filter.Type, _ = models.ParseComponentType(req.Type)
	}

	components, err := h.listComponents(r, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to list components", err)
		return
	}

	from, to := paginate(len(components), req.Offset, h.clampLimit(req.Limit))
	page := components[from:to]

	publicCache(w)
	respondData(w, http.StatusOK, page, start, intPtr(len(page)))
}

// listComponents reads through the response cache.
func (h *Handler) listComponents(r *http.Request, filter database.ComponentFilter) ([]models.Component, error) {
	key := cache.GenerateKey("components", filter)
	if cached, ok := h.cache.Get(key); ok {
		return cached.([]models.Component), nil
	}

	components, err := h.store.ListComponents(r.Context(), filter)
	if err != nil {
		return nil, err
	}
	h.cache.Set(key, components)
	return components, nil
}

// clampLimit caps a requested page size at the configured maximum.
func (h *Handler) clampLimit(limit int) int {
	if h.config == nil || h.config.API.MaxPageSize <= 0 {
		return limit
	}
	if limit > h.config.API.MaxPageSize {
		return h.config.API.MaxPageSize
	}
	return limit
}

// GetComponent handles GET /components/{id}
func (h *Handler) GetComponent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	component, err := h.store.GetComponent(r.Context(), id)
	if err != nil {
		h.respondComponentError(w, err, "Failed to get component")
		return
	}

	publicCache(w)
	respondData(w, http.StatusOK, component, start, nil)
}

// CreateComponent handles POST /components (admin)
func (h *Handler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ComponentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	component := req.toModel()
	if err := h.store.CreateComponent(r.Context(), component); err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to create component", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("component_id", component.ID).Str("type", string(component.Type)).Msg("Component created")
	h.catalogChanged(websocket.KindComponent, websocket.ActionCreated, component.ID)

	respondData(w, http.StatusCreated, component, start, nil)
}

// UpdateComponent handles PUT /components/{id} (admin)
func (h *Handler) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ComponentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	component := req.toModel()
	component.ID = id
	if err := h.store.UpdateComponent(r.Context(), component); err != nil {
		h.respondComponentError(w, err, "Failed to update component")
		return
	}

	logging.Ctx(r.Context()).Info().Int64("component_id", id).Msg("Component updated")
	h.catalogChanged(websocket.KindComponent, websocket.ActionUpdated, id)

	respondData(w, http.StatusOK, component, start, nil)
}

// DeleteComponent handles DELETE /components/{id} (admin)
func (h *Handler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteComponent(r.Context(), id); err != nil {
		h.respondComponentError(w, err, "Failed to delete component")
		return
	}

	logging.Ctx(r.Context()).Info().Int64("component_id", id).Msg("Component deleted")
	h.catalogChanged(websocket.KindComponent, websocket.ActionDeleted, id)

	respondData(w, http.StatusOK, map[string]interface{}{"id": id, "deleted": true}, start, nil)
}

func (h *Handler) respondComponentError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, database.ErrComponentNotFound) {
		respondError(w, http.StatusNotFound, ErrCodeComponentNotFound, "Component not found", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, ErrCodeDatabase, message, err)
}
