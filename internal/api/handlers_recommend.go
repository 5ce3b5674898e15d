// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/recommend"
)

// Recommend handles POST /recommend.
//
// A catalog outage is not an error here: the build comes back empty with
// total 0 and metadata.warning explains why.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error(), nil)
		return
	}
	req.normalize()
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	platform, _ := models.ParsePlatformFilter(req.Platform)
	gpuVendor, _ := models.ParseGPUVendorFilter(req.GPUVendor)

	result, err := h.engine.Recommend(r.Context(), recommend.Request{
		Budget:    req.Budget,
		Platform:  platform,
		GPUVendor: gpuVendor,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidBudget) {
			respondError(w, http.StatusBadRequest, ErrCodeInvalidBudget, "Budget must be a positive number", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate recommendation", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result.Result,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Count:       intPtr(result.Build.Selected()),
			Warning:     result.Warning,
		},
	})
}

// CompatibilityResult is the payload of POST /compatibility.
type CompatibilityResult struct {
	Compatible        bool     `json:"compatible"`
	Issues            []string `json:"issues"`
	CPUSocket         string   `json:"cpu_socket,omitempty"`
	MotherboardSocket string   `json:"motherboard_socket,omitempty"`
}

// Compatibility handles POST /compatibility. Parts are looked up by ID or
// taken inline; a missing part yields no issues.
func (h *Handler) Compatibility(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompatibilityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	selection := recommend.ManualSelection{}
	for _, part := range []struct {
		t      models.ComponentType
		field  string
		id     int64
		inline *PartRequest
	}{
		{models.TypeCPU, "cpu_id", req.CPUID, req.CPU},
		{models.TypeMotherboard, "motherboard_id", req.MotherboardID, req.Motherboard},
	} {
		c, ok := h.resolvePart(w, r, part.t, part.field, part.id, part.inline)
		if !ok {
			return
		}
		if c != nil {
			selection[part.t] = c
		}
	}

	result := CompatibilityResult{Issues: recommend.CheckSelection(selection)}
	result.Compatible = len(result.Issues) == 0
	if cpu := selection[models.TypeCPU]; cpu != nil {
		result.CPUSocket = recommend.ExtractSocket(cpu.Specs)
	}
	if mobo := selection[models.TypeMotherboard]; mobo != nil {
		result.MotherboardSocket = recommend.ExtractSocket(mobo.Specs)
	}

	respondData(w, http.StatusOK, result, start, intPtr(len(result.Issues)))
}

// resolvePart returns the component for one slot of a compatibility request,
// writing the error response itself when the lookup fails.
func (h *Handler) resolvePart(w http.ResponseWriter, r *http.Request, t models.ComponentType, field string, id int64, inline *PartRequest) (*models.Component, bool) {
	if id == 0 {
		if inline == nil {
			return nil, true
		}
		return &models.Component{Name: inline.Name, Type: t, Specs: inline.Specs}, true
	}

	c, err := h.store.GetComponent(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrComponentNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeComponentNotFound, "Component not found: "+field, nil)
			return nil, false
		}
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to load component", err)
		return nil, false
	}
	if c.Type != t {
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeValidation,
			Message: field + " must reference a " + string(t),
			Details: map[string]interface{}{"field": field, "type": string(c.Type)},
		})
		return nil, false
	}
	return c, true
}
