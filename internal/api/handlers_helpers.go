// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidBudget      = "INVALID_BUDGET"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeComponentNotFound  = "COMPONENT_NOT_FOUND"
	ErrCodeMonitorNotFound    = "MONITOR_NOT_FOUND"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeAccountLocked      = "ACCOUNT_LOCKED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// maxRequestBodyBytes bounds JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// respondJSON sends a JSON response with proper headers. Responses are
// marked no-store unless the handler already set a Cache-Control header.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "no-store")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData wraps data in a success envelope.
func respondData(w http.ResponseWriter, status int, data interface{}, start time.Time, count *int) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Count:       count,
		},
	})
}

// publicCache marks a catalog read as cacheable by browsers and proxies.
func publicCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "public, max-age=60")
}

// generateETag creates a weak validator from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Str("error", logging.SanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends a prepared APIError, typically from validateRequest.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return &models.APIError{
		Code:    ErrCodeValidation,
		Message: validationErr.Error(),
		Details: validationErr.Details(),
	}
}

// decodeJSON reads a bounded JSON body into dst and rejects trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return errors.New("request body must be valid JSON")
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// decodeAndValidate decodes the body into dst and validates it, writing the
// error response itself. It reports whether the handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error(), nil)
		return false
	}
	if apiErr := validateRequest(dst); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidID, name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// paginate applies offset and limit to n items; limit 0 means no limit.
func paginate(n, offset, limit int) (start, end int) {
	if offset > n {
		offset = n
	}
	end = n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}

// intPtr returns a pointer to n for Metadata.Count.
func intPtr(n int) *int {
	return &n
}
