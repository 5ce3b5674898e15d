// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package models

import "time"

// APIResponse is the envelope returned by every /api/v1 endpoint.
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and non-fatal warnings, such as an unavailable catalog.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       *int      `json:"count,omitempty"`
	Warning     string    `json:"warning,omitempty"`
}

// APIError is a machine-readable error with optional field details.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LoginResponse is returned by /auth/login and /auth/register.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}
