// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/models"
)

const authDisabledMessage = "Accounts are disabled in this deployment"

// Register handles POST /auth/register. New accounts get the user role and
// are logged in immediately.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.auth == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, authDisabledMessage, nil)
		return
	}

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrUserExists) {
			respondError(w, http.StatusConflict, ErrCodeUserExists, "Username or email already registered", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to register user", err)
		return
	}

	auth.SetTokenCookie(w, r, resp.Token, resp.ExpiresAt)
	respondData(w, http.StatusCreated, resp, start, nil)
}

// Login handles POST /auth/login. The token is returned in the body and as
// an HttpOnly cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.auth == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, authDisabledMessage, nil)
		return
	}

	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req.identifier(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountLocked):
			respondError(w, http.StatusTooManyRequests, ErrCodeAccountLocked, "Too many failed attempts, try again later", nil)
		case errors.Is(err, auth.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid username or password", nil)
		default:
			respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Login failed", err)
		}
		return
	}

	auth.SetTokenCookie(w, r, resp.Token, resp.ExpiresAt)
	respondData(w, http.StatusOK, resp, start, nil)
}

// Logout handles POST /auth/logout by clearing the token cookie. Bearer
// tokens stay valid until they expire.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w)
	respondData(w, http.StatusOK, map[string]bool{"logged_out": true}, time.Now(), nil)
}

// Me handles GET /auth/me and returns the caller's account. With auth mode
// "none" the synthetic local account is returned.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required", nil)
		return
	}

	if h.auth == nil {
		respondData(w, http.StatusOK, &models.User{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}, start, nil)
		return
	}

	user, err := h.auth.User(r.Context(), claims)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Account no longer exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeDatabase, "Failed to load account", err)
		return
	}

	respondData(w, http.StatusOK, user, start, nil)
}
