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
	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/wishlist"
)

// wishlistUser returns the caller's user ID, writing the error response when
// the wishlist is unavailable or the caller is anonymous.
func (h *Handler) wishlistUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.wishlist == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Wishlist is not available", nil)
		return "", false
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required", nil)
		return "", false
	}
	return claims.UserID, true
}

// GetWishlist handles GET /wishlist
func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.wishlistUser(w, r)
	if !ok {
		return
	}

	items, err := h.wishlist.List(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to load wishlist", err)
		return
	}

	respondData(w, http.StatusOK, items, start, intPtr(len(items)))
}

// AddToWishlist handles POST /wishlist {"monitor_id": N}. The monitor is
// stored as a snapshot; adding it twice returns the existing entry with 200.
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.wishlistUser(w, r)
	if !ok {
		return
	}

	var req WishlistAddRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	monitor, err := h.store.GetMonitor(r.Context(), req.MonitorID)
	if err != nil {
		h.respondMonitorError(w, err, "Failed to load monitor")
		return
	}

	item, added, err := h.wishlist.Add(r.Context(), userID, monitor)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to update wishlist", err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
		logging.Ctx(r.Context()).Debug().Str("user_id", userID).Int64("monitor_id", monitor.ID).Msg("Monitor added to wishlist")
	}
	respondData(w, status, item, start, nil)
}

// RemoveFromWishlist handles DELETE /wishlist/{monitor_id}
func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.wishlistUser(w, r)
	if !ok {
		return
	}

	monitorID, ok := pathID(w, r, "monitor_id")
	if !ok {
		return
	}

	if err := h.wishlist.Remove(r.Context(), userID, monitorID); err != nil {
		if errors.Is(err, wishlist.ErrNotInWishlist) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "Monitor is not in the wishlist", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to update wishlist", err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"monitor_id": monitorID, "removed": true}, start, nil)
}
