// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"context"
	"time"

	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/cache"
	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/recommend"
)

// CatalogStore is the subset of the catalog database the handlers use.
// *database.DB implements it.
type CatalogStore interface {
	Ping(ctx context.Context) error
	GetRecordCounts(ctx context.Context) (components, monitors int64, err error)
	SchemaVersion(ctx context.Context) (int, error)

	ListComponents(ctx context.Context, filter database.ComponentFilter) ([]models.Component, error)
	GetComponent(ctx context.Context, id int64) (*models.Component, error)
	CreateComponent(ctx context.Context, c *models.Component) error
	UpdateComponent(ctx context.Context, c *models.Component) error
	DeleteComponent(ctx context.Context, id int64) error

	ListMonitors(ctx context.Context, filter database.MonitorFilter) ([]models.Monitor, error)
	GetMonitor(ctx context.Context, id int64) (*models.Monitor, error)
	CreateMonitor(ctx context.Context, m *models.Monitor) error
	UpdateMonitor(ctx context.Context, m *models.Monitor) error
	DeleteMonitor(ctx context.Context, id int64) error
}

// WishlistStore persists per-user monitor wishlists.
// *wishlist.Store implements it.
type WishlistStore interface {
	Add(ctx context.Context, userID string, m *models.Monitor) (*models.WishlistItem, bool, error)
	Remove(ctx context.Context, userID string, monitorID int64) error
	List(ctx context.Context, userID string) ([]models.WishlistItem, error)
}

// CatalogNotifier announces catalog writes to connected clients.
// *websocket.Hub implements it.
type CatalogNotifier interface {
	BroadcastCatalogChange(kind, action string, id int64)
	ClientCount() int
}

// Handler contains dependencies for API handlers
type Handler struct {
	store     CatalogStore
	engine    *recommend.Engine
	wishlist  WishlistStore
	auth      *auth.Service // nil when auth mode is "none"
	notifier  CatalogNotifier
	config    *config.Config
	cache     *cache.LRU
	startTime time.Time
}

// NewHandler creates a new API handler. wishlist, authService and notifier
// may be nil; the endpoints that need them then answer 503.
func NewHandler(store CatalogStore, engine *recommend.Engine, wishlist WishlistStore, authService *auth.Service, notifier CatalogNotifier, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		wishlist:  wishlist,
		auth:      authService,
		notifier:  notifier,
		config:    cfg,
		cache:     cache.New(cache.DefaultCapacity, cache.DefaultTTL),
		startTime: time.Now(),
	}
}

// ClearCache drops every cached catalog listing.
func (h *Handler) ClearCache() {
	h.cache.Clear()
}

// catalogChanged invalidates cached listings and notifies websocket clients.
func (h *Handler) catalogChanged(kind, action string, id int64) {
	h.cache.Clear()
	if h.notifier != nil {
		h.notifier.BroadcastCatalogChange(kind, action, id)
	}
}
