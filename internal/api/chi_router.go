// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/authz"
	"github.com/tomtom215/rigbudget/internal/middleware"
)

// Router wires handlers, authentication and authorization into a chi mux.
type Router struct {
	handler         *Handler
	authMiddleware  *auth.Middleware
	authzMiddleware *authz.Middleware
	chiMiddleware   *ChiMiddleware
	wsHandler       http.Handler
}

// NewRouter creates a router. jwtManager may be nil when auth mode is
// "none"; wsHandler may be nil to disable the /ws feed.
func NewRouter(handler *Handler, jwtManager *auth.JWTManager, enforcer *authz.Enforcer, wsHandler http.Handler) *Router {
	authMode := auth.ModeJWT
	chiConfig := DefaultChiMiddlewareConfig()
	if handler.config != nil {
		authMode = handler.config.Security.AuthMode
		chiConfig = ChiMiddlewareConfigFromSecurity(&handler.config.Security)
	}

	return &Router{
		handler:         handler,
		authMiddleware:  auth.NewMiddleware(jwtManager, authMode, respondUnauthorized),
		authzMiddleware: authz.NewMiddleware(enforcer, respondDenied),
		chiMiddleware:   NewChiMiddleware(chiConfig),
		wsHandler:       wsHandler,
	}
}

func respondUnauthorized(w http.ResponseWriter, _ *http.Request, message string) {
	respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message, nil)
}

func respondDenied(w http.ResponseWriter, _ *http.Request, status int, message string) {
	code := ErrCodeForbidden
	switch status {
	case http.StatusUnauthorized:
		code = ErrCodeUnauthorized
	case http.StatusInternalServerError:
		code = ErrCodeInternal
	}
	respondError(w, status, code, message, nil)
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	limits := router.chiMiddleware

	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	if h.config != nil && len(h.config.Security.TrustedProxies) > 0 {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(limits.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(auth.SecurityHeaders)
	r.Use(middleware.Compression)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	// One limiter per group so every route in it shares the same budget.
	apiLimit := limits.RateLimit()
	catalogWriteLimit := limits.RateLimitCustom("catalog_write", RateLimitWrite)
	wishlistWriteLimit := limits.RateLimitCustom("wishlist_write", RateLimitWrite)

	readCatalog := router.authzMiddleware.Authorize(authz.ObjectCatalog, authz.ActionRead)
	writeCatalog := router.authzMiddleware.AuthorizeMethod(authz.ObjectCatalog)

	// Unversioned endpoints of the original catalog server
	r.With(apiLimit).Get("/api/components", h.LegacyComponents)
	r.With(apiLimit).Get("/api/monitors", h.LegacyMonitors)

	r.Route("/api/v1", func(r chi.Router) {
		// ========================
		// Health Endpoints
		// ========================
		r.Route("/health", func(r chi.Router) {
			r.Use(limits.RateLimitCustom("health", RateLimitHealth))
			r.Get("/", h.Health)
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})

		// ========================
		// Realtime
		// ========================
		if router.wsHandler != nil {
			r.With(limits.RateLimitCustom("websocket", RateLimitWebSocket)).Get("/ws", router.wsHandler.ServeHTTP)
		}

		// Everything below is a bounded request/response exchange.
		r.Group(func(r chi.Router) {
			if h.config != nil && h.config.API.RequestTimeout > 0 {
				r.Use(chimiddleware.Timeout(h.config.API.RequestTimeout))
			}
			r.Use(router.authMiddleware.Optional)

			// ========================
			// Catalog
			// ========================
			r.Route("/components", func(r chi.Router) {
				r.With(apiLimit, readCatalog).Get("/", h.ListComponents)
				r.With(apiLimit, readCatalog).Get("/{id}", h.GetComponent)

				r.Group(func(r chi.Router) {
					r.Use(catalogWriteLimit)
					r.Use(router.authMiddleware.Authenticate)
					r.Use(writeCatalog)
					r.Post("/", h.CreateComponent)
					r.Put("/{id}", h.UpdateComponent)
					r.Delete("/{id}", h.DeleteComponent)
				})
			})

			r.Route("/monitors", func(r chi.Router) {
				r.With(apiLimit, readCatalog).Get("/", h.ListMonitors)
				r.With(apiLimit, readCatalog).Get("/featured", h.FeaturedMonitors)
				r.With(apiLimit, readCatalog).Get("/{id}", h.GetMonitor)

				r.Group(func(r chi.Router) {
					r.Use(catalogWriteLimit)
					r.Use(router.authMiddleware.Authenticate)
					r.Use(writeCatalog)
					r.Post("/", h.CreateMonitor)
					r.Put("/{id}", h.UpdateMonitor)
					r.Delete("/{id}", h.DeleteMonitor)
				})
			})

			// ========================
			// Builds
			// ========================
			r.Group(func(r chi.Router) {
				r.Use(limits.RateLimitCustom("recommend", RateLimitRecommend))
				r.Use(readCatalog)
				r.Post("/recommend", h.Recommend)
				r.Post("/compatibility", h.Compatibility)
			})

			// ========================
			// Accounts
			// ========================
			r.Route("/auth", func(r chi.Router) {
				r.With(limits.RateLimitCustom("register", RateLimitAuth)).Post("/register", h.Register)
				r.With(limits.RateLimitCustom("login", RateLimitLogin)).Post("/login", h.Login)
				r.Post("/logout", h.Logout)
				r.With(
					router.authMiddleware.Authenticate,
					router.authzMiddleware.Authorize(authz.ObjectAccount, authz.ActionRead),
				).Get("/me", h.Me)
			})

			// ========================
			// Wishlist
			// ========================
			r.Route("/wishlist", func(r chi.Router) {
				r.Use(router.authMiddleware.Authenticate)
				r.Use(router.authzMiddleware.AuthorizeMethod(authz.ObjectWishlist))

				r.With(apiLimit).Get("/", h.GetWishlist)
				r.With(wishlistWriteLimit).Post("/", h.AddToWishlist)
				r.With(wishlistWriteLimit).Delete("/{monitor_id}", h.RemoveFromWishlist)
			})
		})
	})

	return r
}

// DefaultServerTimeouts returns read, write and idle timeouts for an
// http.Server around the router, derived from the request timeout.
func DefaultServerTimeouts(requestTimeout time.Duration) (read, write, idle time.Duration) {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	return requestTimeout, requestTimeout + 5*time.Second, 2 * time.Minute
}
