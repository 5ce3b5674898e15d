// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/rigbudget/internal/api"
	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/authz"
	"github.com/tomtom215/rigbudget/internal/catalog"
	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/recommend"
	"github.com/tomtom215/rigbudget/internal/supervisor"
	"github.com/tomtom215/rigbudget/internal/supervisor/services"
	ws "github.com/tomtom215/rigbudget/internal/websocket"
	"github.com/tomtom215/rigbudget/internal/wishlist"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	checkpointInterval = 15 * time.Minute
	wishlistGCInterval = 10 * time.Minute
	shutdownTimeout    = 10 * time.Second
)

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	api.Version = version
	metrics.SetBuildInfo(version)

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Str("catalog_source", cfg.Catalog.Source).
		Msg("Starting RigBudget")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	source, err := initCatalogSource(&cfg.Catalog, db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog source")
	}
	engine := recommend.NewEngine(
		catalog.NewAccessor(source, logging.WithComponent("catalog")),
		logging.WithComponent("recommend"),
	)

	wishlistStore, err := wishlist.Open(&cfg.Wishlist)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open wishlist store")
	}
	defer func() {
		if err := wishlistStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing wishlist store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var jwtManager *auth.JWTManager
	var authService *auth.Service
	switch cfg.Security.AuthMode {
	case auth.ModeJWT:
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		authService = auth.NewService(db, jwtManager)
		if err := authService.EnsureAdmin(ctx, &cfg.Security); err != nil {
			logging.Fatal().Err(err).Msg("Failed to create admin account")
		}
		logging.Info().Msg("JWT authentication enabled")
	case auth.ModeNone:
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  Every caller is treated as the local admin and can edit")
		logging.Warn().Msg("  the catalog. Use only for local development.")
		logging.Warn().Msg("============================================================")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authorization")
	}

	wsHub := ws.NewHub()
	wsHandler := ws.NewHandler(wsHub, cfg.Security.CORSOrigins)

	handler := api.NewHandler(db, engine, wishlistStore, authService, wsHub, cfg)
	router := api.NewRouter(handler, jwtManager, enforcer, wsHandler)

	readTimeout, writeTimeout, idleTimeout := api.DefaultServerTimeouts(cfg.Server.Timeout)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	for _, entry := range []struct {
		layer supervisor.Layer
		svc   suture.Service
	}{
		{supervisor.LayerStore, services.NewMaintenanceService("duckdb-checkpoint", checkpointInterval, db.Checkpoint)},
		{supervisor.LayerStore, services.NewMaintenanceService("wishlist-gc", wishlistGCInterval, wishlistStore.RunGC)},
		{supervisor.LayerFeed, services.NewCatalogFeedService(wsHub)},
		{supervisor.LayerAPI, services.NewAPIServerService(server, server.Addr, shutdownTimeout)},
	} {
		if _, err := tree.Add(entry.layer, entry.svc); err != nil {
			logging.Fatal().Err(err).Msg("Failed to add service to supervisor tree")
		}
	}
	logging.Info().Str("addr", server.Addr).Msg("Services added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	// The channel is never closed; it delivers exactly one result.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("RigBudget stopped")
}
