// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/rigbudget/internal/logging"
)

// HTTPServer is the part of *http.Server the API service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// APIServerService serves the catalog REST API. When its context ends it
// stops accepting connections and drains in-flight requests for at most
// drainTimeout.
type APIServerService struct {
	server       HTTPServer
	addr         string
	drainTimeout time.Duration
}

// NewAPIServerService wraps server. addr is only used for logging.
func NewAPIServerService(server HTTPServer, addr string, drainTimeout time.Duration) *APIServerService {
	if drainTimeout <= 0 {
		drainTimeout = 10 * time.Second
	}
	return &APIServerService{server: server, addr: addr, drainTimeout: drainTimeout}
}

// Serve implements suture.Service. A listen failure (port in use) is returned
// so the supervisor restarts the service with backoff.
func (s *APIServerService) Serve(ctx context.Context) error {
	listenDone := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		listenDone <- err
	}()
	logging.Info().Str("addr", s.addr).Msg("Catalog API listening")

	select {
	case err := <-listenDone:
		if err != nil {
			return fmt.Errorf("catalog API listener on %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()
	if err := s.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("catalog API drain: %w", err)
	}
	<-listenDone
	logging.Info().Str("addr", s.addr).Msg("Catalog API drained")
	return ctx.Err()
}

func (s *APIServerService) String() string {
	return "catalog-api"
}
