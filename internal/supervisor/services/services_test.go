// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// Compile-time interface checks.
var (
	_ suture.Service = (*APIServerService)(nil)
	_ suture.Service = (*CatalogFeedService)(nil)
	_ suture.Service = (*MaintenanceService)(nil)
	_ HTTPServer     = (*http.Server)(nil)
)

// mockHTTPServer is a test double for HTTPServer.
type mockHTTPServer struct {
	listenErr     error
	shutdownErr   error
	shutdownCount atomic.Int32
	started       chan struct{}
	stopCh        chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (m *mockHTTPServer) ListenAndServe() error {
	select {
	case m.started <- struct{}{}:
	default:
	}
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(ctx context.Context) error {
	m.shutdownCount.Add(1)
	close(m.stopCh)
	return m.shutdownErr
}

func TestAPIServerService_GracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	svc := NewAPIServerService(server, "127.0.0.1:8080", time.Second)
	if svc.String() != "catalog-api" {
		t.Errorf("String() = %q", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	<-server.started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
	if server.shutdownCount.Load() != 1 {
		t.Errorf("Shutdown called %d times", server.shutdownCount.Load())
	}
}

func TestAPIServerService_ListenError(t *testing.T) {
	t.Parallel()

	server := newMockHTTPServer()
	server.listenErr = errors.New("address already in use")
	svc := NewAPIServerService(server, "127.0.0.1:8080", 0)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("Serve = %v, want wrapped listen error", err)
	}
}

type fakeFeed struct{ ran atomic.Bool }

func (f *fakeFeed) RunWithContext(ctx context.Context) error {
	f.ran.Store(true)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeFeed) ClientCount() int { return 0 }

func TestCatalogFeedService(t *testing.T) {
	t.Parallel()

	feed := &fakeFeed{}
	svc := NewCatalogFeedService(feed)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve = %v", err)
	}
	if !feed.ran.Load() || svc.String() != "catalog-feed" {
		t.Error("feed not run or wrong name")
	}
}

func TestMaintenanceService(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	svc := NewMaintenanceService("duckdb-checkpoint", 5*time.Millisecond, func(ctx context.Context) error {
		if runs.Add(1) == 1 {
			return errors.New("database is busy")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("task ran %d times", runs.Load())
		}
		time.Sleep(2 * time.Millisecond)
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve = %v", err)
	}
	if svc.String() != "duckdb-checkpoint" {
		t.Errorf("String() = %q", svc.String())
	}
}
