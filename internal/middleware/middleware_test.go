// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
		if logging.CorrelationIDFromContext(r.Context()) == "" {
			t.Error("correlation ID missing from context")
		}
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Header().Get(RequestIDHeader) == "" || rec.Header().Get(RequestIDHeader) != seen {
			t.Errorf("header %q, context %q", rec.Header().Get(RequestIDHeader), seen)
		}
	})

	t.Run("upstream", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "edge-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if seen != "edge-42" {
			t.Errorf("request ID = %q, want edge-42", seen)
		}
	})

	t.Run("oversized upstream replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("a", 200))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if len(seen) > maxRequestIDLength {
			t.Errorf("oversized request ID kept: %d bytes", len(seen))
		}
	})
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/components/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/components/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/components/"+id, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("counter delta = %v, want 3", got)
	}
}

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("RTX 4070 ", 500)
	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	t.Run("gzip accepted", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("Content-Encoding = %q", rec.Header().Get("Content-Encoding"))
		}
		zr, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("gzip reader: %v", err)
		}
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != body {
			t.Error("decompressed body mismatch")
		}
	})

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Header().Get("Content-Encoding") != "" || rec.Body.String() != body {
			t.Error("uncompressed response altered")
		}
	})

	t.Run("websocket upgrade", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		req.Header.Set("Upgrade", "websocket")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Header().Get("Content-Encoding") != "" {
			t.Error("websocket upgrade was compressed")
		}
	})
}

func TestAccessLog_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot || rec.Body.String() != "short and stout" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}
