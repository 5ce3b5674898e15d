// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of budget builds generated",
		},
		[]string{"platform", "gpu_vendor"},
	)

	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_fallbacks_total",
			Help: "Categories filled by the cheapest-item fallback instead of a best fit",
		},
		[]string{"category"},
	)

	RecommendationEmptyCategories = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_empty_categories_total",
			Help: "Categories with no eligible catalog item",
		},
		[]string{"category"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent fetching the catalog and selecting a build",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// Catalog Source Metrics
	CatalogFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_errors_total",
			Help: "Total number of failed catalog fetches",
		},
		[]string{"source", "kind"},
	)

	CatalogItemsFetched = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_items_fetched",
			Help: "Number of items returned by the last catalog fetch",
		},
		[]string{"source", "kind"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Wishlist and Auth Metrics
	WishlistOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wishlist_operations_total",
			Help: "Total number of wishlist operations",
		},
		[]string{"operation", "result"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of login and registration attempts",
		},
		[]string{"operation", "result"},
	)

	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Total number of authorization decisions by object, action and outcome",
		},
		[]string{"object", "action", "result"},
	)

	// Response cache
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_requests_total",
			Help: "Total number of response cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "response_cache_entries",
			Help: "Current number of cached responses",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rigbudget_build_info",
			Help: "RigBudget version and Go runtime; always 1",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one generated build.
func RecordRecommendation(platform, gpuVendor string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(platform, gpuVendor).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordSelectionSource records how a category slot was filled.
// source is "best_fit", "fallback" or "none".
func RecordSelectionSource(category, source string) {
	switch source {
	case "fallback":
		RecommendationFallbacks.WithLabelValues(category).Inc()
	case "none":
		RecommendationEmptyCategories.WithLabelValues(category).Inc()
	}
}

// RecordCatalogFetch records the outcome of a catalog fetch.
func RecordCatalogFetch(source, kind string, items int, err error) {
	if err != nil {
		CatalogFetchErrors.WithLabelValues(source, kind).Inc()
		return
	}
	CatalogItemsFetched.WithLabelValues(source, kind).Set(float64(items))
}

// RecordWishlistOperation records a wishlist add, remove or list.
func RecordWishlistOperation(operation string, err error) {
	WishlistOperations.WithLabelValues(operation, resultLabel(err)).Inc()
}

// RecordAuthAttempt records a login or registration attempt.
func RecordAuthAttempt(operation string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AuthAttempts.WithLabelValues(operation, result).Inc()
}

// RecordAuthzDecision records an allow or deny decision.
func RecordAuthzDecision(object, action string, allowed bool) {
	result := "allow"
	if !allowed {
		result = "deny"
	}
	AuthzDecisions.WithLabelValues(object, action, result).Inc()
}

// RecordCacheLookup records a response cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheRequests.WithLabelValues("hit").Inc()
		return
	}
	CacheRequests.WithLabelValues("miss").Inc()
}

// SetBuildInfo publishes the running version on rigbudget_build_info.
func SetBuildInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
