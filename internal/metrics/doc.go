// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered on the default registry through promauto and
exposed by the server at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Query errors (counter)

Recommendation Metrics:
  - recommendations_total: Builds generated (counter)
    Labels: platform, gpu_vendor
  - recommendation_fallbacks_total: Categories filled by the cheapest fallback (counter)
    Labels: category
  - recommendation_empty_categories_total: Categories left empty (counter)
  - recommendation_duration_seconds: Catalog fetch plus selection time (histogram)

Catalog Metrics:
  - catalog_fetch_errors_total: Catalog source failures (counter)
    Labels: source, kind
  - circuit_breaker_state / circuit_breaker_requests_total: remote catalog breaker

Other:
  - websocket_connections, websocket_messages_sent_total
  - wishlist_operations_total
  - auth_attempts_total
*/
package metrics
