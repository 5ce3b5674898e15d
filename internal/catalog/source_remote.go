// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
	"github.com/tomtom215/rigbudget/internal/models"
)

// maxResponseBytes caps a catalog response body.
const maxResponseBytes = 16 << 20

// RemoteConfig configures a RemoteSource.
type RemoteConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second; <= 0 disables limiting
	Burst     int
	Client    *http.Client // optional; overrides Timeout
}

// RemoteSource reads the catalog from another server's legacy endpoints:
// GET {base}/api/components and GET {base}/api/monitors.
//
// Calls go through a circuit breaker that opens after a 60% failure rate over
// at least 10 requests in a one-minute window and retries after two minutes.
type RemoteSource struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	name       string
}

// NewRemoteSource validates cfg and creates a remote source.
func NewRemoteSource(cfg RemoteConfig) (*RemoteSource, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid remote catalog URL %q", cfg.BaseURL)
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	s := &RemoteSource{
		baseURL:    base,
		httpClient: client,
		limiter:    rate.NewLimiter(limit, burst),
		name:       "remote-catalog",
	}
	s.cb = newBreaker(s.name)
	return s, nil
}

func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// Name implements Source.
func (s *RemoteSource) Name() string { return "remote" }

// FetchComponents implements Source.
func (s *RemoteSource) FetchComponents(ctx context.Context) ([]models.Component, error) {
	body, err := s.get(ctx, "/api/components")
	if err != nil {
		return nil, err
	}
	components, skipped, err := decodeComponents(body)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logging.Warn().Int("skipped", skipped).Msg("Remote catalog returned invalid components")
	}
	return components, nil
}

// FetchMonitors implements Source.
func (s *RemoteSource) FetchMonitors(ctx context.Context) ([]models.Monitor, error) {
	body, err := s.get(ctx, "/api/monitors")
	if err != nil {
		return nil, err
	}
	monitors, skipped, err := decodeMonitors(body)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logging.Warn().Int("skipped", skipped).Msg("Remote catalog returned invalid monitors")
	}
	return monitors, nil
}

// get waits for the rate limiter and performs a GET through the circuit breaker.
func (s *RemoteSource) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := s.cb.Execute(func() ([]byte, error) {
		return s.doRequest(ctx, endpoint)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(float64(s.cb.Counts().ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(0)
	return body, nil
}

func (s *RemoteSource) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "RigBudget")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog %s returned status %d: %s", endpoint, resp.StatusCode, logging.SanitizeLogValue(string(body)))
	}
	return body, nil
}

// State returns the circuit breaker state name.
func (s *RemoteSource) State() string {
	return stateToString(s.cb.State())
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
