// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	correlationIDKey
	userIDKey
)

// contextFields are copied from a request context onto every Ctx logger,
// in this order.
var contextFields = []struct {
	key  contextKey
	name string
}{
	{requestIDKey, "request_id"},
	{correlationIDKey, "correlation_id"},
	{userIDKey, "user_id"},
}

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID stores an HTTP request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID or "".
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// ContextWithCorrelationID stores a correlation ID in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// ContextWithNewCorrelationID stores a short (8 character) random
// correlation ID in ctx.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, uuid.New().String()[:8])
}

// CorrelationIDFromContext returns the correlation ID or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey)
}

// ContextWithUserID records the authenticated user so request logs name
// who edited the catalog or wishlist.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func stringValue(ctx context.Context, key contextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// Ctx returns the global logger annotated with the request_id,
// correlation_id and user_id found in ctx.
//
//	logging.Ctx(r.Context()).Info().Msg("Component created")
func Ctx(ctx context.Context) *zerolog.Logger {
	return ctxLogger(ctx, Logger())
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ctxLogger(ctx context.Context, base zerolog.Logger) *zerolog.Logger {
	c := base.With()
	for _, f := range contextFields {
		if v := stringValue(ctx, f.key); v != "" {
			c = c.Str(f.name, v)
		}
	}
	l := c.Logger()
	return &l
}
