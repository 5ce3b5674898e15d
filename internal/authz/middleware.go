// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package authz

import (
	"net/http"

	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/metrics"
)

// DenyFunc writes an error response for a denied or failed decision.
type DenyFunc func(w http.ResponseWriter, r *http.Request, status int, message string)

// Middleware provides authorization middleware using Casbin.
type Middleware struct {
	enforcer *Enforcer
	deny     DenyFunc
}

// NewMiddleware creates a new authorization middleware. deny writes the error
// body; nil falls back to http.Error.
func NewMiddleware(enforcer *Enforcer, deny DenyFunc) *Middleware {
	if deny == nil {
		deny = func(w http.ResponseWriter, _ *http.Request, status int, message string) {
			http.Error(w, message, status)
		}
	}
	return &Middleware{enforcer: enforcer, deny: deny}
}

// Authorize checks the caller's role against object and action. Requests
// without claims are evaluated as anonymous; a denied anonymous caller gets
// 401 so clients know to log in, a denied authenticated caller gets 403.
func (m *Middleware) Authorize(object, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleAnonymous
			claims, authenticated := auth.ClaimsFromContext(r.Context())
			if authenticated {
				role = claims.Role
			}

			allowed, err := m.enforcer.Enforce(role, object, action)
			if err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
				m.deny(w, r, http.StatusInternalServerError, "authorization failed")
				return
			}
			metrics.RecordAuthzDecision(object, action, allowed)

			if !allowed {
				if !authenticated {
					m.deny(w, r, http.StatusUnauthorized, "authentication required")
					return
				}
				m.deny(w, r, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthorizeMethod derives the action from the HTTP method.
func (m *Middleware) AuthorizeMethod(object string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.Authorize(object, methodToAction(r.Method))(next).ServeHTTP(w, r)
		})
	}
}

// methodToAction maps HTTP methods to Casbin actions.
func methodToAction(method string) string {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return ActionWrite
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}
