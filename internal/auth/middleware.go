// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/models"
)

type contextKey string

// ClaimsContextKey holds the authenticated *Claims in a request context.
const ClaimsContextKey contextKey = "claims"

// TokenCookieName is the cookie set on login.
const TokenCookieName = "token"

// Auth modes.
const (
	ModeJWT  = "jwt"
	ModeNone = "none"
)

// localClaims identify every request when authentication is disabled.
var localClaims = &Claims{UserID: "local", Username: "local", Role: models.RoleAdmin}

// UnauthorizedFunc writes a 401 response.
type UnauthorizedFunc func(w http.ResponseWriter, r *http.Request, message string)

// Middleware provides authentication middleware
type Middleware struct {
	jwtManager   *JWTManager
	authMode     string
	unauthorized UnauthorizedFunc
}

// NewMiddleware creates a new authentication middleware. unauthorized writes
// the 401 body; nil falls back to http.Error.
func NewMiddleware(jwtManager *JWTManager, authMode string, unauthorized UnauthorizedFunc) *Middleware {
	if unauthorized == nil {
		unauthorized = func(w http.ResponseWriter, _ *http.Request, message string) {
			http.Error(w, message, http.StatusUnauthorized)
		}
	}
	return &Middleware{
		jwtManager:   jwtManager,
		authMode:     authMode,
		unauthorized: unauthorized,
	}
}

// Authenticate rejects requests without a valid token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == ModeNone {
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), localClaims)))
			return
		}

		token, ok := extractToken(r)
		if !ok {
			m.unauthorized(w, r, "missing or malformed token")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			m.unauthorized(w, r, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// Optional attaches claims when a valid token is present and otherwise
// continues anonymously.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == ModeNone {
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), localClaims)))
			return
		}
		if token, ok := extractToken(r); ok {
			if claims, err := m.jwtManager.ValidateToken(token); err == nil {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken reads the bearer token from the Authorization header or,
// when the header is absent, the token cookie.
func extractToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			return "", false
		}
		return cookie.Value, true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// WithClaims returns a context carrying claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	if claims != nil {
		ctx = logging.ContextWithUserID(ctx, claims.UserID)
	}
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// SetTokenCookie stores token in an HttpOnly cookie.
func SetTokenCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearTokenCookie expires the token cookie.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// SecurityHeaders adds security headers to all responses
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
