// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/models"
)

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.TokenCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterLoginMe(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "budi",
		"email":    "budi@example.com",
		"password": "correct-horse",
	}, "")
	expectStatus(t, rec, http.StatusCreated)

	var registered models.LoginResponse
	decodeData(t, rec, &registered)
	if registered.Token == "" || registered.User == nil || registered.User.Role != models.RoleUser {
		t.Fatalf("register response = %+v", registered)
	}
	if c := tokenCookie(rec); c == nil || !c.HttpOnly || c.Value != registered.Token {
		t.Errorf("token cookie = %+v", c)
	}

	// Login by username and by email.
	for _, body := range []map[string]string{
		{"username": "budi", "password": "correct-horse"},
		{"email": "budi@example.com", "password": "correct-horse"},
	} {
		rec = env.do(t, http.MethodPost, "/api/v1/auth/login", body, "")
		expectStatus(t, rec, http.StatusOK)
	}

	var login models.LoginResponse
	decodeData(t, rec, &login)

	rec = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, login.Token)
	expectStatus(t, rec, http.StatusOK)
	var me models.User
	decodeData(t, rec, &me)
	if me.Username != "budi" || me.Email != "budi@example.com" {
		t.Errorf("me = %+v", me)
	}

	// The cookie alone authenticates.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: login.Token})
	cookieRec := httptest.NewRecorder()
	env.server.ServeHTTP(cookieRec, req)
	expectStatus(t, cookieRec, http.StatusOK)

	rec = env.do(t, http.MethodPost, "/api/v1/auth/logout", nil, "")
	expectStatus(t, rec, http.StatusOK)
	if c := tokenCookie(rec); c == nil || c.MaxAge >= 0 {
		t.Errorf("logout cookie = %+v, want expired", c)
	}
}

func TestRegister_Errors(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	body := map[string]string{"username": "sari", "email": "sari@example.com", "password": "password123"}
	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", body, "")
	expectStatus(t, rec, http.StatusCreated)

	rec = env.do(t, http.MethodPost, "/api/v1/auth/register", body, "")
	expectErrorCode(t, rec, http.StatusConflict, ErrCodeUserExists)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"short password", map[string]string{"username": "dewi", "email": "dewi@example.com", "password": "short"}},
		{"bad email", map[string]string{"username": "dewi", "email": "dewi", "password": "password123"}},
		{"bad username", map[string]string{"username": "d w", "email": "dewi@example.com", "password": "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/auth/register", tt.body, "")
			expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "agus", "email": "agus@example.com", "password": "password123",
	}, "")
	expectStatus(t, rec, http.StatusCreated)

	rec = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "agus", "password": "wrong-password"}, "")
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeInvalidCredentials)

	rec = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "nobody", "password": "password123"}, "")
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeInvalidCredentials)

	rec = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"password": "password123"}, "")
	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestLogin_Lockout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	creds := map[string]string{"username": "locked", "password": "wrong-password"}
	for i := 0; i < 5; i++ {
		rec := env.do(t, http.MethodPost, "/api/v1/auth/login", creds, "")
		expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeInvalidCredentials)
	}
	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", creds, "")
	expectErrorCode(t, rec, http.StatusTooManyRequests, ErrCodeAccountLocked)
}

func TestMe_Unauthenticated(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodGet, "/api/v1/auth/me", nil, "")
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)

	rec = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, "not-a-jwt")
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)

	// Valid signature, but the account was never stored.
	rec = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, env.token(t, "ghost", models.RoleUser))
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)
}

func TestAuthModeNone(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Security.AuthMode = auth.ModeNone
	env := newTestEnv(t, cfg)

	rec := env.do(t, http.MethodGet, "/api/v1/auth/me", nil, "")
	expectStatus(t, rec, http.StatusOK)
	var me models.User
	decodeData(t, rec, &me)
	if me.Role != models.RoleAdmin {
		t.Errorf("local user role = %q, want admin", me.Role)
	}

	rec = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "x", "password": "y"}, "")
	expectErrorCode(t, rec, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)

	rec = env.do(t, http.MethodPost, "/api/v1/components", validComponentBody(), "")
	expectStatus(t, rec, http.StatusCreated)
}
