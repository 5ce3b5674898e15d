// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/rigbudget/internal/auth"
	"github.com/tomtom215/rigbudget/internal/authz"
	"github.com/tomtom215/rigbudget/internal/catalog"
	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/database"
	"github.com/tomtom215/rigbudget/internal/models"
	"github.com/tomtom215/rigbudget/internal/recommend"
	"github.com/tomtom215/rigbudget/internal/wishlist"
)

const testJWTSecret = "test-secret-key-for-api-tests-0123456789"

// testDBSemaphore bounds concurrent in-memory DuckDB instances.
var testDBSemaphore = make(chan struct{}, 4)

// fakeNotifier records catalog change broadcasts.
type fakeNotifier struct {
	mu      sync.Mutex
	changes []string
}

func (f *fakeNotifier) BroadcastCatalogChange(kind, action string, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, kind+":"+action)
}

func (f *fakeNotifier) ClientCount() int { return 0 }

func (f *fakeNotifier) Changes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.changes...)
}

// testEnv is a fully wired router over an in-memory store.
type testEnv struct {
	db       *database.DB
	handler  *Handler
	server   http.Handler
	jwt      *auth.JWTManager
	notifier *fakeNotifier
	config   *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultPageSize: 100,
			MaxPageSize:     1000,
		},
		Security: config.SecurityConfig{
			AuthMode:          auth.ModeJWT,
			JWTSecret:         testJWTSecret,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"https://rigbudget.example.com"},
		},
		Catalog: config.CatalogConfig{Source: config.CatalogSourceDatabase},
	}
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&config.DatabaseConfig{
		Path:        ":memory:",
		MaxMemory:   "256MB",
		Threads:     1,
		SeedCatalog: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newTestEnv wires the router. With auth mode "none" no auth service or
// JWT manager is created.
func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	db := setupTestDB(t)

	wl, err := wishlist.Open(&config.WishlistConfig{InMemory: true})
	if err != nil {
		t.Fatalf("wishlist.Open: %v", err)
	}
	t.Cleanup(func() { _ = wl.Close() })

	var jwtManager *auth.JWTManager
	var authService *auth.Service
	if cfg.Security.AuthMode != auth.ModeNone {
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			t.Fatalf("NewJWTManager: %v", err)
		}
		authService = auth.NewService(db, jwtManager)
	}

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}

	engine := recommend.NewEngine(catalog.NewAccessor(catalog.NewDatabaseSource(db), zerolog.Nop()), zerolog.Nop())
	notifier := &fakeNotifier{}

	handler := NewHandler(db, engine, wl, authService, notifier, cfg)
	router := NewRouter(handler, jwtManager, enforcer, nil)

	return &testEnv{
		db:       db,
		handler:  handler,
		server:   router.SetupChi(),
		jwt:      jwtManager,
		notifier: notifier,
		config:   cfg,
	}
}

// token signs a token for a user that need not exist in the store.
func (env *testEnv) token(t *testing.T, id, role string) string {
	t.Helper()
	token, _, err := env.jwt.GenerateToken(&models.User{ID: id, Username: id, Role: role})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with a raw payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response (status %d): %v\nbody: %s", rec.Code, err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) envelope {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, want, rec.Body.String())
	}
}

func expectErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	expectStatus(t, rec, status)
	env := decodeEnvelope(t, rec)
	if env.Status != "error" || env.Error == nil || env.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", env.Error, code)
	}
}

// findComponent returns the seeded component with the given name.
func findComponent(t *testing.T, env *testEnv, name string) models.Component {
	t.Helper()
	rec := env.do(t, http.MethodGet, "/api/v1/components?q="+url.QueryEscape(name), nil, "")
	expectStatus(t, rec, http.StatusOK)
	var components []models.Component
	decodeData(t, rec, &components)
	for _, c := range components {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("component %q not seeded", name)
	return models.Component{}
}
