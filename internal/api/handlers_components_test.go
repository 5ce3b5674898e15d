// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/tomtom215/rigbudget/internal/models"
)

func TestListComponents(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"all", "", 10},
		{"by type", "?type=gpu", 2},
		{"type is case insensitive", "?type=GPU", 2},
		{"search", "?q=nzxt", 2},
		{"type and search", "?type=case&q=nzxt", 1},
		{"limit", "?limit=3", 3},
		{"offset past end", "?offset=50", 0},
		{"offset and limit", "?offset=8&limit=5", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/components"+tt.query, nil, "")
			expectStatus(t, rec, http.StatusOK)

			var components []models.Component
			resp := decodeData(t, rec, &components)
			if len(components) != tt.wantCount {
				t.Errorf("got %d components, want %d", len(components), tt.wantCount)
			}
			if resp.Metadata.Count == nil || *resp.Metadata.Count != tt.wantCount {
				t.Errorf("metadata.count = %v, want %d", resp.Metadata.Count, tt.wantCount)
			}
			if got := rec.Header().Get("Cache-Control"); got != "public, max-age=60" {
				t.Errorf("Cache-Control = %q", got)
			}
		})
	}
}

func TestListComponents_InvalidQuery(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	for _, query := range []string{"?type=keyboard", "?limit=5000", "?offset=-1"} {
		rec := env.do(t, http.MethodGet, "/api/v1/components"+query, nil, "")
		expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
	}
}

func TestGetComponent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	seeded := findComponent(t, env, "NZXT H9 Flow")

	rec := env.do(t, http.MethodGet, "/api/v1/components/"+strconv.FormatInt(seeded.ID, 10), nil, "")
	expectStatus(t, rec, http.StatusOK)
	var got models.Component
	decodeData(t, rec, &got)
	if got.Name != seeded.Name || got.Type != models.TypeCase || got.Price != 2800000 {
		t.Errorf("got %+v", got)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/components/999999", nil, "")
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeComponentNotFound)

	rec = env.do(t, http.MethodGet, "/api/v1/components/abc", nil, "")
	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeInvalidID)
}

func validComponentBody() map[string]interface{} {
	return map[string]interface{}{
		"name":      "AMD Radeon RX 7800 XT",
		"type":      "gpu",
		"price":     8200000,
		"image_url": "https://images.example.com/rx7800xt.jpg",
		"specs":     "16GB GDDR6, RDNA 3",
		"marketplace_links": map[string]string{
			"tokopedia": "https://www.tokopedia.com/rx7800xt",
		},
	}
}

func TestComponentWrites_RequireAdmin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodPost, "/api/v1/components", validComponentBody(), "")
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)

	userToken := env.token(t, "u-1", models.RoleUser)
	rec = env.do(t, http.MethodPost, "/api/v1/components", validComponentBody(), userToken)
	expectErrorCode(t, rec, http.StatusForbidden, ErrCodeForbidden)

	rec = env.do(t, http.MethodDelete, "/api/v1/components/1", nil, userToken)
	expectErrorCode(t, rec, http.StatusForbidden, ErrCodeForbidden)

	if changes := env.notifier.Changes(); len(changes) != 0 {
		t.Errorf("unexpected broadcasts: %v", changes)
	}
}

func TestComponentLifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())
	admin := env.token(t, "admin-1", models.RoleAdmin)

	// Warm the listing cache so the write has something to invalidate.
	rec := env.do(t, http.MethodGet, "/api/v1/components?type=gpu", nil, "")
	expectStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodPost, "/api/v1/components", validComponentBody(), admin)
	expectStatus(t, rec, http.StatusCreated)
	var created models.Component
	decodeData(t, rec, &created)
	if created.ID == 0 || created.Type != models.TypeGPU {
		t.Fatalf("created = %+v", created)
	}
	if created.MarketplaceLinks == nil || created.MarketplaceLinks.Tokopedia == "" {
		t.Errorf("marketplace links not stored: %+v", created.MarketplaceLinks)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/components?type=gpu", nil, "")
	var gpus []models.Component
	decodeData(t, rec, &gpus)
	if len(gpus) != 3 {
		t.Errorf("listing after create has %d gpus, want 3 (stale cache?)", len(gpus))
	}

	path := "/api/v1/components/" + strconv.FormatInt(created.ID, 10)
	body := validComponentBody()
	body["price"] = 7900000
	rec = env.do(t, http.MethodPut, path, body, admin)
	expectStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, path, nil, "")
	var updated models.Component
	decodeData(t, rec, &updated)
	if updated.Price != 7900000 {
		t.Errorf("price after update = %v", updated.Price)
	}

	rec = env.do(t, http.MethodDelete, path, nil, admin)
	expectStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, path, nil, "")
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeComponentNotFound)

	rec = env.do(t, http.MethodDelete, path, nil, admin)
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeComponentNotFound)

	want := []string{"component:created", "component:updated", "component:deleted"}
	got := env.notifier.Changes()
	if len(got) != len(want) {
		t.Fatalf("broadcasts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("broadcast[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCreateComponent_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())
	admin := env.token(t, "admin-1", models.RoleAdmin)

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		field  string
	}{
		{"unknown type", func(b map[string]interface{}) { b["type"] = "keyboard" }, "Type"},
		{"price too low", func(b map[string]interface{}) { b["price"] = 10 }, "Price"},
		{"missing name", func(b map[string]interface{}) { delete(b, "name") }, "Name"},
		{"bad image url", func(b map[string]interface{}) { b["image_url"] = "not a url" }, "ImageURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validComponentBody()
			tt.mutate(body)
			rec := env.do(t, http.MethodPost, "/api/v1/components", body, admin)
			expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
		})
	}

	rec := env.do(t, http.MethodPost, "/api/v1/components", "{not json", admin)
	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeInvalidRequest)

	rec = env.do(t, http.MethodPut, "/api/v1/components/999999", validComponentBody(), admin)
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeComponentNotFound)
}
