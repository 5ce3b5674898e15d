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

func monitorTitles(monitors []models.Monitor) []string {
	titles := make([]string, len(monitors))
	for i := range monitors {
		titles[i] = monitors[i].Title
	}
	return titles
}

func TestListMonitors(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "featured first then rating",
			query: "",
			want: []string{
				"Samsung Odyssey G9 OLED",
				"LG UltraGear 27GR95QE-B",
				"ASUS TUF Gaming VG27AQ",
				"BenQ ZOWIE XL2546K",
				"KOORUI 24E3",
			},
		},
		{
			name:  "professional",
			query: "?category=professional",
			want:  []string{"Samsung Odyssey G9 OLED", "ASUS TUF Gaming VG27AQ"},
		},
		{
			name:  "budget",
			query: "?category=Budget",
			want:  []string{"ASUS TUF Gaming VG27AQ", "KOORUI 24E3"},
		},
		{
			name:  "search title and description",
			query: "?q=oled",
			want:  []string{"Samsung Odyssey G9 OLED", "LG UltraGear 27GR95QE-B"},
		},
		{
			name:  "category all with limit",
			query: "?category=all&limit=1",
			want:  []string{"Samsung Odyssey G9 OLED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/monitors"+tt.query, nil, "")
			expectStatus(t, rec, http.StatusOK)

			var monitors []models.Monitor
			decodeData(t, rec, &monitors)
			got := monitorTitles(monitors)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("monitor[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}

	rec := env.do(t, http.MethodGet, "/api/v1/monitors?category=office", nil, "")
	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestFeaturedMonitors(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodGet, "/api/v1/monitors/featured", nil, "")
	expectStatus(t, rec, http.StatusOK)

	var monitors []models.Monitor
	resp := decodeData(t, rec, &monitors)
	if len(monitors) != 3 {
		t.Fatalf("got %d featured monitors, want 3", len(monitors))
	}
	for _, m := range monitors {
		if !m.Featured {
			t.Errorf("%s is not featured", m.Title)
		}
	}
	if resp.Metadata.Count == nil || *resp.Metadata.Count != 3 {
		t.Errorf("metadata.count = %v", resp.Metadata.Count)
	}
}

func TestMonitorLifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, testConfig())
	admin := env.token(t, "admin-1", models.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/api/v1/monitors/featured", nil, "")
	expectStatus(t, rec, http.StatusOK)

	body := map[string]interface{}{
		"title":        "Dell Alienware AW2725DF",
		"description":  "QD-OLED 360Hz",
		"resolution":   "2560 x 1440",
		"refresh_rate": 360,
		"panel_type":   "QD-OLED",
		"screen_size":  26.7,
		"price":        15000000,
		"rating":       5,
		"featured":     true,
	}
	rec = env.do(t, http.MethodPost, "/api/v1/monitors", body, admin)
	expectStatus(t, rec, http.StatusCreated)
	var created models.Monitor
	decodeData(t, rec, &created)
	if created.ID == 0 {
		t.Fatal("created monitor has no ID")
	}

	rec = env.do(t, http.MethodGet, "/api/v1/monitors/featured", nil, "")
	var featured []models.Monitor
	decodeData(t, rec, &featured)
	if len(featured) != 4 || featured[0].Title != "Dell Alienware AW2725DF" {
		t.Errorf("featured after create = %v", monitorTitles(featured))
	}

	path := "/api/v1/monitors/" + strconv.FormatInt(created.ID, 10)
	body["featured"] = false
	rec = env.do(t, http.MethodPut, path, body, admin)
	expectStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, path, nil, "")
	var updated models.Monitor
	decodeData(t, rec, &updated)
	if updated.Featured {
		t.Error("monitor still featured after update")
	}

	rec = env.do(t, http.MethodDelete, path, nil, admin)
	expectStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, path, nil, "")
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeMonitorNotFound)

	body["rating"] = 6
	rec = env.do(t, http.MethodPost, "/api/v1/monitors", body, admin)
	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)

	got := env.notifier.Changes()
	if len(got) != 3 || got[0] != "monitor:created" || got[2] != "monitor:deleted" {
		t.Errorf("broadcasts = %v", got)
	}
}
