// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/rigbudget/internal/config"
	"github.com/tomtom215/rigbudget/internal/models"
)

// testDBSemaphore serializes DuckDB usage across tests. Concurrent CGO
// connections under CI resource pressure can hang, so each test holds the
// semaphore for its whole lifetime and releases it in t.Cleanup.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T, seed bool) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := New(&config.DatabaseConfig{
		Path:        ":memory:",
		MaxMemory:   "256MB",
		Threads:     1,
		SeedCatalog: seed,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func TestNew_AppliesMigrations(t *testing.T) {
	db := setupTestDB(t, false)
	ctx := context.Background()

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if want := len(catalogSchemaChanges); version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}

	// A second run finds nothing to apply.
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var rows int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != len(catalogSchemaChanges) {
		t.Errorf("schema_migrations has %d rows, want %d", rows, len(catalogSchemaChanges))
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t, false)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if db.GetDatabasePath() != ":memory:" {
		t.Errorf("GetDatabasePath = %q", db.GetDatabasePath())
	}
}

func TestSeedCatalog(t *testing.T) {
	db := setupTestDB(t, true)
	ctx := context.Background()

	components, monitors, err := db.GetRecordCounts(ctx)
	if err != nil {
		t.Fatalf("GetRecordCounts: %v", err)
	}
	if components != int64(len(SeedComponents)) || monitors != int64(len(SeedMonitors)) {
		t.Fatalf("counts = %d/%d, want %d/%d", components, monitors, len(SeedComponents), len(SeedMonitors))
	}

	if err := db.SeedCatalog(ctx); err != nil {
		t.Fatalf("second SeedCatalog: %v", err)
	}
	components, monitors, _ = db.GetRecordCounts(ctx)
	if components != int64(len(SeedComponents)) || monitors != int64(len(SeedMonitors)) {
		t.Errorf("seeding twice duplicated rows: %d/%d", components, monitors)
	}

	cpus, err := db.ListComponents(ctx, ComponentFilter{Type: models.TypeCPU})
	if err != nil {
		t.Fatalf("ListComponents: %v", err)
	}
	if len(cpus) != 2 || cpus[1].Name != "AMD Ryzen 7 7800X3D" || cpus[1].Price != 6800000 {
		t.Errorf("unexpected CPUs: %+v", cpus)
	}
}

func TestComponentCRUD(t *testing.T) {
	db := setupTestDB(t, false)
	ctx := context.Background()

	c := &models.Component{
		Name:     "AMD Ryzen 5 7600",
		Type:     models.TypeCPU,
		Price:    3150000.5,
		ImageURL: "https://example.com/7600.jpg",
		Specs:    "Socket AM5, 6 Cores",
		MarketplaceLinks: &models.MarketplaceLinks{
			Tokopedia: "https://www.tokopedia.com/search?q=ryzen%205%207600",
		},
	}
	if err := db.CreateComponent(ctx, c); err != nil {
		t.Fatalf("CreateComponent: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	got, err := db.GetComponent(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetComponent: %v", err)
	}
	if got.Name != c.Name || got.Price != c.Price || got.Type != models.TypeCPU {
		t.Errorf("GetComponent = %+v", got)
	}
	if got.MarketplaceLinks == nil || got.MarketplaceLinks.Tokopedia == "" {
		t.Errorf("marketplace links not round-tripped: %+v", got.MarketplaceLinks)
	}

	got.Price = 2999000
	got.MarketplaceLinks = nil
	if err := db.UpdateComponent(ctx, got); err != nil {
		t.Fatalf("UpdateComponent: %v", err)
	}
	updated, _ := db.GetComponent(ctx, c.ID)
	if updated.Price != 2999000 || updated.MarketplaceLinks != nil {
		t.Errorf("update not applied: %+v", updated)
	}

	list, err := db.ListComponents(ctx, ComponentFilter{Query: "ryzen"})
	if err != nil {
		t.Fatalf("ListComponents: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("search returned %d results, want 1", len(list))
	}

	if err := db.DeleteComponent(ctx, c.ID); err != nil {
		t.Fatalf("DeleteComponent: %v", err)
	}
	if _, err := db.GetComponent(ctx, c.ID); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("GetComponent after delete: %v, want ErrComponentNotFound", err)
	}
	if err := db.DeleteComponent(ctx, c.ID); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("second delete: %v, want ErrComponentNotFound", err)
	}
	if err := db.UpdateComponent(ctx, &models.Component{ID: 9999, Name: "x", Type: models.TypeGPU, Price: 1}); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("update missing: %v, want ErrComponentNotFound", err)
	}
}

func TestListComponents_Search(t *testing.T) {
	db := setupTestDB(t, true)
	ctx := context.Background()

	tests := []struct {
		query string
		want  int
	}{
		{query: "ryzen", want: 1},
		{query: "RTX", want: 2},
		{query: "_", want: 0},
		{query: "%", want: 0},
		{query: `\`, want: 0},
		{query: "rtx_40", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := db.ListComponents(ctx, ComponentFilter{Query: tt.query})
			if err != nil {
				t.Fatalf("ListComponents: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("q=%q matched %d components, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"ryzen":  "%ryzen%",
		"50%":    `%50\%%`,
		"a_b":    `%a\_b%`,
		`c:\x`:   `%c:\\x%`,
	}
	for in, want := range tests {
		if got := containsPattern(in); got != want {
			t.Errorf("containsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListMonitors(t *testing.T) {
	db := setupTestDB(t, true)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter MonitorFilter
		want   []string
	}{
		{
			name:   "all featured first then rating",
			filter: MonitorFilter{},
			want: []string{
				"Samsung Odyssey G9 OLED", "LG UltraGear 27GR95QE-B", "ASUS TUF Gaming VG27AQ",
				"BenQ ZOWIE XL2546K", "KOORUI 24E3",
			},
		},
		{
			name:   "professional",
			filter: MonitorFilter{Category: models.MonitorCategoryProfessional},
			want:   []string{"Samsung Odyssey G9 OLED", "ASUS TUF Gaming VG27AQ"},
		},
		{
			name:   "budget",
			filter: MonitorFilter{Category: models.MonitorCategoryBudget},
			want:   []string{"ASUS TUF Gaming VG27AQ", "KOORUI 24E3"},
		},
		{
			name:   "search description",
			filter: MonitorFilter{Query: "oled"},
			want:   []string{"Samsung Odyssey G9 OLED", "LG UltraGear 27GR95QE-B"},
		},
		{
			name:   "underscore is literal",
			filter: MonitorFilter{Query: "_"},
			want:   []string{},
		},
		{
			name:   "percent is literal",
			filter: MonitorFilter{Query: "%"},
			want:   []string{},
		},
		{
			name:   "featured only",
			filter: MonitorFilter{FeaturedOnly: true},
			want:   []string{"Samsung Odyssey G9 OLED", "LG UltraGear 27GR95QE-B", "ASUS TUF Gaming VG27AQ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.ListMonitors(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListMonitors: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d monitors, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Title != tt.want[i] {
					t.Errorf("monitor[%d] = %q, want %q", i, got[i].Title, tt.want[i])
				}
			}
		})
	}

	gaming, _ := db.ListMonitors(ctx, MonitorFilter{Category: models.MonitorCategoryGaming})
	for _, m := range gaming {
		if m.RefreshRate < models.GamingMinRefreshRate {
			t.Errorf("gaming filter returned %q at %dHz", m.Title, m.RefreshRate)
		}
	}
}

func TestMonitorCRUD(t *testing.T) {
	db := setupTestDB(t, false)
	ctx := context.Background()

	m := &models.Monitor{
		Title:       "Dell S2721DGF",
		Resolution:  "2560 x 1440",
		RefreshRate: 165,
		PanelType:   "IPS",
		ScreenSize:  27,
		Price:       5200000,
		Rating:      4.4,
	}
	if err := db.CreateMonitor(ctx, m); err != nil {
		t.Fatalf("CreateMonitor: %v", err)
	}

	m.Featured = true
	if err := db.UpdateMonitor(ctx, m); err != nil {
		t.Fatalf("UpdateMonitor: %v", err)
	}
	got, err := db.GetMonitor(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMonitor: %v", err)
	}
	if !got.Featured || got.ScreenSize != 27 || got.Rating != 4.4 {
		t.Errorf("GetMonitor = %+v", got)
	}

	if err := db.DeleteMonitor(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMonitor: %v", err)
	}
	if _, err := db.GetMonitor(ctx, m.ID); !errors.Is(err, ErrMonitorNotFound) {
		t.Errorf("GetMonitor after delete: %v, want ErrMonitorNotFound", err)
	}
}

func TestUsers(t *testing.T) {
	db := setupTestDB(t, false)
	ctx := context.Background()

	u := &models.User{Username: "budi", Email: "Budi@Example.com", PasswordHash: "hash"}
	if err := db.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.Role != models.RoleUser {
		t.Errorf("defaults not applied: %+v", u)
	}

	dup := &models.User{Username: "budi", Email: "other@example.com", PasswordHash: "hash"}
	if err := db.CreateUser(ctx, dup); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate username: %v, want ErrUserExists", err)
	}

	byName, err := db.GetUserByUsername(ctx, "budi")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName.ID != u.ID || byName.PasswordHash != "hash" {
		t.Errorf("GetUserByUsername = %+v", byName)
	}

	if _, err := db.GetUserByEmail(ctx, "BUDI@example.com"); err != nil {
		t.Errorf("GetUserByEmail: %v", err)
	}
	if _, err := db.GetUserByID(ctx, u.ID); err != nil {
		t.Errorf("GetUserByID: %v", err)
	}
	if _, err := db.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: %v, want ErrUserNotFound", err)
	}

	n, err := db.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil || n != 0 {
		t.Errorf("CountUsersByRole(admin) = %d, %v", n, err)
	}
}
