// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package models

import (
	"strings"
	"time"
)

// Monitor is a display listed in the monitor catalog.
type Monitor struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Resolution       string            `json:"resolution"`
	RefreshRate      int               `json:"refresh_rate"`
	PanelType        string            `json:"panel_type"`
	ScreenSize       float64           `json:"screen_size"`
	Price            float64           `json:"price"`
	Rating           float64           `json:"rating"`
	Featured         bool              `json:"featured"`
	ImageURL         string            `json:"image_url"`
	MarketplaceLinks *MarketplaceLinks `json:"marketplace_links,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// MonitorCategory is a browse shortcut on the monitor catalog.
type MonitorCategory string

// Monitor browse categories.
const (
	MonitorCategoryAll          MonitorCategory = "all"
	MonitorCategoryGaming       MonitorCategory = "gaming"
	MonitorCategoryProfessional MonitorCategory = "professional"
	MonitorCategoryBudget       MonitorCategory = "budget"
)

// Category thresholds.
const (
	GamingMinRefreshRate  = 144
	ProfessionalMinSize   = 27.0
	BudgetMaxMonitorPrice = 4500000.0
)

// Matches reports whether m belongs to category c. Unknown categories match everything.
func (c MonitorCategory) Matches(m *Monitor) bool {
	switch c {
	case MonitorCategoryGaming:
		return m.RefreshRate >= GamingMinRefreshRate
	case MonitorCategoryProfessional:
		return m.ScreenSize >= ProfessionalMinSize
	case MonitorCategoryBudget:
		return m.Price <= BudgetMaxMonitorPrice
	default:
		return true
	}
}

// MatchesQuery does a case-insensitive substring match on title and description.
func (m *Monitor) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(m.Title), q) ||
		strings.Contains(strings.ToLower(m.Description), q)
}
