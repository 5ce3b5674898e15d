// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package recommend

import (
	"github.com/tomtom215/rigbudget/internal/models"
)

// SelectionSource tells how a category slot was filled.
type SelectionSource string

// Selection sources.
const (
	SourceBestFit  SelectionSource = "best_fit"
	SourceFallback SelectionSource = "fallback"
	SourceNone     SelectionSource = "none"
)

// CategoryAllocation describes the outcome for one category of a build.
type CategoryAllocation struct {
	Category ComponentKey      `json:"category"`
	Weight   float64           `json:"weight"`
	MaxPrice float64           `json:"max_price"`
	Source   SelectionSource   `json:"source"`
	Selected *models.Component `json:"selected,omitempty"`
}

// ComponentKey is the lowercase build key of a category ("cpu", "gpu", ...).
type ComponentKey string

// Result is a build plus the per-category breakdown that produced it.
type Result struct {
	Build      models.Build         `json:"build"`
	Allocation []CategoryAllocation `json:"allocation"`
}

// Recommend selects one component per category for totalBudget using the
// default allocation table. Budget validation is the caller's job.
func Recommend(catalog []models.Component, totalBudget float64, platform models.PlatformFilter, gpu models.GPUVendorFilter) models.Build {
	return RecommendWithTable(catalog, totalBudget, DefaultAllocation(), platform, gpu).Build
}

// RecommendWithTable runs the selection with an explicit allocation table and
// returns the build together with its allocation breakdown.
func RecommendWithTable(catalog []models.Component, totalBudget float64, table AllocationTable, platform models.PlatformFilter, gpu models.GPUVendorFilter) Result {
	res := Result{Allocation: make([]CategoryAllocation, 0, len(models.ComponentTypes))}

	for _, t := range models.ComponentTypes {
		maxPrice := table.MaxPrice(totalBudget, t)
		filter := filterFor(t, platform, gpu)

		source := SourceBestFit
		pick := selectBestFit(catalog, t, maxPrice, filter)
		if pick == nil {
			source = SourceFallback
			pick = selectCheapestFallback(catalog, t, filter)
		}
		if pick == nil {
			source = SourceNone
		} else {
			res.Build.Set(t, pick)
			res.Build.TotalPrice += pick.Price
		}

		res.Allocation = append(res.Allocation, CategoryAllocation{
			Category: ComponentKey(t.Key()),
			Weight:   table[t],
			MaxPrice: maxPrice,
			Source:   source,
			Selected: pick,
		})
	}

	return res
}

// selectBestFit returns the item of type t priced at or under maxPrice that
// leaves the smallest remainder. The first item wins a tie.
func selectBestFit(catalog []models.Component, t models.ComponentType, maxPrice float64, filter nameFilter) *models.Component {
	var best *models.Component
	bestGap := 0.0
	for i := range catalog {
		c := &catalog[i]
		if c.Type != t || c.Price > maxPrice {
			continue
		}
		if filter != nil && !filter(c) {
			continue
		}
		gap := maxPrice - c.Price
		if best == nil || gap < bestGap {
			best, bestGap = c, gap
		}
	}
	return copyComponent(best)
}

// selectCheapestFallback ignores the price cap and returns the cheapest item
// of type t that passes the name filter. The first item wins a tie.
func selectCheapestFallback(catalog []models.Component, t models.ComponentType, filter nameFilter) *models.Component {
	var cheapest *models.Component
	for i := range catalog {
		c := &catalog[i]
		if c.Type != t {
			continue
		}
		if filter != nil && !filter(c) {
			continue
		}
		if cheapest == nil || c.Price < cheapest.Price {
			cheapest = c
		}
	}
	return copyComponent(cheapest)
}

// copyComponent detaches the selection from the caller's catalog slice.
func copyComponent(c *models.Component) *models.Component {
	if c == nil {
		return nil
	}
	cp := *c
	if c.MarketplaceLinks != nil {
		links := *c.MarketplaceLinks
		cp.MarketplaceLinks = &links
	}
	return &cp
}
