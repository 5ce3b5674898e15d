// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package recommend

import (
	"strings"

	"github.com/tomtom215/rigbudget/internal/models"
)

// Motherboard name markers. Matching is case-sensitive on purpose: catalog
// names spell chipsets and sockets in upper case.
var (
	intelBoardMarkers = []string{"LGA", "Z790", "B760", "H610"}
	amdBoardMarkers   = []string{"AM4", "AM5", "B650", "X670"}
)

// nameFilter reports whether a component passes the active vendor filter.
type nameFilter func(c *models.Component) bool

// filterFor returns the name filter for category t, or nil when no filter applies.
func filterFor(t models.ComponentType, platform models.PlatformFilter, gpu models.GPUVendorFilter) nameFilter {
	switch t {
	case models.TypeCPU:
		switch platform {
		case models.PlatformIntel:
			return func(c *models.Component) bool { return containsFold(c.Name, "intel") }
		case models.PlatformAMD:
			return func(c *models.Component) bool { return containsFold(c.Name, "amd") }
		}
	case models.TypeMotherboard:
		switch platform {
		case models.PlatformIntel:
			return func(c *models.Component) bool { return containsAny(c.Name, intelBoardMarkers) }
		case models.PlatformAMD:
			return func(c *models.Component) bool { return containsAny(c.Name, amdBoardMarkers) }
		}
	case models.TypeGPU:
		switch gpu {
		case models.GPUVendorNvidia:
			return func(c *models.Component) bool {
				return containsFold(c.Name, "rtx") || containsFold(c.Name, "gtx")
			}
		case models.GPUVendorAMD:
			return func(c *models.Component) bool { return containsFold(c.Name, "rx") }
		}
	}
	return nil
}

// containsFold reports whether the lowercased name contains the lowercase needle.
func containsFold(name, needle string) bool {
	return strings.Contains(strings.ToLower(name), needle)
}

func containsAny(name string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
