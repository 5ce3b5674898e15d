// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package recommend

import (
	"fmt"

	"github.com/tomtom215/rigbudget/internal/models"
)

// AllocationTable maps each category to the fraction of the total budget it may spend.
// Weights are independent; they are not normalized and need not sum to 1.
type AllocationTable map[models.ComponentType]float64

// DefaultAllocation returns the standard split used for every build.
func DefaultAllocation() AllocationTable {
	return AllocationTable{
		models.TypeCPU:         0.25,
		models.TypeGPU:         0.30,
		models.TypeRAM:         0.10,
		models.TypeMotherboard: 0.12,
		models.TypeStorage:     0.08,
		models.TypePSU:         0.07,
		models.TypeCase:        0.05,
		models.TypeCooler:      0.03,
	}
}

// Validate checks that every category has a nonnegative weight.
func (a AllocationTable) Validate() error {
	for _, t := range models.ComponentTypes {
		w, ok := a[t]
		if !ok {
			return fmt.Errorf("allocation table missing category %s", t)
		}
		if w < 0 {
			return fmt.Errorf("allocation weight for %s must be nonnegative, got %v", t, w)
		}
	}
	return nil
}

// MaxPrice returns the spending cap for category t.
func (a AllocationTable) MaxPrice(totalBudget float64, t models.ComponentType) float64 {
	return totalBudget * a[t]
}
