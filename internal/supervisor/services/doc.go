// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package services adapts RigBudget components to suture.Service.
//
// Each wrapper depends on a small interface rather than the concrete type so
// tests can use doubles and the supervisor package stays free of import
// cycles.
package services
