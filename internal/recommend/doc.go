// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package recommend implements budget build selection and the socket
// compatibility check.
//
// # Selection
//
// Recommend splits a total budget across the eight component categories
// using a fixed allocation table, then fills each category in build order:
//
//  1. The category cap is totalBudget * weight.
//  2. Items of the category priced at or under the cap are eligible, after the
//     platform (CPU, motherboard) or GPU vendor name filter is applied.
//  3. Best fit: the eligible item closest to the cap wins.
//  4. Fallback: with nothing under the cap, the cheapest item of the category
//     that passes the name filter wins, even though it overspends.
//
// Ties in both steps go to the item that appears first in the catalog.
// Selection is a pure function of its inputs. It performs no I/O and does not
// modify the catalog slice.
//
// # Compatibility
//
// CheckCompatibility extracts a socket token ("LGA1700", "AM5") from the
// free-text specs of a CPU and a motherboard and reports a mismatch. Parts
// without a recognizable token are never flagged.
//
// # Engine
//
// Engine wraps the pure functions for request handling: it validates the
// budget, pulls a catalog snapshot from a CatalogProvider, records metrics,
// and degrades to an empty build with a warning when the catalog is
// unavailable.
package recommend
