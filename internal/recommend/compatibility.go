// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package recommend

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tomtom215/rigbudget/internal/models"
)

var socketPattern = regexp.MustCompile(`(?i)LGA\s?\d+|AM\d`)

// ManualSelection is a caller-owned set of hand-picked parts keyed by category.
type ManualSelection map[models.ComponentType]*models.Component

// ExtractSocket returns the first socket token found in specs, or "".
func ExtractSocket(specs string) string {
	return socketPattern.FindString(specs)
}

// normalizeSocket uppercases a token and drops whitespace so "lga 1700" equals "LGA1700".
func normalizeSocket(token string) string {
	return strings.ToUpper(strings.Join(strings.Fields(token), ""))
}

// CheckCompatibility compares the socket tokens in the specs of a CPU and a
// motherboard. It returns at most one issue and never nil.
func CheckCompatibility(cpu, motherboard *models.Component) []string {
	issues := []string{}
	if cpu == nil || motherboard == nil {
		return issues
	}

	cpuSocket := ExtractSocket(cpu.Specs)
	moboSocket := ExtractSocket(motherboard.Specs)
	if cpuSocket == "" || moboSocket == "" {
		return issues
	}

	if normalizeSocket(cpuSocket) != normalizeSocket(moboSocket) {
		issues = append(issues, fmt.Sprintf("Socket mismatch: CPU (%s) vs Motherboard (%s)", cpuSocket, moboSocket))
	}
	return issues
}

// CheckSelection runs CheckCompatibility on the CPU and motherboard of sel.
func CheckSelection(sel ManualSelection) []string {
	return CheckCompatibility(sel[models.TypeCPU], sel[models.TypeMotherboard])
}
