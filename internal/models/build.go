// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package models

import (
	"fmt"
	"strings"
)

// Build is one recommended component per category plus the summed price.
// A nil slot means no catalog item of that category was eligible.
type Build struct {
	CPU         *Component `json:"cpu,omitempty"`
	GPU         *Component `json:"gpu,omitempty"`
	RAM         *Component `json:"ram,omitempty"`
	Motherboard *Component `json:"motherboard,omitempty"`
	Storage     *Component `json:"storage,omitempty"`
	PSU         *Component `json:"psu,omitempty"`
	Case        *Component `json:"case,omitempty"`
	Cooler      *Component `json:"cooler,omitempty"`
	TotalPrice  float64    `json:"totalPrice"`
}

// slot returns the address of the field holding category t, or nil.
func (b *Build) slot(t ComponentType) **Component {
	switch t {
	case TypeCPU:
		return &b.CPU
	case TypeGPU:
		return &b.GPU
	case TypeRAM:
		return &b.RAM
	case TypeMotherboard:
		return &b.Motherboard
	case TypeStorage:
		return &b.Storage
	case TypePSU:
		return &b.PSU
	case TypeCase:
		return &b.Case
	case TypeCooler:
		return &b.Cooler
	default:
		return nil
	}
}

// Get returns the selection for t, or nil.
func (b *Build) Get(t ComponentType) *Component {
	if s := b.slot(t); s != nil {
		return *s
	}
	return nil
}

// Set stores c as the selection for t. It does not touch TotalPrice.
func (b *Build) Set(t ComponentType, c *Component) {
	if s := b.slot(t); s != nil {
		*s = c
	}
}

// Selected returns the number of filled categories.
func (b *Build) Selected() int {
	n := 0
	for _, t := range ComponentTypes {
		if b.Get(t) != nil {
			n++
		}
	}
	return n
}

// PlatformFilter restricts CPUs and motherboards to one vendor platform.
type PlatformFilter string

// Platform filters.
const (
	PlatformAll   PlatformFilter = "all"
	PlatformIntel PlatformFilter = "intel"
	PlatformAMD   PlatformFilter = "amd"
)

// ParsePlatformFilter maps "" to PlatformAll and rejects unknown values.
func ParsePlatformFilter(s string) (PlatformFilter, error) {
	switch f := PlatformFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", PlatformAll:
		return PlatformAll, nil
	case PlatformIntel, PlatformAMD:
		return f, nil
	default:
		return "", fmt.Errorf("unknown platform filter %q (want all, intel or amd)", s)
	}
}

// GPUVendorFilter restricts graphics cards to one vendor.
type GPUVendorFilter string

// GPU vendor filters.
const (
	GPUVendorAll    GPUVendorFilter = "all"
	GPUVendorNvidia GPUVendorFilter = "nvidia"
	GPUVendorAMD    GPUVendorFilter = "amd"
)

// ParseGPUVendorFilter maps "" to GPUVendorAll and rejects unknown values.
func ParseGPUVendorFilter(s string) (GPUVendorFilter, error) {
	switch f := GPUVendorFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", GPUVendorAll:
		return GPUVendorAll, nil
	case GPUVendorNvidia, GPUVendorAMD:
		return f, nil
	default:
		return "", fmt.Errorf("unknown gpu vendor filter %q (want all, nvidia or amd)", s)
	}
}
