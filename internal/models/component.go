// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package models provides the catalog, build, and API data models.
package models

import (
	"fmt"
	"strings"
	"time"
)

// ComponentType is the hardware category of a catalog component.
type ComponentType string

// Component categories. The string values match the catalog store and the JSON wire format.
const (
	TypeCPU         ComponentType = "CPU"
	TypeGPU         ComponentType = "GPU"
	TypeRAM         ComponentType = "RAM"
	TypeMotherboard ComponentType = "Motherboard"
	TypeStorage     ComponentType = "Storage"
	TypePSU         ComponentType = "PSU"
	TypeCase        ComponentType = "Case"
	TypeCooler      ComponentType = "Cooler"
)

// ComponentTypes lists every category in build order.
var ComponentTypes = []ComponentType{
	TypeCPU,
	TypeGPU,
	TypeRAM,
	TypeMotherboard,
	TypeStorage,
	TypePSU,
	TypeCase,
	TypeCooler,
}

// IsValid reports whether t is one of the eight known categories.
func (t ComponentType) IsValid() bool {
	for _, known := range ComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Key returns the lowercase build key for t ("cpu", "motherboard", ...).
func (t ComponentType) Key() string {
	return strings.ToLower(string(t))
}

// ParseComponentType accepts a category name or build key in any case.
func ParseComponentType(s string) (ComponentType, error) {
	for _, t := range ComponentTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown component type %q", s)
}

// MarketplaceLinks holds optional per-retailer product URLs.
type MarketplaceLinks struct {
	Shopee    string `json:"shopee,omitempty"`
	Tokopedia string `json:"tokopedia,omitempty"`
	Lazada    string `json:"lazada,omitempty"`
}

// IsZero reports whether no retailer link is set.
func (l MarketplaceLinks) IsZero() bool {
	return l.Shopee == "" && l.Tokopedia == "" && l.Lazada == ""
}

// Component is a purchasable PC part.
//
// Specs is free text and may carry a socket token such as "LGA1700" or "AM5".
// MarketplaceLink is the legacy single link kept for older clients.
type Component struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Type             ComponentType     `json:"type"`
	Price            float64           `json:"price"`
	ImageURL         string            `json:"image_url"`
	Specs            string            `json:"specs"`
	Description      string            `json:"description"`
	MarketplaceLink  string            `json:"marketplace_link,omitempty"`
	MarketplaceLinks *MarketplaceLinks `json:"marketplace_links,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
