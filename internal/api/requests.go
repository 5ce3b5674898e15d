// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package api

import (
	"strings"

	"github.com/tomtom215/rigbudget/internal/models"
)

// ComponentListRequest holds the query parameters of GET /components.
type ComponentListRequest struct {
	Type   string `json:"type" validate:"omitempty,component_type"`
	Query  string `json:"q" validate:"max=100"`
	Limit  int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset int    `json:"offset" validate:"gte=0"`
}

// MonitorListRequest holds the query parameters of GET /monitors.
type MonitorListRequest struct {
	Category string `json:"category" validate:"omitempty,oneof=all gaming professional budget"`
	Query    string `json:"q" validate:"max=100"`
	Limit    int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset   int    `json:"offset" validate:"gte=0"`
}

// MarketplaceLinksRequest carries optional store links for a product.
type MarketplaceLinksRequest struct {
	Shopee    string `json:"shopee" validate:"omitempty,url,max=2048"`
	Tokopedia string `json:"tokopedia" validate:"omitempty,url,max=2048"`
	Lazada    string `json:"lazada" validate:"omitempty,url,max=2048"`
}

func (l *MarketplaceLinksRequest) toModel() *models.MarketplaceLinks {
	if l == nil {
		return nil
	}
	links := &models.MarketplaceLinks{
		Shopee:    strings.TrimSpace(l.Shopee),
		Tokopedia: strings.TrimSpace(l.Tokopedia),
		Lazada:    strings.TrimSpace(l.Lazada),
	}
	if links.IsZero() {
		return nil
	}
	return links
}

// ComponentRequest is the body of POST and PUT /components.
type ComponentRequest struct {
	Name             string                   `json:"name" validate:"required,min=2,max=200"`
	Type             string                   `json:"type" validate:"required,component_type"`
	Price            float64                  `json:"price" validate:"gte=1000"`
	ImageURL         string                   `json:"image_url" validate:"required,url,max=2048"`
	Specs            string                   `json:"specs" validate:"max=2000"`
	Description      string                   `json:"description" validate:"max=5000"`
	MarketplaceLink  string                   `json:"marketplace_link" validate:"omitempty,url,max=2048"`
	MarketplaceLinks *MarketplaceLinksRequest `json:"marketplace_links"`
}

// toModel converts a validated request. Type has already passed the
// component_type check.
func (req *ComponentRequest) toModel() *models.Component {
	t, _ := models.ParseComponentType(req.Type)
	return &models.Component{
		Name:             strings.TrimSpace(req.Name),
		Type:             t,
		Price:            req.Price,
		ImageURL:         strings.TrimSpace(req.ImageURL),
		Specs:            strings.TrimSpace(req.Specs),
		Description:      strings.TrimSpace(req.Description),
		MarketplaceLink:  strings.TrimSpace(req.MarketplaceLink),
		MarketplaceLinks: req.MarketplaceLinks.toModel(),
	}
}

// MonitorRequest is the body of POST and PUT /monitors.
type MonitorRequest struct {
	Title            string                   `json:"title" validate:"required,min=2,max=200"`
	Description      string                   `json:"description" validate:"max=5000"`
	Resolution       string                   `json:"resolution" validate:"max=50"`
	RefreshRate      int                      `json:"refresh_rate" validate:"gte=0,lte=1000"`
	PanelType        string                   `json:"panel_type" validate:"max=50"`
	ScreenSize       float64                  `json:"screen_size" validate:"gte=0,lte=100"`
	Price            float64                  `json:"price" validate:"gte=1000"`
	Rating           float64                  `json:"rating" validate:"gte=0,lte=5"`
	Featured         bool                     `json:"featured"`
	ImageURL         string                   `json:"image_url" validate:"omitempty,url,max=2048"`
	MarketplaceLinks *MarketplaceLinksRequest `json:"marketplace_links"`
}

func (req *MonitorRequest) toModel() *models.Monitor {
	return &models.Monitor{
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		Resolution:       strings.TrimSpace(req.Resolution),
		RefreshRate:      req.RefreshRate,
		PanelType:        strings.TrimSpace(req.PanelType),
		ScreenSize:       req.ScreenSize,
		Price:            req.Price,
		Rating:           req.Rating,
		Featured:         req.Featured,
		ImageURL:         strings.TrimSpace(req.ImageURL),
		MarketplaceLinks: req.MarketplaceLinks.toModel(),
	}
}

// RecommendRequest is the body of POST /recommend. Budget is checked by the
// engine so that a non-positive value maps to INVALID_BUDGET.
type RecommendRequest struct {
	Budget    float64 `json:"budget"`
	Platform  string  `json:"platform" validate:"omitempty,oneof=all intel amd"`
	GPUVendor string  `json:"gpu_vendor" validate:"omitempty,oneof=all nvidia amd"`
}

func (req *RecommendRequest) normalize() {
	req.Platform = strings.ToLower(strings.TrimSpace(req.Platform))
	req.GPUVendor = strings.ToLower(strings.TrimSpace(req.GPUVendor))
}

// PartRequest is an inline part for compatibility checks.
type PartRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Specs string `json:"specs" validate:"max=2000"`
}

// CompatibilityRequest is the body of POST /compatibility. Each part is
// given either by catalog ID or inline; an ID wins when both are present.
type CompatibilityRequest struct {
	CPUID         int64        `json:"cpu_id" validate:"gte=0"`
	MotherboardID int64        `json:"motherboard_id" validate:"gte=0"`
	CPU           *PartRequest `json:"cpu"`
	Motherboard   *PartRequest `json:"motherboard"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login. Either username or email
// identifies the account.
type LoginRequest struct {
	Username string `json:"username" validate:"required_without=Email,max=254"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

func (req *LoginRequest) identifier() string {
	if req.Username != "" {
		return req.Username
	}
	return req.Email
}

// WishlistAddRequest is the body of POST /wishlist.
type WishlistAddRequest struct {
	MonitorID int64 `json:"monitor_id" validate:"required,gt=0"`
}
