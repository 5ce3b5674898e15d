// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package catalog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/models"
)

// flexNumber decodes a JSON number or a string-encoded decimal such as "6800000.00".
// SQL DECIMAL columns are commonly serialized as strings by other servers.
type flexNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("invalid quoted number %s: %w", b, err)
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := models.ParsePrice(s)
		if err != nil {
			return err
		}
		*n = flexNumber(v)
		return nil
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", b, err)
	}
	*n = flexNumber(v)
	return nil
}

// flexBool decodes true/false, 0/1 and "0"/"1". MySQL drivers serialize
// BOOLEAN (TINYINT(1)) columns as numbers.
type flexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (v *flexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("invalid quoted bool %s: %w", b, err)
		}
		b = []byte(s)
	}

	switch string(b) {
	case "", "null", "false", "0":
		*v = false
	case "true", "1":
		*v = true
	default:
		return fmt.Errorf("invalid bool %s", b)
	}
	return nil
}

// wireComponent is a component as served by a catalog endpoint.
type wireComponent struct {
	ID               int64                    `json:"id"`
	Name             string                   `json:"name"`
	Type             string                   `json:"type"`
	Price            flexNumber               `json:"price"`
	ImageURL         string                   `json:"image_url"`
	Specs            string                   `json:"specs"`
	Description      string                   `json:"description"`
	MarketplaceLink  string                   `json:"marketplace_link"`
	MarketplaceLinks *models.MarketplaceLinks `json:"marketplace_links"`
	CreatedAt        *time.Time               `json:"created_at"`
	UpdatedAt        *time.Time               `json:"updated_at"`
}

// wireMonitor is a monitor as served by a catalog endpoint.
type wireMonitor struct {
	ID               int64                    `json:"id"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description"`
	Resolution       string                   `json:"resolution"`
	RefreshRate      flexNumber               `json:"refresh_rate"`
	PanelType        string                   `json:"panel_type"`
	ScreenSize       flexNumber               `json:"screen_size"`
	Price            flexNumber               `json:"price"`
	Rating           flexNumber               `json:"rating"`
	Featured         flexBool                 `json:"featured"`
	ImageURL         string                   `json:"image_url"`
	MarketplaceLinks *models.MarketplaceLinks `json:"marketplace_links"`
	CreatedAt        *time.Time               `json:"created_at"`
	UpdatedAt        *time.Time               `json:"updated_at"`
}

// toComponents converts wire rows, dropping rows with an unknown type or a non-positive price.
func toComponents(rows []wireComponent) (out []models.Component, skipped int) {
	out = make([]models.Component, 0, len(rows))
	for i := range rows {
		w := &rows[i]
		t, err := models.ParseComponentType(w.Type)
		if err != nil || w.Price <= 0 {
			skipped++
			continue
		}
		c := models.Component{
			ID:               w.ID,
			Name:             w.Name,
			Type:             t,
			Price:            float64(w.Price),
			ImageURL:         w.ImageURL,
			Specs:            w.Specs,
			Description:      w.Description,
			MarketplaceLink:  w.MarketplaceLink,
			MarketplaceLinks: w.MarketplaceLinks,
		}
		if w.CreatedAt != nil {
			c.CreatedAt = *w.CreatedAt
		}
		if w.UpdatedAt != nil {
			c.UpdatedAt = *w.UpdatedAt
		}
		out = append(out, c)
	}
	return out, skipped
}

func toMonitors(rows []wireMonitor) (out []models.Monitor, skipped int) {
	out = make([]models.Monitor, 0, len(rows))
	for i := range rows {
		w := &rows[i]
		if w.Price <= 0 {
			skipped++
			continue
		}
		m := models.Monitor{
			ID:               w.ID,
			Title:            w.Title,
			Description:      w.Description,
			Resolution:       w.Resolution,
			RefreshRate:      int(w.RefreshRate),
			PanelType:        w.PanelType,
			ScreenSize:       float64(w.ScreenSize),
			Price:            float64(w.Price),
			Rating:           float64(w.Rating),
			Featured:         bool(w.Featured),
			ImageURL:         w.ImageURL,
			MarketplaceLinks: w.MarketplaceLinks,
		}
		if w.CreatedAt != nil {
			m.CreatedAt = *w.CreatedAt
		}
		if w.UpdatedAt != nil {
			m.UpdatedAt = *w.UpdatedAt
		}
		out = append(out, m)
	}
	return out, skipped
}

// decodeComponents parses a JSON array of components.
func decodeComponents(data []byte) ([]models.Component, int, error) {
	var rows []wireComponent
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode components: %w", err)
	}
	out, skipped := toComponents(rows)
	return out, skipped, nil
}

// decodeMonitors parses a JSON array of monitors.
func decodeMonitors(data []byte) ([]models.Monitor, int, error) {
	var rows []wireMonitor
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode monitors: %w", err)
	}
	out, skipped := toMonitors(rows)
	return out, skipped, nil
}
