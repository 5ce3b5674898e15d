// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rigbudget/internal/models"
)

// FileSource reads a catalog export from disk. The file is either a JSON array
// of components or an object {"components": [...], "monitors": [...]}.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path on every fetch.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return "file" }

type fileExport struct {
	Components json.RawMessage `json:"components"`
	Monitors   json.RawMessage `json:"monitors"`
}

func (s *FileSource) read(ctx context.Context) (components, monitors []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return data, nil, nil
	}

	var export fileExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return export.Components, export.Monitors, nil
}

// FetchComponents implements Source.
func (s *FileSource) FetchComponents(ctx context.Context) ([]models.Component, error) {
	raw, _, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Component{}, nil
	}
	components, _, err := decodeComponents(raw)
	return components, err
}

// FetchMonitors implements Source.
func (s *FileSource) FetchMonitors(ctx context.Context) ([]models.Monitor, error) {
	_, raw, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Monitor{}, nil
	}
	monitors, _, err := decodeMonitors(raw)
	return monitors, err
}
