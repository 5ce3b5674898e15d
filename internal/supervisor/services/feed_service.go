// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package services

import (
	"context"

	"github.com/tomtom215/rigbudget/internal/logging"
)

// CatalogFeed is the websocket hub that fans out catalog_changed events.
type CatalogFeed interface {
	RunWithContext(ctx context.Context) error
	ClientCount() int
}

// CatalogFeedService keeps the catalog change feed running. The hub closes
// its clients when the context ends.
type CatalogFeedService struct {
	feed CatalogFeed
}

func NewCatalogFeedService(feed CatalogFeed) *CatalogFeedService {
	return &CatalogFeedService{feed: feed}
}

// Serve implements suture.Service.
func (s *CatalogFeedService) Serve(ctx context.Context) error {
	err := s.feed.RunWithContext(ctx)
	logging.Debug().Int("clients", s.feed.ClientCount()).Msg("Catalog feed stopped")
	return err
}

func (s *CatalogFeedService) String() string {
	return "catalog-feed"
}
