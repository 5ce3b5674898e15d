// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer selects the child supervisor a service runs under.
type Layer int

const (
	// LayerStore holds DuckDB and badger upkeep.
	LayerStore Layer = iota
	// LayerFeed holds the websocket catalog change feed.
	LayerFeed
	// LayerAPI holds the REST server.
	LayerAPI
)

func (l Layer) String() string {
	switch l {
	case LayerStore:
		return "store"
	case LayerFeed:
		return "feed"
	case LayerAPI:
		return "api"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// TreeConfig holds restart and shutdown settings shared by every layer.
// Zero fields take the DefaultTreeConfig value.
type TreeConfig struct {
	FailureThreshold float64
	FailureDecay     float64 // seconds
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultTreeConfig returns suture's documented defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	d := DefaultTreeConfig()
	if c.FailureThreshold == 0 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = d.FailureDecay
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = d.FailureBackoff
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

func (c TreeConfig) spec() suture.Spec {
	return suture.Spec{
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// SupervisorTree is the rigbudget root supervisor with one child per Layer.
type SupervisorTree struct {
	root   *suture.Supervisor
	layers map[Layer]*suture.Supervisor
	config TreeConfig
}

// NewSupervisorTree builds the tree. Supervisor events go to logger.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if logger == nil {
		return nil, fmt.Errorf("supervisor tree requires a logger")
	}
	config = config.withDefaults()

	rootSpec := config.spec()
	// MustHook has a pointer receiver. Children inherit the hook when added.
	rootSpec.EventHook = (&sutureslog.Handler{Logger: logger}).MustHook()

	t := &SupervisorTree{
		root:   suture.New("rigbudget", rootSpec),
		layers: make(map[Layer]*suture.Supervisor, 3),
		config: config,
	}
	for _, l := range []Layer{LayerStore, LayerFeed, LayerAPI} {
		child := suture.New(l.String()+"-layer", config.spec())
		t.root.Add(child)
		t.layers[l] = child
	}
	return t, nil
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// Add runs svc under the given layer.
func (t *SupervisorTree) Add(layer Layer, svc suture.Service) (suture.ServiceToken, error) {
	child, ok := t.layers[layer]
	if !ok {
		return suture.ServiceToken{}, fmt.Errorf("unknown supervisor layer %s", layer)
	}
	return child.Add(svc), nil
}

// ServeBackground starts the tree in a goroutine. The returned channel
// receives exactly one value when the tree stops and is never closed.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that missed the shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
