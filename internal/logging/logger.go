// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

// Package logging provides the process-wide zerolog logger for RigBudget.
//
// Initialize once at startup, then log through the package helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Catalog API listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Catalog unavailable")
//
// Always terminate an event chain with Msg or Send, otherwise nothing is written.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, fatal, panic, disabled.
	Level string

	// Format is json (production) or console (development).
	Format string

	// Caller adds file:line to each entry.
	Caller bool

	// Timestamp adds a time field to each entry.
	Timestamp bool

	// Service is written as the "service" field of every entry when set.
	Service string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Service:   "rigbudget",
		Output:    os.Stderr,
	}
}

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

// parseLevel falls back to info for unknown names.
func parseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return zerolog.InfoLevel
}

var global struct {
	sync.RWMutex
	logger zerolog.Logger
}

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	Init(DefaultConfig())
}

// Init reconfigures the global logger. Safe to call more than once; zero
// fields of cfg take the DefaultConfig value, except Caller and Timestamp.
func Init(cfg Config) {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.Service == "" {
		cfg.Service = def.Service
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	var out io.Writer = cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	c := zerolog.New(out).With().Str("service", cfg.Service)
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}
	SetLogger(c.Logger())
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	global.RLock()
	defer global.RUnlock()
	return global.logger
}

// SetLogger replaces the global logger. Mostly useful in tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	global.Lock()
	global.logger = l
	global.Unlock()
}

// WithComponent returns a child logger tagged with a component field, e.g.
// "catalog" or "recommend".
func WithComponent(component string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", component).Logger()
}

// Debug starts a debug level event.
func Debug() *zerolog.Event { l := Logger(); return l.Debug() }

// Info starts an info level event.
func Info() *zerolog.Event { l := Logger(); return l.Info() }

// Warn starts a warn level event.
func Warn() *zerolog.Event { l := Logger(); return l.Warn() }

// Error starts an error level event.
func Error() *zerolog.Event { l := Logger(); return l.Error() }

// Fatal starts a fatal level event. os.Exit(1) runs after Msg.
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

// NewTestLogger returns a JSON logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
