// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogHandlerWritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.With("supervisor", "rigbudget").
		WithGroup("svc").
		Warn("service restarting", "name", "http-server", "backoff", 15*time.Second)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"supervisor":"rigbudget"`,
		`"svc.name":"http-server"`,
		"service restarting",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"debug", slog.LevelDebug, "debug"},
		{"info", slog.LevelInfo, "info"},
		{"warn", slog.LevelWarn, "warn"},
		{"error", slog.LevelError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := slogToZerologLevel(tt.level).String(); got != tt.want {
				t.Errorf("slogToZerologLevel(%v) = %s, want %s", tt.level, got, tt.want)
			}
		})
	}
}
