// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package middleware

import (
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// compressionLevel trades a little CPU for catalog listings that shrink well.
const compressionLevel = 5

// Compression gzips JSON and plain text responses for clients that accept
// it. WebSocket upgrades bypass the compressor so the connection can be
// hijacked.
func Compression(next http.Handler) http.Handler {
	compressed := chimiddleware.Compress(compressionLevel, "application/json", "text/plain")(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			next.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
}
