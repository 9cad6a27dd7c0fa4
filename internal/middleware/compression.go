// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// CompressibleTypes lists the response types gzipped for clients that
// accept it: the page, card fragments and the JSON API.
var CompressibleTypes = []string{
	"text/html",
	"application/json",
	"text/css",
	"image/svg+xml",
}

// compressionLevel is the gzip level passed to the compressor.
const compressionLevel = 5

// Compression compresses page and API responses. The /metrics endpoint
// negotiates its own encoding and is passed through.
func Compression(next http.Handler) http.Handler {
	compressed := chimiddleware.Compress(compressionLevel, CompressibleTypes...)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
}
