// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package middleware holds the net/http middleware shared by the page and JSON
routes.

  - RequestID: X-Request-ID propagation into the logging context
  - Profile: the browser profile cookie that namespaces persisted lists
  - PrometheusMetrics: request counts and latency labelled by chi route pattern
  - Compression: gzip for HTML pages and JSON bodies

They are plain func(http.Handler) http.Handler values and compose with
chi's Router.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Profile(middleware.ProfileCookie{Name: "katha_profile", TTL: ttl}))
	r.Use(middleware.Compression)
*/
package middleware
