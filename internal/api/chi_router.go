// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/whichkatha/internal/demo"
	"github.com/tomtom215/whichkatha/internal/middleware"
)

// Router assembles the chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(ChiMiddlewareConfigFrom(handler.config.Security))
	}
	return &Router{handler: handler, chiMiddleware: chiMiddleware}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	cfg := h.config

	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if cfg.Demo.Enabled {
		demo.Routes(r)
	}

	profile := middleware.Profile(middleware.ProfileCookie{
		Name:   cfg.UI.ProfileCookie,
		TTL:    cfg.UI.ProfileCookieTTL,
		Secure: cfg.Security.SecureCookies,
	})

	// ========================
	// Page
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(profile)

		r.Get("/", h.Index)
		r.Get("/sections/{id}", h.Section)
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Post("/search", h.SearchForm)
			r.Post("/watchlist/toggle", h.ToggleForm)
		})
	})

	// ========================
	// JSON API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.CORS())

		r.Get("/health", h.Health)
		r.Get("/health/live", h.HealthLive)

		r.Group(func(r chi.Router) {
			r.Use(profile)

			r.Get("/history", h.History)
			r.Get("/watchlist", h.Watchlist)
			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimit())
				r.Post("/search", h.Search)
				r.Post("/watchlist/toggle", h.ToggleWatchlist)
			})
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}
