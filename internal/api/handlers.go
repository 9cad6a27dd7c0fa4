// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/whichkatha/internal/config"
	"github.com/tomtom215/whichkatha/internal/middleware"
	"github.com/tomtom215/whichkatha/internal/render"
	"github.com/tomtom215/whichkatha/internal/store"
	"github.com/tomtom215/whichkatha/internal/ui"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "dev"

// Backend is the recommendation backend as seen by the handlers.
type Backend interface {
	ui.Recommender
	BaseURL() string
	BreakerState() string
}

// Handler contains dependencies for the page and API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and request helpers
//   - handlers_pages.go: server-rendered page flow
//   - handlers_api.go: JSON endpoints
//   - handlers_health.go: health endpoints
type Handler struct {
	config     *config.Config
	store      *store.Store
	backend    Backend
	registry   *ui.Registry
	controller *ui.Controller
	renderer   *render.Renderer
	startTime  time.Time
}

// NewHandler wires the page state registry, renderer and controller.
func NewHandler(cfg *config.Config, lists *store.Store, backend Backend) (*Handler, error) {
	registry, err := ui.NewRegistry(cfg.UI.MaxProfiles)
	if err != nil {
		return nil, fmt.Errorf("new handler: %w", err)
	}
	renderer := render.New(render.Links{
		TrailerSearchURL: cfg.UI.TrailerSearchURL,
		LookupSearchURL:  cfg.UI.LookupSearchURL,
	})
	return &Handler{
		config:     cfg,
		store:      lists,
		backend:    backend,
		registry:   registry,
		controller: ui.NewController(backend, lists, renderer),
		renderer:   renderer,
		startTime:  time.Now(),
	}, nil
}

// state returns the page state of the requesting profile.
func (h *Handler) state(r *http.Request) *ui.AppState {
	return h.registry.Get(middleware.ProfileID(r.Context()))
}
