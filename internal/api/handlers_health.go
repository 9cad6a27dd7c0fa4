// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/whichkatha/internal/models"
)

// Health reports the store backend and the state of the recommendation
// backend's circuit breaker. The status is "degraded" while the store runs
// on its in-memory fallback or the breaker is open; the page keeps working
// in both cases, so the code stays 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	breaker := h.backend.BreakerState()
	status := "healthy"
	if h.store.Degraded() || breaker == "open" {
		status = "degraded"
	}

	respondData(w, http.StatusOK, models.HealthStatus{
		Status:       status,
		Version:      Version,
		StoreBackend: h.store.Backend(),
		Upstream:     h.backend.BaseURL(),
		Breaker:      breaker,
		Uptime:       time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthLive answers 200 while the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}
