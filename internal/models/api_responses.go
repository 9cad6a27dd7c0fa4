// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package models

import (
	"time"
)

// APIResponse is the envelope used by every /api/v1 endpoint.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"results": [...]},
//	  "metadata": {"timestamp": "2026-10-15T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Codes used by the server:
//   - VALIDATION_ERROR: invalid form or body
//   - RECOMMEND_ERROR: backend answered with an {error} payload
//   - UPSTREAM_UNAVAILABLE: backend unreachable or answered garbage
//   - SUBMIT_IN_FLIGHT: a search is already running for this profile
//   - STALE_RESULT: watchlist toggle for a record not in the current results
//   - UNKNOWN_SECTION: navigation to a section the page does not have
//   - STORAGE_ERROR: the list store rejected a write
//   - METHOD_NOT_ALLOWED
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	StoreBackend string  `json:"store_backend"`
	Upstream     string  `json:"upstream"`
	Breaker      string  `json:"breaker"`
	Uptime       float64 `json:"uptime_seconds"`
}

// ToggleResult is returned by the watchlist toggle endpoint.
type ToggleResult struct {
	Action string      `json:"action"`
	Record MovieRecord `json:"record"`
}

// SearchResult is returned by the JSON search endpoint.
type SearchResult struct {
	Results []MovieRecord `json:"results"`
	Notice  string        `json:"notice,omitempty"`
}
