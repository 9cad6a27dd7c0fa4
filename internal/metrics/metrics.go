// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry at init through promauto.
// Callers use the Record*/Set* helpers rather than the vectors directly so
// label sets stay consistent.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "whichkatha"

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route pattern and status code",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_active_requests",
			Help:      "Requests currently being served",
		},
	)

	// Recommendation backend
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Calls to the recommendation backend by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"}, // success, business_error, failure, rejected
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Recommendation backend latency in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state_transitions_total",
			Help:      "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	TrendingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trending_cache_lookups_total",
			Help:      "Trending row cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)

	// Page state
	SearchSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_submissions_total",
			Help:      "Search form submissions by outcome",
		},
		[]string{"outcome"}, // success, business_error, failure, in_flight, invalid
	)

	ActiveProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_profiles",
			Help:      "Browser profiles with resident page state",
		},
	)

	// Persisted lists
	ListMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_mutations_total",
			Help:      "History and watchlist mutations by list and action",
		},
		[]string{"list", "action"}, // added, removed, skipped
	)

	ListReadsCorrupt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_reads_corrupt_total",
			Help:      "Stored lists that failed to decode and were read as empty",
		},
		[]string{"list"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "List store backend errors by operation",
		},
		[]string{"operation"},
	)

	StoreBackend = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_backend_info",
			Help:      "Active list store backend (1 for the active one); fallback=true when degraded",
		},
		[]string{"backend", "fallback"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route, statusCode string, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// TrackActiveRequest adjusts the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records a backend call. Rejected calls never
// reached the network and are not timed.
func RecordUpstreamRequest(endpoint, outcome string, d time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	if outcome != "rejected" {
		UpstreamRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// SetCircuitBreakerState stores the numeric breaker state.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerTransition counts a breaker state change.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordTrendingCache counts a trending cache lookup.
func RecordTrendingCache(hit bool) {
	if hit {
		TrendingCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	TrendingCacheLookups.WithLabelValues("miss").Inc()
}

// RecordSearch counts a search submission outcome.
func RecordSearch(outcome string) {
	SearchSubmissions.WithLabelValues(outcome).Inc()
}

// SetActiveProfiles sets the resident profile count.
func SetActiveProfiles(n int) {
	ActiveProfiles.Set(float64(n))
}

// RecordListMutation counts a history or watchlist change.
func RecordListMutation(list, action string) {
	ListMutations.WithLabelValues(list, action).Inc()
}

// RecordCorruptList counts a stored list read as empty after a decode failure.
func RecordCorruptList(list string) {
	ListReadsCorrupt.WithLabelValues(list).Inc()
}

// RecordStoreError counts a backend failure.
func RecordStoreError(operation string) {
	StoreErrors.WithLabelValues(operation).Inc()
}

// SetStoreBackend marks backend as the active store.
func SetStoreBackend(backend string, fallback bool) {
	StoreBackend.Reset()
	fb := "false"
	if fallback {
		fb = "true"
	}
	StoreBackend.WithLabelValues(backend, fb).Set(1)
}
