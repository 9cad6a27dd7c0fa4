// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/sections/{id}", "200"))
	RecordHTTPRequest("GET", "/sections/{id}", "200", 12*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/sections/{id}", "200"))

	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(HTTPActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(HTTPActiveRequests) - start; got != 2 {
		t.Errorf("active delta = %v, want 2", got)
	}
	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != start {
		t.Errorf("active = %v, want %v", got, start)
	}
}

func TestRecordUpstreamRequest(t *testing.T) {
	tests := []struct {
		outcome string
	}{
		{"success"},
		{"business_error"},
		{"failure"},
		{"rejected"},
	}
	for _, tt := range tests {
		c := UpstreamRequestsTotal.WithLabelValues("recommend", tt.outcome)
		before := testutil.ToFloat64(c)
		RecordUpstreamRequest("recommend", tt.outcome, 40*time.Millisecond)
		if d := testutil.ToFloat64(c) - before; d != 1 {
			t.Errorf("%s: delta = %v, want 1", tt.outcome, d)
		}
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	SetCircuitBreakerState("upstream-test", 2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("upstream-test")); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}

	c := CircuitBreakerTransitions.WithLabelValues("upstream-test", "closed", "open")
	before := testutil.ToFloat64(c)
	RecordCircuitBreakerTransition("upstream-test", "closed", "open")
	if d := testutil.ToFloat64(c) - before; d != 1 {
		t.Errorf("transition delta = %v", d)
	}
}

func TestRecordTrendingCache(t *testing.T) {
	hits := TrendingCacheLookups.WithLabelValues("hit")
	misses := TrendingCacheLookups.WithLabelValues("miss")
	h0, m0 := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	RecordTrendingCache(true)
	RecordTrendingCache(false)
	RecordTrendingCache(false)

	if d := testutil.ToFloat64(hits) - h0; d != 1 {
		t.Errorf("hit delta = %v", d)
	}
	if d := testutil.ToFloat64(misses) - m0; d != 2 {
		t.Errorf("miss delta = %v", d)
	}
}

func TestListAndStoreMetrics(t *testing.T) {
	c := ListMutations.WithLabelValues("katha_watchlist", "added")
	before := testutil.ToFloat64(c)
	RecordListMutation("katha_watchlist", "added")
	if d := testutil.ToFloat64(c) - before; d != 1 {
		t.Errorf("mutation delta = %v", d)
	}

	corrupt := ListReadsCorrupt.WithLabelValues("katha_history")
	before = testutil.ToFloat64(corrupt)
	RecordCorruptList("katha_history")
	if d := testutil.ToFloat64(corrupt) - before; d != 1 {
		t.Errorf("corrupt delta = %v", d)
	}

	SetStoreBackend("badger", false)
	SetStoreBackend("memory", true)
	if n := testutil.CollectAndCount(StoreBackend); n != 1 {
		t.Errorf("store backend series = %d, want 1", n)
	}
	if got := testutil.ToFloat64(StoreBackend.WithLabelValues("memory", "true")); got != 1 {
		t.Errorf("memory fallback gauge = %v", got)
	}
}

func TestSearchAndProfiles(t *testing.T) {
	c := SearchSubmissions.WithLabelValues("in_flight")
	before := testutil.ToFloat64(c)
	RecordSearch("in_flight")
	if d := testutil.ToFloat64(c) - before; d != 1 {
		t.Errorf("search delta = %v", d)
	}

	SetActiveProfiles(3)
	if got := testutil.ToFloat64(ActiveProfiles); got != 3 {
		t.Errorf("profiles = %v", got)
	}
}
