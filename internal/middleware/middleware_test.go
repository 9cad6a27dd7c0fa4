// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	}))

	t.Run("generates when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		got := rec.Header().Get(RequestIDHeader)
		if got == "" || got != seen {
			t.Errorf("header %q, context %q", got, seen)
		}
	})

	t.Run("reuses inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "proxy-abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Header().Get(RequestIDHeader) != "proxy-abc" || seen != "proxy-abc" {
			t.Errorf("expected inbound id to be propagated, got %q", seen)
		}
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if len(seen) > maxRequestIDLen {
			t.Errorf("oversized id kept: %d bytes", len(seen))
		}
	})
}

func TestProfile(t *testing.T) {
	t.Parallel()

	pc := ProfileCookie{Name: "katha_profile", TTL: time.Hour}
	var seen, logged string
	h := Profile(pc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ProfileID(r.Context())
		logged = logging.ProfileIDFromContext(r.Context())
	}))

	t.Run("issues cookie on first visit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "katha_profile" {
			t.Fatalf("cookies = %v", cookies)
		}
		if cookies[0].Value != seen || seen != logged {
			t.Errorf("cookie %q, context %q, logging %q", cookies[0].Value, seen, logged)
		}
		if !cookies[0].HttpOnly || cookies[0].MaxAge != 3600 {
			t.Errorf("cookie attributes: %+v", cookies[0])
		}
		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("profile id is not a uuid: %q", seen)
		}
	})

	t.Run("keeps valid cookie", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "katha_profile", Value: id})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if seen != id {
			t.Errorf("profile = %q, want %q", seen, id)
		}
		if len(rec.Result().Cookies()) != 0 {
			t.Error("cookie should not be reissued")
		}
	})

	t.Run("replaces malformed cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "katha_profile", Value: "../../etc"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if seen == "../../etc" {
			t.Error("malformed cookie value used as profile id")
		}
		if len(rec.Result().Cookies()) != 1 {
			t.Error("expected a replacement cookie")
		}
	})
}

func TestProfileIDWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ProfileID(req.Context()); got != "" {
		t.Errorf("ProfileID = %q, want empty", got)
	}
}

func TestPrometheusMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/sections/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/sections/{id}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sections/watchlist", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
	if d := testutil.ToFloat64(counter) - before; d != 1 {
		t.Errorf("counter delta = %v, want 1", d)
	}
}

func TestPrometheusMetricsUnmatched(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	h := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))

	if d := testutil.ToFloat64(counter) - before; d != 1 {
		t.Errorf("counter delta = %v, want 1", d)
	}
}

func TestStatusWriterKeepsFirstStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}
	_, _ = sw.Write([]byte("body"))
	sw.WriteHeader(http.StatusInternalServerError)

	if sw.status != http.StatusOK {
		t.Errorf("status = %d, want 200", sw.status)
	}
}

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("<div class=\"card\">Inception</div>", 100)
	h := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))

	t.Run("gzip when accepted", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("Content-Encoding = %q", rec.Header().Get("Content-Encoding"))
		}
		zr, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("gzip.NewReader: %v", err)
		}
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != body {
			t.Error("decompressed body differs")
		}
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Header().Get("Content-Encoding") != "" || rec.Body.String() != body {
			t.Error("response should pass through unchanged")
		}
	})

	t.Run("metrics passes through", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "" {
			t.Error("/metrics should not be wrapped")
		}
	})

	t.Run("other types pass through", func(t *testing.T) {
		t.Parallel()
		png := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte(body))
		}))
		req := httptest.NewRequest(http.MethodGet, "/poster.png", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		png.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "" || rec.Body.String() != body {
			t.Error("image/png should not be compressed")
		}
	})
}
