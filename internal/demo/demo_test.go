// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package demo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/whichkatha/internal/config"
	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/upstream"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    []string
		wantErr string
	}{
		{"empty query returns featured", "", []string{"Inception"}, ""},
		{"case-insensitive substring", "dune", []string{"Dune: Part Two"}, ""},
		{"several hits keep catalog order", "o", []string{"Inception", "Dune: Part Two", "Solo Leveling", "Oppenheimer"}, ""},
		{"no match", "Titanic", nil, `No matches for "Titanic"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Match(models.RecommendRequest{Query: tt.query})
			assert.Equal(t, tt.wantErr, got.Error)
			var titles []string
			for _, r := range got.Results {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestRecommendHandler(t *testing.T) {
	t.Parallel()
	h := Handler()

	t.Run("flat record for single hit", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"mood":"Happy"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var got models.MovieRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, Featured, got)
	})

	t.Run("results list for several hits", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"query":"in"}`)))

		var got struct {
			Results []models.MovieRecord `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Results, 2)
		assert.Equal(t, "Inception", got.Results[0].Title)
		assert.Equal(t, "Solo Leveling", got.Results[1].Title)
	})

	t.Run("error payload", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"query":"zzz"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":"No matches for \"zzz\""}`, rec.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("empty body is the featured search", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Inception"`)
	})
}

func TestTrendingHandler(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trending", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.MovieRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, Trending, got)
}

// The upstream client must understand every shape the demo produces.
func TestUpstreamClientAgainstDemo(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(Handler())
	t.Cleanup(srv.Close)

	client := upstream.New(config.UpstreamConfig{
		BaseURL:           srv.URL,
		Timeout:           5 * time.Second,
		RateLimit:         100,
		RateBurst:         100,
		BreakerFailures:   5,
		BreakerTimeout:    time.Second,
		TrendingCacheTTL:  time.Minute,
		TrendingCacheSize: 4,
	})
	ctx := context.Background()

	resp, err := client.Recommend(ctx, models.RecommendRequest{})
	require.NoError(t, err)
	assert.Equal(t, []models.MovieRecord{Featured}, resp.Results)

	resp, err = client.Recommend(ctx, models.RecommendRequest{Query: "nothing-here"})
	require.NoError(t, err)
	assert.Equal(t, `No matches for "nothing-here"`, resp.Error)

	trend, err := client.Trending(ctx)
	require.NoError(t, err)
	assert.Equal(t, Trending, trend)
}
