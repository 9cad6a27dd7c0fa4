// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package demo serves a stand-in recommendation backend with a fixed
// catalog, so the front end works without a real recommender.
//
// POST /recommend answers with the Inception record when the query is empty
// (the behavior of the original dummy backend), the catalog entries whose
// title contains the query otherwise, and an {error} payload when nothing
// matches. GET /trending returns the static trending row.
package demo

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/models"
)

const maxBody = 64 << 10

const posterBase = "https://image.tmdb.org/t/p/w500/"

// Featured is returned for an unfiltered search.
var Featured = models.MovieRecord{
	Title:      "Inception",
	Overview:   "A thief who steals corporate secrets through the use of dream-sharing technology...",
	Poster:     posterBase + "9gk7admal4BN5046AOExkyXRJjn.jpg",
	MatchScore: "98%",
	Badges:     []string{"Sci-Fi", "Thriller"},
}

// Trending is the static trending row.
var Trending = []models.MovieRecord{
	{Title: "Dune: Part Two", Poster: posterBase + "1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg"},
	{Title: "Pushpa 2", Poster: posterBase + "r1yAzxX8fS784J839LE76518.jpg"},
	{Title: "Solo Leveling", Poster: posterBase + "z6okM9a5oF5Q2tA1kG4w5.jpg"},
	{Title: "Oppenheimer", Poster: posterBase + "8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg"},
}

// Routes mounts the demo endpoints on r.
func Routes(r chi.Router) {
	r.Post("/recommend", recommend)
	r.Get("/trending", trending)
}

// Handler returns the demo backend as a standalone handler.
func Handler() http.Handler {
	r := chi.NewRouter()
	Routes(r)
	return r
}

func catalog() []models.MovieRecord {
	return append([]models.MovieRecord{Featured}, Trending...)
}

// Match returns the answer for req.
func Match(req models.RecommendRequest) models.RecommendResponse {
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		return models.RecommendResponse{Results: []models.MovieRecord{Featured}}
	}
	var hits []models.MovieRecord
	for _, m := range catalog() {
		if strings.Contains(strings.ToLower(m.Title), q) {
			hits = append(hits, m)
		}
	}
	if len(hits) == 0 {
		return models.RecommendResponse{Error: fmt.Sprintf("No matches for %q", strings.TrimSpace(req.Query))}
	}
	return models.RecommendResponse{Results: hits}
}

func recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err == nil && len(body) > 0 {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	resp := Match(req)
	logging.Ctx(r.Context()).Debug().
		Str("query", logging.SanitizeValue(req.Query)).
		Int("results", len(resp.Results)).
		Msg("Demo recommendation")

	if resp.Error != "" {
		writeJSON(w, http.StatusOK, map[string]string{"error": resp.Error})
		return
	}
	if len(resp.Results) == 1 {
		// A single hit uses the flat record shape.
		writeJSON(w, http.StatusOK, resp.Results[0])
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.MovieRecord{"results": resp.Results})
}

func trending(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Trending)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode demo response")
	}
}
