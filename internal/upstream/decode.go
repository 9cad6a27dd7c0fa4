// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package upstream

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/whichkatha/internal/models"
)

// recommendWire accepts every shape the backend has used: a flat record,
// {"results": [...]}, or {"error": "..."}.
type recommendWire struct {
	models.MovieRecord
	Error   *string               `json:"error"`
	Results *[]models.MovieRecord `json:"results"`
}

func decodeRecommend(status int, body []byte) (*models.RecommendResponse, error) {
	var w recommendWire
	if err := json.Unmarshal(body, &w); err != nil {
		if !is2xx(status) {
			return nil, fmt.Errorf("%w: status %d", ErrUpstream, status)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if w.Error != nil && strings.TrimSpace(*w.Error) != "" {
		return &models.RecommendResponse{Error: strings.TrimSpace(*w.Error)}, nil
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, status)
	}

	if w.Results != nil {
		results := withTitles(*w.Results)
		if len(results) == 0 {
			return &models.RecommendResponse{Error: NoResultsMessage}, nil
		}
		return &models.RecommendResponse{Results: results}, nil
	}
	if w.Title != "" {
		return &models.RecommendResponse{Results: []models.MovieRecord{w.MovieRecord}}, nil
	}
	return nil, fmt.Errorf("%w: neither a record nor results", ErrDecode)
}

func decodeTrending(status int, body []byte) ([]models.MovieRecord, error) {
	if !is2xx(status) {
		return nil, fmt.Errorf("%w: trending status %d", ErrUpstream, status)
	}
	var records []models.MovieRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: trending: %w", ErrDecode, err)
	}
	return withTitles(records), nil
}

// withTitles drops records without an identity; they cannot be listed
// or toggled.
func withTitles(in []models.MovieRecord) []models.MovieRecord {
	out := make([]models.MovieRecord, 0, len(in))
	for _, r := range in {
		if strings.TrimSpace(r.Title) != "" {
			out = append(out, r)
		}
	}
	return out
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
