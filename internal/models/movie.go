// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MovieRecord is a recommended or trending movie as returned by the backend
// and as persisted in the history and watchlist.
//
// MatchScore and Badges are optional; the backend omits them for trending
// entries and some recommendation variants.
type MovieRecord struct {
	Title      string      `json:"title" validate:"required,max=300"`
	Poster     string      `json:"poster,omitempty" validate:"omitempty,url"`
	Year       ReleaseYear `json:"year,omitempty"`
	Rating     Rating      `json:"rating,omitempty"`
	Overview   string      `json:"overview,omitempty"`
	MatchScore string      `json:"match_score,omitempty"`
	Badges     []string    `json:"badges,omitempty"`
}

// Key returns the identity used for deduplication and lookups.
func (m MovieRecord) Key() string {
	return m.Title
}

// Rating is a decimal rating that the backend sends either as a JSON number
// (8.8) or as a string ("8.8"). The textual form is kept verbatim.
type Rating string

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*r = ""
		return nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("rating: %w", err)
		}
		*r = Rating(strings.TrimSpace(str))
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("rating: not a number: %q", s)
	}
	*r = Rating(s)
	return nil
}

// MarshalJSON writes numeric ratings as JSON numbers and anything else as a string.
func (r Rating) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(r), 64); err == nil {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

// String implements fmt.Stringer.
func (r Rating) String() string {
	return string(r)
}

// ReleaseYear is a release year the backend sends as 2010, 2010.0 or "2010".
// Zero means unknown. A value that is not a whole number decodes as unknown
// so one odd field does not discard the record.
type ReleaseYear int

// UnmarshalJSON accepts a JSON number, a numeric string, an empty string, or null.
func (y *ReleaseYear) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("year: %w", err)
		}
		s = strings.TrimSpace(str)
	}
	*y = 0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 0 || f > 9999 {
		return nil
	}
	*y = ReleaseYear(f)
	return nil
}

// TitleIndex returns the position of the record whose Key equals key, or -1.
func TitleIndex(records []MovieRecord, key string) int {
	for i := range records {
		if records[i].Key() == key {
			return i
		}
	}
	return -1
}

// RecommendRequest is the JSON payload posted to the backend's /recommend.
// Fields mirror the search form; Year is the slider value as text.
type RecommendRequest struct {
	Query  string `json:"query" validate:"max=200"`
	Mood   string `json:"mood" validate:"max=50"`
	Type   string `json:"type" validate:"max=50"`
	Region string `json:"region" validate:"max=50"`
	Age    string `json:"age" validate:"max=50"`
	Year   string `json:"year" validate:"omitempty,numeric,year_range"`
}

// RecommendResponse is the backend's answer after normalization.
//
// Exactly one of Error and Results is meaningful: a non-empty Error is a
// business error to show to the user, otherwise Results holds at least one
// record in backend order.
type RecommendResponse struct {
	Error   string        `json:"error,omitempty"`
	Results []MovieRecord `json:"results,omitempty"`
}

// Primary returns the first result, which is the one recorded in history.
func (r *RecommendResponse) Primary() (MovieRecord, bool) {
	if r == nil || len(r.Results) == 0 {
		return MovieRecord{}, false
	}
	return r.Results[0], true
}

// ToggleRequest names the record whose watchlist membership flips.
type ToggleRequest struct {
	Title string `json:"title" validate:"required,max=300"`
}
