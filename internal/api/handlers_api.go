// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/whichkatha/internal/middleware"
	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/store"
	"github.com/tomtom215/whichkatha/internal/ui"
	"github.com/tomtom215/whichkatha/internal/validation"
)

// Search runs a search for the profile and returns the results.
//
// Responses: 200 results, 400 invalid body, 409 search in flight or
// superseded by a page reload, 422 the backend answered with an error
// message, 502 backend unavailable.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}

	out, err := h.controller.Submit(r.Context(), h.state(r), req)
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondAPIError(w, http.StatusBadRequest, fromValidation(verr))
		return
	case errors.Is(err, ui.ErrSubmitInFlight):
		respondError(w, r, http.StatusConflict, CodeSubmitInFlight, "A search is already running", nil)
		return
	case errors.Is(err, ui.ErrSearchSuperseded):
		respondError(w, r, http.StatusConflict, CodeSuperseded, "The page was reloaded during the search", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, CodeUpstream, "Search failed", err)
		return
	}

	switch out.Kind {
	case ui.OutcomeRejected:
		respondError(w, r, http.StatusUnprocessableEntity, CodeRecommend, out.Message, nil)
	case ui.OutcomeFailed:
		respondError(w, r, http.StatusBadGateway, CodeUpstream, out.Message, out.Err)
	default:
		respondData(w, http.StatusOK, models.SearchResult{Results: out.Results}, start)
	}
}

// History returns the profile's history, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, store.History)
}

// Watchlist returns the profile's watchlist, newest first.
func (h *Handler) Watchlist(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, store.Watchlist)
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, list store.List) {
	start := time.Now()
	records := h.store.Read(r.Context(), middleware.ProfileID(r.Context()), list)
	respondData(w, http.StatusOK, records, start)
}

// ToggleWatchlist flips watchlist membership of a current result.
//
// Responses: 200 with the action, 400 invalid body, 409 the title is not in
// the current results, 500 the store rejected the write.
func (h *Handler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	st := h.state(r)
	action, err := h.controller.ToggleWatchlistFromResults(r.Context(), st, req.Title)
	switch {
	case errors.Is(err, ui.ErrStaleResult):
		respondError(w, r, http.StatusConflict, CodeStaleResult, "Record is not in the current results", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, CodeStorage, "Could not update the watchlist", err)
		return
	}

	result := models.ToggleResult{Action: string(action)}
	results := st.CurrentResults()
	if i := models.TitleIndex(results, req.Title); i >= 0 {
		result.Record = results[i]
	}
	respondData(w, http.StatusOK, result, start)
}
