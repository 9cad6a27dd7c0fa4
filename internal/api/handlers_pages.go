// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/render"
	"github.com/tomtom215/whichkatha/internal/ui"
)

// Index starts a fresh page lifetime and renders it.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	st := h.state(r)
	h.controller.NewPage(r.Context(), st)
	h.writePage(w, r, st, http.StatusOK)
}

// Section shows one section of the page. A profile without a loaded page
// gets a fresh one first so deep links render complete.
func (h *Handler) Section(w http.ResponseWriter, r *http.Request) {
	st := h.state(r)
	if !st.Started() {
		h.controller.NewPage(r.Context(), st)
	}

	id := chi.URLParam(r, "id")
	trigger := r.URL.Query().Get("trigger")
	if err := h.controller.Navigator().ShowSection(r.Context(), st, id, trigger); err != nil {
		if errors.Is(err, ui.ErrUnknownSection) {
			st.Notify(render.NoticeBlocking, "That page section does not exist.")
			h.writePage(w, r, st, http.StatusNotFound)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Show section failed")
	}
	h.writePage(w, r, st, http.StatusOK)
}

// SearchForm handles the search form and redirects to the result or back to
// browse.
func (h *Handler) SearchForm(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	st := h.state(r)
	if !st.Started() {
		h.controller.NewPage(r.Context(), st)
	}

	req := models.RecommendRequest{
		Query:  strings.TrimSpace(r.PostForm.Get("query")),
		Mood:   r.PostForm.Get("mood"),
		Type:   r.PostForm.Get("type"),
		Region: r.PostForm.Get("region"),
		Age:    r.PostForm.Get("age"),
		Year:   r.PostForm.Get("year"),
	}

	out, err := h.controller.Submit(r.Context(), st, req)
	switch {
	case errors.Is(err, ui.ErrSubmitInFlight):
		st.Notify(render.NoticeInfo, inFlightNotice)
		redirectSection(w, r, render.SectionBrowse)
	case err != nil:
		redirectSection(w, r, render.SectionBrowse)
	case out.Kind == ui.OutcomeSuccess:
		redirectSection(w, r, render.SectionResults)
	default:
		redirectSection(w, r, render.SectionBrowse)
	}
}

// ToggleForm handles the watchlist button of a result card.
func (h *Handler) ToggleForm(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	st := h.state(r)
	title := r.PostForm.Get("title")

	if _, err := h.controller.ToggleWatchlistFromResults(r.Context(), st, title); err != nil {
		if errors.Is(err, ui.ErrStaleResult) {
			st.Notify(render.NoticeBlocking, staleResultNotice)
		} else {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Watchlist toggle failed")
			st.Notify(render.NoticeBlocking, storageNotice)
		}
	}
	redirectSection(w, r, render.SectionResults)
}

func redirectSection(w http.ResponseWriter, r *http.Request, section string) {
	http.Redirect(w, r, "/sections/"+section, http.StatusSeeOther)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, st *ui.AppState, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := h.renderer.Page(w, st.View()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render page")
	}
}
