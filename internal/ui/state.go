// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

// Package ui owns the per-profile page state and the two components that
// drive it: the section Navigator and the search Controller.
//
// Each browser profile gets one AppState from the Registry. The state holds
// what a single page lifetime would: the current results, the visible
// section, the submit control, pending notices and the rendered containers.
// Every operation takes the state explicitly; there is no package-level
// page state.
package ui

import (
	"slices"
	"sync"

	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/render"
)

// Labels of the search button.
const (
	SubmitLabel     = "Find My Movie"
	SubmittingLabel = "🔍 Searching..."
)

// AppState is the page state of one profile. It is safe for concurrent use.
type AppState struct {
	mu sync.Mutex

	profile   string
	started   bool
	results   []models.MovieRecord
	section   string
	activeNav string
	submit    render.SubmitControl
	notices   []render.Notice
	form      render.FormValues
	doc       *render.Document

	// generation counts page lifetimes. A search applies its answer only
	// to the lifetime it started in.
	generation uint64
}

// NewAppState returns the state of a fresh page for profile.
func NewAppState(profile string) *AppState {
	st := &AppState{profile: profile}
	st.reset()
	return st
}

// reset starts a new page lifetime. Pending notices survive. Callers hold mu.
func (s *AppState) reset() {
	s.generation++
	s.results = nil
	s.section = render.SectionBrowse
	s.activeNav = navFor(render.SectionBrowse)
	s.submit = render.SubmitControl{Label: SubmitLabel}
	s.form = render.DefaultForm()
	s.doc = render.NewPageDocument()
}

// Profile returns the owning profile id.
func (s *AppState) Profile() string { return s.profile }

// CurrentResults returns a copy of the last successful search's results.
func (s *AppState) CurrentResults() []models.MovieRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.results)
}

// Section returns the visible section.
func (s *AppState) Section() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.section
}

// ActiveNav returns the highlighted nav link id, empty when none is.
func (s *AppState) ActiveNav() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeNav
}

// Submit returns the search button state.
func (s *AppState) Submit() render.SubmitControl {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit
}

// Document returns the rendered containers.
func (s *AppState) Document() *render.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Notices returns pending notices without consuming them.
func (s *AppState) Notices() []render.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notices)
}

// Started reports whether a page has been loaded for this state.
func (s *AppState) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Notify queues a notice for the next rendered page.
func (s *AppState) Notify(kind render.NoticeKind, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify(kind, msg)
}

func (s *AppState) notify(kind render.NoticeKind, msg string) {
	s.notices = append(s.notices, render.Notice{Kind: kind, Message: msg})
}

// View snapshots the state for rendering and consumes pending notices.
func (s *AppState) View() render.PageView {
	s.mu.Lock()
	defer s.mu.Unlock()

	nav := render.DefaultNav()
	for i := range nav {
		nav[i].Active = nav[i].ID == s.activeNav
	}
	notices := s.notices
	s.notices = nil

	return render.PageView{
		Section: s.section,
		Nav:     nav,
		Notices: notices,
		Form:    s.form,
		Options: render.DefaultOptions(),
		Submit:  s.submit,
		Doc:     s.doc,
	}
}

func formValues(req models.RecommendRequest) render.FormValues {
	return render.FormValues{
		Query:  req.Query,
		Mood:   req.Mood,
		Type:   req.Type,
		Region: req.Region,
		Age:    req.Age,
		Year:   req.Year,
	}
}
