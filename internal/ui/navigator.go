// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/render"
	"github.com/tomtom215/whichkatha/internal/store"
)

// ErrUnknownSection is returned for a section the page does not have.
var ErrUnknownSection = errors.New("unknown section")

// Empty-state messages of the saved lists.
const (
	EmptyWatchlist = "Your watchlist is empty."
	EmptyHistory   = "No history yet. Search for something!"
)

var sections = []string{
	render.SectionBrowse,
	render.SectionResults,
	render.SectionWatchlist,
	render.SectionHistory,
}

// IsSection reports whether id names a page section.
func IsSection(id string) bool {
	for _, s := range sections {
		if s == id {
			return true
		}
	}
	return false
}

// navFor returns the nav link that targets section, or "".
func navFor(section string) string {
	for _, l := range render.DefaultNav() {
		if l.Section == section {
			return l.ID
		}
	}
	return ""
}

func isNavLink(id string) bool {
	for _, l := range render.DefaultNav() {
		if l.ID == id {
			return true
		}
	}
	return false
}

// ListReader reads persisted lists.
type ListReader interface {
	Read(ctx context.Context, profile string, list store.List) []models.MovieRecord
}

// Navigator switches the visible section of a page.
type Navigator struct {
	lists    ListReader
	renderer *render.Renderer
}

// NewNavigator creates a navigator rendering saved lists from lists.
func NewNavigator(lists ListReader, renderer *render.Renderer) *Navigator {
	return &Navigator{lists: lists, renderer: renderer}
}

// ShowSection makes sectionID the only visible section and highlights the
// nav link triggerID. An empty or unknown trigger highlights the link that
// targets the section, if any. Showing the watchlist or history always
// re-renders it from the store.
func (n *Navigator) ShowSection(ctx context.Context, st *AppState, sectionID, triggerID string) error {
	if !IsSection(sectionID) {
		return fmt.Errorf("%w: %q", ErrUnknownSection, sectionID)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	n.show(ctx, st, sectionID, triggerID)
	return nil
}

// show is ShowSection for callers holding st.mu.
func (n *Navigator) show(ctx context.Context, st *AppState, sectionID, triggerID string) {
	st.section = sectionID
	if !isNavLink(triggerID) {
		triggerID = navFor(sectionID)
	}
	st.activeNav = triggerID

	switch sectionID {
	case render.SectionWatchlist:
		n.renderWatchlist(ctx, st)
	case render.SectionHistory:
		n.renderHistory(ctx, st)
	case render.SectionBrowse:
		n.renderRecent(ctx, st)
	}
}

func (n *Navigator) renderWatchlist(ctx context.Context, st *AppState) {
	list := n.lists.Read(ctx, st.profile, store.Watchlist)
	n.renderer.RenderList(st.doc, render.WatchlistArea, list, render.DetailedRemovable, EmptyWatchlist)
}

func (n *Navigator) renderHistory(ctx context.Context, st *AppState) {
	list := n.lists.Read(ctx, st.profile, store.History)
	n.renderer.RenderList(st.doc, render.HistoryArea, list, render.DetailedRemovable, EmptyHistory)
}

func (n *Navigator) renderRecent(ctx context.Context, st *AppState) {
	n.renderer.RenderRow(st.doc, render.RecentRow, n.lists.Read(ctx, st.profile, store.History))
}
