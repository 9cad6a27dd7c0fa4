// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Section ids of the page.
const (
	SectionBrowse    = "browse"
	SectionResults   = "results"
	SectionWatchlist = "watchlist"
	SectionHistory   = "history"
)

// Year slider bounds and default.
const (
	YearMin     = 1950
	YearMax     = 2025
	YearDefault = 2000
)

// NavLink is one entry of the top navigation.
type NavLink struct {
	ID      string
	Section string
	Label   string
	Active  bool
}

// DefaultNav returns the navigation links in display order, none active.
func DefaultNav() []NavLink {
	return []NavLink{
		{ID: "nav-browse", Section: SectionBrowse, Label: "Browse"},
		{ID: "nav-watchlist", Section: SectionWatchlist, Label: "Watchlist"},
		{ID: "nav-history", Section: SectionHistory, Label: "History"},
	}
}

// NoticeKind distinguishes blocking alerts from informational toasts.
type NoticeKind string

const (
	NoticeBlocking NoticeKind = "blocking"
	NoticeInfo     NoticeKind = "info"
)

// Notice is a message shown once at the top of the page.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// FormValues echoes the search form back into the page.
type FormValues struct {
	Query  string
	Mood   string
	Type   string
	Region string
	Age    string
	Year   string
}

// DefaultForm is the form of a fresh page.
func DefaultForm() FormValues {
	return FormValues{Year: strconv.Itoa(YearDefault)}
}

// FormOptions are the choices offered by the form's selects.
type FormOptions struct {
	Moods   []string
	Types   []string
	Regions []string
	Ages    []string
	YearMin int
	YearMax int
}

// DefaultOptions returns the built-in select choices.
func DefaultOptions() FormOptions {
	return FormOptions{
		Moods:   []string{"Happy", "Sad", "Thrilling", "Romantic", "Mind-bending", "Chill"},
		Types:   []string{"Movie", "Series", "Anime"},
		Regions: []string{"Hollywood", "Bollywood", "Tollywood", "Korean", "Japanese"},
		Ages:    []string{"Family", "Teen", "Adult"},
		YearMin: YearMin,
		YearMax: YearMax,
	}
}

// SubmitControl is the state of the search button.
type SubmitControl struct {
	Label    string
	Disabled bool
}

// PageView is everything the page template needs.
type PageView struct {
	Section string
	Nav     []NavLink
	Notices []Notice
	Form    FormValues
	Options FormOptions
	Submit  SubmitControl
	Doc     *Document
}

// Visible reports whether a section is the one shown.
func (v PageView) Visible(section string) bool {
	return v.Section == section
}

type selectField struct {
	Name     string
	Label    string
	Selected string
	Options  []string
}

func newSelectField(name, label, selected string, options []string) selectField {
	return selectField{Name: name, Label: label, Selected: selected, Options: options}
}

// Page writes the full page. The page is rendered to a buffer first so a
// template failure never leaves a half-written response.
func (r *Renderer) Page(w io.Writer, view PageView) error {
	if view.Doc == nil {
		view.Doc = NewPageDocument()
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
