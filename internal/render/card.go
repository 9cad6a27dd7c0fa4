// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mode selects how much of a record a card shows.
type Mode int

const (
	// Compact is the mini card used in horizontal rows.
	Compact Mode = iota
	// DetailedAddable is the full card for live search results, with a
	// watchlist toggle bound to the record title.
	DetailedAddable
	// DetailedRemovable is the full card for saved lists, with an external
	// lookup link in place of the toggle.
	DetailedRemovable
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case DetailedAddable:
		return "detailed-addable"
	case DetailedRemovable:
		return "detailed-removable"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Links holds the external search endpoints cards link to. Both are
// prefixes the escaped query is appended to.
type Links struct {
	TrailerSearchURL string
	LookupSearchURL  string
}

// Renderer renders cards, rows and pages. It is safe for concurrent use.
type Renderer struct {
	links Links
	tmpl  *template.Template
}

// New parses the embedded templates. It panics if they are malformed, which
// can only happen on a broken build.
func New(links Links) *Renderer {
	r := &Renderer{links: links}
	r.tmpl = template.Must(template.New("whichkatha").Funcs(template.FuncMap{
		"trailerURL":  r.TrailerURL,
		"lookupURL":   r.LookupURL,
		"selectField": newSelectField,
	}).ParseFS(templateFS, "templates/*.html"))
	return r
}

// TrailerURL is the external trailer search for a title.
func (r *Renderer) TrailerURL(title string) string {
	return searchURL(r.links.TrailerSearchURL, title+" trailer")
}

// LookupURL is the external lookup for a title.
func (r *Renderer) LookupURL(title string) string {
	return searchURL(r.links.LookupSearchURL, title+" movie")
}

func searchURL(base, q string) string {
	return base + url.QueryEscape(strings.TrimSpace(q))
}

type detailedCard struct {
	Record  models.MovieRecord
	Addable bool
}

// RenderCard returns the markup of one record in the given mode.
func (r *Renderer) RenderCard(rec models.MovieRecord, mode Mode) template.HTML {
	var (
		name string
		data any
	)
	switch mode {
	case DetailedAddable, DetailedRemovable:
		name, data = "card-detailed", detailedCard{Record: rec, Addable: mode == DetailedAddable}
	default:
		name, data = "card-compact", rec
	}
	return r.execute(name, data)
}

// RenderCards concatenates the cards of records in order.
func (r *Renderer) RenderCards(records []models.MovieRecord, mode Mode) template.HTML {
	var b strings.Builder
	for i := range records {
		b.WriteString(string(r.RenderCard(records[i], mode)))
	}
	return template.HTML(b.String()) //nolint:gosec // fragments come from html/template
}

// Placeholder renders a neutral empty-state message.
func (r *Renderer) Placeholder(msg string) template.HTML {
	return r.execute("placeholder", msg)
}

func (r *Renderer) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logging.Error().Err(err).Str("template", name).Msg("Template execution failed")
		return ""
	}
	return template.HTML(buf.String()) //nolint:gosec // produced by html/template
}
