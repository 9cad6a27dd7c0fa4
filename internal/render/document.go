// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package render

import (
	"html/template"
	"sync"

	"github.com/tomtom215/whichkatha/internal/models"
)

// Container ids of the page document.
const (
	TrendingRow   = "trending-row"
	RecentRow     = "recent-row"
	ResultArea    = "result-area"
	WatchlistArea = "watchlist-area"
	HistoryArea   = "history-area"
)

// PageContainers lists every container the full page has.
var PageContainers = []string{TrendingRow, RecentRow, ResultArea, WatchlistArea, HistoryArea}

// Document is the mutable content of a page's named containers.
type Document struct {
	mu       sync.RWMutex
	contents map[string]template.HTML
}

// NewDocument creates a document with the given empty containers.
func NewDocument(ids ...string) *Document {
	d := &Document{contents: make(map[string]template.HTML, len(ids))}
	for _, id := range ids {
		d.contents[id] = ""
	}
	return d
}

// NewPageDocument creates a document with every page container.
func NewPageDocument() *Document {
	return NewDocument(PageContainers...)
}

// Has reports whether the container exists.
func (d *Document) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.contents[id]
	return ok
}

// Set replaces a container's content. It returns false, changing nothing,
// when the container does not exist.
func (d *Document) Set(id string, html template.HTML) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.contents[id]; !ok {
		return false
	}
	d.contents[id] = html
	return true
}

// Content returns a container's content, empty for unknown containers.
func (d *Document) Content(id string) template.HTML {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.contents[id]
}

// Filled reports whether the container exists and has content.
func (d *Document) Filled(id string) bool {
	return d.Content(id) != ""
}

// RenderRow replaces the container content with one compact card per record,
// in input order. Unknown containers are left alone and false is returned.
func (r *Renderer) RenderRow(doc *Document, containerID string, records []models.MovieRecord) bool {
	return doc.Set(containerID, r.RenderCards(records, Compact))
}

// RenderRowOr is RenderRow with a placeholder for empty input.
func (r *Renderer) RenderRowOr(doc *Document, containerID string, records []models.MovieRecord, placeholder string) bool {
	if len(records) == 0 {
		return doc.Set(containerID, r.Placeholder(placeholder))
	}
	return r.RenderRow(doc, containerID, records)
}

// RenderList fills a container with detailed cards, or the placeholder when
// there are none.
func (r *Renderer) RenderList(doc *Document, containerID string, records []models.MovieRecord, mode Mode, placeholder string) bool {
	if len(records) == 0 {
		return doc.Set(containerID, r.Placeholder(placeholder))
	}
	return doc.Set(containerID, r.RenderCards(records, mode))
}
