// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package render turns movie records into page markup.

Three layers share one html/template set embedded from templates/:

  - Cards: RenderCard maps a single record and a Mode to an HTML fragment.
  - Rows: RenderRow fills a named container of a Document with compact cards.
  - Pages: Page writes the full document for a PageView.

All output goes through html/template, so titles, overviews and poster URLs
are escaped for their context. Lookup and trailer links are built from the
search base URLs in Links.

A Document only holds the containers it was created with. Rendering into a
container the document does not have is a silent no-op, which lets callers
render unconditionally into partial pages.
*/
package render
