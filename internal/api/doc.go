// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

/*
Package api serves the Which Katha page and its JSON API.

Page routes follow post-redirect-get: form posts mutate the profile's page
state and answer 303 See Other to a section URL, which renders the page.

	GET  /                   fresh page lifetime
	POST /search             search form
	POST /watchlist/toggle   watchlist button of a result card
	GET  /sections/{id}      show a section (?trigger=<nav link id>)

JSON routes live under /api/v1 and use the models.APIResponse envelope:

	POST /api/v1/search
	GET  /api/v1/history
	GET  /api/v1/watchlist
	POST /api/v1/watchlist/toggle
	GET  /api/v1/health
	GET  /api/v1/health/live

Prometheus metrics are served on /metrics. When the demo backend is enabled
its /recommend and /trending routes are mounted on the same router.

Every page and API request carries a profile cookie; the profile selects
both the page state in the ui.Registry and the namespace of the persisted
lists.
*/
package api
