// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package api

// Error codes of the JSON API.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeRecommend      = "RECOMMEND_ERROR"
	CodeUpstream       = "UPSTREAM_UNAVAILABLE"
	CodeSubmitInFlight = "SUBMIT_IN_FLIGHT"
	CodeSuperseded     = "SEARCH_SUPERSEDED"
	CodeStaleResult    = "STALE_RESULT"
	CodeUnknownSection = "UNKNOWN_SECTION"
	CodeStorage        = "STORAGE_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
)

// Page notices raised by handlers rather than the controller.
const (
	staleResultNotice = "That result is no longer on screen. Please search again."
	storageNotice     = "Could not update your watchlist right now."
	inFlightNotice    = "A search is already running."
)
