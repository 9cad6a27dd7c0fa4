// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/metrics"
	"github.com/tomtom215/whichkatha/internal/models"
	"github.com/tomtom215/whichkatha/internal/render"
	"github.com/tomtom215/whichkatha/internal/store"
	"github.com/tomtom215/whichkatha/internal/validation"
)

var (
	// ErrSubmitInFlight is returned when a search is already running for
	// the profile.
	ErrSubmitInFlight = errors.New("search already in progress")

	// ErrStaleResult is returned when a watchlist toggle names a record
	// that is not among the current results.
	ErrStaleResult = errors.New("record is not in the current results")

	// ErrSearchSuperseded is returned when the page was reloaded while the
	// search was running. Its answer is discarded.
	ErrSearchSuperseded = errors.New("page reloaded during search")
)

// User-facing messages.
const (
	ConnectionFailedMessage = "Connection Failed. Please try again."
	TrendingUnavailable     = "Trending unavailable right now."
	AddedMessage            = "Added to watchlist"
	RemovedMessage          = "Removed from watchlist"
)

// Recommender is the recommendation backend.
type Recommender interface {
	Recommend(ctx context.Context, req models.RecommendRequest) (*models.RecommendResponse, error)
	Trending(ctx context.Context) ([]models.MovieRecord, error)
}

// Lists is the persisted list store.
type Lists interface {
	ListReader
	AddToHistory(ctx context.Context, profile string, record models.MovieRecord) (bool, error)
	ToggleWatchlist(ctx context.Context, profile string, record models.MovieRecord) (store.ToggleAction, error)
}

// OutcomeKind classifies a finished submission.
type OutcomeKind string

const (
	// OutcomeSuccess means results were shown.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeRejected means the backend answered with an error message.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeFailed means the backend could not be reached or understood.
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome is the result of a submission that reached the backend.
type Outcome struct {
	Kind    OutcomeKind
	Results []models.MovieRecord
	// Message is the notice shown to the user for rejected and failed
	// submissions.
	Message string
	// Err is the transport or decode error behind a failed submission.
	Err error
}

// Controller runs searches and watchlist toggles against a page state.
type Controller struct {
	backend  Recommender
	lists    Lists
	renderer *render.Renderer
	nav      *Navigator
}

// NewController wires a controller. The navigator shares lists and renderer.
func NewController(backend Recommender, lists Lists, renderer *render.Renderer) *Controller {
	return &Controller{
		backend:  backend,
		lists:    lists,
		renderer: renderer,
		nav:      NewNavigator(lists, renderer),
	}
}

// Navigator returns the controller's section navigator.
func (c *Controller) Navigator() *Navigator { return c.nav }

// NewPage starts a fresh page lifetime for st: results are cleared, the
// browse section is shown, saved lists are rendered and trending is loaded.
func (c *Controller) NewPage(ctx context.Context, st *AppState) {
	st.mu.Lock()
	st.reset()
	st.started = true
	c.nav.renderWatchlist(ctx, st)
	c.nav.renderHistory(ctx, st)
	c.nav.show(ctx, st, render.SectionBrowse, "")
	st.mu.Unlock()

	c.LoadTrending(ctx, st)
}

// LoadTrending fills the trending row. An empty answer or a failure renders
// a neutral placeholder and raises no notice.
func (c *Controller) LoadTrending(ctx context.Context, st *AppState) {
	records, err := c.backend.Trending(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Trending unavailable")
		records = nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	c.renderer.RenderRowOr(st.doc, render.TrendingRow, records, TrendingUnavailable)
}

// Submit runs one search. It returns ErrSubmitInFlight while another search
// for the same state is running, a *validation.RequestValidationError for
// invalid input and ErrSearchSuperseded when the page was reloaded before
// the backend answered. Every other result, including backend failures, is
// an Outcome. The submit control is restored before Submit returns.
func (c *Controller) Submit(ctx context.Context, st *AppState, req models.RecommendRequest) (Outcome, error) {
	st.mu.Lock()
	st.form = formValues(req)
	if st.submit.Disabled {
		st.mu.Unlock()
		metrics.RecordSearch("in_flight")
		return Outcome{}, ErrSubmitInFlight
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		st.notify(render.NoticeBlocking, verr.Error())
		st.mu.Unlock()
		metrics.RecordSearch("invalid")
		return Outcome{}, verr
	}
	st.submit = render.SubmitControl{Label: SubmittingLabel, Disabled: true}
	generation := st.generation
	st.mu.Unlock()

	resp, err := c.backend.Recommend(ctx, req)

	st.mu.Lock()
	defer st.mu.Unlock()

	// A reload started a new page with its own submit control.
	if st.generation != generation {
		logging.Ctx(ctx).Debug().Msg("Discarding search answer from a previous page")
		metrics.RecordSearch("superseded")
		return Outcome{}, ErrSearchSuperseded
	}
	st.submit = render.SubmitControl{Label: SubmitLabel}

	switch {
	case err != nil:
		logging.Ctx(ctx).Warn().Err(err).Msg("Search failed")
		st.notify(render.NoticeBlocking, ConnectionFailedMessage)
		metrics.RecordSearch(string(OutcomeFailed))
		return Outcome{Kind: OutcomeFailed, Message: ConnectionFailedMessage, Err: err}, nil

	case resp.Error != "":
		st.notify(render.NoticeBlocking, resp.Error)
		metrics.RecordSearch(string(OutcomeRejected))
		return Outcome{Kind: OutcomeRejected, Message: resp.Error}, nil
	}

	st.results = resp.Results
	if primary, ok := resp.Primary(); ok {
		if _, herr := c.lists.AddToHistory(ctx, st.profile, primary); herr != nil {
			logging.Ctx(ctx).Warn().Err(herr).Str("title", logging.SanitizeValue(primary.Title)).
				Msg("Could not record search in history")
		}
	}
	st.doc.Set(render.ResultArea, c.renderer.RenderCards(st.results, render.DetailedAddable))
	c.nav.show(ctx, st, render.SectionResults, "")

	metrics.RecordSearch(string(OutcomeSuccess))
	return Outcome{Kind: OutcomeSuccess, Results: slices.Clone(st.results)}, nil
}

// ToggleWatchlistFromResults flips watchlist membership of the current
// result titled title and queues a notice. A title that is not among the
// current results yields ErrStaleResult.
func (c *Controller) ToggleWatchlistFromResults(ctx context.Context, st *AppState, title string) (store.ToggleAction, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	i := models.TitleIndex(st.results, title)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrStaleResult, title)
	}

	action, err := c.lists.ToggleWatchlist(ctx, st.profile, st.results[i])
	if err != nil {
		return "", fmt.Errorf("toggle watchlist: %w", err)
	}

	msg := AddedMessage
	if action == store.Removed {
		msg = RemovedMessage
	}
	st.notify(render.NoticeInfo, msg)
	c.nav.renderWatchlist(ctx, st)
	return action, nil
}
