// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/metrics"
	"github.com/tomtom215/whichkatha/internal/models"
)

// List names a persisted list. The values double as storage key suffixes.
type List string

const (
	History   List = "katha_history"
	Watchlist List = "katha_watchlist"
)

// DefaultHistoryCap bounds the history list when no cap is configured.
const DefaultHistoryCap = 20

// ToggleAction reports what ToggleWatchlist did.
type ToggleAction string

const (
	Added   ToggleAction = "added"
	Removed ToggleAction = "removed"
)

// Store implements the list operations on top of a Backend.
type Store struct {
	backend    Backend
	historyCap int
	fallback   bool

	// mu serializes read-modify-write cycles.
	mu sync.Mutex
}

// New wraps backend. A historyCap below 1 selects DefaultHistoryCap.
func New(backend Backend, historyCap int) *Store {
	if historyCap < 1 {
		historyCap = DefaultHistoryCap
	}
	return &Store{backend: backend, historyCap: historyCap}
}

// Backend returns the underlying backend name.
func (s *Store) Backend() string { return s.backend.Name() }

// Degraded reports whether the store is running on the fallback backend.
func (s *Store) Degraded() bool { return s.fallback }

// HistoryCap returns the configured history bound.
func (s *Store) HistoryCap() int { return s.historyCap }

// Close releases the backend.
func (s *Store) Close() error { return s.backend.Close() }

func key(profile string, list List) string {
	return "profile:" + profile + ":" + string(list)
}

// Read returns the stored list, or an empty list when it is absent,
// unreadable or undecodable.
func (s *Store) Read(ctx context.Context, profile string, list List) []models.MovieRecord {
	raw, err := s.backend.Get(ctx, key(profile, list))
	if errors.Is(err, ErrNotFound) {
		return []models.MovieRecord{}
	}
	if err != nil {
		metrics.RecordStoreError("read")
		logging.Ctx(ctx).Warn().Err(err).Str("list", string(list)).Msg("list read failed, using empty list")
		return []models.MovieRecord{}
	}

	var records []models.MovieRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		metrics.RecordCorruptList(string(list))
		logging.Ctx(ctx).Warn().Err(err).Str("list", string(list)).Msg("stored list is corrupt, using empty list")
		return []models.MovieRecord{}
	}
	if records == nil {
		return []models.MovieRecord{}
	}
	return records
}

// Write replaces the stored list.
func (s *Store) Write(ctx context.Context, profile string, list List, records []models.MovieRecord) error {
	if records == nil {
		records = []models.MovieRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", list, err)
	}
	if err := s.backend.Set(ctx, key(profile, list), raw); err != nil {
		metrics.RecordStoreError("write")
		return fmt.Errorf("write %s: %w", list, err)
	}
	return nil
}

// AddToHistory prepends record unless a record with the same title is
// already present, then truncates to the history cap. It reports whether
// the list changed.
func (s *Store) AddToHistory(ctx context.Context, profile string, record models.MovieRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.Read(ctx, profile, History)
	if models.TitleIndex(history, record.Key()) >= 0 {
		metrics.RecordListMutation(string(History), "skipped")
		return false, nil
	}

	next := make([]models.MovieRecord, 0, min(len(history)+1, s.historyCap))
	next = append(next, record)
	for _, r := range history {
		if len(next) == s.historyCap {
			break
		}
		next = append(next, r)
	}

	if err := s.Write(ctx, profile, History, next); err != nil {
		return false, err
	}
	metrics.RecordListMutation(string(History), "added")
	return true, nil
}

// ToggleWatchlist removes the record with the same title if present,
// otherwise prepends record. The list is written either way.
func (s *Store) ToggleWatchlist(ctx context.Context, profile string, record models.MovieRecord) (ToggleAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.Read(ctx, profile, Watchlist)
	action := Added
	if i := models.TitleIndex(list, record.Key()); i >= 0 {
		list = append(list[:i], list[i+1:]...)
		action = Removed
	} else {
		list = append([]models.MovieRecord{record}, list...)
	}

	if err := s.Write(ctx, profile, Watchlist, list); err != nil {
		return "", err
	}
	metrics.RecordListMutation(string(Watchlist), string(action))
	return action, nil
}

type collector interface {
	RunGC(ctx context.Context) error
}

// CollectGarbage runs backend maintenance when the backend supports it.
func (s *Store) CollectGarbage(ctx context.Context) error {
	if c, ok := s.backend.(collector); ok {
		return c.RunGC(ctx)
	}
	return nil
}
