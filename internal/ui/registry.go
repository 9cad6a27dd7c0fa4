// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package ui

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/metrics"
)

// Registry holds the AppState of recently active profiles. The least
// recently used state is dropped once the registry is full; the profile's
// persisted lists are unaffected and the next visit starts a fresh page.
type Registry struct {
	states *lru.Cache[string, *AppState]
}

// NewRegistry creates a registry bounded to size profiles.
func NewRegistry(size int) (*Registry, error) {
	states, err := lru.NewWithEvict(size, func(profile string, _ *AppState) {
		logging.Debug().Str("profile", profile).Msg("Evicted page state")
	})
	if err != nil {
		return nil, fmt.Errorf("create profile registry: %w", err)
	}
	return &Registry{states: states}, nil
}

// Get returns the state of profile, creating it on first use.
func (r *Registry) Get(profile string) *AppState {
	if st, ok := r.states.Get(profile); ok {
		return st
	}
	st := NewAppState(profile)
	if prev, found, _ := r.states.PeekOrAdd(profile, st); found {
		st = prev
	}
	metrics.SetActiveProfiles(r.states.Len())
	return st
}

// Len returns the number of resident states.
func (r *Registry) Len() int {
	return r.states.Len()
}
