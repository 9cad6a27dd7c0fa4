// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package store

import (
	"fmt"

	"github.com/tomtom215/whichkatha/internal/config"
	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/metrics"
)

// Backend names accepted in configuration.
const (
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Open builds the configured backend without fallback.
func Open(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case BackendBadger:
		return OpenBadger(cfg.Path)
	case BackendMemory, "":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// OpenWithFallback returns a Store on the configured backend, degrading to
// the in-memory backend when it cannot be opened. Lists kept in the
// fallback do not survive a restart.
func OpenWithFallback(cfg config.StorageConfig, historyCap int) *Store {
	backend, err := Open(cfg)
	fallback := false
	if err != nil {
		logging.Warn().Err(err).Str("backend", cfg.Backend).
			Msg("list storage unavailable, falling back to in-memory lists")
		backend = NewMemoryBackend()
		fallback = true
	}

	metrics.SetStoreBackend(backend.Name(), fallback)
	logging.Info().Str("backend", backend.Name()).Bool("fallback", fallback).Msg("list store ready")

	s := New(backend, historyCap)
	s.fallback = fallback
	return s
}
