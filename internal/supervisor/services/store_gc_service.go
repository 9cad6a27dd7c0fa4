// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package services

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/whichkatha/internal/logging"
)

// GarbageCollector is satisfied by *store.Store.
type GarbageCollector interface {
	CollectGarbage(ctx context.Context) error
}

// StoreGCService reclaims store space on a fixed interval.
type StoreGCService struct {
	store    GarbageCollector
	interval time.Duration
}

// NewStoreGCService creates the service. A non-positive interval disables it.
func NewStoreGCService(store GarbageCollector, interval time.Duration) *StoreGCService {
	return &StoreGCService{store: store, interval: interval}
}

// Serve runs a collection every interval until ctx is canceled. Collection
// errors are logged and the loop continues. A disabled service returns
// suture.ErrDoNotRestart at once.
func (s *StoreGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.CollectGarbage(ctx); err != nil {
				logging.Warn().Err(err).Msg("Store garbage collection failed")
				continue
			}
			logging.Debug().Dur("took", time.Since(start)).Msg("Store garbage collection finished")
		}
	}
}

// String implements fmt.Stringer.
func (s *StoreGCService) String() string {
	return "store-gc"
}
