// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

type countingGC struct {
	runs atomic.Int32
	err  error
}

func (c *countingGC) CollectGarbage(context.Context) error {
	c.runs.Add(1)
	return c.err
}

func TestStoreGCService_Disabled(t *testing.T) {
	t.Parallel()
	gc := &countingGC{}

	err := NewStoreGCService(gc, 0).Serve(context.Background())

	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() = %v, want suture.ErrDoNotRestart", err)
	}
	if gc.runs.Load() != 0 {
		t.Error("disabled service collected garbage")
	}
}

func TestStoreGCService_RunsOnInterval(t *testing.T) {
	t.Parallel()

	for _, gcErr := range []error{nil, errors.New("value log busy")} {
		gc := &countingGC{err: gcErr}
		svc := NewStoreGCService(gc, 5*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		deadline := time.After(2 * time.Second)
		for gc.runs.Load() < 3 {
			select {
			case <-deadline:
				t.Fatalf("only %d runs (gc error %v)", gc.runs.Load(), gcErr)
			case <-time.After(5 * time.Millisecond):
			}
		}
		cancel()

		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	}
	if NewStoreGCService(&countingGC{}, time.Second).String() != "store-gc" {
		t.Error("unexpected String()")
	}
}
