// Package repository publishes the current league snapshot. Refresh is the
// only writer; reads are lock-free pointer loads.
package repository

import (
	"sync/atomic"
	"time"

	"github.com/okian/execap/internal/domain/league"
	"github.com/okian/execap/pkg/metrics"
)

// SnapshotStore holds the snapshot currently being served. A Swap replaces
// the whole snapshot atomically: readers see either the old or the new view,
// never a mix.
type SnapshotStore struct {
	current atomic.Pointer[league.Snapshot]
}

// NewSnapshotStore creates an empty store. Current returns nil until the
// first Swap.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current returns the snapshot being served, or nil before the first Swap.
func (s *SnapshotStore) Current() *league.Snapshot {
	return s.current.Load()
}

// Ready reports whether a snapshot has been published.
func (s *SnapshotStore) Ready() bool {
	return s.current.Load() != nil
}

// Swap publishes next and returns the snapshot it replaced. buildDuration is
// how long the snapshot took to build, recorded with the swap metrics.
func (s *SnapshotStore) Swap(next *league.Snapshot, buildDuration time.Duration) (*league.Snapshot, error) {
	if next == nil {
		return nil, ErrNilSnapshot
	}
	prev := s.current.Swap(next)
	metrics.RecordSnapshotSwap(float64(buildDuration.Milliseconds()))
	return prev, nil
}
