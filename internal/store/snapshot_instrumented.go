package store

import (
	"context"
	"time"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// MirrorObserver receives timing for snapshot writes.
type MirrorObserver interface {
	ObserveMirrorSave(backend string, duration time.Duration, err error)
}

// InstrumentedSnapshots wraps a SnapshotStore with save-latency metrics.
type InstrumentedSnapshots struct {
	inner    SnapshotStore
	backend  string
	observer MirrorObserver
}

// WithMetrics decorates a snapshot store. A nil observer returns the inner
// store unchanged.
func WithMetrics(inner SnapshotStore, backend string, observer MirrorObserver) SnapshotStore {
	if observer == nil {
		return inner
	}
	return &InstrumentedSnapshots{inner: inner, backend: backend, observer: observer}
}

// Save forwards to the wrapped store and records the attempt.
func (s *InstrumentedSnapshots) Save(ctx context.Context, state models.State) error {
	start := time.Now()
	err := s.inner.Save(ctx, state)
	s.observer.ObserveMirrorSave(s.backend, time.Since(start), err)
	return err
}
