// Package store owns the in-memory application state tree and mirrors every
// change to a durable snapshot slot. Mutation follows the single-writer,
// full-replace model: read current state, compute the next state, swap it in
// atomically under one mutex.
package store

import (
	"context"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// StateKey is the fixed durable slot the whole state tree is written under.
const StateKey = "schedule-app-state"

// SnapshotStore persists whole-state snapshots. Writes are fire-and-forget
// from the caller's perspective: a failed save is logged and never blocks
// the in-memory mutation. Startup always re-seeds from the bundled dataset,
// so the slot is write-only during normal operation and exists for manual
// inspection and export.
type SnapshotStore interface {
	Save(ctx context.Context, state models.State) error
}

// NopSnapshotStore discards snapshots. Used when no mirror backend is
// configured.
type NopSnapshotStore struct{}

// Save implements SnapshotStore.
func (NopSnapshotStore) Save(context.Context, models.State) error { return nil }
