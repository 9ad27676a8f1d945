package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// PostgresSnapshotStore mirrors state snapshots into a single-row slot table.
type PostgresSnapshotStore struct {
	db *sqlx.DB
}

// NewPostgresSnapshotStore wraps a database handle as a snapshot backend.
func NewPostgresSnapshotStore(db *sqlx.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{db: db}
}

// Save upserts the serialized state tree under the fixed slot key.
func (s *PostgresSnapshotStore) Save(ctx context.Context, state models.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state snapshot: %w", err)
	}

	const query = `INSERT INTO state_snapshots (slot_key, payload, updated_at) VALUES ($1, $2, $3) ON CONFLICT (slot_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, StateKey, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("save state snapshot: %w", err)
	}
	return nil
}
