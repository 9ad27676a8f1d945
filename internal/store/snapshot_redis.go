package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// RedisSnapshotStore mirrors state snapshots into a Redis key.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore wraps a Redis client as a snapshot backend.
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

// Save serializes the state tree and writes it under the fixed slot key.
func (s *RedisSnapshotStore) Save(ctx context.Context, state models.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state snapshot: %w", err)
	}
	if err := s.client.Set(ctx, StateKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save state snapshot: %w", err)
	}
	return nil
}
