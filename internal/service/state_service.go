package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
)

// StateService exposes the whole state tree for clients that hydrate
// themselves in one round trip, plus the reset-to-seed operation.
type StateService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewStateService instantiates StateService.
func NewStateService(st *store.Store, logger *zap.Logger) *StateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateService{store: st, logger: logger}
}

// Snapshot returns a copy of the full state.
func (s *StateService) Snapshot(_ context.Context) models.State {
	return s.store.Snapshot()
}

// Reset discards all data and restores the bundled seed dataset.
func (s *StateService) Reset(ctx context.Context) models.State {
	seeded := store.SeedState()
	s.store.Replace(ctx, seeded)
	s.logger.Info("state reset to seed data")
	return s.store.Snapshot()
}
