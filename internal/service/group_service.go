package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

// GroupRequest represents payload for creating or replacing a group.
type GroupRequest struct {
	Name  string  `json:"name" validate:"required"`
	Level *string `json:"level" validate:"omitempty,max=50"`
}

// GroupService orchestrates group operations.
type GroupService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGroupService constructs a GroupService.
func NewGroupService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *GroupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{store: st, validator: validate, logger: logger}
}

// List returns all groups.
func (s *GroupService) List(context.Context) []models.Group {
	return s.store.Snapshot().Groups
}

// Create registers a new group.
func (s *GroupService) Create(ctx context.Context, req GroupRequest) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}

	group := models.NewGroup(uuid.NewString(), strings.TrimSpace(req.Name), normalizeOptional(req.Level))
	s.store.AddGroup(ctx, group)
	return &group, nil
}

// Update replaces an existing group record.
func (s *GroupService) Update(ctx context.Context, id string, req GroupRequest) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}

	group := models.NewGroup(id, strings.TrimSpace(req.Name), normalizeOptional(req.Level))
	if !s.store.UpdateGroup(ctx, group) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	return &group, nil
}

// Delete removes a group; the store cascades dependent lessons.
func (s *GroupService) Delete(ctx context.Context, id string) (int, error) {
	dependents := len(s.store.LessonsReferencing(id))
	if !s.store.DeleteGroup(ctx, id) {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	return dependents, nil
}
