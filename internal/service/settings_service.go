package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/internal/timetable"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

// SettingsRequest replaces the school-wide configuration.
type SettingsRequest struct {
	SchoolName     string `json:"schoolName" validate:"required,max=200"`
	WorkdayStart   string `json:"workdayStart" validate:"required"`
	WorkdayEnd     string `json:"workdayEnd" validate:"required"`
	LessonDuration int    `json:"lessonDuration" validate:"required,min=5,max=480"`
	WorkingDays    int    `json:"workingDays" validate:"required,min=1,max=7"`
	DarkMode       bool   `json:"darkMode"`
}

// SettingsService manages school settings.
type SettingsService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService instantiates SettingsService.
func NewSettingsService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: st, validator: validate, logger: logger}
}

// Get returns the current settings.
func (s *SettingsService) Get(_ context.Context) models.Settings {
	return s.store.Snapshot().Settings
}

// Update validates and replaces the settings wholesale.
func (s *SettingsService) Update(ctx context.Context, req SettingsRequest) (*models.Settings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}
	if !timetable.ValidTimeFormat(req.WorkdayStart) || !timetable.ValidTimeFormat(req.WorkdayEnd) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid time format")
	}
	if timetable.ParseMinutes(req.WorkdayEnd) <= timetable.ParseMinutes(req.WorkdayStart) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "workday end must be after start")
	}

	settings := models.Settings{
		SchoolName: strings.TrimSpace(req.SchoolName),
		WorkingHours: models.WorkingHours{
			Start: req.WorkdayStart,
			End:   req.WorkdayEnd,
		},
		LessonDuration: req.LessonDuration,
		WorkingDays:    req.WorkingDays,
		DarkMode:       req.DarkMode,
	}
	s.store.UpdateSettings(ctx, settings)
	s.logger.Info("settings updated", zap.String("school", settings.SchoolName))
	return &settings, nil
}
