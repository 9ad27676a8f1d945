package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/internal/timetable"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
	"github.com/jadvalhub/jadval-api/pkg/spreadsheet"
)

// ColumnMapping assigns spreadsheet column indexes to lesson fields.
// Indexes are zero-based. A nil field means the column is not mapped;
// Note is the only field allowed to stay unmapped.
type ColumnMapping struct {
	Teacher   *int `json:"teacher"`
	Group     *int `json:"group"`
	Classroom *int `json:"classroom"`
	Day       *int `json:"day"`
	StartTime *int `json:"startTime"`
	EndTime   *int `json:"endTime"`
	Note      *int `json:"note"`
}

// PreviewBatch is the staged result of reconciling an uploaded sheet
// against current state. Entities already present are reused by name, so
// the batch contains only what a commit would add.
type PreviewBatch struct {
	Teachers   []models.Teacher   `json:"teachers"`
	Groups     []models.Group     `json:"groups"`
	Classrooms []models.Classroom `json:"classrooms"`
	Lessons    []models.Lesson    `json:"lessons"`
	Errors     []string           `json:"errors"`
}

// ImportService reconciles uploaded timetable spreadsheets into state.
type ImportService struct {
	store   *store.Store
	metrics *MetricsService
	logger  *zap.Logger
}

// NewImportService instantiates ImportService. Metrics may be nil.
func NewImportService(st *store.Store, metrics *MetricsService, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{store: st, metrics: metrics, logger: logger}
}

// ParseSheet reads an uploaded workbook and returns its tabular content
// so the client can present the column-mapping step.
func (s *ImportService) ParseSheet(r io.Reader) (*spreadsheet.TableData, error) {
	table, err := spreadsheet.Parse(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to parse spreadsheet")
	}
	return table, nil
}

// Preview runs the row pipeline over the mapped sheet without touching
// state. Row numbers in error messages are one-based over the input
// rows; the header row is stripped before the rows reach Preview.
func (s *ImportService) Preview(_ context.Context, rows [][]string, mapping ColumnMapping) (*PreviewBatch, error) {
	if err := validateMapping(mapping); err != nil {
		return nil, err
	}

	state := s.store.Snapshot()
	batch := &PreviewBatch{
		Teachers:   []models.Teacher{},
		Groups:     []models.Group{},
		Classrooms: []models.Classroom{},
		Lessons:    []models.Lesson{},
		Errors:     []string{},
	}

	rec := newReconciler(state, batch)
	for i, row := range rows {
		rec.processRow(i+1, row, mapping)
	}

	s.metrics.ObserveImport(len(rows), len(batch.Errors))
	s.logger.Info("import previewed",
		zap.Int("rows", len(rows)),
		zap.Int("lessons", len(batch.Lessons)),
		zap.Int("errors", len(batch.Errors)))
	return batch, nil
}

// Commit applies a previewed batch to state in a single mutation.
func (s *ImportService) Commit(ctx context.Context, batch PreviewBatch) error {
	s.store.ApplyBatch(ctx, batch.Teachers, batch.Groups, batch.Classrooms, batch.Lessons)
	s.logger.Info("import committed",
		zap.Int("teachers", len(batch.Teachers)),
		zap.Int("groups", len(batch.Groups)),
		zap.Int("classrooms", len(batch.Classrooms)),
		zap.Int("lessons", len(batch.Lessons)))
	return nil
}

func validateMapping(mapping ColumnMapping) error {
	required := []*int{mapping.Teacher, mapping.Group, mapping.Classroom, mapping.Day, mapping.StartTime, mapping.EndTime}
	for _, idx := range required {
		if idx == nil || *idx < 0 {
			return appErrors.Clone(appErrors.ErrValidation, "column mapping is incomplete")
		}
	}
	return nil
}

// reconciler tracks entities staged so far so the same name within one
// sheet resolves to one record.
type reconciler struct {
	state models.State
	batch *PreviewBatch
}

func newReconciler(state models.State, batch *PreviewBatch) *reconciler {
	return &reconciler{state: state, batch: batch}
}

// processRow stages one sheet row. Any panic from malformed input is
// converted into a row-scoped error so one bad row never aborts the batch.
func (r *reconciler) processRow(rowNum int, row []string, mapping ColumnMapping) {
	defer func() {
		if p := recover(); p != nil {
			r.batch.Errors = append(r.batch.Errors, fmt.Sprintf("Row %d: %v", rowNum, p))
		}
	}()

	teacherName := cell(row, mapping.Teacher)
	groupName := cell(row, mapping.Group)
	classroomName := cell(row, mapping.Classroom)
	dayRaw := cell(row, mapping.Day)
	startTime := cell(row, mapping.StartTime)
	endTime := cell(row, mapping.EndTime)
	note := cell(row, mapping.Note)

	if teacherName == "" || groupName == "" || classroomName == "" || dayRaw == "" || startTime == "" || endTime == "" {
		r.batch.Errors = append(r.batch.Errors, fmt.Sprintf("Row %d: required fields missing", rowNum))
		return
	}

	// Entities stage as soon as the row names them. A later day or time
	// validation failure drops the lesson, not the staged entities.
	teacherID := r.resolveTeacher(teacherName)
	groupID := r.resolveGroup(groupName)
	classroomID := r.resolveClassroom(classroomName)

	day := models.ResolveDay(dayRaw)
	if day == 0 {
		r.batch.Errors = append(r.batch.Errors, fmt.Sprintf("Row %d: invalid day of week %q", rowNum, dayRaw))
		return
	}

	if !timetable.ValidTimeFormat(startTime) || !timetable.ValidTimeFormat(endTime) {
		r.batch.Errors = append(r.batch.Errors, fmt.Sprintf("Row %d: invalid time format", rowNum))
		return
	}

	r.batch.Lessons = append(r.batch.Lessons, models.Lesson{
		ID:          uuid.NewString(),
		TeacherID:   teacherID,
		GroupID:     groupID,
		ClassroomID: classroomID,
		DayOfWeek:   day,
		StartTime:   startTime,
		EndTime:     endTime,
		Note:        note,
	})
}

func (r *reconciler) resolveTeacher(name string) string {
	for _, t := range r.state.Teachers {
		if strings.EqualFold(strings.TrimSpace(t.FullName), name) {
			return t.ID
		}
	}
	for _, t := range r.batch.Teachers {
		if strings.EqualFold(t.FullName, name) {
			return t.ID
		}
	}
	teacher := models.NewTeacher(uuid.NewString(), name, nil, "")
	r.batch.Teachers = append(r.batch.Teachers, teacher)
	return teacher.ID
}

func (r *reconciler) resolveGroup(name string) string {
	for _, g := range r.state.Groups {
		if strings.EqualFold(strings.TrimSpace(g.Name), name) {
			return g.ID
		}
	}
	for _, g := range r.batch.Groups {
		if strings.EqualFold(g.Name, name) {
			return g.ID
		}
	}
	group := models.NewGroup(uuid.NewString(), name, nil)
	r.batch.Groups = append(r.batch.Groups, group)
	return group.ID
}

func (r *reconciler) resolveClassroom(name string) string {
	for _, c := range r.state.Classrooms {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c.ID
		}
	}
	for _, c := range r.batch.Classrooms {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}
	classroom := models.NewClassroom(uuid.NewString(), name)
	r.batch.Classrooms = append(r.batch.Classrooms, classroom)
	return classroom.ID
}

func cell(row []string, idx *int) string {
	if idx == nil || *idx < 0 || *idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[*idx])
}
