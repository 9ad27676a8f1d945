package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/internal/timetable"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
	"github.com/jadvalhub/jadval-api/pkg/export"
)

var exportHeaders = []string{"O'qituvchi", "Guruh", "Xona", "Kun", "Boshlanishi", "Tugashi", "Izoh"}

// ExportService renders the timetable as downloadable files.
type ExportService struct {
	store  *store.Store
	excel  *export.ExcelExporter
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService instantiates ExportService.
func NewExportService(st *store.Store, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		store:  st,
		excel:  export.NewExcelExporter(),
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// Excel renders the full timetable workbook, one sheet per weekday that
// has lessons.
func (s *ExportService) Excel(_ context.Context) ([]byte, error) {
	state := s.store.Snapshot()
	byDay := map[int][]models.Lesson{}
	for _, lesson := range state.Lessons {
		byDay[lesson.DayOfWeek] = append(byDay[lesson.DayOfWeek], lesson)
	}

	sheets := []export.Sheet{}
	for day := 1; day <= 7; day++ {
		lessons := byDay[day]
		if len(lessons) == 0 {
			continue
		}
		sheets = append(sheets, export.Sheet{
			Name: models.DayName(day),
			Data: export.Dataset{Headers: exportHeaders, Rows: s.project(state, lessons)},
		})
	}

	payload, err := s.excel.Render(sheets)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render excel export")
	}
	return payload, nil
}

// CSV renders the flat timetable listing.
func (s *ExportService) CSV(_ context.Context) ([]byte, error) {
	state := s.store.Snapshot()
	payload, err := s.csv.Render(export.Dataset{
		Headers: exportHeaders,
		Rows:    s.project(state, state.Lessons),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
	}
	return payload, nil
}

// PDF renders the flat timetable listing titled with the school name.
func (s *ExportService) PDF(_ context.Context) ([]byte, error) {
	state := s.store.Snapshot()
	title := state.Settings.SchoolName
	if title == "" {
		title = "Dars Jadvali"
	}
	payload, err := s.pdf.Render(export.Dataset{
		Headers: exportHeaders,
		Rows:    s.project(state, state.Lessons),
	}, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
	}
	return payload, nil
}

// project flattens lessons into export rows, resolving entity names and
// ordering by day then start time.
func (s *ExportService) project(state models.State, lessons []models.Lesson) []map[string]string {
	teacherNames := map[string]string{}
	for _, t := range state.Teachers {
		teacherNames[t.ID] = t.FullName
	}
	groupNames := map[string]string{}
	for _, g := range state.Groups {
		groupNames[g.ID] = g.Name
	}
	classroomNames := map[string]string{}
	for _, c := range state.Classrooms {
		classroomNames[c.ID] = c.Name
	}

	ordered := append([]models.Lesson(nil), lessons...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DayOfWeek != ordered[j].DayOfWeek {
			return ordered[i].DayOfWeek < ordered[j].DayOfWeek
		}
		return timetable.ParseMinutes(ordered[i].StartTime) < timetable.ParseMinutes(ordered[j].StartTime)
	})

	rows := make([]map[string]string, 0, len(ordered))
	for _, lesson := range ordered {
		rows = append(rows, map[string]string{
			"O'qituvchi":  teacherNames[lesson.TeacherID],
			"Guruh":       groupNames[lesson.GroupID],
			"Xona":        classroomNames[lesson.ClassroomID],
			"Kun":         models.DayName(lesson.DayOfWeek),
			"Boshlanishi": lesson.StartTime,
			"Tugashi":     lesson.EndTime,
			"Izoh":        lesson.Note,
		})
	}
	return rows
}
