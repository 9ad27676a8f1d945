package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jadvalhub/jadval-api/internal/store"
)

func TestExportCSVFlattensLessons(t *testing.T) {
	st := store.New(store.SeedState(), store.NopSnapshotStore{}, nil)
	svc := NewExportService(st, nil)

	payload, err := svc.CSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "Aziza Karimova", records[1][0])
	assert.Equal(t, "Dushanba", records[1][3])
}

func TestExportCSVOrdersByDayThenStart(t *testing.T) {
	state := store.SeedState()
	state.Lessons[0].DayOfWeek = 3
	state.Lessons[1].DayOfWeek = 3
	state.Lessons[0].StartTime = "12:00"
	state.Lessons[0].EndTime = "13:30"
	state.Lessons[1].StartTime = "08:00"
	state.Lessons[1].EndTime = "09:30"
	st := store.New(state, store.NopSnapshotStore{}, nil)
	svc := NewExportService(st, nil)

	payload, err := svc.CSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "08:00", records[1][4])
	assert.Equal(t, "12:00", records[2][4])
}

func TestExportExcelSheetPerDay(t *testing.T) {
	st := store.New(store.SeedState(), store.NopSnapshotStore{}, nil)
	svc := NewExportService(st, nil)

	payload, err := svc.Excel(context.Background())
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer book.Close()

	sheets := book.GetSheetList()
	assert.Contains(t, sheets, "Dushanba")
	assert.NotContains(t, sheets, "Yakshanba")

	rows, err := book.GetRows("Dushanba")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, exportHeaders, rows[0])
}

func TestExportPDFRenders(t *testing.T) {
	st := store.New(store.SeedState(), store.NopSnapshotStore{}, nil)
	svc := NewExportService(st, nil)

	payload, err := svc.PDF(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}
