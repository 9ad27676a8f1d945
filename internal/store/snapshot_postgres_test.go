package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestPostgresSnapshotStoreSave(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO state_snapshots").
		WithArgs(StateKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewPostgresSnapshotStore(db)
	err := s.Save(context.Background(), SeedState())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshotStoreSaveError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO state_snapshots").
		WillReturnError(errors.New("connection refused"))

	s := NewPostgresSnapshotStore(db)
	err := s.Save(context.Background(), SeedState())

	assert.Error(t, err)
}
