// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/favsync/internal/logger"
)

func newTestSyncStateRepo(t *testing.T) (*syncStateRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &syncStateRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestLastSyncCompletedAt_RoundTripsRFC3339(t *testing.T) {
	repo, mock, db := newTestSyncStateRepo(t)
	defer db.Close()

	stored := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"value"}).AddRow(stored.Format(time.RFC3339Nano))

	mock.ExpectQuery("SELECT value FROM sync_state").
		WithArgs(lastSyncCompletedKey).
		WillReturnRows(rows)

	got, err := repo.LastSyncCompletedAt(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(stored))
}

func TestLastSyncCompletedAt_NoRowMeansZeroTime(t *testing.T) {
	repo, mock, db := newTestSyncStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_state").
		WithArgs(lastSyncCompletedKey).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.LastSyncCompletedAt(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestLastSyncCompletedAt_MalformedValue(t *testing.T) {
	repo, mock, db := newTestSyncStateRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("not-a-timestamp")
	mock.ExpectQuery("SELECT value FROM sync_state").
		WithArgs(lastSyncCompletedKey).
		WillReturnRows(rows)

	_, err := repo.LastSyncCompletedAt(context.Background())
	require.Error(t, err)
}

func TestSetLastSyncCompletedAt_Success(t *testing.T) {
	repo, mock, db := newTestSyncStateRepo(t)
	defer db.Close()

	completed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs(lastSyncCompletedKey, completed.Format(time.RFC3339Nano)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetLastSyncCompletedAt(context.Background(), completed))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetLastSyncCompletedAt_ExecError(t *testing.T) {
	repo, mock, db := newTestSyncStateRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_state").WillReturnError(errors.New("database is locked"))

	err := repo.SetLastSyncCompletedAt(context.Background(), time.Now())
	require.Error(t, err)
}
