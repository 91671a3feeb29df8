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
	"github.com/harborwatch/favsync/internal/validators"
	"github.com/harborwatch/favsync/models"
)

func newTestFavoriteRepo(t *testing.T) (*favoriteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &favoriteRepository{
		DB:        &DB{DB: db, logger: l},
		validator: validators.NewFavoriteValidator(),
		logger:    l,
	}
	return repo, mock, db
}

func testRecord(station, bin string, favorite bool, modified time.Time) models.FavoriteRecord {
	return models.FavoriteRecord{
		Key:        models.FavoriteKey{StationID: station, Bin: bin},
		IsFavorite: favorite,
		Metadata: models.StationMetadata{
			Name:      "Station " + station,
			Latitude:  47.6,
			Longitude: -122.3,
			Depth:     12.5,
		},
		LastModified: modified,
	}
}

func TestListFavorites_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"station_id", "bin", "is_favorite", "name", "latitude", "longitude", "depth", "last_modified",
	}).
		AddRow("cb0102", "14", true, "Chesapeake Bay Entrance", 36.9594, -76.0128, 14.3, now).
		AddRow("ps0201", "", false, "Admiralty Inlet", 48.03, -122.64, 0.0, now)

	mock.ExpectQuery("SELECT(.|\n)+FROM favorites").WillReturnRows(rows)

	records, err := repo.ListFavorites(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.FavoriteKey{StationID: "cb0102", Bin: "14"}, records[0].Key)
	assert.True(t, records[0].IsFavorite)
	assert.Equal(t, "Chesapeake Bay Entrance", records[0].Metadata.Name)

	// Toggle-off marker rows come back too: the sync engine needs them to
	// propagate pending deletes.
	assert.False(t, records[1].IsFavorite)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavorites_QueryError(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM favorites").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ListFavorites(context.Background())
	require.Error(t, err)
}

func TestUpsertFavorite_Success(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	rec := testRecord("cb0102", "14", true, time.Now())

	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(
			rec.Key.StationID,
			rec.Key.Bin,
			rec.IsFavorite,
			rec.Metadata.Name,
			rec.Metadata.Latitude,
			rec.Metadata.Longitude,
			rec.Metadata.Depth,
			rec.LastModified,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertFavorite(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertFavorite_RejectsInvalidRecord(t *testing.T) {
	repo, _, db := newTestFavoriteRepo(t)
	defer db.Close()

	rec := testRecord("", "", true, time.Now())

	err := repo.UpsertFavorite(context.Background(), rec)
	assert.ErrorIs(t, err, validators.ErrEmptyStationID)
}

func TestUpsertFavorite_ExecError(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	rec := testRecord("cb0102", "", true, time.Now())

	mock.ExpectExec("INSERT INTO favorites").WillReturnError(errors.New("database is locked"))

	err := repo.UpsertFavorite(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cb0102")
}

func TestDeleteFavorite_Success(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM favorites").
		WithArgs("cb0102", "14").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteFavorite(context.Background(), models.FavoriteKey{StationID: "cb0102", Bin: "14"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFavorite_AbsentKeyIsNoError(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM favorites").
		WithArgs("unknown", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteFavorite(context.Background(), models.FavoriteKey{StationID: "unknown"}))
}
