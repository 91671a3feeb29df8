// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import (
	"context"
	"testing"
	"time"

	"github.com/harborwatch/favsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(stationID, bin string, favorite bool, modified time.Time) models.FavoriteRecord {
	return models.FavoriteRecord{
		Key:          models.FavoriteKey{StationID: stationID, Bin: bin},
		IsFavorite:   favorite,
		Metadata:     models.StationMetadata{Name: "Station " + stationID},
		LastModified: modified,
	}
}

func snapshotOf(records ...models.FavoriteRecord) models.Snapshot {
	return models.BuildSnapshot(records)
}

func TestDiffer_BuildDiff_EmptySnapshots(t *testing.T) {
	d := NewDiffer()

	diff, err := d.BuildDiff(context.Background(), models.Snapshot{}, models.Snapshot{})
	require.NoError(t, err)

	assert.Empty(t, diff.UploadOnly)
	assert.Empty(t, diff.DownloadOnly)
	assert.Empty(t, diff.BothPresent)
}

func TestDiffer_BuildDiff_ClassifiesAllThreeSets(t *testing.T) {
	now := time.Now()
	localOnly := record("44013", "", true, now)
	remoteOnly := record("46042", "surface", true, now)
	shared := record("41008", "", true, now)

	d := NewDiffer()
	diff, err := d.BuildDiff(
		context.Background(),
		snapshotOf(localOnly, shared),
		snapshotOf(remoteOnly, shared),
	)
	require.NoError(t, err)

	assert.Equal(t, []models.FavoriteKey{localOnly.Key}, diff.UploadOnly)
	assert.Equal(t, []models.FavoriteKey{remoteOnly.Key}, diff.DownloadOnly)
	assert.Equal(t, []models.FavoriteKey{shared.Key}, diff.BothPresent)
}

func TestDiffer_BuildDiff_SameStationDifferentBinsAreDistinctKeys(t *testing.T) {
	now := time.Now()
	noBin := record("44013", "", true, now)
	surface := record("44013", "surface", true, now)

	d := NewDiffer()
	diff, err := d.BuildDiff(context.Background(), snapshotOf(noBin), snapshotOf(surface))
	require.NoError(t, err)

	assert.Equal(t, []models.FavoriteKey{noBin.Key}, diff.UploadOnly)
	assert.Equal(t, []models.FavoriteKey{surface.Key}, diff.DownloadOnly)
	assert.Empty(t, diff.BothPresent)
}

func TestDiffer_BuildDiff_DivergentRecordsStillBothPresent(t *testing.T) {
	// classification is key-only; field divergence is the resolver's business
	older := record("44013", "", true, time.Now())
	newer := older
	newer.LastModified = older.LastModified.Add(time.Hour)
	newer.IsFavorite = false

	d := NewDiffer()
	diff, err := d.BuildDiff(context.Background(), snapshotOf(older), snapshotOf(newer))
	require.NoError(t, err)

	assert.Empty(t, diff.UploadOnly)
	assert.Empty(t, diff.DownloadOnly)
	assert.Equal(t, []models.FavoriteKey{older.Key}, diff.BothPresent)
}

func TestDiffer_BuildDiff_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDiffer()
	_, err := d.BuildDiff(ctx, snapshotOf(record("44013", "", true, time.Now())), models.Snapshot{})

	assert.ErrorIs(t, err, context.Canceled)
}
