// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

// Package store implements the local, offline-capable favorites store on top
// of SQLite.
//
// The store is the client-side source of pending changes for the sync engine:
// a toggle-off does not remove the row immediately but flips is_favorite
// off, so the next sync pass still sees the key and can propagate the delete
// to the remote store before the row is purged.
package store

import (
	"context"
	"time"

	"github.com/harborwatch/favsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FavoriteRepository is the local favorites store consumed by the sync
// engine and by the UI layer above this module.
type FavoriteRepository interface {
	// ListFavorites returns every stored record, including toggle-off
	// marker rows (IsFavorite=false) that still owe a remote delete.
	ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error)

	// UpsertFavorite inserts or replaces the record for its key. Applying
	// the same record twice is a no-op the second time.
	UpsertFavorite(ctx context.Context, record models.FavoriteRecord) error

	// DeleteFavorite removes the row for key. Deleting an absent key is
	// not an error.
	DeleteFavorite(ctx context.Context, key models.FavoriteKey) error
}

// SyncStateRepository persists sync bookkeeping across process restarts.
type SyncStateRepository interface {
	// LastSyncCompletedAt returns the completion time of the most recent
	// successful pass, or the zero time when no pass has completed yet.
	LastSyncCompletedAt(ctx context.Context) (time.Time, error)

	// SetLastSyncCompletedAt records the completion time of a pass.
	SetLastSyncCompletedAt(ctx context.Context, completedAt time.Time) error
}
