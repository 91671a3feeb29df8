// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harborwatch/favsync/internal/logger"
)

// lastSyncCompletedKey is the sync_state row persisting the completion time
// of the most recent successful pass, so the periodic-trigger policy survives
// process restarts.
const lastSyncCompletedKey = "last_sync_completed_at"

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, log *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: log,
	}
}

func (r *syncStateRepository) LastSyncCompletedAt(ctx context.Context) (time.Time, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getSyncState, lastSyncCompletedKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncStateRepository.LastSyncCompletedAt").
			Msg("failed to query sync state")
		return time.Time{}, fmt.Errorf("failed to query sync state: %w", err)
	}

	completedAt, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored sync timestamp %q: %w", value, err)
	}

	return completedAt, nil
}

func (r *syncStateRepository) SetLastSyncCompletedAt(ctx context.Context, completedAt time.Time) error {
	value := completedAt.UTC().Format(time.RFC3339Nano)
	_, err := r.DB.ExecContext(ctx, setSyncState, lastSyncCompletedKey, value)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncStateRepository.SetLastSyncCompletedAt").
			Msg("failed to persist sync state")
		return fmt.Errorf("failed to persist sync state: %w", err)
	}

	return nil
}
