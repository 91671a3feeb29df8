// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package store

import (
	"context"
	"fmt"

	"github.com/harborwatch/favsync/internal/config"
	"github.com/harborwatch/favsync/internal/logger"
)

// Storages groups the local repositories into a single value that can be
// passed to the service layer.
type Storages struct {
	// Favorites is the SQLite-backed local favorites repository.
	Favorites FavoriteRepository

	// SyncState persists sync bookkeeping (last completed pass timestamp).
	SyncState SyncStateRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It opens the SQLite database (creating the file
// when missing), runs pending schema migrations, and wires the repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Favorites: NewFavoriteRepository(db, log),
		SyncState: NewSyncStateRepository(db, log),
	}, nil
}
