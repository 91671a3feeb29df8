// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package store

import (
	"context"
	"fmt"

	"github.com/harborwatch/favsync/internal/logger"
	"github.com/harborwatch/favsync/internal/validators"
	"github.com/harborwatch/favsync/models"
)

type favoriteRepository struct {
	*DB
	validator validators.Validator
	logger    *logger.Logger
}

func NewFavoriteRepository(db *DB, log *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:        db,
		validator: validators.NewFavoriteValidator(),
		logger:    log,
	}
}

func (r *favoriteRepository) ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error) {
	rows, err := r.DB.QueryContext(ctx, listFavorites)
	if err != nil {
		r.logger.Err(err).
			Str("func", "favoriteRepository.ListFavorites").
			Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var records []models.FavoriteRecord
	for rows.Next() {
		var rec models.FavoriteRecord
		scanErr := rows.Scan(
			&rec.Key.StationID,
			&rec.Key.Bin,
			&rec.IsFavorite,
			&rec.Metadata.Name,
			&rec.Metadata.Latitude,
			&rec.Metadata.Longitude,
			&rec.Metadata.Depth,
			&rec.LastModified,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "favoriteRepository.ListFavorites").
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("failed to scan favorite row: %w", scanErr)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating favorite rows: %w", err)
	}

	return records, nil
}

func (r *favoriteRepository) UpsertFavorite(ctx context.Context, record models.FavoriteRecord) error {
	if err := r.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("invalid favorite record (key=%s): %w", record.Key, err)
	}

	_, err := r.DB.ExecContext(ctx, upsertFavorite,
		record.Key.StationID,
		record.Key.Bin,
		record.IsFavorite,
		record.Metadata.Name,
		record.Metadata.Latitude,
		record.Metadata.Longitude,
		record.Metadata.Depth,
		record.LastModified,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "favoriteRepository.UpsertFavorite").
			Str("key", record.Key.String()).
			Msg("failed to execute upsert for favorite")
		return fmt.Errorf("failed to upsert favorite (key=%s): %w", record.Key, err)
	}

	return nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, key models.FavoriteKey) error {
	_, err := r.DB.ExecContext(ctx, deleteFavorite, key.StationID, key.Bin)
	if err != nil {
		r.logger.Err(err).
			Str("func", "favoriteRepository.DeleteFavorite").
			Str("key", key.String()).
			Msg("failed to execute delete for favorite")
		return fmt.Errorf("failed to delete favorite (key=%s): %w", key, err)
	}

	return nil
}
