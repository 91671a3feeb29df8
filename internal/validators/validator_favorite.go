// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package validators

import (
	"context"

	"github.com/harborwatch/favsync/models"
)

type favoriteValidator struct{}

// NewFavoriteValidator constructs a Validator for [models.FavoriteRecord]
// values. It is stateless and safe for concurrent use.
func NewFavoriteValidator() Validator {
	return &favoriteValidator{}
}

// Validate implements Validator. It accepts models.FavoriteRecord and
// *models.FavoriteRecord values.
func (v *favoriteValidator) Validate(_ context.Context, value any) error {
	var rec models.FavoriteRecord
	switch val := value.(type) {
	case models.FavoriteRecord:
		rec = val
	case *models.FavoriteRecord:
		if val == nil {
			return ErrUnsupportedType
		}
		rec = *val
	default:
		return ErrUnsupportedType
	}

	if rec.Key.StationID == "" {
		return ErrEmptyStationID
	}
	if rec.LastModified.IsZero() {
		return ErrZeroLastModified
	}
	if rec.Metadata.Latitude < -90 || rec.Metadata.Latitude > 90 {
		return ErrInvalidCoordinates
	}
	if rec.Metadata.Longitude < -180 || rec.Metadata.Longitude > 180 {
		return ErrInvalidCoordinates
	}

	return nil
}
