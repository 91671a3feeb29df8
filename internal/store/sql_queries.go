// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package store

const (
	listFavorites = `
		SELECT
			station_id,
			bin,
			is_favorite,
			name,
			latitude,
			longitude,
			depth,
			last_modified
		FROM favorites;`

	upsertFavorite = `
		INSERT INTO favorites (
			station_id,
			bin,
			is_favorite,
			name,
			latitude,
			longitude,
			depth,
			last_modified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (station_id, bin) DO UPDATE SET
			is_favorite   = excluded.is_favorite,
			name          = excluded.name,
			latitude      = excluded.latitude,
			longitude     = excluded.longitude,
			depth         = excluded.depth,
			last_modified = excluded.last_modified;`

	deleteFavorite = `
		DELETE FROM favorites
		WHERE station_id = $1 AND bin = $2;`

	getSyncState = `
		SELECT value FROM sync_state WHERE key = $1;`

	setSyncState = `
		INSERT INTO sync_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)
