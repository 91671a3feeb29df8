// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package models

import "time"

// FavoriteKey is the composite identity of a favorite: a station plus an
// optional sub-station discriminator (for example the depth bin of a current
// station). Bin is empty for stations that have no bins. Two records describe
// the same logical favorite iff their keys are equal.
type FavoriteKey struct {
	StationID string `json:"station_id"`
	Bin       string `json:"bin,omitempty"`
}

// String renders the key as "stationID" or "stationID/bin" for logs and
// error messages.
func (k FavoriteKey) String() string {
	if k.Bin == "" {
		return k.StationID
	}
	return k.StationID + "/" + k.Bin
}

// StationMetadata carries the display attributes of a station. It is
// informational only: metadata differences never make two records conflict.
type StationMetadata struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Depth     float64 `json:"depth,omitempty"`
}

// FavoriteRecord is the unit of synchronisation shared by the local store and
// the remote store of record.
//
// IsFavorite doubles as the deletion signal: a record with IsFavorite=false
// is equivalent to absence. The local store keeps such a marker row after a
// toggle-off until a sync pass has propagated the delete to the remote store,
// at which point the row is purged.
//
// LastModified is the sync protocol's logical clock. It is assigned by
// whichever side mutated the record and only increases across writes to the
// same key.
type FavoriteRecord struct {
	Key          FavoriteKey     `json:"key"`
	IsFavorite   bool            `json:"is_favorite"`
	Metadata     StationMetadata `json:"metadata"`
	LastModified time.Time       `json:"last_modified"`
}
