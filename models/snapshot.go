// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package models

// Snapshot is an immutable point-in-time listing of one store's favorites,
// keyed by favorite identity. Both snapshots of a sync pass are captured
// before any diffing starts; mutations that land after capture are invisible
// to the running pass and are picked up by the next one.
type Snapshot map[FavoriteKey]FavoriteRecord

// BuildSnapshot indexes records by key. Later entries for the same key win,
// though stores are expected to list each key at most once.
func BuildSnapshot(records []FavoriteRecord) Snapshot {
	snap := make(Snapshot, len(records))
	for _, rec := range records {
		snap[rec.Key] = rec
	}
	return snap
}
