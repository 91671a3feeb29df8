// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import "errors"

// Terminal and per-item sentinel errors of the sync engine. Terminal errors
// abort a pass before any mutation; per-item sentinels classify individual
// apply failures inside a partial-success result.
var (
	// ErrSnapshotTimeout marks a pass aborted because a snapshot listing
	// exceeded the configured snapshot timeout.
	ErrSnapshotTimeout = errors.New("snapshot fetch timed out")

	// ErrSnapshotFetch marks a pass aborted because a snapshot listing
	// failed (local I/O or remote network failure).
	ErrSnapshotFetch = errors.New("snapshot fetch failed")

	// ErrApplyTimeout classifies a per-item apply that exceeded the
	// configured apply timeout. Recoverable; recorded on the item only.
	ErrApplyTimeout = errors.New("apply operation timed out")
)
