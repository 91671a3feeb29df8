// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

// Package service implements the favorites synchronisation core: snapshot
// diffing, conflict resolution, the single-flight sync engine, and the
// trigger scheduler.
package service

import (
	"context"
	"time"

	"github.com/harborwatch/favsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Diff is the three-way classification of the key space of one sync pass.
// The three sets are disjoint; keys absent from both snapshots do not appear.
type Diff struct {
	// UploadOnly holds keys present locally but unknown to the remote
	// store. Their local records are pushed out.
	UploadOnly []models.FavoriteKey

	// DownloadOnly holds keys present remotely but unknown locally. Their
	// remote records are written into the local store.
	DownloadOnly []models.FavoriteKey

	// BothPresent holds keys present on both sides; each is settled by the
	// ConflictResolver.
	BothPresent []models.FavoriteKey
}

// Differ computes the three-way diff between the local and remote snapshots.
// Implementations must be pure: no side effects, no store access.
type Differ interface {
	// BuildDiff classifies every key of both snapshots into exactly one of
	// the three Diff sets. ctx cancellation is checked while iterating so
	// callers can abort early on large favorite sets.
	BuildDiff(ctx context.Context, local, remote models.Snapshot) (Diff, error)
}

// ConflictDecision states which side of a divergent key wins.
type ConflictDecision int

const (
	// DecisionNoop leaves both sides untouched.
	DecisionNoop ConflictDecision = iota
	// DecisionKeepLocal overwrites the remote record with the local one.
	DecisionKeepLocal
	// DecisionKeepRemote overwrites the local record with the remote one.
	DecisionKeepRemote
)

// Resolution is a ConflictResolver verdict for one key: the decision plus the
// concrete operation realising it. Op is nil for DecisionNoop.
type Resolution struct {
	Decision ConflictDecision
	Op       *models.SyncOp
}

// ConflictResolver decides the winning version for keys present, but
// divergent, on both sides.
type ConflictResolver interface {
	Resolve(local, remote models.FavoriteRecord) Resolution
}

// SyncEngine orchestrates one sync pass: fetch snapshots, diff, resolve,
// apply, report.
type SyncEngine interface {
	// Sync runs one pass and returns its structured outcome. Callable
	// repeatedly; internally single-flight — a call that finds a pass
	// already running returns a skipped result immediately.
	Sync(ctx context.Context) models.SyncResult

	// IsSyncing reports whether a pass is currently executing.
	IsSyncing() bool

	// LastSyncCompletedAt returns the completion time of the most recent
	// pass that ran to the end (success or partial success), or the zero
	// time when none has.
	LastSyncCompletedAt() time.Time

	// Subscribe registers a handler invoked with the result of every
	// completed or aborted pass (skipped calls are not announced). Handlers
	// run on their own goroutines; the caller decides how to marshal the
	// result back to its own execution context.
	Subscribe(handler func(models.SyncResult))
}

// SyncScheduler decides when to trigger the engine: manually, periodically,
// or debounced after a local favorite toggle.
type SyncScheduler interface {
	// TriggerManual runs a sync immediately, subject only to the engine's
	// single-flight guard, and returns the engine's result.
	TriggerManual(ctx context.Context) models.SyncResult

	// NotifyLocalChange records a local favorite toggle. A sync fires
	// after the configured debounce delay once toggles stop arriving; if a
	// pass is already in flight when the debounce fires, the trigger is
	// re-armed so the final state is never stale.
	NotifyLocalChange()

	// Start launches the background trigger loop. Any previously running
	// loop is stopped first.
	Start(ctx context.Context)

	// Stop terminates the background loop and blocks until it has exited.
	// Safe to call when the scheduler is not running.
	Stop()
}
