// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package models

import "time"

// SyncStatus classifies the outcome of one sync pass.
type SyncStatus string

const (
	// StatusSuccess means the pass completed and every operation succeeded.
	StatusSuccess SyncStatus = "success"
	// StatusPartial means the pass completed but some per-item operations
	// failed; the failures are listed in SyncResult.ItemErrors.
	StatusPartial SyncStatus = "partial_success"
	// StatusFailure means the pass aborted before applying anything
	// (snapshot capture failed); SyncResult.Err carries the cause.
	StatusFailure SyncStatus = "failure"
	// StatusSkipped means another pass was already in flight and this
	// trigger was coalesced into it. Not an error.
	StatusSkipped SyncStatus = "skipped"
)

// SyncOpType identifies the concrete operation a sync pass applies for one key.
type SyncOpType string

const (
	OpPushRemote   SyncOpType = "push_remote"
	OpDeleteRemote SyncOpType = "delete_remote"
	OpUpsertLocal  SyncOpType = "upsert_local"
	OpDeleteLocal  SyncOpType = "delete_local"
)

// OpReason records which diff bucket produced an operation. The engine uses
// it to attribute successes to the right counter in SyncStats.
type OpReason string

const (
	ReasonUploadOnly   OpReason = "upload_only"
	ReasonDownloadOnly OpReason = "download_only"
	ReasonConflict     OpReason = "conflict"
)

// SyncOp is a single resolved operation produced by diffing and conflict
// resolution. Operations are independent by key; the engine applies them with
// no ordering guarantee between one another.
type SyncOp struct {
	Type   SyncOpType
	Reason OpReason
	Record FavoriteRecord
}

// SyncStats aggregates the counters of one completed sync pass.
type SyncStats struct {
	Uploaded          int           `json:"uploaded"`
	Downloaded        int           `json:"downloaded"`
	ConflictsResolved int           `json:"conflicts_resolved"`
	Failed            int           `json:"failed"`
	StartedAt         time.Time     `json:"started_at"`
	Duration          time.Duration `json:"duration"`
}

// ItemError reports one failed operation. Per-item failures never abort the
// pass; they are collected and surfaced together on the result.
type ItemError struct {
	Key FavoriteKey `json:"key"`
	Op  SyncOpType  `json:"op"`
	Err error       `json:"-"`
}

func (e ItemError) Error() string {
	msg := "sync item " + e.Key.String() + ": " + string(e.Op) + " failed"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ItemError) Unwrap() error { return e.Err }

// SyncResult is the structured outcome of one SyncEngine.Sync call.
type SyncResult struct {
	Status     SyncStatus  `json:"status"`
	Stats      SyncStats   `json:"stats"`
	ItemErrors []ItemError `json:"item_errors,omitempty"`
	Err        error       `json:"-"`
}

// SkippedResult is returned to callers whose trigger found a pass already
// running.
func SkippedResult() SyncResult {
	return SyncResult{Status: StatusSkipped}
}

// FailureResult wraps a terminal abort: nothing was applied and the stats are
// zero apart from the timing fields.
func FailureResult(stats SyncStats, err error) SyncResult {
	return SyncResult{Status: StatusFailure, Stats: stats, Err: err}
}
