// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import (
	"github.com/harborwatch/favsync/models"
)

// lastWriterWins is the default ConflictResolver: the record with the
// strictly later LastModified overwrites the other side in full.
//
// An exact timestamp tie resolves to no-op regardless of any field
// difference. This is a deliberate conservative policy choice to avoid
// oscillation between two stores that disagree at the same logical instant,
// not behavior inherited from the stores themselves; swap in a different
// ConflictResolver if bit-exact convergence on ties is required.
type lastWriterWins struct{}

// NewLastWriterWinsResolver constructs the default resolver. It is stateless
// and safe for concurrent use.
func NewLastWriterWinsResolver() ConflictResolver {
	return &lastWriterWins{}
}

// Resolve implements ConflictResolver.
func (r *lastWriterWins) Resolve(local, remote models.FavoriteRecord) Resolution {
	switch {
	case local.LastModified.After(remote.LastModified):
		return Resolution{Decision: DecisionKeepLocal, Op: localWinnerOp(local)}
	case remote.LastModified.After(local.LastModified):
		return Resolution{Decision: DecisionKeepRemote, Op: remoteWinnerOp(remote)}
	default:
		return Resolution{Decision: DecisionNoop}
	}
}

// localWinnerOp realises a local win. A winning toggle-off marker propagates
// as a remote delete; a live record is pushed in full.
func localWinnerOp(local models.FavoriteRecord) *models.SyncOp {
	opType := models.OpPushRemote
	if !local.IsFavorite {
		opType = models.OpDeleteRemote
	}
	return &models.SyncOp{Type: opType, Reason: models.ReasonConflict, Record: local}
}

// remoteWinnerOp realises a remote win symmetrically on the local store.
func remoteWinnerOp(remote models.FavoriteRecord) *models.SyncOp {
	opType := models.OpUpsertLocal
	if !remote.IsFavorite {
		opType = models.OpDeleteLocal
	}
	return &models.SyncOp{Type: opType, Reason: models.ReasonConflict, Record: remote}
}
