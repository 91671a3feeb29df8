// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import (
	"context"

	"github.com/harborwatch/favsync/models"
)

// differ is the concrete implementation of Differ. It performs a purely
// in-memory comparison of the two snapshots; no storage layer or logger is
// required because the operation is stateless and produces no side effects.
type differ struct{}

// NewDiffer constructs a Differ ready for use.
func NewDiffer() Differ {
	return &differ{}
}

// BuildDiff implements Differ.
//
// Snapshots are already maps keyed by favorite identity, so classification is
// two linear passes:
//
//   - Pass 1 (over local): keys also present remotely go to BothPresent,
//     the rest to UploadOnly.
//   - Pass 2 (over remote): keys absent locally go to DownloadOnly; shared
//     keys were already classified in pass 1.
//
// ctx cancellation is checked at the start of each iteration so that callers
// can abort early when operating on large favorite sets.
func (d *differ) BuildDiff(ctx context.Context, local, remote models.Snapshot) (Diff, error) {
	var diff Diff

	for key := range local {
		if err := ctx.Err(); err != nil {
			return Diff{}, err
		}

		if _, existsRemotely := remote[key]; existsRemotely {
			diff.BothPresent = append(diff.BothPresent, key)
		} else {
			diff.UploadOnly = append(diff.UploadOnly, key)
		}
	}

	for key := range remote {
		if err := ctx.Err(); err != nil {
			return Diff{}, err
		}

		if _, existsLocally := local[key]; !existsLocally {
			diff.DownloadOnly = append(diff.DownloadOnly, key)
		}
	}

	return diff, nil
}
