// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

// Package validators provides input validation for favorite records before
// they reach the local store or the remote adapter.
//
// Implementations encode domain rules (non-empty station id, sane
// coordinates, a set logical clock) and are injected where records cross a
// persistence or transport boundary.
package validators

import "context"

// Validator validates an arbitrary value against domain rules.
type Validator interface {
	// Validate returns nil when value satisfies every rule, or a sentinel
	// error from this package describing the first violation.
	Validate(ctx context.Context, value any) error
}
