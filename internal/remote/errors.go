// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package remote

import "errors"

var (
	// ErrUnauthenticated indicates the remote store rejected the bearer
	// token (HTTP 401/403). Terminal for a sync pass.
	ErrUnauthenticated = errors.New("remote store authentication failed")

	// ErrNetwork indicates a transport-level failure (connection refused,
	// DNS, timeout) before a response was received. Transient; safe to
	// retry because all remote operations are idempotent.
	ErrNetwork = errors.New("remote store network failure")

	// ErrServerRejected indicates the remote store answered with a non-2xx
	// status other than an authentication failure.
	ErrServerRejected = errors.New("remote store rejected request")
)
