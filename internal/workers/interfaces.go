// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

// Package workers provides abstractions for managing background workers.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by any background worker, such as the
// sync scheduler. Start must not block; implementations spawn their
// goroutines internally and tear them down in Stop.
type Worker interface {
	// Start launches the worker's background work under ctx.
	Start(ctx context.Context)

	// Stop terminates the worker and blocks until its goroutines have
	// exited. Safe to call when the worker is not running.
	Stop()
}
