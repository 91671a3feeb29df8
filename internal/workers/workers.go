// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package workers

import "context"

// Workers aggregates background workers so the application can start and
// stop them as one unit.
type Workers struct {
	workers []Worker
}

// New builds an aggregate over the given workers. Start order follows the
// argument order.
func New(w ...Worker) *Workers {
	return &Workers{workers: w}
}

// StartAll starts every worker in order.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops every worker in reverse start order and blocks until all
// have exited.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
