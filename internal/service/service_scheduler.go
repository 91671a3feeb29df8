// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import (
	"context"
	"sync"
	"time"

	"github.com/harborwatch/favsync/internal/config"
	"github.com/harborwatch/favsync/internal/logger"
	"github.com/harborwatch/favsync/models"
)

// syncScheduler drives the engine from three trigger sources: an explicit
// manual call, a periodic ticker gated by the minimum sync interval, and a
// debounced burst of local favorite toggles.
type syncScheduler struct {
	engine SyncEngine
	cfg    config.Sync
	logger *logger.Logger

	// kick is the coalescing channel between the debounce timer and the
	// background loop. Buffer of one: a second signal while one is
	// pending merges into it, which is exactly the coalescing we want.
	kick chan struct{}

	mu       sync.Mutex
	debounce *time.Timer
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewSyncScheduler wires a scheduler over engine. Start must be called for
// the periodic and debounced triggers to take effect; TriggerManual works
// without a running loop.
func NewSyncScheduler(engine SyncEngine, cfg config.Sync, log *logger.Logger) SyncScheduler {
	return &syncScheduler{
		engine: engine,
		cfg:    cfg,
		logger: log,
		kick:   make(chan struct{}, 1),
	}
}

// TriggerManual implements SyncScheduler. Manual triggers bypass the minimum
// sync interval; the engine's single-flight guard is the only gate.
func (s *syncScheduler) TriggerManual(ctx context.Context) models.SyncResult {
	s.logger.Debug().Msg("manual sync trigger")
	return s.engine.Sync(ctx)
}

// NotifyLocalChange implements SyncScheduler. Each call re-arms the debounce
// timer, so a burst of toggles produces a single sync once the burst ends.
func (s *syncScheduler) NotifyLocalChange() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debounce != nil {
		s.debounce.Reset(s.cfg.DebounceDelay)
		return
	}
	s.debounce = time.AfterFunc(s.cfg.DebounceDelay, s.fireDebounced)
}

// fireDebounced hands the expired debounce over to the background loop. A
// kick already pending absorbs this one.
func (s *syncScheduler) fireDebounced() {
	s.mu.Lock()
	s.debounce = nil
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Start implements SyncScheduler.
func (s *syncScheduler) Start(ctx context.Context) {
	s.Stop()

	loopCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(loopCtx)
	s.logger.Info().
		Dur("periodic_interval", s.cfg.PeriodicInterval).
		Dur("min_sync_interval", s.cfg.MinSyncInterval).
		Dur("debounce_delay", s.cfg.DebounceDelay).
		Msg("sync scheduler started")
}

// Stop implements SyncScheduler.
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	s.logger.Info().Msg("sync scheduler stopped")
}

// run is the background trigger loop. It owns every non-manual sync call so
// that periodic and debounced triggers are serialised through one place.
func (s *syncScheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.PeriodicInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPeriodic(ctx)
		case <-s.kick:
			s.runDebounced(ctx)
		}
	}
}

// runPeriodic fires a background sync unless one completed within the
// minimum sync interval.
func (s *syncScheduler) runPeriodic(ctx context.Context) {
	if elapsed := time.Since(s.engine.LastSyncCompletedAt()); elapsed < s.cfg.MinSyncInterval {
		s.logger.Debug().Dur("elapsed", elapsed).Msg("periodic sync suppressed by min interval")
		return
	}
	result := s.engine.Sync(ctx)
	s.logger.Debug().Str("status", string(result.Status)).Msg("periodic sync finished")
}

// runDebounced fires the sync owed to a toggle burst. If the engine skipped
// because a pass was already in flight, the in-flight pass may have
// snapshotted before the latest toggle, so the debounce is re-armed rather
// than dropped.
func (s *syncScheduler) runDebounced(ctx context.Context) {
	result := s.engine.Sync(ctx)
	if result.Status == models.StatusSkipped {
		s.logger.Debug().Msg("debounced sync skipped mid-flight, re-arming")
		s.NotifyLocalChange()
		return
	}
	s.logger.Debug().Str("status", string(result.Status)).Msg("debounced sync finished")
}
