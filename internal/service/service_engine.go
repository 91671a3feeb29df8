// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/harborwatch/favsync/internal/config"
	"github.com/harborwatch/favsync/internal/logger"
	"github.com/harborwatch/favsync/internal/remote"
	"github.com/harborwatch/favsync/internal/store"
	"github.com/harborwatch/favsync/internal/utils"
	"github.com/harborwatch/favsync/models"
	"golang.org/x/sync/errgroup"
)

// syncEngine is the single-flight orchestrator of one sync pass:
// capture both snapshots, diff, resolve conflicts, apply the resulting
// operations, report the outcome.
type syncEngine struct {
	favorites store.FavoriteRepository
	syncState store.SyncStateRepository
	remote    remote.Store
	differ    Differ
	resolver  ConflictResolver
	cfg       config.Sync
	logger    *logger.Logger

	// running is the single-flight guard. Exactly one Sync call may flip
	// it false->true; everyone else gets a skipped result.
	running atomic.Bool

	// mu guards lastCompleted and subscribers.
	mu            sync.RWMutex
	lastCompleted time.Time
	subscribers   []func(models.SyncResult)
}

// NewSyncEngine wires an engine over the given stores and strategies. The
// persisted last-completion time is restored so MinSyncInterval gating
// survives process restarts; a read failure only logs, a fresh engine then
// behaves as if no pass has ever completed.
func NewSyncEngine(
	favorites store.FavoriteRepository,
	syncState store.SyncStateRepository,
	remoteStore remote.Store,
	differ Differ,
	resolver ConflictResolver,
	cfg config.Sync,
	log *logger.Logger,
) SyncEngine {
	e := &syncEngine{
		favorites: favorites,
		syncState: syncState,
		remote:    remoteStore,
		differ:    differ,
		resolver:  resolver,
		cfg:       cfg,
		logger:    log,
	}

	completedAt, err := syncState.LastSyncCompletedAt(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("failed to restore last sync completion time")
	} else {
		e.lastCompleted = completedAt
	}

	return e
}

func (e *syncEngine) IsSyncing() bool {
	return e.running.Load()
}

func (e *syncEngine) LastSyncCompletedAt() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastCompleted
}

func (e *syncEngine) Subscribe(handler func(models.SyncResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, handler)
}

// Sync implements SyncEngine. The whole pass runs on the caller's goroutine;
// only the apply fan-out spawns workers internally.
func (e *syncEngine) Sync(ctx context.Context) models.SyncResult {
	if !e.running.CompareAndSwap(false, true) {
		e.logger.Debug().Msg("sync already in flight, skipping trigger")
		return models.SkippedResult()
	}
	defer e.running.Store(false)

	passID := utils.NewPassID()
	log := &logger.Logger{Logger: e.logger.With().Str("pass_id", passID).Logger()}
	ctx = log.WithContext(ctx)

	stats := models.SyncStats{StartedAt: time.Now()}
	log.Info().Msg("sync pass started")

	local, remoteSnap, err := e.captureSnapshots(ctx)
	if err != nil {
		stats.Duration = time.Since(stats.StartedAt)
		log.Error().Err(err).Msg("sync pass aborted")
		result := models.FailureResult(stats, err)
		e.notify(result)
		return result
	}

	diff, err := e.differ.BuildDiff(ctx, local, remoteSnap)
	if err != nil {
		stats.Duration = time.Since(stats.StartedAt)
		log.Error().Err(err).Msg("sync pass aborted during diff")
		result := models.FailureResult(stats, err)
		e.notify(result)
		return result
	}

	localOps, remoteOps := e.buildOps(diff, local, remoteSnap)
	log.Debug().
		Int("upload_only", len(diff.UploadOnly)).
		Int("download_only", len(diff.DownloadOnly)).
		Int("both_present", len(diff.BothPresent)).
		Int("local_ops", len(localOps)).
		Int("remote_ops", len(remoteOps)).
		Msg("sync plan built")

	var itemErrors []models.ItemError
	itemErrors = append(itemErrors, e.applyLocalOps(ctx, localOps, &stats)...)
	itemErrors = append(itemErrors, e.applyRemoteOps(ctx, remoteOps, &stats)...)

	stats.Failed = len(itemErrors)
	stats.Duration = time.Since(stats.StartedAt)

	result := models.SyncResult{Status: models.StatusSuccess, Stats: stats, ItemErrors: itemErrors}
	if len(itemErrors) > 0 {
		result.Status = models.StatusPartial
	}

	completedAt := time.Now()
	e.mu.Lock()
	e.lastCompleted = completedAt
	e.mu.Unlock()
	if err := e.syncState.SetLastSyncCompletedAt(ctx, completedAt); err != nil {
		log.Warn().Err(err).Msg("failed to persist last sync completion time")
	}

	log.Info().
		Str("status", string(result.Status)).
		Int("uploaded", stats.Uploaded).
		Int("downloaded", stats.Downloaded).
		Int("conflicts_resolved", stats.ConflictsResolved).
		Int("failed", stats.Failed).
		Dur("duration", stats.Duration).
		Msg("sync pass finished")

	e.notify(result)
	return result
}

// captureSnapshots lists both stores concurrently under one snapshot-timeout
// context. Either listing failing aborts the pass: diffing against a partial
// view would misread missing keys as deletions.
func (e *syncEngine) captureSnapshots(ctx context.Context) (local, remoteSnap models.Snapshot, err error) {
	snapCtx, cancel := context.WithTimeout(ctx, e.cfg.SnapshotTimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(snapCtx)
	g.Go(func() error {
		records, listErr := e.favorites.ListFavorites(gCtx)
		if listErr != nil {
			return fmt.Errorf("local snapshot: %w", listErr)
		}
		local = models.BuildSnapshot(records)
		return nil
	})
	g.Go(func() error {
		records, listErr := e.remote.ListFavorites(gCtx)
		if listErr != nil {
			return fmt.Errorf("remote snapshot: %w", listErr)
		}
		remoteSnap = models.BuildSnapshot(records)
		return nil
	})

	if waitErr := g.Wait(); waitErr != nil {
		return nil, nil, e.classifySnapshotErr(waitErr)
	}
	return local, remoteSnap, nil
}

// classifySnapshotErr maps a snapshot listing failure onto the package
// sentinels. Authentication failures pass through unclassified so callers
// can detect them with errors.Is and re-authenticate.
func (e *syncEngine) classifySnapshotErr(err error) error {
	switch {
	case errors.Is(err, remote.ErrUnauthenticated):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrSnapshotTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrSnapshotFetch, err)
	}
}

// buildOps turns the diff into the flat operation lists of the pass,
// partitioned by the store they mutate.
//
// A toggle-off marker in the upload-only set still goes out as a remote
// delete: the remote key is already absent and remote deletes are
// idempotent, and the delete's success is what licenses purging the local
// marker row. A dead record in the download-only set produces nothing,
// since there is no local row to remove.
func (e *syncEngine) buildOps(diff Diff, local, remoteSnap models.Snapshot) (localOps, remoteOps []models.SyncOp) {
	appendOp := func(op models.SyncOp) {
		switch op.Type {
		case models.OpUpsertLocal, models.OpDeleteLocal:
			localOps = append(localOps, op)
		case models.OpPushRemote, models.OpDeleteRemote:
			remoteOps = append(remoteOps, op)
		}
	}

	for _, key := range diff.UploadOnly {
		record := local[key]
		opType := models.OpPushRemote
		if !record.IsFavorite {
			opType = models.OpDeleteRemote
		}
		appendOp(models.SyncOp{Type: opType, Reason: models.ReasonUploadOnly, Record: record})
	}

	for _, key := range diff.DownloadOnly {
		record := remoteSnap[key]
		if !record.IsFavorite {
			continue
		}
		appendOp(models.SyncOp{Type: models.OpUpsertLocal, Reason: models.ReasonDownloadOnly, Record: record})
	}

	for _, key := range diff.BothPresent {
		resolution := e.resolver.Resolve(local[key], remoteSnap[key])
		if resolution.Op == nil {
			continue
		}
		appendOp(*resolution.Op)
	}

	return localOps, remoteOps
}

// applyLocalOps executes local-store mutations sequentially. SQLite gains
// nothing from write concurrency and sequential application keeps the error
// reporting straightforward.
func (e *syncEngine) applyLocalOps(ctx context.Context, ops []models.SyncOp, stats *models.SyncStats) []models.ItemError {
	var itemErrors []models.ItemError
	for _, op := range ops {
		opCtx, cancel := context.WithTimeout(ctx, e.cfg.ApplyTimeout)

		var err error
		switch op.Type {
		case models.OpUpsertLocal:
			err = e.favorites.UpsertFavorite(opCtx, op.Record)
		case models.OpDeleteLocal:
			err = e.favorites.DeleteFavorite(opCtx, op.Record.Key)
		}
		cancel()

		if err != nil {
			itemErrors = append(itemErrors, models.ItemError{
				Key: op.Record.Key,
				Op:  op.Type,
				Err: classifyApplyErr(err),
			})
			continue
		}
		countSuccess(op.Reason, stats)
	}
	return itemErrors
}

// applyRemoteOps fans remote mutations out over a bounded worker pool. Each
// operation owns its timeout and its failure; one slow or failing key never
// blocks or aborts the rest of the pass.
func (e *syncEngine) applyRemoteOps(ctx context.Context, ops []models.SyncOp, stats *models.SyncStats) []models.ItemError {
	if len(ops) == 0 {
		return nil
	}

	concurrency := e.cfg.ApplyConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		itemErrors []models.ItemError
	)
	sem := make(chan struct{}, concurrency)

	for _, op := range ops {
		wg.Add(1)
		sem <- struct{}{}
		go func(op models.SyncOp) {
			defer wg.Done()
			defer func() { <-sem }()

			itemErr := e.applyRemoteOp(ctx, op)

			mu.Lock()
			defer mu.Unlock()
			if itemErr != nil {
				itemErrors = append(itemErrors, *itemErr)
				return
			}
			countSuccess(op.Reason, stats)
		}(op)
	}
	wg.Wait()

	return itemErrors
}

// applyRemoteOp executes one remote mutation under its own apply-timeout
// context. A successful remote delete purges the local toggle-off marker for
// the key; until that purge lands the marker stays and the next pass simply
// retries the (idempotent) delete.
func (e *syncEngine) applyRemoteOp(ctx context.Context, op models.SyncOp) *models.ItemError {
	opCtx, cancel := context.WithTimeout(ctx, e.cfg.ApplyTimeout)
	defer cancel()

	switch op.Type {
	case models.OpPushRemote:
		if err := e.remote.PushFavorite(opCtx, op.Record); err != nil {
			return &models.ItemError{Key: op.Record.Key, Op: op.Type, Err: classifyApplyErr(err)}
		}
	case models.OpDeleteRemote:
		if err := e.remote.DeleteFavorite(opCtx, op.Record.Key); err != nil {
			return &models.ItemError{Key: op.Record.Key, Op: op.Type, Err: classifyApplyErr(err)}
		}
		if err := e.favorites.DeleteFavorite(opCtx, op.Record.Key); err != nil {
			return &models.ItemError{Key: op.Record.Key, Op: models.OpDeleteLocal, Err: classifyApplyErr(err)}
		}
	}
	return nil
}

// classifyApplyErr tags timed-out applies with the package sentinel so that
// callers inspecting ItemErrors can tell slowness from rejection.
func classifyApplyErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrApplyTimeout, err)
	}
	return err
}

// countSuccess attributes a successful operation to the stats counter of its
// diff bucket.
func countSuccess(reason models.OpReason, stats *models.SyncStats) {
	switch reason {
	case models.ReasonUploadOnly:
		stats.Uploaded++
	case models.ReasonDownloadOnly:
		stats.Downloaded++
	case models.ReasonConflict:
		stats.ConflictsResolved++
	}
}

// notify fans the result out to every subscriber on its own goroutine. A
// panicking handler is contained and logged so it cannot take the engine
// down.
func (e *syncEngine) notify(result models.SyncResult) {
	e.mu.RLock()
	handlers := make([]func(models.SyncResult), len(e.subscribers))
	copy(handlers, e.subscribers)
	e.mu.RUnlock()

	for _, handler := range handlers {
		go func(handler func(models.SyncResult)) {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error().Interface("panic", r).Msg("sync result handler panicked")
				}
			}()
			handler(result)
		}(handler)
	}
}
