// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HarborWatch

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/harborwatch/favsync/internal/config"
	"github.com/harborwatch/favsync/internal/logger"
	"github.com/harborwatch/favsync/internal/remote"
	"github.com/harborwatch/favsync/internal/service"
	"github.com/harborwatch/favsync/internal/store"
	"github.com/harborwatch/favsync/internal/workers"
	"github.com/harborwatch/favsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("favsyncd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	remoteStore, err := remote.NewHTTPStore(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	engine := service.NewSyncEngine(
		storages.Favorites,
		storages.SyncState,
		remoteStore,
		service.NewDiffer(),
		service.NewLastWriterWinsResolver(),
		cfg.Sync,
		log,
	)
	engine.Subscribe(logSyncResult(log))

	scheduler := service.NewSyncScheduler(engine, cfg.Sync, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	background := workers.New(scheduler)
	background.StartAll(ctx)

	// sync once at startup so a long-offline client converges immediately
	if result := scheduler.TriggerManual(ctx); result.Status == models.StatusFailure {
		log.Error().Err(result.Err).Msg("initial sync failed")
	}

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")
	background.StopAll()
}

// logSyncResult reports every finished pass in the application log.
func logSyncResult(log *logger.Logger) func(models.SyncResult) {
	return func(result models.SyncResult) {
		event := log.Info()
		if result.Status == models.StatusFailure {
			event = log.Error().Err(result.Err)
		}
		event.
			Str("status", string(result.Status)).
			Int("uploaded", result.Stats.Uploaded).
			Int("downloaded", result.Stats.Downloaded).
			Int("conflicts_resolved", result.Stats.ConflictsResolved).
			Int("failed", result.Stats.Failed).
			Dur("duration", result.Stats.Duration).
			Msg("sync pass reported")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
