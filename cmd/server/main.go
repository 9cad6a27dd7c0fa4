// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/whichkatha/internal/api"
	"github.com/tomtom215/whichkatha/internal/config"
	"github.com/tomtom215/whichkatha/internal/logging"
	"github.com/tomtom215/whichkatha/internal/store"
	"github.com/tomtom215/whichkatha/internal/supervisor"
	"github.com/tomtom215/whichkatha/internal/supervisor/services"
	"github.com/tomtom215/whichkatha/internal/upstream"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("storage", cfg.Storage.Backend).
		Bool("demo", cfg.Demo.Enabled).
		Msg("Starting Which Katha")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS_ORIGINS allows any origin in production")
	}

	lists := store.OpenWithFallback(cfg.Storage, cfg.UI.HistoryCap)
	defer func() {
		if err := lists.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()
	if lists.Degraded() {
		logging.Warn().Str("path", cfg.Storage.Path).Msg("Running on in-memory lists; watchlist and history will not survive a restart")
	}

	backend := upstream.New(cfg.Upstream)

	handler, err := api.NewHandler(cfg, lists, backend)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to build handlers")
		return 1
	}
	router := api.NewRouter(handler, nil)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}
	tree.AddStorageService(services.NewStoreGCService(lists, cfg.Storage.GCInterval))
	tree.AddWebService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Stopped")
	return 0
}
