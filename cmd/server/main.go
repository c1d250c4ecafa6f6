package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/config"
	"github.com/puzzleboard/stats-api/internal/dataset"
	"github.com/puzzleboard/stats-api/internal/handlers"
	"github.com/puzzleboard/stats-api/internal/logic"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	catalog := dataset.DefaultCatalog()
	if cfg.GameCatalogPath != "" {
		if catalog, err = dataset.LoadCatalog(cfg.GameCatalogPath); err != nil {
			return err
		}
	}

	ds, err := dataset.Load(cfg.DatasetPath, logger)
	if err != nil {
		return err
	}
	catalog.Enrich(ds)

	stats := logic.NewStatsService(logger, logic.StatsOptions{
		LeaderboardSize: cfg.LeaderboardSize,
		RecentLimit:     cfg.RecentLimit,
	})

	snap, err := stats.Recompute(context.Background(), ds, time.Now())
	if err != nil {
		return fmt.Errorf("recompute snapshot: %w", err)
	}

	h := handlers.New(handlers.Config{
		Dataset:      ds,
		Snapshot:     snap,
		Logger:       logger,
		Stats:        stats,
		Leaderboards: logic.NewLeaderboardService(logger),
		Performance:  logic.NewPerformanceService(logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.Routes(h, logger, cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infow("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Sugar().Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Sugar().Infow("server stopped")
	return nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
