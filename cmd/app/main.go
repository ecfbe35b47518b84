package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiperworks/HiperClicker_Go/internal/bootstrap"
	"github.com/hiperworks/HiperClicker_Go/internal/config"
	"github.com/hiperworks/HiperClicker_Go/internal/database"
	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/identity"
	"github.com/hiperworks/HiperClicker_Go/internal/leaderboard"
	"github.com/hiperworks/HiperClicker_Go/internal/persistence"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
	"github.com/hiperworks/HiperClicker_Go/internal/reward"
	"github.com/hiperworks/HiperClicker_Go/internal/scheduler"
	"github.com/hiperworks/HiperClicker_Go/internal/server"
	remote "github.com/hiperworks/HiperClicker_Go/internal/sync"
	"github.com/hiperworks/HiperClicker_Go/internal/worker"
)

const (
	workerCount     = 4
	workerQueueSize = 64
	shutdownTimeout = 15 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := persistence.NewFileStore(cfg.DataDir)
	if err != nil {
		return err
	}

	id, err := identity.NewDeviceProvider(ctx, store)
	if err != nil {
		return err
	}

	// Remote store is optional; without DB_HOST the game runs local-only.
	var (
		bridge             remote.Bridge = remote.Noop{}
		leaderboardService leaderboard.Service
		dbPool             *pgxpool.Pool
	)
	if cfg.SyncEnabled() {
		dbPool, err = database.NewPool(cfg.GetDBConnString(),
			database.DefaultMaxConnections,
			database.DefaultMaxConnIdleTime,
			database.DefaultMaxConnLifetime)
		if err != nil {
			return err
		}

		repos := bootstrap.InitializeRepositories(dbPool)
		bridge = repos.Sync
		leaderboardService = leaderboard.NewService(repos.Leaderboard)
	}

	engine, err := progression.NewService(ctx, store, bridge, id)
	if err != nil {
		return err
	}

	// Restore the remote profile first, then credit time spent away.
	// Both are best effort; a cold start plays fine without either.
	if err := engine.PullRemote(ctx); err != nil && !errors.Is(err, domain.ErrLocalOnly) {
		slog.Warn("Remote pull failed, starting from local save", "error", err)
	}
	if credit, err := engine.ReconcileOffline(ctx); err != nil {
		slog.Warn("Offline reconciliation failed", "error", err)
	} else if credit.Views > 0 {
		slog.Info("Offline earnings credited",
			"views", credit.Views,
			"elapsed", credit.Elapsed,
			"capped", credit.Capped)
	}

	adService := reward.NewService()

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(domain.PassiveAccrualInterval, &worker.AccrualJob{Engine: engine, Interval: domain.PassiveAccrualInterval})
	sched.Schedule(domain.BoosterSweepInterval, &worker.SweepJob{Engine: engine})
	sched.Schedule(domain.AutosaveInterval, &worker.AutosaveJob{Engine: engine})
	if cfg.SyncEnabled() {
		sched.Schedule(domain.RemoteSyncInterval, &worker.SyncJob{Engine: engine})
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, poolOrNil(dbPool), engine, adService, leaderboardService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	components := bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		Engine:     engine,
	}
	if dbPool != nil {
		components.ClosePool = dbPool.Close
	}
	bootstrap.GracefulShutdown(shutdownCtx, components)

	return nil
}

// poolOrNil avoids handing the server a non-nil interface wrapping a nil
// pointer, which would break its nil checks.
func poolOrNil(p *pgxpool.Pool) database.Pool {
	if p == nil {
		return nil
	}
	return p
}
