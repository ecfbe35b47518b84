package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hiperworks/HiperClicker_Go/internal/progression"
	"github.com/hiperworks/HiperClicker_Go/internal/scheduler"
	"github.com/hiperworks/HiperClicker_Go/internal/server"
	"github.com/hiperworks/HiperClicker_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	Engine     progression.Service
	ClosePool  func()
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (stop the background tick jobs)
// 3. Progression engine (final save and sync push)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Stop ticking before the final save so no job races the engine shutdown
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Engine != nil {
		if err := components.Engine.Shutdown(ctx); err != nil {
			slog.Error(ServiceNameEngine+LogMsgServiceShutdownFailed, "error", err)
		}
	}

	if components.ClosePool != nil {
		components.ClosePool()
	}

	slog.Info(LogMsgServerStopped)
}
