package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiperworks/HiperClicker_Go/internal/database/postgres"
	"github.com/hiperworks/HiperClicker_Go/internal/leaderboard"
	remote "github.com/hiperworks/HiperClicker_Go/internal/sync"
)

// Repositories holds the remote-store implementations used by the
// application. They exist only when a database is configured; in
// local-only mode the caller substitutes the no-op bridge instead.
type Repositories struct {
	Sync        remote.Bridge
	Leaderboard leaderboard.Repository
}

// InitializeRepositories creates all remote repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Sync:        postgres.NewSyncRepository(dbPool),
		Leaderboard: postgres.NewLeaderboardRepository(dbPool),
	}
}
