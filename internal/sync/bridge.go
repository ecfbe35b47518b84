// Package sync defines the remote persistence boundary. The engine treats
// the bridge as fallible and best-effort: pushes are full-state upserts
// keyed by user id, so a lost or reordered push is repaired by the next
// one (last write wins).
package sync

import (
	"context"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// Bridge pushes and pulls progression state to a remote store. Each call
// is independently fallible; partial success across calls is acceptable
// and never rolled back.
type Bridge interface {
	PushProgress(ctx context.Context, userID string, p domain.ProgressSummary) error
	PushUpgrades(ctx context.Context, userID string, levels map[domain.UpgradeKind]int) error
	PushBoosterInventory(ctx context.Context, userID string, counts map[domain.BoosterKind]int) error
	PushProfile(ctx context.Context, userID, username string, totalViews float64) error

	// Pulls return (nil, nil) when the remote store has no row for the user.
	PullProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error)
	PullUpgrades(ctx context.Context, userID string) (map[domain.UpgradeKind]int, error)
	PullBoosterInventory(ctx context.Context, userID string) (map[domain.BoosterKind]int, error)
}
