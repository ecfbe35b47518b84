package sync

import (
	"context"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// Noop is the bridge used in local-only mode (no user identity or no
// backend configured). Pushes succeed without effect; pulls find nothing.
type Noop struct{}

var _ Bridge = Noop{}

func (Noop) PushProgress(context.Context, string, domain.ProgressSummary) error { return nil }

func (Noop) PushUpgrades(context.Context, string, map[domain.UpgradeKind]int) error { return nil }

func (Noop) PushBoosterInventory(context.Context, string, map[domain.BoosterKind]int) error {
	return nil
}

func (Noop) PushProfile(context.Context, string, string, float64) error { return nil }

func (Noop) PullProgress(context.Context, string) (*domain.ProgressSummary, error) {
	return nil, nil
}

func (Noop) PullUpgrades(context.Context, string) (map[domain.UpgradeKind]int, error) {
	return nil, nil
}

func (Noop) PullBoosterInventory(context.Context, string) (map[domain.BoosterKind]int, error) {
	return nil, nil
}
