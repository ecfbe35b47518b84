package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/economy"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/metrics"
)

// syncAsync kicks off a background remote push. Skipped after shutdown
// has begun so the wait group cannot grow while Shutdown drains it.
func (s *service) syncAsync(ctx context.Context) {
	select {
	case <-s.shutdown:
		return
	default:
	}

	log := logger.FromContext(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := s.PushRemote(pushCtx); err != nil && !errors.Is(err, domain.ErrLocalOnly) {
			log.Warn("Background remote push failed", "error", err)
		}
	}()
}

// PushRemote uploads the current state to the remote store, one dataset
// at a time. Each dataset is best-effort; a failed one is retried by the
// next push since every push is a full-state upsert.
func (s *service) PushRemote(ctx context.Context) error {
	log := logger.FromContext(ctx)

	userID, ok := s.identity.UserID()
	if !ok {
		return domain.ErrLocalOnly
	}

	s.mu.Lock()
	summary := s.summaryLocked()
	levels := make(map[domain.UpgradeKind]int, len(s.snap.Upgrades))
	for kind, u := range s.snap.Upgrades {
		levels[kind] = u.Level
	}
	counts := make(map[domain.BoosterKind]int, len(s.snap.BoosterInventory))
	for kind, n := range s.snap.BoosterInventory {
		counts[kind] = n
	}
	s.mu.Unlock()

	failed := false
	push := func(dataset string, fn func() error) {
		if err := fn(); err != nil {
			metrics.SyncFailures.WithLabelValues(dataset).Inc()
			log.Warn("Remote push failed", "dataset", dataset, "error", err)
			failed = true
			return
		}
		metrics.SyncPushes.WithLabelValues(dataset).Inc()
	}

	push("progress", func() error { return s.bridge.PushProgress(ctx, userID, summary) })
	push("upgrades", func() error { return s.bridge.PushUpgrades(ctx, userID, levels) })
	push("boosters", func() error { return s.bridge.PushBoosterInventory(ctx, userID, counts) })
	push("profile", func() error {
		return s.bridge.PushProfile(ctx, userID, s.identity.Username(), summary.Views)
	})

	if failed {
		return fmt.Errorf("%w: one or more datasets were not pushed", domain.ErrSyncFailure)
	}
	return nil
}

// PullRemote replaces local state with the remote profile when one
// exists. Upgrade values are rebuilt from levels, since the remote store
// persists levels only. A missing remote profile leaves local state
// untouched.
func (s *service) PullRemote(ctx context.Context) error {
	log := logger.FromContext(ctx)

	userID, ok := s.identity.UserID()
	if !ok {
		return domain.ErrLocalOnly
	}

	progress, err := s.bridge.PullProgress(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: pull progress: %s", domain.ErrSyncFailure, err)
	}
	levels, err := s.bridge.PullUpgrades(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: pull upgrades: %s", domain.ErrSyncFailure, err)
	}
	counts, err := s.bridge.PullBoosterInventory(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: pull boosters: %s", domain.ErrSyncFailure, err)
	}

	if progress == nil && len(levels) == 0 && len(counts) == 0 {
		log.Debug("No remote profile, keeping local state", "user_id", userID)
		return nil
	}

	s.mu.Lock()
	if progress != nil {
		s.snap.Views = progress.Views
		s.snap.TotalTaps = progress.TotalTaps
		s.snap.CriticalTaps = progress.CriticalTaps
		s.snap.ClickValue = progress.ClickValue
		s.snap.PassiveRate = progress.PassiveRate
	}
	for kind, level := range levels {
		u, ok := s.snap.Upgrades[kind]
		if !ok {
			log.Warn("Ignoring unknown remote upgrade", "kind", kind)
			continue
		}
		u.Level = level
		u.Value = economy.ValueAtLevel(kind, level)
		s.snap.Upgrades[kind] = u

		switch kind {
		case domain.UpgradeClickValue:
			s.snap.ClickValue = u.Value
		case domain.UpgradePassiveIncome:
			s.snap.PassiveRate = u.Value
		}
	}
	if counts != nil {
		inventory := make(map[domain.BoosterKind]int, len(counts))
		for kind, n := range counts {
			inventory[kind] = n
		}
		s.snap.BoosterInventory = inventory
	}
	s.mu.Unlock()

	log.Info("Restored remote profile", "user_id", userID)

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to persist pulled profile", "error", err)
	}
	return nil
}
