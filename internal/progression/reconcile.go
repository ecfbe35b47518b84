package progression

import (
	"context"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/booster"
	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/metrics"
)

// AccruePassive credits passive income for one live tick. Active booster
// multipliers apply because the player is present while they run. Each
// tick also advances the reconcile checkpoint, since live accrual has
// now covered that time and the next launch must not re-credit it.
func (s *service) AccruePassive(ctx context.Context, elapsed time.Duration) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elapsed <= 0 {
		return 0
	}
	s.snap.LastReconciledAt = s.now()

	if s.snap.PassiveRate <= 0 {
		return 0
	}

	earned := s.snap.PassiveRate * elapsed.Seconds() * booster.EffectiveMultiplier(s.snap.ActiveBoosters, s.now())
	s.snap.Views += earned
	metrics.ViewsEarned.WithLabelValues(metrics.SourcePassive).Add(earned)
	return earned
}

// SweepBoosters synthesizes taps for running auto-tap boosters, then
// drops expired instances. Returns how many expired. Auto taps fire
// before the sweep so a booster on its final tick still produces them.
func (s *service) SweepBoosters(ctx context.Context) int {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	now := s.now()

	tickHz := 1 / domain.BoosterSweepInterval.Seconds()
	taps := booster.AutoTapsForTick(s.snap.ActiveBoosters, now, tickHz)
	for i := 0; i < taps; i++ {
		s.tapLocked(now)
	}

	before := len(s.snap.ActiveBoosters)
	s.snap.ActiveBoosters = booster.Sweep(s.snap.ActiveBoosters, now)
	expired := before - len(s.snap.ActiveBoosters)
	remaining := len(s.snap.ActiveBoosters)
	s.mu.Unlock()

	if expired > 0 {
		metrics.BoostersExpired.Add(float64(expired))
		log.Debug("Boosters expired", "count", expired, "remaining", remaining)
	}
	if taps > 0 || expired > 0 {
		s.saveAsync(ctx)
	}
	return expired
}

// ReconcileOffline credits passive income earned while the engine was
// down. Elapsed time is measured against the persisted checkpoint and
// clamped to the catch-up window. Booster multipliers do not apply: the
// boosters expired in real time while the engine was away, and the sweep
// below clears any that lapsed.
func (s *service) ReconcileOffline(ctx context.Context) (OfflineCredit, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	now := s.now()
	last := s.snap.LastReconciledAt

	if last.IsZero() {
		// First launch: establish the checkpoint, nothing to credit.
		s.snap.LastReconciledAt = now
		s.mu.Unlock()
		if err := s.store.SaveCheckpoint(ctx, now); err != nil {
			metrics.PersistenceFailures.Inc()
			log.Warn("Failed to save initial checkpoint", "error", err)
		}
		return OfflineCredit{}, nil
	}

	elapsed := now.Sub(last)
	if elapsed <= 0 {
		// Clock moved backwards. Keep the checkpoint where it is so a
		// later correct clock cannot re-credit the same window.
		s.mu.Unlock()
		log.Warn("Skipping offline credit, checkpoint is in the future", "checkpoint", last)
		return OfflineCredit{}, nil
	}

	capped := false
	if elapsed > domain.MaxCatchUpWindow {
		elapsed = domain.MaxCatchUpWindow
		capped = true
	}

	credited := s.snap.PassiveRate * elapsed.Seconds()
	s.snap.Views += credited
	s.snap.LastReconciledAt = now
	s.snap.ActiveBoosters = booster.Sweep(s.snap.ActiveBoosters, now)
	s.mu.Unlock()

	if credited > 0 {
		metrics.OfflineViewsCredited.Add(credited)
		metrics.ViewsEarned.WithLabelValues(metrics.SourceOffline).Add(credited)
	}

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to persist offline credit", "error", err)
	}

	log.Info("Reconciled offline progress",
		"elapsed", elapsed, "credited", credited, "capped", capped)

	return OfflineCredit{Elapsed: elapsed, Views: credited, Capped: capped}, nil
}
