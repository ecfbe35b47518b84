package progression

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/booster"
	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/economy"
	"github.com/hiperworks/HiperClicker_Go/internal/identity"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/metrics"
	"github.com/hiperworks/HiperClicker_Go/internal/persistence"
	remote "github.com/hiperworks/HiperClicker_Go/internal/sync"
)

// pushTimeout bounds background remote pushes so a stalled network call
// never blocks shutdown indefinitely.
const pushTimeout = 10 * time.Second

// TapOutcome is the result of a single resolved tap.
type TapOutcome struct {
	Amount   float64 `json:"amount"`
	Critical bool    `json:"critical"`
	Views    float64 `json:"views"`
}

// OfflineCredit reports what an offline reconciliation granted.
type OfflineCredit struct {
	Elapsed time.Duration `json:"elapsed"`
	Views   float64       `json:"views"`
	Capped  bool          `json:"capped"`
}

// Service is the progression engine: the single owner of player state.
// All mutation goes through it and is serialized internally, so callers
// never observe a half-applied transition.
type Service interface {
	Tap(ctx context.Context) (TapOutcome, error)
	BuyUpgrade(ctx context.Context, kind domain.UpgradeKind) (domain.UpgradeState, error)
	BuyBooster(ctx context.Context, kind domain.BoosterKind) (int, error)
	ActivateBooster(ctx context.Context, kind domain.BoosterKind) (domain.ActiveBooster, error)
	ApplyReward(ctx context.Context, outcome domain.RewardOutcome) error

	AccruePassive(ctx context.Context, elapsed time.Duration) float64
	SweepBoosters(ctx context.Context) int
	ReconcileOffline(ctx context.Context) (OfflineCredit, error)

	Reset(ctx context.Context) error
	Snapshot() domain.Snapshot
	Summary() domain.ProgressSummary

	Save(ctx context.Context) error
	PushRemote(ctx context.Context) error
	PullRemote(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type service struct {
	mu   sync.Mutex
	snap domain.Snapshot

	store    persistence.Store
	bridge   remote.Bridge
	identity identity.Provider

	rnd func() float64 // Injectable for testing
	now func() time.Time

	wg       sync.WaitGroup
	shutdown chan struct{}
}

// NewService loads local state and returns a ready engine. A missing
// snapshot starts a fresh profile; a corrupt one is discarded rather than
// bricking the player.
func NewService(ctx context.Context, store persistence.Store, bridge remote.Bridge, id identity.Provider) (Service, error) {
	log := logger.FromContext(ctx)

	snap, err := store.LoadSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidSnapshot) {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		log.Warn("Discarding corrupt local snapshot, starting fresh", "error", err)
		snap = nil
	}
	if snap == nil {
		fresh := defaultSnapshot()
		snap = &fresh
	}

	if cp, err := store.LoadCheckpoint(ctx); err == nil && cp != nil {
		snap.LastReconciledAt = *cp
	} else if err != nil {
		log.Warn("Failed to load reconcile checkpoint", "error", err)
	}

	return &service{
		snap:     *snap,
		store:    store,
		bridge:   bridge,
		identity: id,
		rnd:      rand.Float64,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}, nil
}

func defaultSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Views:            domain.InitialViews,
		ClickValue:       domain.InitialClickValue,
		PassiveRate:      domain.InitialPassiveRate,
		Upgrades:         economy.InitialUpgrades(),
		BoosterInventory: make(map[domain.BoosterKind]int),
	}
}

// Tap resolves one manual tap, applying critical rolls and any active
// booster multipliers. The mutated state is persisted in the background
// so tap latency never waits on disk.
func (s *service) Tap(ctx context.Context) (TapOutcome, error) {
	s.mu.Lock()
	out := s.tapLocked(s.now())
	s.mu.Unlock()

	s.saveAsync(ctx)
	return out, nil
}

// tapLocked applies one tap. Caller holds s.mu.
func (s *service) tapLocked(now time.Time) TapOutcome {
	chance := s.snap.Upgrades[domain.UpgradeCriticalChance].Value / 100
	critMult := s.snap.Upgrades[domain.UpgradeCriticalMultiplier].Value

	res := economy.ResolveTap(s.snap.ClickValue, chance, critMult, s.rnd)
	amount := res.Amount * booster.EffectiveMultiplier(s.snap.ActiveBoosters, now)

	s.snap.Views += amount
	s.snap.TotalTaps++
	metrics.TapsTotal.Inc()
	metrics.ViewsEarned.WithLabelValues(metrics.SourceTap).Add(amount)
	if res.WasCritical {
		s.snap.CriticalTaps++
		metrics.CriticalTapsTotal.Inc()
	}

	return TapOutcome{Amount: amount, Critical: res.WasCritical, Views: s.snap.Views}
}

// BuyUpgrade spends views to advance an upgrade one level. The purchase
// is applied in memory first; persistence and remote sync follow and are
// never allowed to roll it back.
func (s *service) BuyUpgrade(ctx context.Context, kind domain.UpgradeKind) (domain.UpgradeState, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	u, ok := s.snap.Upgrades[kind]
	if !ok {
		s.mu.Unlock()
		return domain.UpgradeState{}, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, kind)
	}

	cost := economy.UpgradeCost(u)
	if s.snap.Views < float64(cost) {
		s.mu.Unlock()
		return domain.UpgradeState{}, fmt.Errorf("%w: upgrade %s costs %d views", domain.ErrInsufficientFunds, kind, cost)
	}

	s.snap.Views -= float64(cost)
	u = economy.ApplyPurchase(kind, u)
	s.snap.Upgrades[kind] = u

	// ClickValue and PassiveRate mirror their upgrade tracks.
	switch kind {
	case domain.UpgradeClickValue:
		s.snap.ClickValue = u.Value
	case domain.UpgradePassiveIncome:
		s.snap.PassiveRate = u.Value
	}
	s.mu.Unlock()

	metrics.UpgradesPurchased.WithLabelValues(string(kind)).Inc()
	log.Info("Upgrade purchased", "kind", kind, "level", u.Level, "cost", cost)

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to persist purchase", "kind", kind, "error", err)
	}
	s.syncAsync(ctx)

	return u, nil
}

// BuyBooster spends views to add one booster to the inventory and returns
// the new count for that kind.
func (s *service) BuyBooster(ctx context.Context, kind domain.BoosterKind) (int, error) {
	log := logger.FromContext(ctx)

	desc, err := booster.Lookup(kind)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	if s.snap.Views < desc.Price {
		s.mu.Unlock()
		return 0, fmt.Errorf("%w: booster %s costs %.0f views", domain.ErrInsufficientFunds, kind, desc.Price)
	}
	s.snap.Views -= desc.Price
	if s.snap.BoosterInventory == nil {
		s.snap.BoosterInventory = make(map[domain.BoosterKind]int)
	}
	s.snap.BoosterInventory[kind]++
	count := s.snap.BoosterInventory[kind]
	s.mu.Unlock()

	metrics.BoostersPurchased.WithLabelValues(string(kind)).Inc()
	log.Info("Booster purchased", "kind", kind, "count", count)

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to persist purchase", "kind", kind, "error", err)
	}
	s.syncAsync(ctx)

	return count, nil
}

// ActivateBooster consumes one inventory unit and starts the effect.
func (s *service) ActivateBooster(ctx context.Context, kind domain.BoosterKind) (domain.ActiveBooster, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	active, err := booster.Activate(s.snap.ActiveBoosters, s.snap.BoosterInventory, kind, s.now())
	if err != nil {
		s.mu.Unlock()
		return domain.ActiveBooster{}, err
	}
	s.snap.ActiveBoosters = active
	instance := active[len(active)-1]
	s.mu.Unlock()

	metrics.BoostersActivated.WithLabelValues(string(kind)).Inc()
	log.Info("Booster activated", "kind", kind, "expires_at", instance.ExpiresAt)

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to persist activation", "kind", kind, "error", err)
	}

	return instance, nil
}

// ApplyReward applies the outcome of a completed rewarded-ad watch.
// Unsuccessful outcomes are a no-op.
func (s *service) ApplyReward(ctx context.Context, outcome domain.RewardOutcome) error {
	log := logger.FromContext(ctx)

	if !outcome.Success {
		return nil
	}
	now := s.now()

	s.mu.Lock()
	switch outcome.Kind {
	case domain.RewardViewsMultiplier:
		factor := outcome.Amount
		if factor <= 1 {
			factor = 2
		}
		duration := outcome.Duration
		if duration <= 0 {
			duration = 30 * time.Second
		}
		s.snap.ActiveBoosters = booster.GrantMultiplier(s.snap.ActiveBoosters, factor, duration, now)

	case domain.RewardFreeBooster:
		active, err := booster.GrantTimed(s.snap.ActiveBoosters, outcome.Booster, outcome.Duration, now)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		s.snap.ActiveBoosters = active

	case domain.RewardAutoActions:
		active, err := booster.GrantTimed(s.snap.ActiveBoosters, domain.BoosterAIContent, outcome.Duration, now)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		s.snap.ActiveBoosters = active

	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: unknown reward kind %q", domain.ErrInvalidInput, outcome.Kind)
	}
	s.mu.Unlock()

	metrics.RewardsGranted.WithLabelValues(string(outcome.Kind)).Inc()
	log.Info("Reward granted", "kind", outcome.Kind)

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to persist reward", "kind", outcome.Kind, "error", err)
	}

	return nil
}

// Reset wipes progress and upgrades back to a fresh profile. Purchased
// booster inventory and running boosters survive a reset.
func (s *service) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	inventory := s.snap.BoosterInventory
	active := s.snap.ActiveBoosters
	last := s.snap.LastReconciledAt

	s.snap = defaultSnapshot()
	s.snap.BoosterInventory = inventory
	s.snap.ActiveBoosters = active
	s.snap.LastReconciledAt = last
	s.mu.Unlock()

	log.Info("Progress reset")

	if err := s.Save(ctx); err != nil {
		return err
	}
	s.syncAsync(ctx)
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snap)
}

// Summary returns the flat progress numbers.
func (s *service) Summary() domain.ProgressSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

// summaryLocked builds the flat payload. Caller holds s.mu.
func (s *service) summaryLocked() domain.ProgressSummary {
	return domain.ProgressSummary{
		Views:        s.snap.Views,
		ClickValue:   s.snap.ClickValue,
		PassiveRate:  s.snap.PassiveRate,
		TotalTaps:    s.snap.TotalTaps,
		CriticalTaps: s.snap.CriticalTaps,
	}
}

// Save persists the full snapshot and the reconcile checkpoint as the
// engine last advanced it. Save itself never moves the checkpoint: only
// live accrual and the offline reconcile do, so a remote pull or an
// autosave before reconcile cannot erase an unclaimed offline gap.
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	snap := cloneSnapshot(s.snap)
	s.mu.Unlock()

	if err := s.store.SaveSnapshot(ctx, snap); err != nil {
		metrics.PersistenceFailures.Inc()
		return fmt.Errorf("%w: %s", domain.ErrPersistenceFailure, err)
	}
	if snap.LastReconciledAt.IsZero() {
		return nil
	}
	if err := s.store.SaveCheckpoint(ctx, snap.LastReconciledAt); err != nil {
		metrics.PersistenceFailures.Inc()
		return fmt.Errorf("%w: %s", domain.ErrPersistenceFailure, err)
	}
	return nil
}

// saveAsync persists in the background. Skipped once shutdown has begun;
// the shutdown flush covers whatever is still unsaved.
func (s *service) saveAsync(ctx context.Context) {
	select {
	case <-s.shutdown:
		return
	default:
	}

	log := logger.FromContext(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		saveCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := s.Save(saveCtx); err != nil {
			log.Error("Background save failed", "error", err)
		}
	}()
}

// Shutdown flushes state and waits for in-flight remote pushes.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.Save(ctx); err != nil {
		log.Error("Failed to save on shutdown", "error", err)
	}
	if err := s.PushRemote(ctx); err != nil && !errors.Is(err, domain.ErrLocalOnly) {
		log.Warn("Final remote push failed", "error", err)
	}

	close(s.shutdown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cloneSnapshot(snap domain.Snapshot) domain.Snapshot {
	out := snap
	out.Upgrades = make(map[domain.UpgradeKind]domain.UpgradeState, len(snap.Upgrades))
	for k, v := range snap.Upgrades {
		out.Upgrades[k] = v
	}
	out.BoosterInventory = make(map[domain.BoosterKind]int, len(snap.BoosterInventory))
	for k, v := range snap.BoosterInventory {
		out.BoosterInventory[k] = v
	}
	out.ActiveBoosters = append([]domain.ActiveBooster(nil), snap.ActiveBoosters...)
	return out
}
