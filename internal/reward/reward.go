// Package reward models the ad-reward surface: watching a rewarded ad
// grants a timed bonus, and ordinary actions are counted toward the
// interstitial cadence. There is no real ad network behind it; fill and
// outcome are simulated.
package reward

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/booster"
	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
)

const (
	// RewardedMultiplier and RewardedDuration are the default grant for
	// a completed rewarded watch.
	RewardedMultiplier = 2.0
	RewardedDuration   = 30 * time.Second

	// FreeBoosterChance is the probability a completed watch grants a
	// free booster activation instead of the multiplier.
	FreeBoosterChance = 0.3

	// FillRate is the probability an ad is available at all.
	FillRate = 0.9

	// InterstitialFrequency is how many recorded actions pass between
	// interstitial prompts.
	InterstitialFrequency = 5
)

// freeBoosterPool is what a free-booster reward can draw from. Premium
// boosters are excluded; they are the thing the ad reward must not
// undercut.
var freeBoosterPool = []domain.BoosterKind{
	domain.BoosterTrending,
	domain.BoosterEngagementBoost,
}

// Service simulates the rewarded and interstitial ad placements.
type Service interface {
	// WatchRewarded simulates a rewarded-ad watch and returns the
	// outcome. Success=false means no fill; nothing is granted.
	WatchRewarded(ctx context.Context) domain.RewardOutcome
	// RecordAction counts one player action and reports whether an
	// interstitial is due.
	RecordAction(ctx context.Context) bool
}

type service struct {
	mu      sync.Mutex
	actions int

	rnd func() float64 // Injectable for testing
}

func NewService() Service {
	return &service{rnd: rand.Float64}
}

func (s *service) WatchRewarded(ctx context.Context) domain.RewardOutcome {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	fill := s.rnd()
	branch := s.rnd()
	pick := s.rnd()
	s.mu.Unlock()

	if fill >= FillRate {
		log.Debug("Rewarded ad had no fill")
		return domain.RewardOutcome{Success: false}
	}

	if branch < FreeBoosterChance {
		kind := freeBoosterPool[int(pick*float64(len(freeBoosterPool)))%len(freeBoosterPool)]
		desc, err := booster.Lookup(kind)
		if err != nil {
			// Pool entries are catalog kinds; fall through to the
			// multiplier grant if that ever stops holding.
			log.Error("Free booster pool references unknown kind", "kind", kind, "error", err)
		} else {
			log.Info("Rewarded ad granted free booster", "kind", kind)
			return domain.RewardOutcome{
				Success:  true,
				Kind:     domain.RewardFreeBooster,
				Booster:  kind,
				Duration: desc.Duration,
			}
		}
	}

	log.Info("Rewarded ad granted views multiplier")
	return domain.RewardOutcome{
		Success:  true,
		Kind:     domain.RewardViewsMultiplier,
		Amount:   RewardedMultiplier,
		Duration: RewardedDuration,
	}
}

func (s *service) RecordAction(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions++
	if s.actions%InterstitialFrequency != 0 {
		return false
	}
	logger.FromContext(ctx).Debug("Interstitial due", "actions", s.actions)
	return true
}
