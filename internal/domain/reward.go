package domain

import "time"

// RewardKind classifies what a completed rewarded-ad watch grants.
type RewardKind string

const (
	// RewardViewsMultiplier grants a timed income multiplier.
	RewardViewsMultiplier RewardKind = "VIEWS_MULTIPLIER"
	// RewardFreeBooster grants a timed activation of a catalog booster
	// without consuming inventory.
	RewardFreeBooster RewardKind = "FREE_BOOSTER"
	// RewardAutoActions grants a timed auto-tap effect.
	RewardAutoActions RewardKind = "AUTO_ACTIONS"
)

// RewardOutcome describes the result of an ad watch. On Success=false the
// engine applies no state change.
type RewardOutcome struct {
	Success  bool          `json:"success"`
	Kind     RewardKind    `json:"kind,omitempty"`
	Amount   float64       `json:"amount,omitempty"` // multiplier factor, or actions per second
	Booster  BoosterKind   `json:"booster,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}
