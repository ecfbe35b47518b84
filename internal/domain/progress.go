package domain

import "time"

// UpgradeState is the mutable state of one upgrade track.
// Cost to reach level+1 is floor(BasePrice * PriceMultiplier^Level).
type UpgradeState struct {
	Level           int     `json:"level" validate:"gte=0"`
	Value           float64 `json:"value" validate:"gte=0"`
	BasePrice       float64 `json:"base_price" validate:"gt=0"`
	PriceMultiplier float64 `json:"price_multiplier" validate:"gt=1"`
	Increment       float64 `json:"increment" validate:"gt=0"`
}

// ActiveBooster is a running, time-boxed booster instance.
// Multiplier is snapshotted at activation so later catalog changes never
// retroactively alter an effect already in force. Zero means the booster
// contributes no multiplier (auto-action boosters).
type ActiveBooster struct {
	ID         string      `json:"id"`
	Kind       BoosterKind `json:"kind"`
	ExpiresAt  time.Time   `json:"expires_at"`
	Multiplier float64     `json:"multiplier,omitempty"`
}

// Expired reports whether the booster is no longer in force at the instant.
func (b ActiveBooster) Expired(now time.Time) bool {
	return !b.ExpiresAt.After(now)
}

// Snapshot is the aggregate persisted unit of player progression.
// LastReconciledAt is excluded from the serialized blob; the local store
// keeps it under a separate key (see StorageKeyCheckpoint).
type Snapshot struct {
	Views            float64                      `json:"views" validate:"gte=0"`
	ClickValue       float64                      `json:"click_value" validate:"gt=0"`
	PassiveRate      float64                      `json:"passive_rate" validate:"gte=0"`
	TotalTaps        int64                        `json:"total_taps" validate:"gte=0"`
	CriticalTaps     int64                        `json:"critical_taps" validate:"gte=0"`
	Upgrades         map[UpgradeKind]UpgradeState `json:"upgrades" validate:"required,dive"`
	BoosterInventory map[BoosterKind]int          `json:"booster_inventory"`
	ActiveBoosters   []ActiveBooster              `json:"active_boosters"`

	LastReconciledAt time.Time `json:"-"`
}

// ProgressSummary is the flat payload pushed to the remote store.
type ProgressSummary struct {
	Views        float64 `json:"views"`
	ClickValue   float64 `json:"click_value"`
	PassiveRate  float64 `json:"passive_views"`
	TotalTaps    int64   `json:"total_clicks"`
	CriticalTaps int64   `json:"critical_taps"`
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	TotalViews float64 `json:"total_views"`
}
