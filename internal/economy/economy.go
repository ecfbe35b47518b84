package economy

import (
	"math"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// TapResult is the outcome of resolving a single tap.
type TapResult struct {
	Amount      float64 `json:"amount"`
	WasCritical bool    `json:"was_critical"`
}

// UpgradeCost returns the cost in views to take the upgrade from its
// current level to the next: floor(basePrice * priceMultiplier^level).
// Strictly increasing in level because PriceMultiplier > 1.
func UpgradeCost(u domain.UpgradeState) int64 {
	return int64(math.Floor(u.BasePrice * math.Pow(u.PriceMultiplier, float64(u.Level))))
}

// ResolveTap draws one uniform sample from rnd and resolves the tap value.
// criticalChance is a probability in [0,1]; criticalMultiplier >= 1.
// The random source is injected so tests can pin the roll.
func ResolveTap(baseClickValue, criticalChance, criticalMultiplier float64, rnd func() float64) TapResult {
	if rnd() < criticalChance {
		return TapResult{Amount: baseClickValue * criticalMultiplier, WasCritical: true}
	}
	return TapResult{Amount: baseClickValue}
}

// ApplyPurchase returns the upgrade advanced by one level. Chance-type
// upgrades carry percentage semantics and clamp at MaxChancePercent;
// value-type upgrades grow without bound.
func ApplyPurchase(kind domain.UpgradeKind, u domain.UpgradeState) domain.UpgradeState {
	u.Level++
	u.Value += u.Increment
	if isChanceKind(kind) && u.Value > domain.MaxChancePercent {
		u.Value = domain.MaxChancePercent
	}
	return u
}

// ValueAtLevel recomputes an upgrade's effect magnitude from a bare level.
// The remote store persists only levels, so restoring a synced profile
// rebuilds values from the initial table.
func ValueAtLevel(kind domain.UpgradeKind, level int) float64 {
	base := InitialUpgrades()[kind]
	value := base.Value + base.Increment*float64(level)
	if isChanceKind(kind) && value > domain.MaxChancePercent {
		value = domain.MaxChancePercent
	}
	return value
}

func isChanceKind(kind domain.UpgradeKind) bool {
	return kind == domain.UpgradeCriticalChance
}
