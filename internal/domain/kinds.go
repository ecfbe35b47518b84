package domain

import "fmt"

// UpgradeKind identifies one of the purchasable upgrade tracks.
// The set is closed: every kind has a row in economy.InitialUpgrades and
// unknown kinds are rejected at the parse boundary instead of at lookup time.
type UpgradeKind string

const (
	UpgradeClickValue         UpgradeKind = "CLICK_VALUE"
	UpgradePassiveIncome      UpgradeKind = "PASSIVE_INCOME"
	UpgradeCriticalChance     UpgradeKind = "CRITICAL_CHANCE"
	UpgradeCriticalMultiplier UpgradeKind = "CRITICAL_MULTIPLIER"
)

// AllUpgradeKinds lists every upgrade kind in display order.
var AllUpgradeKinds = []UpgradeKind{
	UpgradeClickValue,
	UpgradePassiveIncome,
	UpgradeCriticalChance,
	UpgradeCriticalMultiplier,
}

// ParseUpgradeKind converts an external string (API request, sync row)
// into an UpgradeKind, rejecting anything outside the closed set.
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	kind := UpgradeKind(s)
	for _, k := range AllUpgradeKinds {
		if kind == k {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownUpgrade, s)
}

// BoosterKind identifies one of the catalog boosters.
type BoosterKind string

const (
	BoosterTrending        BoosterKind = "TRENDING_BOOST"
	BoosterAIContent       BoosterKind = "AI_CONTENT_GENERATOR"
	BoosterMegaTrending    BoosterKind = "MEGA_TRENDING_BOOST"
	BoosterEngagementBoost BoosterKind = "ENGAGEMENT_BOOST"
)

// AllBoosterKinds lists every booster kind in catalog order.
var AllBoosterKinds = []BoosterKind{
	BoosterTrending,
	BoosterAIContent,
	BoosterMegaTrending,
	BoosterEngagementBoost,
}

// ParseBoosterKind converts an external string into a BoosterKind.
func ParseBoosterKind(s string) (BoosterKind, error) {
	kind := BoosterKind(s)
	for _, k := range AllBoosterKinds {
		if kind == k {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownBooster, s)
}
