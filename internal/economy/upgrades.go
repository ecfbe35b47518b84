package economy

import "github.com/hiperworks/HiperClicker_Go/internal/domain"

// Upgrade display names for API surfaces.
var UpgradeNames = map[domain.UpgradeKind]string{
	domain.UpgradeClickValue:         "Tap Power",
	domain.UpgradePassiveIncome:      "Engagement",
	domain.UpgradeCriticalChance:     "Viral Chance",
	domain.UpgradeCriticalMultiplier: "Trend Multiplier",
}

// InitialUpgrades returns the level-0 state of every upgrade track.
// CRITICAL_CHANCE stores its value as a percentage (5 = 5%).
func InitialUpgrades() map[domain.UpgradeKind]domain.UpgradeState {
	return map[domain.UpgradeKind]domain.UpgradeState{
		domain.UpgradeClickValue: {
			Level:           0,
			Value:           domain.InitialClickValue,
			BasePrice:       100,
			PriceMultiplier: 1.5,
			Increment:       1.0,
		},
		domain.UpgradePassiveIncome: {
			Level:           0,
			Value:           domain.InitialPassiveRate,
			BasePrice:       250,
			PriceMultiplier: 1.8,
			Increment:       0.5,
		},
		domain.UpgradeCriticalChance: {
			Level:           0,
			Value:           domain.BaseCriticalChance * 100,
			BasePrice:       500,
			PriceMultiplier: 2.0,
			Increment:       1.0,
		},
		domain.UpgradeCriticalMultiplier: {
			Level:           0,
			Value:           domain.BaseCriticalMultiplier,
			BasePrice:       1000,
			PriceMultiplier: 2.5,
			Increment:       0.5,
		},
	}
}
