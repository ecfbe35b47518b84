package domain

import "time"

// Initial player stats
const (
	InitialViews       = 0.0
	InitialClickValue  = 1.0
	InitialPassiveRate = 0.0
)

// Critical tap baseline. The CRITICAL_CHANCE upgrade stores its value as a
// percentage (0-100) and is clamped at MaxChancePercent.
const (
	BaseCriticalChance     = 0.05
	BaseCriticalMultiplier = 5.0
	MaxChancePercent       = 100.0
)

// Engine timer intervals
const (
	PassiveAccrualInterval = 500 * time.Millisecond
	BoosterSweepInterval   = time.Second
	AutosaveInterval       = 30 * time.Second
	RemoteSyncInterval     = 30 * time.Second
)

// MaxCatchUpWindow caps how much suspended time is credited as passive
// income when the engine resumes.
const MaxCatchUpWindow = 24 * time.Hour

// Local persistence keys. The reconcile checkpoint lives under its own key
// so background transitions can update it without rewriting the full state.
const (
	StorageKeyGameState  = "hiper_clicker_game_state"
	StorageKeyDeviceID   = "hiper_clicker_device_id"
	StorageKeyCheckpoint = "hiper_clicker_last_update_time"
)
