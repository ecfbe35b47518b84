// Package booster holds the booster catalog and the lifecycle helpers that
// move a booster through Inventory -> Active -> Expired. The helpers operate
// on state owned by the progression store; they hold no state of their own.
package booster

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// Activate consumes one inventory unit of kind and returns the active set
// with the new instance appended. The multiplier is snapshotted from the
// catalog at activation time.
func Activate(active []domain.ActiveBooster, inventory map[domain.BoosterKind]int, kind domain.BoosterKind, now time.Time) ([]domain.ActiveBooster, error) {
	desc, err := Lookup(kind)
	if err != nil {
		return active, err
	}
	if inventory[kind] <= 0 {
		return active, fmt.Errorf("%w: %s", domain.ErrEmptyInventory, kind)
	}
	inventory[kind]--

	return append(active, newInstance(desc, desc.Multiplier, now)), nil
}

// GrantTimed activates kind for the given duration without touching
// inventory. Used for promotional grants from the reward collaborator.
// A zero duration falls back to the catalog duration.
func GrantTimed(active []domain.ActiveBooster, kind domain.BoosterKind, duration time.Duration, now time.Time) ([]domain.ActiveBooster, error) {
	desc, err := Lookup(kind)
	if err != nil {
		return active, err
	}
	if duration > 0 {
		desc.Duration = duration
	}
	return append(active, newInstance(desc, desc.Multiplier, now)), nil
}

// GrantMultiplier activates a raw timed multiplier that is not a catalog
// purchase (rewarded-ad multiplier). It is recorded under the trending
// kind so the persisted shape stays uniform.
func GrantMultiplier(active []domain.ActiveBooster, factor float64, duration time.Duration, now time.Time) []domain.ActiveBooster {
	desc := catalog[domain.BoosterTrending]
	desc.Duration = duration
	return append(active, newInstance(desc, factor, now))
}

// Sweep removes every instance whose expiry has passed. Running it again
// with no new activations is a no-op, so callers may sweep as often as
// they like.
func Sweep(active []domain.ActiveBooster, now time.Time) []domain.ActiveBooster {
	kept := active[:0]
	for _, b := range active {
		if !b.Expired(now) {
			kept = append(kept, b)
		}
	}
	return kept
}

// EffectiveMultiplier is the product of the snapshotted multiplier of every
// instance still in force. No cap is applied; stacking is unbounded.
func EffectiveMultiplier(active []domain.ActiveBooster, now time.Time) float64 {
	multiplier := 1.0
	for _, b := range active {
		if b.Multiplier > 0 && !b.Expired(now) {
			multiplier *= b.Multiplier
		}
	}
	return multiplier
}

// AutoTapsForTick returns how many synthetic taps the active auto-action
// boosters produce for one sweep tick: round(rate / tickHz) per instance.
func AutoTapsForTick(active []domain.ActiveBooster, now time.Time, tickHz float64) int {
	taps := 0
	for _, b := range active {
		if b.Expired(now) {
			continue
		}
		desc, err := Lookup(b.Kind)
		if err != nil || desc.AutoTapsPerSecond <= 0 {
			continue
		}
		taps += int(math.Round(desc.AutoTapsPerSecond / tickHz))
	}
	return taps
}

func newInstance(desc Descriptor, multiplier float64, now time.Time) domain.ActiveBooster {
	return domain.ActiveBooster{
		ID:         uuid.NewString(),
		Kind:       desc.Kind,
		ExpiresAt:  now.Add(desc.Duration),
		Multiplier: multiplier,
	}
}
