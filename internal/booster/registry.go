package booster

import (
	"fmt"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// Descriptor is the immutable catalog entry for one booster kind.
// A booster scales income (Multiplier), synthesizes taps
// (AutoTapsPerSecond), or both; zero means the effect is absent.
type Descriptor struct {
	Kind              domain.BoosterKind `json:"kind"`
	Name              string             `json:"name"`
	Duration          time.Duration      `json:"duration"`
	Price             float64            `json:"price"`
	Premium           bool               `json:"premium"`
	Multiplier        float64            `json:"multiplier,omitempty"`
	AutoTapsPerSecond float64            `json:"auto_taps_per_second,omitempty"`
}

// catalog is the exhaustive mapping for every domain.BoosterKind.
var catalog = map[domain.BoosterKind]Descriptor{
	domain.BoosterTrending: {
		Kind:       domain.BoosterTrending,
		Name:       "Trending Boost",
		Duration:   30 * time.Second,
		Price:      1000,
		Multiplier: 2,
	},
	domain.BoosterAIContent: {
		Kind:              domain.BoosterAIContent,
		Name:              "AI Content Generator",
		Duration:          10 * time.Second,
		Price:             2000,
		AutoTapsPerSecond: 5,
	},
	domain.BoosterMegaTrending: {
		Kind:       domain.BoosterMegaTrending,
		Name:       "Mega Trending Boost",
		Duration:   time.Minute,
		Price:      5000,
		Premium:    true,
		Multiplier: 5,
	},
	domain.BoosterEngagementBoost: {
		Kind:       domain.BoosterEngagementBoost,
		Name:       "Engagement Boost",
		Duration:   45 * time.Second,
		Price:      3000,
		Multiplier: 3,
	},
}

// Lookup returns the catalog descriptor for a booster kind.
func Lookup(kind domain.BoosterKind) (Descriptor, error) {
	d, ok := catalog[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", domain.ErrUnknownBooster, kind)
	}
	return d, nil
}

// Catalog returns every descriptor in catalog order.
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(catalog))
	for _, kind := range domain.AllBoosterKinds {
		out = append(out, catalog[kind])
	}
	return out
}
