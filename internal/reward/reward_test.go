package reward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// sequenceRand returns the given values in order, repeating the last.
func sequenceRand(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestWatchRewarded_NoFill(t *testing.T) {
	s := &service{rnd: sequenceRand(0.95)}

	out := s.WatchRewarded(context.Background())
	assert.False(t, out.Success)
	assert.Empty(t, out.Kind)
}

func TestWatchRewarded_MultiplierGrant(t *testing.T) {
	s := &service{rnd: sequenceRand(0.1, 0.9, 0.0)}

	out := s.WatchRewarded(context.Background())
	assert.True(t, out.Success)
	assert.Equal(t, domain.RewardViewsMultiplier, out.Kind)
	assert.Equal(t, RewardedMultiplier, out.Amount)
	assert.Equal(t, RewardedDuration, out.Duration)
}

func TestWatchRewarded_FreeBoosterGrant(t *testing.T) {
	s := &service{rnd: sequenceRand(0.1, 0.1, 0.0)}

	out := s.WatchRewarded(context.Background())
	assert.True(t, out.Success)
	assert.Equal(t, domain.RewardFreeBooster, out.Kind)
	assert.Equal(t, domain.BoosterTrending, out.Booster)
	assert.Positive(t, out.Duration)
}

func TestWatchRewarded_FreeBoosterNeverPremium(t *testing.T) {
	for _, kind := range freeBoosterPool {
		assert.NotEqual(t, domain.BoosterMegaTrending, kind)
	}
}

func TestRecordAction_EveryFifthActionPrompts(t *testing.T) {
	s := NewService()
	ctx := context.Background()

	var prompts []int
	for i := 1; i <= 12; i++ {
		if s.RecordAction(ctx) {
			prompts = append(prompts, i)
		}
	}
	assert.Equal(t, []int{5, 10}, prompts)
}
