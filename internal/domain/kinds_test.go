package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpgradeKind(t *testing.T) {
	for _, k := range AllUpgradeKinds {
		parsed, err := ParseUpgradeKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseUpgradeKind("WARP_DRIVE")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)

	_, err = ParseUpgradeKind("")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)

	// Parsing is case sensitive; wire values are canonical upper snake
	_, err = ParseUpgradeKind("click_value")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)
}

func TestParseBoosterKind(t *testing.T) {
	for _, k := range AllBoosterKinds {
		parsed, err := ParseBoosterKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseBoosterKind("NOT_A_BOOSTER")
	assert.ErrorIs(t, err, ErrUnknownBooster)
}
