package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_UpgradeKind(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(BuyUpgradeRequest{Kind: "CLICK_VALUE"}))
	assert.Error(t, v.ValidateStruct(BuyUpgradeRequest{Kind: "WARP_DRIVE"}))
	assert.Error(t, v.ValidateStruct(BuyUpgradeRequest{}))
}

func TestValidateStruct_BoosterKind(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(BoosterActionRequest{Kind: "TRENDING_BOOST"}))
	assert.Error(t, v.ValidateStruct(BoosterActionRequest{Kind: "nope"}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(BuyUpgradeRequest{})
	require.Error(t, err)

	formatted := FormatValidationError(err)
	assert.Equal(t, "This field is required", formatted["kind"])

	err = v.ValidateStruct(BuyUpgradeRequest{Kind: "WARP_DRIVE"})
	require.Error(t, err)

	formatted = FormatValidationError(err)
	assert.Equal(t, "Invalid upgrade kind", formatted["kind"])

	assert.Nil(t, FormatValidationError(nil))
}
