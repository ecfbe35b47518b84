package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/economy"
)

func TestHandleListUpgrades(t *testing.T) {
	engine := NewMockEngine()
	engine.On("Snapshot").Return(domain.Snapshot{
		Upgrades: economy.InitialUpgrades(),
	})

	req := httptest.NewRequest(http.MethodGet, "/upgrades", nil)
	rec := httptest.NewRecorder()
	HandleListUpgrades(engine)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []UpgradeInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, len(domain.AllUpgradeKinds))
	assert.Equal(t, domain.UpgradeClickValue, resp.Data[0].Kind)
	assert.Equal(t, int64(100), resp.Data[0].NextCost)
}

func TestHandleBuyUpgrade_Success(t *testing.T) {
	engine := NewMockEngine()
	bought := economy.InitialUpgrades()[domain.UpgradeClickValue]
	bought.Level = 1
	bought.Value = 2.0
	engine.On("BuyUpgrade", mock.Anything, domain.UpgradeClickValue).Return(bought, nil)
	engine.On("Summary").Return(domain.ProgressSummary{Views: 20})

	body := strings.NewReader(`{"kind":"CLICK_VALUE"}`)
	req := httptest.NewRequest(http.MethodPost, "/upgrades/buy", body)
	rec := httptest.NewRecorder()
	HandleBuyUpgrade(engine, &stubAds{interstitial: true})(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BuyUpgradeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Upgrade.Level)
	assert.Equal(t, 2.0, resp.Upgrade.Value)
	assert.Equal(t, 20.0, resp.Views)
	assert.True(t, resp.InterstitialDue)
}

func TestHandleBuyUpgrade_InsufficientViews(t *testing.T) {
	engine := NewMockEngine()
	engine.On("BuyUpgrade", mock.Anything, domain.UpgradeClickValue).
		Return(domain.UpgradeState{}, domain.ErrInsufficientFunds)

	body := strings.NewReader(`{"kind":"CLICK_VALUE"}`)
	req := httptest.NewRequest(http.MethodPost, "/upgrades/buy", body)
	rec := httptest.NewRecorder()
	HandleBuyUpgrade(engine, &stubAds{})(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInsufficientViews)
}

func TestHandleBuyUpgrade_UnknownKind(t *testing.T) {
	engine := NewMockEngine()

	body := strings.NewReader(`{"kind":"TURBO_MODE"}`)
	req := httptest.NewRequest(http.MethodPost, "/upgrades/buy", body)
	rec := httptest.NewRecorder()
	HandleBuyUpgrade(engine, &stubAds{})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	engine.AssertNotCalled(t, "BuyUpgrade")
}

func TestHandleBuyUpgrade_InvalidBody(t *testing.T) {
	engine := NewMockEngine()

	body := strings.NewReader(`{not json`)
	req := httptest.NewRequest(http.MethodPost, "/upgrades/buy", body)
	rec := httptest.NewRecorder()
	HandleBuyUpgrade(engine, &stubAds{})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBuyUpgrade_EngineFailure(t *testing.T) {
	engine := NewMockEngine()
	engine.On("BuyUpgrade", mock.Anything, domain.UpgradeClickValue).
		Return(domain.UpgradeState{}, errors.New("disk full"))

	body := strings.NewReader(`{"kind":"CLICK_VALUE"}`)
	req := httptest.NewRequest(http.MethodPost, "/upgrades/buy", body)
	rec := httptest.NewRecorder()
	HandleBuyUpgrade(engine, &stubAds{})(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
