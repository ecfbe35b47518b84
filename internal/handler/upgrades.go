package handler

import (
	"errors"
	"net/http"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/economy"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
	"github.com/hiperworks/HiperClicker_Go/internal/reward"
)

// UpgradeInfo is one row of the upgrade shop
type UpgradeInfo struct {
	Kind     domain.UpgradeKind `json:"kind"`
	Name     string             `json:"name"`
	Level    int                `json:"level"`
	Value    float64            `json:"value"`
	NextCost int64              `json:"next_cost"`
}

// BuyUpgradeRequest selects which upgrade to purchase
type BuyUpgradeRequest struct {
	Kind string `json:"kind" validate:"required,upgradekind"`
}

// BuyUpgradeResponse reports the purchase result
type BuyUpgradeResponse struct {
	Upgrade         UpgradeInfo `json:"upgrade"`
	Views           float64     `json:"views"`
	InterstitialDue bool        `json:"interstitial_due"`
}

// HandleListUpgrades returns the upgrade shop with current levels and costs
// @Summary List upgrades
// @Description Return every upgrade track with level, value and next cost
// @Tags upgrades
// @Produce json
// @Success 200 {object} DataResponse
// @Router /upgrades [get]
func HandleListUpgrades(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := engine.Snapshot()

		infos := make([]UpgradeInfo, 0, len(domain.AllUpgradeKinds))
		for _, kind := range domain.AllUpgradeKinds {
			u := snap.Upgrades[kind]
			infos = append(infos, UpgradeInfo{
				Kind:     kind,
				Name:     economy.UpgradeNames[kind],
				Level:    u.Level,
				Value:    u.Value,
				NextCost: economy.UpgradeCost(u),
			})
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: infos})
	}
}

// HandleBuyUpgrade purchases one level of an upgrade
// @Summary Buy upgrade
// @Description Spend views to advance an upgrade one level
// @Tags upgrades
// @Accept json
// @Produce json
// @Param request body BuyUpgradeRequest true "Upgrade to buy"
// @Success 200 {object} BuyUpgradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Not enough views"
// @Failure 500 {object} ErrorResponse
// @Router /upgrades/buy [post]
func HandleBuyUpgrade(engine progression.Service, ads reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyUpgradeRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		kind := domain.UpgradeKind(req.Kind)
		u, err := engine.BuyUpgrade(r.Context(), kind)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInsufficientFunds):
				respondError(w, http.StatusPaymentRequired, ErrMsgInsufficientViews)
			case errors.Is(err, domain.ErrUnknownUpgrade):
				respondError(w, http.StatusBadRequest, ErrMsgUnknownUpgradeKind)
			default:
				log.Error("Failed to buy upgrade", "error", err, "kind", kind)
				respondError(w, http.StatusInternalServerError, ErrMsgPurchaseFailed)
			}
			return
		}

		respondJSON(w, http.StatusOK, BuyUpgradeResponse{
			Upgrade: UpgradeInfo{
				Kind:     kind,
				Name:     economy.UpgradeNames[kind],
				Level:    u.Level,
				Value:    u.Value,
				NextCost: economy.UpgradeCost(u),
			},
			Views:           engine.Summary().Views,
			InterstitialDue: ads.RecordAction(r.Context()),
		})
	}
}
