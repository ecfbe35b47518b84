package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/booster"
	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
	"github.com/hiperworks/HiperClicker_Go/internal/reward"
)

// BoosterInfo is one row of the booster shop
type BoosterInfo struct {
	Kind              domain.BoosterKind `json:"kind"`
	Name              string             `json:"name"`
	Price             float64            `json:"price"`
	DurationSeconds   float64            `json:"duration_seconds"`
	Premium           bool               `json:"premium"`
	Multiplier        float64            `json:"multiplier,omitempty"`
	AutoTapsPerSecond float64            `json:"auto_taps_per_second,omitempty"`
	Owned             int                `json:"owned"`
}

// BoosterActionRequest selects which booster to buy or activate
type BoosterActionRequest struct {
	Kind string `json:"kind" validate:"required,boosterkind"`
}

// BuyBoosterResponse reports the purchase result
type BuyBoosterResponse struct {
	Kind            domain.BoosterKind `json:"kind"`
	Owned           int                `json:"owned"`
	Views           float64            `json:"views"`
	InterstitialDue bool               `json:"interstitial_due"`
}

// ActivateBoosterResponse reports the started booster instance
type ActivateBoosterResponse struct {
	Booster domain.ActiveBooster `json:"booster"`
	Owned   int                  `json:"owned"`
}

// HandleListBoosters returns the booster shop with owned counts
// @Summary List boosters
// @Description Return the booster catalog with prices and inventory counts
// @Tags boosters
// @Produce json
// @Success 200 {object} DataResponse
// @Router /boosters [get]
func HandleListBoosters(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := engine.Snapshot()

		infos := make([]BoosterInfo, 0, len(domain.AllBoosterKinds))
		for _, desc := range booster.Catalog() {
			infos = append(infos, BoosterInfo{
				Kind:              desc.Kind,
				Name:              desc.Name,
				Price:             desc.Price,
				DurationSeconds:   desc.Duration.Seconds(),
				Premium:           desc.Premium,
				Multiplier:        desc.Multiplier,
				AutoTapsPerSecond: desc.AutoTapsPerSecond,
				Owned:             snap.BoosterInventory[desc.Kind],
			})
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: infos})
	}
}

// HandleBuyBooster purchases one booster into the inventory
// @Summary Buy booster
// @Description Spend views to add one booster to the inventory
// @Tags boosters
// @Accept json
// @Produce json
// @Param request body BoosterActionRequest true "Booster to buy"
// @Success 200 {object} BuyBoosterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Not enough views"
// @Failure 500 {object} ErrorResponse
// @Router /boosters/buy [post]
func HandleBuyBooster(engine progression.Service, ads reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BoosterActionRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		kind := domain.BoosterKind(req.Kind)
		owned, err := engine.BuyBooster(r.Context(), kind)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInsufficientFunds):
				respondError(w, http.StatusPaymentRequired, ErrMsgInsufficientViews)
			case errors.Is(err, domain.ErrUnknownBooster):
				respondError(w, http.StatusBadRequest, ErrMsgUnknownBoosterKind)
			default:
				log.Error("Failed to buy booster", "error", err, "kind", kind)
				respondError(w, http.StatusInternalServerError, ErrMsgPurchaseFailed)
			}
			return
		}

		respondJSON(w, http.StatusOK, BuyBoosterResponse{
			Kind:            kind,
			Owned:           owned,
			Views:           engine.Summary().Views,
			InterstitialDue: ads.RecordAction(r.Context()),
		})
	}
}

// HandleActivateBooster consumes one owned booster and starts its effect
// @Summary Activate booster
// @Description Consume one inventory booster and start the timed effect
// @Tags boosters
// @Accept json
// @Produce json
// @Param request body BoosterActionRequest true "Booster to activate"
// @Success 200 {object} ActivateBoosterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Nothing to activate"
// @Failure 500 {object} ErrorResponse
// @Router /boosters/activate [post]
func HandleActivateBooster(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BoosterActionRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		kind := domain.BoosterKind(req.Kind)
		instance, err := engine.ActivateBooster(r.Context(), kind)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyInventory):
				respondError(w, http.StatusConflict, ErrMsgNoBoosterInInventory)
			case errors.Is(err, domain.ErrUnknownBooster):
				respondError(w, http.StatusBadRequest, ErrMsgUnknownBoosterKind)
			default:
				log.Error("Failed to activate booster", "error", err, "kind", kind)
				respondError(w, http.StatusInternalServerError, ErrMsgActivationFailed)
			}
			return
		}

		log.Info("Booster activated via API",
			"kind", kind,
			"remaining", time.Until(instance.ExpiresAt))

		respondJSON(w, http.StatusOK, ActivateBoosterResponse{
			Booster: instance,
			Owned:   engine.Snapshot().BoosterInventory[kind],
		})
	}
}
