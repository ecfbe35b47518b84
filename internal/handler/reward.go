package handler

import (
	"net/http"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
	"github.com/hiperworks/HiperClicker_Go/internal/reward"
)

// RewardResponse reports what an ad watch granted
type RewardResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message,omitempty"`
	Kind     domain.RewardKind  `json:"kind,omitempty"`
	Amount   float64            `json:"amount,omitempty"`
	Booster  domain.BoosterKind `json:"booster,omitempty"`
	Duration float64            `json:"duration_seconds,omitempty"`
}

// HandleWatchRewarded simulates a rewarded-ad watch and applies the grant
// @Summary Watch rewarded ad
// @Description Simulate a rewarded ad; on fill the granted effect starts immediately
// @Tags rewards
// @Produce json
// @Success 200 {object} RewardResponse
// @Failure 500 {object} ErrorResponse
// @Router /rewards/watch [post]
func HandleWatchRewarded(engine progression.Service, ads reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		outcome := ads.WatchRewarded(r.Context())
		if !outcome.Success {
			respondJSON(w, http.StatusOK, RewardResponse{
				Success: false,
				Message: MsgNoAdFill,
			})
			return
		}

		if err := engine.ApplyReward(r.Context(), outcome); err != nil {
			log.Error("Failed to apply reward", "error", err, "kind", outcome.Kind)
			respondError(w, http.StatusInternalServerError, ErrMsgRewardFailed)
			return
		}

		respondJSON(w, http.StatusOK, RewardResponse{
			Success:  true,
			Kind:     outcome.Kind,
			Amount:   outcome.Amount,
			Booster:  outcome.Booster,
			Duration: outcome.Duration.Seconds(),
		})
	}
}
