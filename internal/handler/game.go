package handler

import (
	"net/http"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
)

// TapResponse is the outcome of a single tap
type TapResponse struct {
	Amount   float64 `json:"amount"`
	Critical bool    `json:"critical"`
	Views    float64 `json:"views"`
}

// ProgressResponse is the full player state as seen by clients
type ProgressResponse struct {
	Views          float64                `json:"views"`
	ClickValue     float64                `json:"click_value"`
	PassiveRate    float64                `json:"passive_rate"`
	TotalTaps      int64                  `json:"total_taps"`
	CriticalTaps   int64                  `json:"critical_taps"`
	ActiveBoosters []domain.ActiveBooster `json:"active_boosters"`
}

// HandleTap registers one manual tap
// @Summary Tap
// @Description Register a manual tap and return the earned amount
// @Tags game
// @Produce json
// @Success 200 {object} TapResponse
// @Failure 500 {object} ErrorResponse
// @Router /tap [post]
func HandleTap(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		out, err := engine.Tap(r.Context())
		if err != nil {
			log.Error("Failed to register tap", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgTapFailed)
			return
		}

		respondJSON(w, http.StatusOK, TapResponse{
			Amount:   out.Amount,
			Critical: out.Critical,
			Views:    out.Views,
		})
	}
}

// HandleGetProgress returns the current player state
// @Summary Get progress
// @Description Return current views, rates and active boosters
// @Tags game
// @Produce json
// @Success 200 {object} ProgressResponse
// @Router /progress [get]
func HandleGetProgress(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := engine.Snapshot()

		respondJSON(w, http.StatusOK, ProgressResponse{
			Views:          snap.Views,
			ClickValue:     snap.ClickValue,
			PassiveRate:    snap.PassiveRate,
			TotalTaps:      snap.TotalTaps,
			CriticalTaps:   snap.CriticalTaps,
			ActiveBoosters: snap.ActiveBoosters,
		})
	}
}

// HandleReset wipes progress back to a fresh profile
// @Summary Reset progress
// @Description Reset views, taps and upgrades; booster inventory survives
// @Tags game
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /reset [post]
func HandleReset(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := engine.Reset(r.Context()); err != nil {
			log.Error("Failed to reset progress", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgResetFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProgressResetSuccess})
	}
}

// HandleSave forces an immediate flush to local storage
// @Summary Save progress
// @Description Persist the current state without waiting for autosave
// @Tags game
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /save [post]
func HandleSave(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := engine.Save(r.Context()); err != nil {
			log.Error("Failed to save progress", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProgressSavedSuccess})
	}
}
