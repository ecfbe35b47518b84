package handler

import (
	"errors"
	"net/http"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
)

// HandleSyncPush pushes the current state to the remote store
// @Summary Push to remote
// @Description Upload the current progression state to the remote store
// @Tags sync
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse "Sync not configured or remote unavailable"
// @Router /sync/push [post]
func HandleSyncPush(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := engine.PushRemote(r.Context()); err != nil {
			if errors.Is(err, domain.ErrLocalOnly) {
				respondError(w, http.StatusServiceUnavailable, ErrMsgSyncUnavailable)
				return
			}
			log.Error("Failed to push to remote store", "error", err)
			respondError(w, http.StatusServiceUnavailable, ErrMsgSyncPushFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSyncPushedSuccess})
	}
}

// HandleSyncPull restores state from the remote store
// @Summary Pull from remote
// @Description Replace local progression with the remote profile when one exists
// @Tags sync
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse "Sync not configured or remote unavailable"
// @Router /sync/pull [post]
func HandleSyncPull(engine progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := engine.PullRemote(r.Context()); err != nil {
			if errors.Is(err, domain.ErrLocalOnly) {
				respondError(w, http.StatusServiceUnavailable, ErrMsgSyncUnavailable)
				return
			}
			log.Error("Failed to pull from remote store", "error", err)
			respondError(w, http.StatusServiceUnavailable, ErrMsgSyncPullFailed)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSyncPulledSuccess})
	}
}
