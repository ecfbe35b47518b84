package handler

import (
	"net/http"
	"strconv"

	"github.com/hiperworks/HiperClicker_Go/internal/leaderboard"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
)

// HandleGetLeaderboard returns the global ranking by total views
// @Summary Get leaderboard
// @Description Return the top profiles ordered by total views
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of rows to return"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Leaderboard requires remote sync"
// @Router /leaderboard [get]
func HandleGetLeaderboard(boards leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if boards == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgSyncUnavailable)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = parsed
		}

		entries, err := boards.Top(r.Context(), limit)
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetLeaderboardFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
