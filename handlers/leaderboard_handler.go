package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"campusConnectAPI/internal/ranking"
	"campusConnectAPI/services"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

func (h *LeaderboardHandler) GetGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", ranking.DefaultPageLimit)
	offset := queryInt(r, "offset", 0)
	period := r.URL.Query().Get("period")

	page := h.leaderboardService.GetGlobalLeaderboard(limit, offset, period)
	respondWithData(w, http.StatusOK, page)
}

func (h *LeaderboardHandler) GetTopUsers(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", ranking.DefaultTopLimit)

	top := h.leaderboardService.GetTopUsers(limit)
	respondWithData(w, http.StatusOK, top)
}

func (h *LeaderboardHandler) GetUserRank(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	contextSize := queryInt(r, "context", ranking.DefaultContext)

	uc, err := h.leaderboardService.GetUserRank(userID, contextSize)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, uc)
}

// RefreshLeaderboard re-derives the ranking snapshot from the points
// store. Manually triggered; safe to call repeatedly.
func (h *LeaderboardHandler) RefreshLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.leaderboardService.Refresh(ctx); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Leaderboard refresh initiated",
		"timestamp": time.Now().UTC(),
	})
}
