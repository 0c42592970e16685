package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"campusConnectAPI/internal/rewards"
	"campusConnectAPI/middleware"
	"campusConnectAPI/services"
)

type RewardsHandler struct {
	rewardsService *services.RewardsService
}

func NewRewardsHandler(rewardsService *services.RewardsService) *RewardsHandler {
	return &RewardsHandler{
		rewardsService: rewardsService,
	}
}

func (h *RewardsHandler) GetAllRewards(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := rewards.CatalogFilter{
		Category:  r.URL.Query().Get("category"),
		MinPoints: queryInt(r, "minPoints", 0),
		MaxPoints: queryInt(r, "maxPoints", 0),
	}

	catalog, err := h.rewardsService.GetRewards(ctx, filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]any{
		"rewards": catalog,
		"total":   len(catalog),
	})
}

func (h *RewardsHandler) GetRewardByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rewardID := mux.Vars(r)["rewardId"]

	reward, err := h.rewardsService.GetRewardByID(ctx, rewardID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, reward)
}

func (h *RewardsHandler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req rewards.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	redemption, err := h.rewardsService.RedeemReward(ctx, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	middleware.RecordRedemption()

	respondWithMessage(w, http.StatusCreated, redemption,
		fmt.Sprintf("Reward redeemed successfully! Your code: %s", redemption.RedemptionCode))
}

func (h *RewardsHandler) GetUserRedemptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	redemptions, err := h.rewardsService.GetUserRedemptions(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]any{
		"redemptions": redemptions,
		"total":       len(redemptions),
	})
}
