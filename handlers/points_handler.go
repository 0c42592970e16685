package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"campusConnectAPI/internal/points"
	"campusConnectAPI/middleware"
	"campusConnectAPI/services"
)

type PointsHandler struct {
	pointsService *services.PointsService
}

func NewPointsHandler(pointsService *services.PointsService) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
	}
}

func (h *PointsHandler) GetUserPoints(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	summary, err := h.pointsService.GetUserPoints(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, summary)
}

func (h *PointsHandler) GetPointsHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	page, err := h.pointsService.GetPointsHistory(ctx, userID, limit, offset)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, page)
}

func (h *PointsHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req points.AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.pointsService.AwardPoints(ctx, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	middleware.RecordPointsAwarded(result.PointsEarned)

	respondWithMessage(w, http.StatusCreated, result,
		fmt.Sprintf("Successfully awarded %d points!", result.PointsEarned))
}
