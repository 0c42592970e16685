package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"campusConnectAPI/internal/apperr"
	"campusConnectAPI/internal/points"
	"campusConnectAPI/internal/storage"
)

type PointsService struct {
	store storage.Store
}

func NewPointsService(store storage.Store) *PointsService {
	return &PointsService{store: store}
}

func (s *PointsService) GetUserPoints(ctx context.Context, userID string) (*points.UserSummary, error) {
	return s.store.GetUserSummary(ctx, userID)
}

func (s *PointsService) GetPointsHistory(ctx context.Context, userID string, limit, offset int) (*points.HistoryPage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// Unknown users get a not-found, not an empty page.
	if _, err := s.store.GetUserSummary(ctx, userID); err != nil {
		return nil, err
	}

	history, total, err := s.store.ListHistory(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &points.HistoryPage{
		History: history,
		Total:   total,
		HasMore: offset+limit < total,
	}, nil
}

// AwardPoints runs the award flow: validate, read the user's
// attendance state, compute the delta, and apply it atomically through
// the store. The first award for an unknown user creates their summary.
func (s *PointsService) AwardPoints(ctx context.Context, req *points.AwardRequest) (*points.AwardResult, error) {
	if req.UserID == "" || req.EventID == "" || req.EventCategory == "" {
		return nil, apperr.Validation("Missing required fields: userId, eventId, eventCategory")
	}

	var categoriesAttended []string
	summary, err := s.store.GetUserSummary(ctx, req.UserID)
	if err != nil {
		var notFound *apperr.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		categoriesAttended = summary.CategoriesAttended
	}

	pointsEarned := points.CalculatePoints(req.EventCategory, categoriesAttended, req.IsFirstMonthly)
	bonusType := points.BonusLabel(req.EventCategory, categoriesAttended, req.IsFirstMonthly)

	eventTitle := req.EventTitle
	if eventTitle == "" {
		eventTitle = "Unnamed Event"
	}

	transaction := &points.Transaction{
		ID:            fmt.Sprintf("trans_%s", uuid.NewString()),
		UserID:        req.UserID,
		EventID:       req.EventID,
		EventTitle:    eventTitle,
		EventCategory: req.EventCategory,
		PointsEarned:  pointsEarned,
		Timestamp:     time.Now().UTC(),
		BonusType:     bonusType,
	}

	if err := s.store.ApplyAward(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to apply award: %w", err)
	}

	log.Printf("AwardPoints: awarded %d points to %s for event %s", pointsEarned, req.UserID, req.EventID)

	return &points.AwardResult{
		PointsEarned: pointsEarned,
		BonusType:    bonusType,
		Transaction:  transaction,
	}, nil
}
