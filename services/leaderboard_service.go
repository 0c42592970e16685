package services

import (
	"context"
	"log"
	"sync/atomic"

	"campusConnectAPI/internal/apperr"
	"campusConnectAPI/internal/ranking"
	"campusConnectAPI/internal/storage"
)

// LeaderboardService owns the current ranking snapshot. Queries read
// whichever snapshot was last published; Refresh derives a new one
// from the store and swaps it in a single atomic publish, so readers
// never observe a partially ranked list.
type LeaderboardService struct {
	store    storage.Store
	snapshot atomic.Pointer[ranking.Snapshot]
}

func NewLeaderboardService(store storage.Store) *LeaderboardService {
	s := &LeaderboardService{store: store}
	s.snapshot.Store(ranking.BuildSnapshot(nil))
	return s
}

// Refresh recomputes the ranking from the points store. Idempotent;
// safe to call from any goroutine.
func (s *LeaderboardService) Refresh(ctx context.Context) error {
	totals, err := s.store.ListAllTotals(ctx)
	if err != nil {
		return err
	}

	snapshot := ranking.BuildSnapshot(totals)
	s.snapshot.Store(snapshot)

	log.Printf("Leaderboard refreshed: %d users ranked", snapshot.Total())
	return nil
}

// LeaderboardPage is the paged global listing response shape.
type LeaderboardPage struct {
	Leaderboard []ranking.Entry `json:"leaderboard"`
	Total       int             `json:"total"`
	Period      string          `json:"period"`
	HasMore     bool            `json:"hasMore"`
}

// GetGlobalLeaderboard returns one page of the all-time ranking.
// Period values other than all-time are echoed back unimplemented.
func (s *LeaderboardService) GetGlobalLeaderboard(limit, offset int, period string) *LeaderboardPage {
	if period == "" {
		period = "all-time"
	}

	entries, total, hasMore := s.snapshot.Load().Page(limit, offset)
	return &LeaderboardPage{
		Leaderboard: entries,
		Total:       total,
		Period:      period,
		HasMore:     hasMore,
	}
}

// TopUsers is the top-N response shape.
type TopUsers struct {
	TopUsers []ranking.Entry `json:"topUsers"`
	Count    int             `json:"count"`
}

func (s *LeaderboardService) GetTopUsers(limit int) *TopUsers {
	top := s.snapshot.Load().Top(limit)
	return &TopUsers{TopUsers: top, Count: len(top)}
}

func (s *LeaderboardService) GetUserRank(userID string, contextSize int) (*ranking.UserContext, error) {
	uc, ok := s.snapshot.Load().UserContext(userID, contextSize)
	if !ok {
		return nil, apperr.NotFound("User not found in leaderboard")
	}
	return uc, nil
}
