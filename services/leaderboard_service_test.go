package services

import (
	"context"
	"errors"
	"testing"

	"campusConnectAPI/internal/apperr"
	"campusConnectAPI/internal/points"
	"campusConnectAPI/internal/storage"
)

func newRefreshedLeaderboard(t *testing.T) (*LeaderboardService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore().Seed()
	svc := NewLeaderboardService(store)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return svc, store
}

func TestGetGlobalLeaderboard(t *testing.T) {
	svc, _ := newRefreshedLeaderboard(t)

	page := svc.GetGlobalLeaderboard(50, 0, "")
	if page.Total != 12 {
		t.Fatalf("total = %d, want 12", page.Total)
	}
	if page.Period != "all-time" {
		t.Errorf("period = %q, want all-time", page.Period)
	}
	if page.HasMore {
		t.Error("hasMore should be false for a full page")
	}
	for i := 1; i < len(page.Leaderboard); i++ {
		if page.Leaderboard[i-1].TotalPoints < page.Leaderboard[i].TotalPoints {
			t.Errorf("ordering violated at position %d", i)
		}
	}

	paged := svc.GetGlobalLeaderboard(5, 5, "monthly")
	if len(paged.Leaderboard) != 5 || !paged.HasMore {
		t.Errorf("page 2: len=%d hasMore=%v", len(paged.Leaderboard), paged.HasMore)
	}
	// Unimplemented periods are echoed back, all-time semantics apply.
	if paged.Period != "monthly" {
		t.Errorf("period = %q, want monthly echoed", paged.Period)
	}
}

func TestGetTopUsers(t *testing.T) {
	svc, _ := newRefreshedLeaderboard(t)

	top := svc.GetTopUsers(3)
	if top.Count != 3 || len(top.TopUsers) != 3 {
		t.Fatalf("count = %d len = %d, want 3", top.Count, len(top.TopUsers))
	}
	if top.TopUsers[0].Rank != 1 || top.TopUsers[0].UserID != "user_001" {
		t.Errorf("top user = %s rank %d, want user_001 rank 1", top.TopUsers[0].UserID, top.TopUsers[0].Rank)
	}
}

func TestGetUserRank(t *testing.T) {
	svc, _ := newRefreshedLeaderboard(t)

	uc, err := svc.GetUserRank("user_123", 5)
	if err != nil {
		t.Fatalf("GetUserRank: %v", err)
	}
	if uc.Rank != 12 || uc.TotalPoints != 450 || uc.TotalUsers != 12 {
		t.Errorf("standing: rank=%d points=%d totalUsers=%d", uc.Rank, uc.TotalPoints, uc.TotalUsers)
	}
	if len(uc.Surrounding) != 6 {
		t.Errorf("window length = %d, want 6 at the bottom of the board", len(uc.Surrounding))
	}

	_, err = svc.GetUserRank("invalid_user", 5)
	var notFound *apperr.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRefreshPicksUpNewAwards(t *testing.T) {
	ctx := context.Background()
	svc, store := newRefreshedLeaderboard(t)

	before, err := svc.GetUserRank("user_123", 0)
	if err != nil {
		t.Fatalf("GetUserRank: %v", err)
	}

	err = store.ApplyAward(ctx, &points.Transaction{
		ID: "trans_r", UserID: "user_123", EventID: "event_1",
		EventCategory: "community", PointsEarned: 1000,
	})
	if err != nil {
		t.Fatalf("ApplyAward: %v", err)
	}

	// Ranking reflects the store only as of the last refresh.
	unchanged, err := svc.GetUserRank("user_123", 0)
	if err != nil {
		t.Fatalf("GetUserRank: %v", err)
	}
	if unchanged.TotalPoints != before.TotalPoints {
		t.Errorf("snapshot changed without a refresh: %d -> %d", before.TotalPoints, unchanged.TotalPoints)
	}

	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	after, err := svc.GetUserRank("user_123", 0)
	if err != nil {
		t.Fatalf("GetUserRank: %v", err)
	}
	if after.TotalPoints != 1450 {
		t.Errorf("totalPoints = %d, want 1450", after.TotalPoints)
	}
	if after.Rank != 1 {
		t.Errorf("rank = %d, want 1 after the big award", after.Rank)
	}
}

func TestQueriesBeforeFirstRefresh(t *testing.T) {
	svc := NewLeaderboardService(storage.NewMemoryStore().Seed())

	page := svc.GetGlobalLeaderboard(50, 0, "")
	if page.Total != 0 || len(page.Leaderboard) != 0 {
		t.Errorf("unrefreshed service should rank nobody, got total=%d", page.Total)
	}
}
