package ranking

import (
	"fmt"
	"testing"
)

func fixtureTotals() []UserTotals {
	// Deliberately unsorted input; ranking must not depend on it.
	return []UserTotals{
		{UserID: "user_123", DisplayName: "Alex Johnson", TotalPoints: 450, EventsAttended: 15},
		{UserID: "user_001", DisplayName: "Sarah Chen", TotalPoints: 1250, EventsAttended: 42},
		{UserID: "user_004", DisplayName: "Jamal Thompson", TotalPoints: 920, EventsAttended: 31},
		{UserID: "user_002", DisplayName: "Marcus Williams", TotalPoints: 1180, EventsAttended: 38},
		{UserID: "user_006", DisplayName: "Chen Wei", TotalPoints: 820, EventsAttended: 27},
		{UserID: "user_003", DisplayName: "Emma Rodriguez", TotalPoints: 1050, EventsAttended: 35},
		{UserID: "user_008", DisplayName: "David Kim", TotalPoints: 745, EventsAttended: 25},
		{UserID: "user_005", DisplayName: "Priya Patel", TotalPoints: 875, EventsAttended: 29},
		{UserID: "user_010", DisplayName: "Lucas Silva", TotalPoints: 650, EventsAttended: 22},
		{UserID: "user_007", DisplayName: "Isabella Martinez", TotalPoints: 780, EventsAttended: 26},
		{UserID: "user_011", DisplayName: "Fatima Abbas", TotalPoints: 580, EventsAttended: 19},
		{UserID: "user_009", DisplayName: "Aisha Mohammed", TotalPoints: 690, EventsAttended: 23},
	}
}

func TestBuildSnapshotOrdering(t *testing.T) {
	s := BuildSnapshot(fixtureTotals())

	if s.Total() != 12 {
		t.Fatalf("expected 12 ranked users, got %d", s.Total())
	}

	entries, _, _ := s.Page(50, 0)
	for i := range entries {
		if entries[i].Rank != i+1 {
			t.Errorf("entry %d has rank %d, want %d", i, entries[i].Rank, i+1)
		}
		if i > 0 && entries[i-1].TotalPoints < entries[i].TotalPoints {
			t.Errorf("ordering violated at %d: %d < %d", i, entries[i-1].TotalPoints, entries[i].TotalPoints)
		}
	}

	if entries[0].UserID != "user_001" || entries[0].Rank != 1 {
		t.Errorf("expected user_001 at rank 1, got %s at rank %d", entries[0].UserID, entries[0].Rank)
	}
	if entries[11].UserID != "user_123" || entries[11].Rank != 12 {
		t.Errorf("expected user_123 at rank 12, got %s at rank %d", entries[11].UserID, entries[11].Rank)
	}
}

func TestBuildSnapshotTieBreak(t *testing.T) {
	s := BuildSnapshot([]UserTotals{
		{UserID: "user_b", TotalPoints: 100},
		{UserID: "user_a", TotalPoints: 100},
		{UserID: "user_c", TotalPoints: 200},
	})

	entries, _, _ := s.Page(10, 0)
	if entries[0].UserID != "user_c" {
		t.Errorf("rank 1 should be user_c, got %s", entries[0].UserID)
	}
	// Equal points resolve by userId ascending, whatever the input
	// order was.
	if entries[1].UserID != "user_a" || entries[2].UserID != "user_b" {
		t.Errorf("tie order wrong: got %s then %s", entries[1].UserID, entries[2].UserID)
	}
	if entries[1].Rank != 2 || entries[2].Rank != 3 {
		t.Errorf("tied users must still get distinct ranks: %d, %d", entries[1].Rank, entries[2].Rank)
	}
}

func TestPagePagination(t *testing.T) {
	s := BuildSnapshot(fixtureTotals())

	tests := []struct {
		limit, offset int
		wantLen       int
		wantHasMore   bool
	}{
		{5, 0, 5, true},
		{5, 5, 5, true},
		{5, 10, 2, false},
		{50, 0, 12, false},
		{12, 0, 12, false},
		{5, 12, 0, false},
		{5, 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d offset=%d", tt.limit, tt.offset), func(t *testing.T) {
			entries, total, hasMore := s.Page(tt.limit, tt.offset)
			if total != 12 {
				t.Errorf("total = %d, want 12", total)
			}
			if len(entries) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(entries), tt.wantLen)
			}
			if hasMore != tt.wantHasMore {
				t.Errorf("hasMore = %v, want %v", hasMore, tt.wantHasMore)
			}
		})
	}
}

func TestPageDefaultsOnGarbage(t *testing.T) {
	s := BuildSnapshot(fixtureTotals())

	entries, _, _ := s.Page(-3, -7)
	if len(entries) != 12 {
		t.Errorf("negative inputs should clamp to defaults, got %d entries", len(entries))
	}
	if entries[0].Rank != 1 {
		t.Errorf("first entry rank = %d, want 1", entries[0].Rank)
	}
}

func TestTop(t *testing.T) {
	s := BuildSnapshot(fixtureTotals())

	top := s.Top(3)
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	if top[0].Rank != 1 {
		t.Errorf("top entry rank = %d, want 1", top[0].Rank)
	}

	if got := s.Top(100); len(got) != 12 {
		t.Errorf("oversized limit should return all 12, got %d", len(got))
	}
	if got := s.Top(0); len(got) != 10 {
		t.Errorf("zero limit should fall back to default 10, got %d", len(got))
	}
}

func TestUserContextWindow(t *testing.T) {
	s := BuildSnapshot(fixtureTotals())

	// Middle of the board: full symmetric window.
	uc, ok := s.UserContext("user_006", 2)
	if !ok {
		t.Fatal("user_006 should be ranked")
	}
	if uc.Rank != 6 {
		t.Errorf("rank = %d, want 6", uc.Rank)
	}
	if len(uc.Surrounding) != 5 {
		t.Errorf("window length = %d, want 5", len(uc.Surrounding))
	}
	if uc.Surrounding[0].Rank != 4 || uc.Surrounding[4].Rank != 8 {
		t.Errorf("window spans ranks %d..%d, want 4..8", uc.Surrounding[0].Rank, uc.Surrounding[4].Rank)
	}

	// Top of the board: window truncates above, never wraps.
	uc, ok = s.UserContext("user_001", 5)
	if !ok {
		t.Fatal("user_001 should be ranked")
	}
	if len(uc.Surrounding) != 6 {
		t.Errorf("top window length = %d, want 6", len(uc.Surrounding))
	}
	if uc.Surrounding[0].Rank != 1 {
		t.Errorf("top window must start at rank 1, got %d", uc.Surrounding[0].Rank)
	}

	// Bottom of the board: window truncates below.
	uc, ok = s.UserContext("user_123", 5)
	if !ok {
		t.Fatal("user_123 should be ranked")
	}
	if uc.Rank != 12 || uc.TotalPoints != 450 || uc.EventsAttended != 15 {
		t.Errorf("unexpected standing: rank=%d points=%d events=%d", uc.Rank, uc.TotalPoints, uc.EventsAttended)
	}
	if len(uc.Surrounding) != 6 {
		t.Errorf("bottom window length = %d, want 6", len(uc.Surrounding))
	}
	if uc.TotalUsers != 12 {
		t.Errorf("totalUsers = %d, want 12", uc.TotalUsers)
	}
}

func TestUserContextMissingUser(t *testing.T) {
	s := BuildSnapshot(fixtureTotals())

	if uc, ok := s.UserContext("invalid_user", 5); ok {
		t.Fatalf("expected missing user, got context %+v", uc)
	}
}

func TestEmptySnapshot(t *testing.T) {
	s := BuildSnapshot(nil)

	entries, total, hasMore := s.Page(50, 0)
	if len(entries) != 0 || total != 0 || hasMore {
		t.Errorf("empty snapshot page: len=%d total=%d hasMore=%v", len(entries), total, hasMore)
	}
	if top := s.Top(10); len(top) != 0 {
		t.Errorf("empty snapshot top: len=%d", len(top))
	}
}
