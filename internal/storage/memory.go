package storage

import (
	"context"
	"sort"
	"sync"

	"campusConnectAPI/internal/apperr"
	"campusConnectAPI/internal/points"
	"campusConnectAPI/internal/ranking"
	"campusConnectAPI/internal/rewards"
)

// MemoryStore is an in-memory Store used for local development and
// tests. State lives only through the process lifecycle and is reached
// exclusively through the Store interface.
type MemoryStore struct {
	mu          sync.RWMutex
	summaries   map[string]*points.UserSummary
	history     map[string][]*points.Transaction
	rewards     map[string]*rewards.Reward
	redemptions map[string][]*rewards.Redemption
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		summaries:   make(map[string]*points.UserSummary),
		history:     make(map[string][]*points.Transaction),
		rewards:     make(map[string]*rewards.Reward),
		redemptions: make(map[string][]*rewards.Redemption),
	}
}

func (s *MemoryStore) GetUserSummary(ctx context.Context, userID string) (*points.UserSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[userID]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	copied := *summary
	copied.CategoriesAttended = append([]string(nil), summary.CategoriesAttended...)
	return &copied, nil
}

func (s *MemoryStore) ListHistory(ctx context.Context, userID string, limit, offset int) ([]*points.Transaction, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := append([]*points.Transaction(nil), s.history[userID]...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	total := len(all)
	start := offset
	if start > total {
		start = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return all[start:end], total, nil
}

func (s *MemoryStore) ApplyAward(ctx context.Context, award *points.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, ok := s.summaries[award.UserID]
	if !ok {
		summary = &points.UserSummary{UserID: award.UserID}
		s.summaries[award.UserID] = summary
	}

	summary.TotalPoints += award.PointsEarned
	summary.AvailablePoints += award.PointsEarned
	summary.EventsAttended++

	seen := false
	for _, c := range summary.CategoriesAttended {
		if c == award.EventCategory {
			seen = true
			break
		}
	}
	if !seen {
		summary.CategoriesAttended = append(summary.CategoriesAttended, award.EventCategory)
	}

	s.history[award.UserID] = append(s.history[award.UserID], award)
	return nil
}

func (s *MemoryStore) ListAllTotals(ctx context.Context) ([]ranking.UserTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make([]ranking.UserTotals, 0, len(s.summaries))
	for _, summary := range s.summaries {
		totals = append(totals, ranking.UserTotals{
			UserID:         summary.UserID,
			DisplayName:    summary.DisplayName,
			TotalPoints:    summary.TotalPoints,
			EventsAttended: summary.EventsAttended,
		})
	}
	return totals, nil
}

func (s *MemoryStore) GetRewardCatalog(ctx context.Context) ([]*rewards.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog := make([]*rewards.Reward, 0, len(s.rewards))
	for _, r := range s.rewards {
		copied := *r
		catalog = append(catalog, &copied)
	}
	return catalog, nil
}

func (s *MemoryStore) GetReward(ctx context.Context, rewardID string) (*rewards.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rewards[rewardID]
	if !ok {
		return nil, apperr.NotFound("Reward not found")
	}
	copied := *r
	return &copied, nil
}

func (s *MemoryStore) ApplyRedemption(ctx context.Context, redemption *rewards.Redemption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward, ok := s.rewards[redemption.RewardID]
	if !ok || !reward.IsActive {
		return apperr.NotFound("Reward not found or unavailable")
	}
	if reward.Stock <= 0 {
		return apperr.Conflict("Reward is out of stock")
	}

	summary, ok := s.summaries[redemption.UserID]
	if !ok {
		return apperr.NotFound("User not found")
	}
	if summary.AvailablePoints < redemption.PointsSpent {
		return apperr.Conflict("Insufficient points. Need %d, have %d", redemption.PointsSpent, summary.AvailablePoints)
	}

	reward.Stock--
	summary.AvailablePoints -= redemption.PointsSpent
	s.redemptions[redemption.UserID] = append(s.redemptions[redemption.UserID], redemption)
	return nil
}

func (s *MemoryStore) ListRedemptions(ctx context.Context, userID string) ([]*rewards.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]*rewards.Redemption(nil), s.redemptions[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RedeemedAt.After(out[j].RedeemedAt)
	})
	return out, nil
}

func (s *MemoryStore) Close() {}
