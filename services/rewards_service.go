package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusConnectAPI/internal/apperr"
	"campusConnectAPI/internal/rewards"
	"campusConnectAPI/internal/storage"
)

type RewardsService struct {
	store storage.Store
}

func NewRewardsService(store storage.Store) *RewardsService {
	return &RewardsService{store: store}
}

// GetRewards returns active catalog items passing the filter, cheapest
// first.
func (s *RewardsService) GetRewards(ctx context.Context, filter rewards.CatalogFilter) ([]*rewards.Reward, error) {
	catalog, err := s.store.GetRewardCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*rewards.Reward, 0, len(catalog))
	for _, r := range catalog {
		if filter.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PointsCost < filtered[j].PointsCost
	})

	return filtered, nil
}

func (s *RewardsService) GetRewardByID(ctx context.Context, rewardID string) (*rewards.Reward, error) {
	return s.store.GetReward(ctx, rewardID)
}

// RedeemReward spends a user's available points on a reward. Stock and
// balance checks happen inside the store's atomic apply.
func (s *RewardsService) RedeemReward(ctx context.Context, req *rewards.RedeemRequest) (*rewards.Redemption, error) {
	if req.UserID == "" || req.RewardID == "" {
		return nil, apperr.Validation("Missing required fields: userId, rewardId")
	}

	reward, err := s.store.GetReward(ctx, req.RewardID)
	if err != nil {
		return nil, err
	}
	if !reward.IsActive {
		return nil, apperr.NotFound("Reward not found or unavailable")
	}

	redemption := &rewards.Redemption{
		ID:             fmt.Sprintf("redemption_%s", uuid.NewString()),
		UserID:         req.UserID,
		RewardID:       reward.ID,
		RewardTitle:    reward.Title,
		PointsSpent:    reward.PointsCost,
		Status:         "pending",
		RedemptionCode: newRedemptionCode(),
		RedeemedAt:     time.Now().UTC(),
	}

	if err := s.store.ApplyRedemption(ctx, redemption); err != nil {
		return nil, err
	}

	log.Printf("RedeemReward: %s redeemed %s for %d points", req.UserID, reward.ID, reward.PointsCost)
	return redemption, nil
}

func (s *RewardsService) GetUserRedemptions(ctx context.Context, userID string) ([]*rewards.Redemption, error) {
	return s.store.ListRedemptions(ctx, userID)
}

func newRedemptionCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("RC-%d-%s", time.Now().Unix(), suffix)
}
