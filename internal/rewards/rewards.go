package rewards

import "time"

// Reward is one redeemable catalog item.
type Reward struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	PointsCost  int    `json:"pointsCost" db:"points_cost"`
	Category    string `json:"category" db:"category"`
	ImageURL    string `json:"imageUrl" db:"image_url"`
	Stock       int    `json:"stock" db:"stock"`
	IsActive    bool   `json:"isActive" db:"is_active"`
}

// Redemption records one reward purchase.
type Redemption struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"userId" db:"user_id"`
	RewardID       string    `json:"rewardId" db:"reward_id"`
	RewardTitle    string    `json:"rewardTitle" db:"reward_title"`
	PointsSpent    int       `json:"pointsSpent" db:"points_spent"`
	Status         string    `json:"status" db:"status"`
	RedemptionCode string    `json:"redemptionCode" db:"redemption_code"`
	RedeemedAt     time.Time `json:"redeemedAt" db:"redeemed_at"`
}

// CatalogFilter narrows the reward catalog. Zero values mean "no
// constraint"; MaxPoints of 0 disables the upper bound.
type CatalogFilter struct {
	Category  string
	MinPoints int
	MaxPoints int
}

// Matches reports whether an active reward passes the filter.
func (f CatalogFilter) Matches(r *Reward) bool {
	if !r.IsActive {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.MinPoints > 0 && r.PointsCost < f.MinPoints {
		return false
	}
	if f.MaxPoints > 0 && r.PointsCost > f.MaxPoints {
		return false
	}
	return true
}

// RedeemRequest is the redemption endpoint's input shape.
type RedeemRequest struct {
	UserID   string `json:"userId"`
	RewardID string `json:"rewardId"`
}
