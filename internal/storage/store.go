package storage

import (
	"context"

	"campusConnectAPI/internal/points"
	"campusConnectAPI/internal/ranking"
	"campusConnectAPI/internal/rewards"
)

// Store is the persistence collaborator the services are written
// against. It owns the points-history append log, the per-user
// summaries, and the reward catalog. Award and redemption writes are
// atomic within a single implementation; cross-request serialization
// beyond that is not promised here.
type Store interface {
	// GetUserSummary returns the summary for userID, or a not-found
	// error when the user has never been awarded points.
	GetUserSummary(ctx context.Context, userID string) (*points.UserSummary, error)

	// ListHistory returns one page of the user's transaction history,
	// newest first, plus the total entry count.
	ListHistory(ctx context.Context, userID string, limit, offset int) ([]*points.Transaction, int, error)

	// ApplyAward appends the transaction to the history log and folds
	// its points into the user's summary, creating the summary when
	// the user is new. One atomic write.
	ApplyAward(ctx context.Context, tx *points.Transaction) error

	// ListAllTotals returns every user's ranking tuple.
	ListAllTotals(ctx context.Context) ([]ranking.UserTotals, error)

	GetRewardCatalog(ctx context.Context) ([]*rewards.Reward, error)
	GetReward(ctx context.Context, rewardID string) (*rewards.Reward, error)

	// ApplyRedemption checks stock and available points, decrements
	// both, and records the redemption. One atomic write; fails with
	// a conflict error on insufficient points or empty stock.
	ApplyRedemption(ctx context.Context, r *rewards.Redemption) error

	ListRedemptions(ctx context.Context, userID string) ([]*rewards.Redemption, error)

	Close()
}
