package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusConnectAPI/internal/apperr"
	"campusConnectAPI/internal/points"
	"campusConnectAPI/internal/ranking"
	"campusConnectAPI/internal/rewards"
)

// PostgresStore persists points, history, and rewards in Postgres via
// a pgx connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS user_points (
		user_id             TEXT PRIMARY KEY,
		display_name        TEXT NOT NULL DEFAULT '',
		total_points        INT NOT NULL DEFAULT 0,
		available_points    INT NOT NULL DEFAULT 0,
		events_attended     INT NOT NULL DEFAULT 0,
		categories_attended TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS points_history (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		event_id       TEXT NOT NULL,
		event_title    TEXT NOT NULL,
		event_category TEXT NOT NULL,
		points_earned  INT NOT NULL,
		bonus_type     TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_points_history_user ON points_history (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS rewards (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		points_cost INT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		stock       INT NOT NULL DEFAULT 0,
		is_active   BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS redemptions (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		reward_id       TEXT NOT NULL,
		reward_title    TEXT NOT NULL,
		points_spent    INT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'pending',
		redemption_code TEXT NOT NULL,
		redeemed_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (*PostgresStore, error) {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetUserSummary(ctx context.Context, userID string) (*points.UserSummary, error) {
	query := `
	SELECT user_id, display_name, total_points, available_points, events_attended, categories_attended
	FROM user_points
	WHERE user_id = $1
	`

	var summary points.UserSummary
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&summary.UserID,
		&summary.DisplayName,
		&summary.TotalPoints,
		&summary.AvailablePoints,
		&summary.EventsAttended,
		&summary.CategoriesAttended,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user summary: %w", err)
	}

	return &summary, nil
}

func (s *PostgresStore) ListHistory(ctx context.Context, userID string, limit, offset int) ([]*points.Transaction, int, error) {
	var total int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM points_history WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count history: %w", err)
	}

	query := `
	SELECT id, user_id, event_id, event_title, event_category, points_earned, bonus_type, created_at
	FROM points_history
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3
	`

	rows, err := s.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch history: %w", err)
	}
	defer rows.Close()

	var history []*points.Transaction
	for rows.Next() {
		t := &points.Transaction{}
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.EventID,
			&t.EventTitle,
			&t.EventCategory,
			&t.PointsEarned,
			&t.BonusType,
			&t.Timestamp,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}
		history = append(history, t)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return history, total, nil
}

func (s *PostgresStore) ApplyAward(ctx context.Context, award *points.Transaction) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// First award for a user creates the summary row.
	upsertQuery := `
	INSERT INTO user_points (user_id, total_points, available_points, events_attended, categories_attended)
	VALUES ($1, $2, $2, 1, ARRAY[$3])
	ON CONFLICT (user_id) DO UPDATE SET
		total_points     = user_points.total_points + $2,
		available_points = user_points.available_points + $2,
		events_attended  = user_points.events_attended + 1,
		categories_attended = CASE
			WHEN $3 = ANY(user_points.categories_attended) THEN user_points.categories_attended
			ELSE array_append(user_points.categories_attended, $3)
		END
	`
	_, err = tx.Exec(ctx, upsertQuery, award.UserID, award.PointsEarned, award.EventCategory)
	if err != nil {
		return fmt.Errorf("failed to apply award to user summary: %w", err)
	}

	insertQuery := `
	INSERT INTO points_history (id, user_id, event_id, event_title, event_category, points_earned, bonus_type, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, insertQuery,
		award.ID,
		award.UserID,
		award.EventID,
		award.EventTitle,
		award.EventCategory,
		award.PointsEarned,
		award.BonusType,
		award.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) ListAllTotals(ctx context.Context) ([]ranking.UserTotals, error) {
	query := `
	SELECT user_id, display_name, total_points, events_attended
	FROM user_points
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch totals: %w", err)
	}
	defer rows.Close()

	var totals []ranking.UserTotals
	for rows.Next() {
		var t ranking.UserTotals
		if err := rows.Scan(&t.UserID, &t.DisplayName, &t.TotalPoints, &t.EventsAttended); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		totals = append(totals, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

func (s *PostgresStore) GetRewardCatalog(ctx context.Context) ([]*rewards.Reward, error) {
	query := `
	SELECT id, title, description, points_cost, category, image_url, stock, is_active
	FROM rewards
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rewards: %w", err)
	}
	defer rows.Close()

	var catalog []*rewards.Reward
	for rows.Next() {
		r := &rewards.Reward{}
		err := rows.Scan(
			&r.ID,
			&r.Title,
			&r.Description,
			&r.PointsCost,
			&r.Category,
			&r.ImageURL,
			&r.Stock,
			&r.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		catalog = append(catalog, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (s *PostgresStore) GetReward(ctx context.Context, rewardID string) (*rewards.Reward, error) {
	query := `
	SELECT id, title, description, points_cost, category, image_url, stock, is_active
	FROM rewards
	WHERE id = $1
	`

	r := &rewards.Reward{}
	err := s.db.QueryRow(ctx, query, rewardID).Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.PointsCost,
		&r.Category,
		&r.ImageURL,
		&r.Stock,
		&r.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Reward not found")
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}

	return r, nil
}

func (s *PostgresStore) ApplyRedemption(ctx context.Context, redemption *rewards.Redemption) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var stock int
	var isActive bool
	err = tx.QueryRow(ctx, `SELECT stock, is_active FROM rewards WHERE id = $1 FOR UPDATE`, redemption.RewardID).
		Scan(&stock, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Reward not found or unavailable")
		}
		return fmt.Errorf("failed to lock reward: %w", err)
	}
	if !isActive {
		return apperr.NotFound("Reward not found or unavailable")
	}
	if stock <= 0 {
		return apperr.Conflict("Reward is out of stock")
	}

	var available int
	err = tx.QueryRow(ctx, `SELECT available_points FROM user_points WHERE user_id = $1 FOR UPDATE`, redemption.UserID).
		Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("User not found")
		}
		return fmt.Errorf("failed to lock user summary: %w", err)
	}
	if available < redemption.PointsSpent {
		return apperr.Conflict("Insufficient points. Need %d, have %d", redemption.PointsSpent, available)
	}

	_, err = tx.Exec(ctx, `UPDATE rewards SET stock = stock - 1 WHERE id = $1`, redemption.RewardID)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE user_points SET available_points = available_points - $1 WHERE user_id = $2`,
		redemption.PointsSpent, redemption.UserID)
	if err != nil {
		return fmt.Errorf("failed to deduct points: %w", err)
	}

	insertQuery := `
	INSERT INTO redemptions (id, user_id, reward_id, reward_title, points_spent, status, redemption_code, redeemed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, insertQuery,
		redemption.ID,
		redemption.UserID,
		redemption.RewardID,
		redemption.RewardTitle,
		redemption.PointsSpent,
		redemption.Status,
		redemption.RedemptionCode,
		redemption.RedeemedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record redemption: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) ListRedemptions(ctx context.Context, userID string) ([]*rewards.Redemption, error) {
	query := `
	SELECT id, user_id, reward_id, reward_title, points_spent, status, redemption_code, redeemed_at
	FROM redemptions
	WHERE user_id = $1
	ORDER BY redeemed_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []*rewards.Redemption
	for rows.Next() {
		r := &rewards.Redemption{}
		err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.RewardID,
			&r.RewardTitle,
			&r.PointsSpent,
			&r.Status,
			&r.RedemptionCode,
			&r.RedeemedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		redemptions = append(redemptions, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return redemptions, nil
}

func (s *PostgresStore) Close() {
	s.db.Close()
}
