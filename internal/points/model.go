package points

import "time"

const (
	BonusFirstMonthly = "first_monthly"
	BonusNewCategory  = "new_category"
)

// Transaction is one append-only points-history entry.
type Transaction struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`
	EventID       string    `json:"eventId" db:"event_id"`
	EventTitle    string    `json:"eventTitle" db:"event_title"`
	EventCategory string    `json:"eventCategory" db:"event_category"`
	PointsEarned  int       `json:"pointsEarned" db:"points_earned"`
	Timestamp     time.Time `json:"timestamp" db:"created_at"`
	BonusType     *string   `json:"bonusType" db:"bonus_type"`
}

// UserSummary is the per-user points state mutated by awards and
// redemptions.
type UserSummary struct {
	UserID             string   `json:"userId" db:"user_id"`
	DisplayName        string   `json:"displayName" db:"display_name"`
	TotalPoints        int      `json:"totalPoints" db:"total_points"`
	AvailablePoints    int      `json:"availablePoints" db:"available_points"`
	EventsAttended     int      `json:"eventsAttended" db:"events_attended"`
	CategoriesAttended []string `json:"categoriesAttended" db:"categories_attended"`
}

// AwardRequest is the award endpoint's input shape.
type AwardRequest struct {
	UserID         string `json:"userId"`
	EventID        string `json:"eventId"`
	EventTitle     string `json:"eventTitle"`
	EventCategory  string `json:"eventCategory"`
	IsFirstMonthly bool   `json:"isFirstMonthly"`
}

// AwardResult is the award endpoint's output shape.
type AwardResult struct {
	PointsEarned int          `json:"pointsEarned"`
	BonusType    *string      `json:"bonusType"`
	Transaction  *Transaction `json:"transaction"`
}

// HistoryPage is one page of a user's transaction history.
type HistoryPage struct {
	History []*Transaction `json:"history"`
	Total   int            `json:"total"`
	HasMore bool           `json:"hasMore"`
}
