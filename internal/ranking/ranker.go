package ranking

import "sort"

// UserTotals is the per-user input tuple the ranking is derived from.
type UserTotals struct {
	UserID         string `json:"userId" db:"user_id"`
	DisplayName    string `json:"name" db:"display_name"`
	TotalPoints    int    `json:"totalPoints" db:"total_points"`
	EventsAttended int    `json:"eventsAttended" db:"events_attended"`
}

// Entry is one ranked leaderboard row. Rank is derived from the full
// ordering and never stored independently of it.
type Entry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	DisplayName    string `json:"name"`
	TotalPoints    int    `json:"totalPoints"`
	EventsAttended int    `json:"eventsAttended"`
}

// Snapshot is an immutable ranking of all users at one point in time.
// Build a new one and swap it in rather than mutating in place.
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

const (
	DefaultPageLimit = 50
	DefaultTopLimit  = 10
	DefaultContext   = 5
)

// BuildSnapshot sorts totals by points descending and assigns dense
// 1-based ranks. Ties are broken by userId ascending so the order is
// deterministic regardless of input order.
func BuildSnapshot(totals []UserTotals) *Snapshot {
	sorted := make([]UserTotals, len(totals))
	copy(sorted, totals)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	entries := make([]Entry, len(sorted))
	index := make(map[string]int, len(sorted))
	for i, t := range sorted {
		entries[i] = Entry{
			Rank:           i + 1,
			UserID:         t.UserID,
			DisplayName:    t.DisplayName,
			TotalPoints:    t.TotalPoints,
			EventsAttended: t.EventsAttended,
		}
		index[t.UserID] = i
	}

	return &Snapshot{entries: entries, index: index}
}

// Total returns the number of ranked users.
func (s *Snapshot) Total() int {
	return len(s.entries)
}

// Page returns the ranked slice [offset, offset+limit) plus whether
// more entries follow. Out-of-range values are clamped; callers may
// pass garbage and still get a valid page.
func (s *Snapshot) Page(limit, offset int) (entries []Entry, total int, hasMore bool) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	total = len(s.entries)
	start := offset
	if start > total {
		start = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return s.entries[start:end], total, offset+limit < total
}

// Top returns the first limit entries of the ranking.
func (s *Snapshot) Top(limit int) []Entry {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > len(s.entries) {
		limit = len(s.entries)
	}
	return s.entries[:limit]
}

// UserContext is a user's own standing plus the symmetric window of
// ranked neighbors around it.
type UserContext struct {
	Rank           int     `json:"rank"`
	TotalPoints    int     `json:"totalPoints"`
	EventsAttended int     `json:"eventsAttended"`
	Surrounding    []Entry `json:"surrounding"`
	TotalUsers     int     `json:"totalUsers"`
}

// UserContext locates userID in the ranking and returns its rank with
// up to context neighbors on each side. The window shrinks near either
// boundary and never wraps. The second return is false when the user
// is not ranked.
func (s *Snapshot) UserContext(userID string, context int) (*UserContext, bool) {
	i, ok := s.index[userID]
	if !ok {
		return nil, false
	}

	if context < 0 {
		context = DefaultContext
	}

	start := i - context
	if start < 0 {
		start = 0
	}
	end := i + context + 1
	if end > len(s.entries) {
		end = len(s.entries)
	}

	user := s.entries[i]
	return &UserContext{
		Rank:           user.Rank,
		TotalPoints:    user.TotalPoints,
		EventsAttended: user.EventsAttended,
		Surrounding:    s.entries[start:end],
		TotalUsers:     len(s.entries),
	}, true
}
