package storage

import (
	"campusConnectAPI/internal/points"
	"campusConnectAPI/internal/rewards"
)

// Seed loads the demo dataset used when no database is configured:
// twelve ranked users and a five-item reward catalog.
func (s *MemoryStore) Seed() *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []*points.UserSummary{
		{UserID: "user_001", DisplayName: "Sarah Chen", TotalPoints: 1250, AvailablePoints: 1250, EventsAttended: 42},
		{UserID: "user_002", DisplayName: "Marcus Williams", TotalPoints: 1180, AvailablePoints: 1180, EventsAttended: 38},
		{UserID: "user_003", DisplayName: "Emma Rodriguez", TotalPoints: 1050, AvailablePoints: 1050, EventsAttended: 35},
		{UserID: "user_004", DisplayName: "Jamal Thompson", TotalPoints: 920, AvailablePoints: 920, EventsAttended: 31},
		{UserID: "user_005", DisplayName: "Priya Patel", TotalPoints: 875, AvailablePoints: 875, EventsAttended: 29},
		{UserID: "user_006", DisplayName: "Chen Wei", TotalPoints: 820, AvailablePoints: 820, EventsAttended: 27},
		{UserID: "user_007", DisplayName: "Isabella Martinez", TotalPoints: 780, AvailablePoints: 780, EventsAttended: 26},
		{UserID: "user_008", DisplayName: "David Kim", TotalPoints: 745, AvailablePoints: 745, EventsAttended: 25},
		{UserID: "user_009", DisplayName: "Aisha Mohammed", TotalPoints: 690, AvailablePoints: 690, EventsAttended: 23},
		{UserID: "user_010", DisplayName: "Lucas Silva", TotalPoints: 650, AvailablePoints: 650, EventsAttended: 22},
		{UserID: "user_011", DisplayName: "Fatima Abbas", TotalPoints: 580, AvailablePoints: 580, EventsAttended: 19},
		{
			UserID: "user_123", DisplayName: "Alex Johnson",
			TotalPoints: 450, AvailablePoints: 280, EventsAttended: 15,
			CategoriesAttended: []string{"academic", "social", "sports"},
		},
	}
	for _, u := range users {
		s.summaries[u.UserID] = u
	}

	catalog := []*rewards.Reward{
		{ID: "reward_1", Title: "TMU Hoodie", Description: "Official TMU branded hoodie in your choice of color", PointsCost: 500, Category: "merchandise", Stock: 25, IsActive: true},
		{ID: "reward_2", Title: "Starbucks $10 Gift Card", Description: "Enjoy your favorite coffee on us", PointsCost: 200, Category: "food", Stock: 50, IsActive: true},
		{ID: "reward_3", Title: "Campus Gym 1-Month Pass", Description: "Free access to all gym facilities for one month", PointsCost: 300, Category: "services", Stock: 15, IsActive: true},
		{ID: "reward_4", Title: "Tim Hortons $5 Gift Card", Description: "Perfect for your morning coffee run", PointsCost: 100, Category: "food", Stock: 100, IsActive: true},
		{ID: "reward_5", Title: "TMU Water Bottle", Description: "Eco-friendly stainless steel water bottle", PointsCost: 150, Category: "merchandise", Stock: 40, IsActive: true},
	}
	for _, r := range catalog {
		s.rewards[r.ID] = r
	}

	return s
}
