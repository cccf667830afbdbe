package domain

import "time"

// Household groups the children that share one family account.
type Household struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ChildProfile is the profile-store view of a child. CurrentStreak and
// TotalPoints are owned and mutated by the profile store — the analytics
// engine reads them, it never recomputes them.
type ChildProfile struct {
	ID            string    `json:"id"`
	HouseholdID   string    `json:"household_id"`
	Name          string    `json:"name"`
	CurrentStreak int       `json:"current_streak"`
	TotalPoints   int       `json:"total_points"`
	CreatedAt     time.Time `json:"created_at"`
}
