// Package domain defines the event records and derived analytics types
// for the ChoreBoard progress engine. Domain types are pure — no
// infrastructure dependency.
package domain

import (
	"math"
	"time"
)

// ─── Task Completion Events ─────────────────────────────────────────────────

// TaskStatus is the review state of a completed chore.
// Only approved completions count toward progress.
type TaskStatus string

const (
	TaskPending  TaskStatus = "pending"
	TaskApproved TaskStatus = "approved"
	TaskRejected TaskStatus = "rejected"
)

// TaskCompletion records one chore a child marked done.
type TaskCompletion struct {
	ID          string     `json:"id"`
	ChildID     string     `json:"child_id"`
	Status      TaskStatus `json:"status"`
	CompletedAt time.Time  `json:"completed_at"`
	Points      int        `json:"points"`
}

// ─── Reading Session Events ─────────────────────────────────────────────────

// ReadingSession records one sitting with a story.
// EndTime is nil while (or if) the session was never finished; such
// sessions contribute zero reading time.
type ReadingSession struct {
	ID        string     `json:"id"`
	ChildID   string     `json:"child_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	WordsRead int        `json:"words_read"`
	SpeedWPM  float64    `json:"speed_wpm"` // 0 when not recorded
}

// Minutes returns the session duration in whole minutes (rounded).
// Incomplete sessions return 0.
func (s ReadingSession) Minutes() int {
	if s.EndTime == nil {
		return 0
	}
	secs := s.EndTime.Sub(s.StartTime).Seconds()
	if secs <= 0 {
		return 0
	}
	return int(math.Round(secs / 60))
}

// ─── Story Chapter Events ───────────────────────────────────────────────────

// StoryChapter records one generated chapter of a child's story.
type StoryChapter struct {
	ID         string    `json:"id"`
	ChildID    string    `json:"child_id"`
	IsRead     bool      `json:"is_read"`
	WorldTheme string    `json:"world_theme"`
	CreatedAt  time.Time `json:"created_at"`
}
