// Package analytics implements the ChoreBoard progress engine: metric
// aggregation, reading streaks, achievement evaluation, engagement
// scoring, activity rollups, and the household dashboard composer.
//
// Every function is pure with respect to its inputs — the reference
// instant is always an explicit parameter, so the same events and the
// same "now" produce bit-identical output.
package analytics

import (
	"math"
	"time"

	"github.com/choreboard/choreboard/internal/domain"
)

// avgPointsWindow is the trailing window for the points-per-day average.
const avgPointsWindow = 30 * 24 * time.Hour

// BuildChildMetrics reduces a child's raw event collections into a
// ChildMetrics snapshot. Missing or partial data (nil slices, sessions
// without an end time, chapters without a theme) contributes zero rather
// than erroring.
func BuildChildMetrics(profile domain.ChildProfile, tasks []domain.TaskCompletion, sessions []domain.ReadingSession, chapters []domain.StoryChapter, now time.Time) domain.ChildMetrics {
	m := domain.ChildMetrics{
		ChildID:       profile.ID,
		CurrentStreak: profile.CurrentStreak,
		TotalPoints:   profile.TotalPoints,
	}

	var lastActivity time.Time

	// Chore counts partition strictly by status; only approved chores
	// count as completed. Approved points inside the trailing 30-day
	// window feed the per-day average — older completions are excluded
	// entirely, not pro-rated.
	windowStart := now.Add(-avgPointsWindow)
	windowPoints := 0
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskApproved:
			m.ChoresCompleted++
			if !t.CompletedAt.Before(windowStart) {
				windowPoints += t.Points
			}
		case domain.TaskRejected:
			m.ChoresRejected++
		default:
			m.ChoresPending++
		}
		if t.CompletedAt.After(lastActivity) {
			lastActivity = t.CompletedAt
		}
	}
	m.AvgPointsPerDay = int(math.Round(float64(windowPoints) / 30))

	// Reading time sums finished sessions only; speed is the mean of the
	// sessions that recorded a positive speed (0 when none did, never NaN).
	speedSum, speedCount := 0.0, 0
	sessionDays := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		m.ReadingMinutes += s.Minutes()
		if s.SpeedWPM > 0 {
			speedSum += s.SpeedWPM
			speedCount++
		}
		sessionDays = append(sessionDays, s.StartTime)
		if s.StartTime.After(lastActivity) {
			lastActivity = s.StartTime
		}
	}
	if speedCount > 0 {
		m.ReadingSpeedWPM = speedSum / float64(speedCount)
	}
	m.ReadingStreakDays = ReadingStreak(sessionDays, now)

	// Chapters: every generated chapter unlocks a story; read chapters
	// count toward reading achievements. The favorite theme is the
	// highest-occurrence theme, ties going to the first one seen in
	// input order.
	themeCounts := map[string]int{}
	themeOrder := []string{}
	for _, c := range chapters {
		m.StoriesUnlocked++
		if c.IsRead {
			m.ChaptersRead++
		}
		if c.WorldTheme != "" {
			if _, seen := themeCounts[c.WorldTheme]; !seen {
				themeOrder = append(themeOrder, c.WorldTheme)
			}
			themeCounts[c.WorldTheme]++
		}
		if c.CreatedAt.After(lastActivity) {
			lastActivity = c.CreatedAt
		}
	}
	best := 0
	for _, theme := range themeOrder {
		if themeCounts[theme] > best {
			best = themeCounts[theme]
			m.FavoriteWorldTheme = theme
		}
	}

	m.LastActivity = lastActivity

	// Achievement counts come from evaluating the static catalog against
	// the metrics built so far. Evaluation reads only the chores, streak,
	// reading, and points fields, so filling the counts afterward is safe.
	m.AchievementsTotal = len(Catalog())
	for _, st := range Evaluate(m) {
		if st.Unlocked {
			m.AchievementsUnlocked++
		}
	}

	return m
}
