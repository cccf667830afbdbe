package analytics

import (
	"math"

	"github.com/choreboard/choreboard/internal/domain"
)

// ─── Achievement Catalog ────────────────────────────────────────────────────
// A flat, immutable list of tiered thresholds — data, not a type
// hierarchy. Tiers within a category are independent: unlocking the
// 25-chore tier needs only the metric to reach 25, not the lower tiers
// to have been "claimed".

// Catalog returns the full achievement catalog in evaluation order.
func Catalog() []domain.Achievement {
	return []domain.Achievement{
		// ── Chores ─────────────────────────────────────────────────────
		{ID: "first_chore", Name: "First Steps", Category: domain.CatChores, Icon: "🧹", Requirement: 1, PointsReward: 10},
		{ID: "chores_5", Name: "Helping Hand", Category: domain.CatChores, Icon: "🤝", Requirement: 5, PointsReward: 25},
		{ID: "chores_25", Name: "Chore Champion", Category: domain.CatChores, Icon: "🏅", Requirement: 25, PointsReward: 75},
		{ID: "chores_50", Name: "Household Hero", Category: domain.CatChores, Icon: "🦸", Requirement: 50, PointsReward: 150},
		{ID: "chores_100", Name: "Chore Legend", Category: domain.CatChores, Icon: "👑", Requirement: 100, PointsReward: 300},

		// ── Streaks ────────────────────────────────────────────────────
		{ID: "streak_3", Name: "On a Roll", Category: domain.CatStreak, Icon: "🎲", Requirement: 3, PointsReward: 20},
		{ID: "streak_7", Name: "Week Warrior", Category: domain.CatStreak, Icon: "🔥", Requirement: 7, PointsReward: 50},
		{ID: "streak_14", Name: "Fortnight Force", Category: domain.CatStreak, Icon: "⚡", Requirement: 14, PointsReward: 120},
		{ID: "streak_30", Name: "Monthly Machine", Category: domain.CatStreak, Icon: "💪", Requirement: 30, PointsReward: 300},

		// ── Reading ────────────────────────────────────────────────────
		{ID: "first_chapter", Name: "Once Upon a Time", Category: domain.CatReading, Icon: "📖", Requirement: 1, PointsReward: 10},
		{ID: "chapters_5", Name: "Bookworm", Category: domain.CatReading, Icon: "🐛", Requirement: 5, PointsReward: 30},
		{ID: "chapters_15", Name: "Story Seeker", Category: domain.CatReading, Icon: "🔍", Requirement: 15, PointsReward: 90},
		{ID: "chapters_30", Name: "Library Legend", Category: domain.CatReading, Icon: "🏛️", Requirement: 30, PointsReward: 200},

		// ── Special (points) ───────────────────────────────────────────
		{ID: "points_100", Name: "Century Club", Category: domain.CatSpecial, Icon: "💯", Requirement: 100, PointsReward: 25},
		{ID: "points_500", Name: "Point Collector", Category: domain.CatSpecial, Icon: "💎", Requirement: 500, PointsReward: 100},
		{ID: "points_1000", Name: "Point Tycoon", Category: domain.CatSpecial, Icon: "🏆", Requirement: 1000, PointsReward: 250},
	}
}

// categoryMetric maps each category to the single metric that drives it.
// Exactly one metric feeds each category — no blending.
var categoryMetric = map[domain.AchievementCategory]func(domain.ChildMetrics) int{
	domain.CatChores:  func(m domain.ChildMetrics) int { return m.ChoresCompleted },
	domain.CatStreak:  func(m domain.ChildMetrics) int { return m.CurrentStreak },
	domain.CatReading: func(m domain.ChildMetrics) int { return m.ChaptersRead },
	domain.CatSpecial: func(m domain.ChildMetrics) int { return m.TotalPoints },
}

// Evaluate matches the catalog against a metrics snapshot, returning one
// status per entry in catalog order. Unlock is decided only by the raw
// metric comparison — Progress can round up to 100 while the metric is
// still short of the requirement.
func Evaluate(m domain.ChildMetrics) []domain.AchievementStatus {
	catalog := Catalog()
	statuses := make([]domain.AchievementStatus, len(catalog))
	for i, def := range catalog {
		metric := categoryMetric[def.Category](m)
		statuses[i] = domain.AchievementStatus{
			Achievement: def,
			Progress:    progress(metric, def.Requirement),
			Unlocked:    metric >= def.Requirement,
		}
	}
	return statuses
}

// progress returns min(100, round(metric/requirement*100)).
func progress(metric, requirement int) int {
	if requirement <= 0 {
		// Catalog requirements are statically positive; reaching this
		// guard means the catalog itself is broken.
		panic(domain.ErrBadCatalog)
	}
	if metric <= 0 {
		return 0
	}
	p := math.Round(float64(metric) / float64(requirement) * 100)
	if p > 100 {
		p = 100
	}
	return int(p)
}

// NewlyUnlocked filters statuses down to the entries worth celebrating:
// unlocked with full progress. Kept as a separate query even though the
// unlock definition makes the progress check redundant — callers use it
// to decide whether to fire a celebration.
func NewlyUnlocked(statuses []domain.AchievementStatus) []domain.AchievementStatus {
	unlocked := []domain.AchievementStatus{}
	for _, st := range statuses {
		if st.Unlocked && st.Progress == 100 {
			unlocked = append(unlocked, st)
		}
	}
	return unlocked
}

// Summarize condenses an evaluation into counts, reward points, and the
// last 3 unlocked entries. "Last" is catalog order, not recency — without
// a persisted unlock ledger there is no unlock timestamp to sort by.
func Summarize(statuses []domain.AchievementStatus) domain.AchievementSummary {
	sum := domain.AchievementSummary{
		Total:  len(statuses),
		Recent: []domain.AchievementStatus{},
	}
	for _, st := range statuses {
		if !st.Unlocked {
			continue
		}
		sum.Unlocked++
		sum.PointsEarned += st.PointsReward
		sum.Recent = append(sum.Recent, st)
	}
	if len(sum.Recent) > 3 {
		sum.Recent = sum.Recent[len(sum.Recent)-3:]
	}
	return sum
}
