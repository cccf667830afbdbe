package domain

import "time"

// ─── Child Metrics ──────────────────────────────────────────────────────────

// ChildMetrics is a snapshot of one child's derived activity metrics.
// Recomputed fresh from raw events on every request — never cached.
type ChildMetrics struct {
	ChildID string `json:"child_id"`

	// Chore counts, partitioned strictly by review status.
	ChoresCompleted int `json:"chores_completed"`
	ChoresPending   int `json:"chores_pending"`
	ChoresRejected  int `json:"chores_rejected"`

	// Profile-store fields, read as-is.
	CurrentStreak int `json:"current_streak"`
	TotalPoints   int `json:"total_points"`

	// Approved points over the trailing 30 days, divided by 30.
	AvgPointsPerDay int `json:"avg_points_per_day"`

	// Reading.
	ChaptersRead      int     `json:"chapters_read"`
	StoriesUnlocked   int     `json:"stories_unlocked"`
	ReadingMinutes    int     `json:"reading_minutes"`
	ReadingSpeedWPM   float64 `json:"reading_speed_wpm"`
	ReadingStreakDays int     `json:"reading_streak_days"`

	// Achievement counts against the static catalog.
	AchievementsUnlocked int `json:"achievements_unlocked"`
	AchievementsTotal    int `json:"achievements_total"`

	// Highest-occurrence story theme; ties go to the first theme
	// encountered in input order. Empty when no chapters exist.
	FavoriteWorldTheme string `json:"favorite_world_theme"`

	// Most recent event of any kind; zero when no events exist.
	LastActivity time.Time `json:"last_activity"`
}

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementCategory selects which metric drives an achievement.
type AchievementCategory string

const (
	CatChores  AchievementCategory = "chores"
	CatReading AchievementCategory = "reading"
	CatStreak  AchievementCategory = "streak"
	CatSpecial AchievementCategory = "special"
)

// Achievement is one immutable catalog entry. The catalog is defined
// once at process start and evaluated fresh against current metrics on
// every request — unlock state is recomputed, not stored.
type Achievement struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     AchievementCategory `json:"category"`
	Icon         string              `json:"icon"`
	Requirement  int                 `json:"requirement"`
	PointsReward int                 `json:"points_reward"`
}

// AchievementStatus is the evaluated state of one catalog entry for one
// child. Unlocked is decided by the raw metric comparison alone; Progress
// can round to 100 while the metric is still short.
type AchievementStatus struct {
	Achievement
	Progress int  `json:"progress"` // 0–100
	Unlocked bool `json:"unlocked"`
}

// AchievementSummary condenses a full evaluation for dashboards.
type AchievementSummary struct {
	Unlocked     int                 `json:"unlocked"`
	Total        int                 `json:"total"`
	PointsEarned int                 `json:"points_earned"`
	Recent       []AchievementStatus `json:"recent"` // last 3 unlocked, catalog order
}

// ─── Engagement Score ───────────────────────────────────────────────────────

// Engagement labels. Dashboards key behavior off these strings, so they
// are part of the contract.
const (
	LabelExcellent      = "Excellent"
	LabelGood           = "Good"
	LabelNeedsAttention = "Needs Attention"
)

// EngagementScore is the 0–100 composite activity index.
type EngagementScore struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// ─── Activity Rollups ───────────────────────────────────────────────────────

// ActivityBucket is one row of a fixed-length rollup series.
// PeriodKey is YYYY-MM-DD for daily buckets and YYYY-MM for monthly.
// Stories counts chapters read that day for daily buckets and chapters
// generated that month for monthly buckets.
type ActivityBucket struct {
	PeriodKey       string `json:"period_key"`
	ChoresCompleted int    `json:"chores_completed"`
	Stories         int    `json:"stories"`
	PointsEarned    int    `json:"points_earned"`
}

// ─── Dashboards ─────────────────────────────────────────────────────────────

// ChildDashboard is the full analytics bundle for one child.
type ChildDashboard struct {
	Profile      ChildProfile        `json:"profile"`
	Metrics      ChildMetrics        `json:"metrics"`
	Achievements []AchievementStatus `json:"achievements"`
	Summary      AchievementSummary  `json:"achievement_summary"`
	Engagement   EngagementScore     `json:"engagement"`
	Daily        []ActivityBucket    `json:"daily"`
	Monthly      []ActivityBucket    `json:"monthly"`
}

// HouseholdDashboard aggregates every child of a household. A household
// with zero children yields a well-formed zero dashboard, never nil.
type HouseholdDashboard struct {
	HouseholdID       string `json:"household_id"`
	TotalChildren     int    `json:"total_children"`
	OverallEngagement int    `json:"overall_engagement"`

	// Names of the children with the max/min engagement score; ties go
	// to the first child in household order. Empty with zero children.
	MostActiveChild  string `json:"most_active_child"`
	LeastActiveChild string `json:"least_active_child"`

	// Independent counts over the household's collections, not sums of
	// per-child metrics.
	TotalChoresCreated    int `json:"total_chores_created"`
	TotalStoriesGenerated int `json:"total_stories_generated"`

	Children []ChildDashboard `json:"children"`
}
