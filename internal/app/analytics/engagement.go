package analytics

import (
	"math"

	"github.com/choreboard/choreboard/internal/domain"
)

// ─── Engagement Scorer ──────────────────────────────────────────────────────
// Five weighted sub-scores, each capped independently BEFORE summation,
// then the sum re-capped at 100. Additive-capped by design, not a
// weighted average: an overshoot in one dimension cannot compensate a
// deficit in another beyond its own cap.
//
//   chores       min(30, completed/10 × 30)
//   reading      min(25, chaptersRead/5 × 25)
//   streak       min(20, currentStreak/7 × 20)
//   readingTime  min(15, minutes/60 × 15)
//   achievements min(10, unlocked/5 × 10)

// Score maps a metrics snapshot to the 0–100 engagement score and label.
func Score(m domain.ChildMetrics) domain.EngagementScore {
	sum := subScore(m.ChoresCompleted, 10, 30) +
		subScore(m.ChaptersRead, 5, 25) +
		subScore(m.CurrentStreak, 7, 20) +
		subScore(m.ReadingMinutes, 60, 15) +
		subScore(m.AchievementsUnlocked, 5, 10)

	score := int(math.Round(math.Min(sum, 100)))
	return domain.EngagementScore{Score: score, Label: ScoreLabel(score)}
}

// subScore scales metric/target into [0, weight].
func subScore(metric, target int, weight float64) float64 {
	return math.Min(weight, float64(metric)/float64(target)*weight)
}

// ScoreLabel maps a score to its dashboard band.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return domain.LabelExcellent
	case score >= 60:
		return domain.LabelGood
	default:
		return domain.LabelNeedsAttention
	}
}
