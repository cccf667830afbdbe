package analytics

import (
	"time"

	"github.com/choreboard/choreboard/internal/domain"
)

const (
	dailyBuckets   = 7
	monthlyBuckets = 6
)

// DailyRollup buckets approved chores and read chapters into exactly 7
// calendar days — today and the 6 preceding, ascending. Bucket bounds
// are inclusive start-of-day, exclusive start-of-next-day, in now's
// location. Buckets with zero activity still appear — the length is
// fixed regardless of sparsity.
func DailyRollup(tasks []domain.TaskCompletion, chapters []domain.StoryChapter, now time.Time) []domain.ActivityBucket {
	loc := now.Location()
	today := dayOf(now, loc)

	buckets := make([]domain.ActivityBucket, 0, dailyBuckets)
	for i := dailyBuckets - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)

		b := domain.ActivityBucket{PeriodKey: start.Format("2006-01-02")}
		for _, t := range tasks {
			if t.Status == domain.TaskApproved && within(t.CompletedAt, start, end, loc) {
				b.ChoresCompleted++
				b.PointsEarned += t.Points
			}
		}
		for _, c := range chapters {
			if c.IsRead && within(c.CreatedAt, start, end, loc) {
				b.Stories++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// MonthlyRollup buckets activity into exactly 6 calendar months — the
// current month and the 5 preceding, ascending, using true month
// boundaries rather than fixed 30-day windows. Stories counts all
// chapters generated in the month.
func MonthlyRollup(tasks []domain.TaskCompletion, chapters []domain.StoryChapter, now time.Time) []domain.ActivityBucket {
	loc := now.Location()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	buckets := make([]domain.ActivityBucket, 0, monthlyBuckets)
	for i := monthlyBuckets - 1; i >= 0; i-- {
		start := thisMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		b := domain.ActivityBucket{PeriodKey: start.Format("2006-01")}
		for _, t := range tasks {
			if t.Status == domain.TaskApproved && within(t.CompletedAt, start, end, loc) {
				b.ChoresCompleted++
				b.PointsEarned += t.Points
			}
		}
		for _, c := range chapters {
			if within(c.CreatedAt, start, end, loc) {
				b.Stories++
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// within reports whether ts falls in [start, end) when viewed in loc.
func within(ts time.Time, start, end time.Time, loc *time.Location) bool {
	t := ts.In(loc)
	return !t.Before(start) && t.Before(end)
}
