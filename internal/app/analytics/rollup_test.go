package analytics_test

import (
	"testing"
	"time"

	"github.com/choreboard/choreboard/internal/app/analytics"
	"github.com/choreboard/choreboard/internal/domain"
)

// ═══════════════════════════════════════════════════════════════════════════
// Rollup Builder Tests
// ═══════════════════════════════════════════════════════════════════════════

var rollNow = time.Date(2025, 3, 15, 18, 45, 0, 0, time.UTC)

func TestDailyRollup_AlwaysSevenBuckets(t *testing.T) {
	buckets := analytics.DailyRollup(nil, nil, rollNow)

	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}
	for _, b := range buckets {
		if b.ChoresCompleted != 0 || b.Stories != 0 || b.PointsEarned != 0 {
			t.Errorf("empty input must yield zero buckets, got %+v", b)
		}
	}
}

func TestDailyRollup_KeysAscending(t *testing.T) {
	buckets := analytics.DailyRollup(nil, nil, rollNow)

	if buckets[0].PeriodKey != "2025-03-09" {
		t.Errorf("first key = %q, want 2025-03-09", buckets[0].PeriodKey)
	}
	if buckets[6].PeriodKey != "2025-03-15" {
		t.Errorf("last key = %q, want today", buckets[6].PeriodKey)
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i].PeriodKey <= buckets[i-1].PeriodKey {
			t.Errorf("keys not ascending at %d: %q after %q", i, buckets[i].PeriodKey, buckets[i-1].PeriodKey)
		}
	}
}

func TestDailyRollup_DayBoundaries(t *testing.T) {
	dayStart := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tasks := []domain.TaskCompletion{
		{Status: domain.TaskApproved, CompletedAt: dayStart, Points: 5},
		{Status: domain.TaskApproved, CompletedAt: dayEnd, Points: 7},
		{Status: domain.TaskApproved, CompletedAt: nextDay, Points: 11},
	}

	buckets := analytics.DailyRollup(tasks, nil, rollNow)

	var mar14, mar15 domain.ActivityBucket
	for _, b := range buckets {
		switch b.PeriodKey {
		case "2025-03-14":
			mar14 = b
		case "2025-03-15":
			mar15 = b
		}
	}

	if mar14.ChoresCompleted != 2 || mar14.PointsEarned != 12 {
		t.Errorf("2025-03-14 = %+v, want 2 chores / 12 points", mar14)
	}
	if mar15.ChoresCompleted != 1 || mar15.PointsEarned != 11 {
		t.Errorf("2025-03-15 = %+v, want 1 chore / 11 points", mar15)
	}
}

func TestDailyRollup_OnlyApprovedAndRead(t *testing.T) {
	today := rollNow.Add(-time.Hour)
	tasks := []domain.TaskCompletion{
		{Status: domain.TaskApproved, CompletedAt: today, Points: 5},
		{Status: domain.TaskPending, CompletedAt: today, Points: 50},
		{Status: domain.TaskRejected, CompletedAt: today, Points: 50},
	}
	chapters := []domain.StoryChapter{
		{IsRead: true, CreatedAt: today},
		{IsRead: false, CreatedAt: today},
	}

	buckets := analytics.DailyRollup(tasks, chapters, rollNow)
	last := buckets[6]

	if last.ChoresCompleted != 1 || last.PointsEarned != 5 {
		t.Errorf("only approved chores count, got %+v", last)
	}
	if last.Stories != 1 {
		t.Errorf("daily stories = %d, want 1 (unread chapters excluded)", last.Stories)
	}
}

func TestMonthlyRollup_AlwaysSixBuckets(t *testing.T) {
	buckets := analytics.MonthlyRollup(nil, nil, rollNow)

	if len(buckets) != 6 {
		t.Fatalf("got %d buckets, want 6", len(buckets))
	}
	want := []string{"2024-10", "2024-11", "2024-12", "2025-01", "2025-02", "2025-03"}
	for i, b := range buckets {
		if b.PeriodKey != want[i] {
			t.Errorf("bucket %d key = %q, want %q", i, b.PeriodKey, want[i])
		}
	}
}

func TestMonthlyRollup_TrueMonthBoundaries(t *testing.T) {
	// February 2025 has 28 days — a fixed 30-day window would misfile
	// these events.
	endOfFeb := time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)
	startOfMar := time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)

	tasks := []domain.TaskCompletion{
		{Status: domain.TaskApproved, CompletedAt: endOfFeb, Points: 3},
		{Status: domain.TaskApproved, CompletedAt: startOfMar, Points: 4},
	}

	buckets := analytics.MonthlyRollup(tasks, nil, rollNow)

	var feb, mar domain.ActivityBucket
	for _, b := range buckets {
		switch b.PeriodKey {
		case "2025-02":
			feb = b
		case "2025-03":
			mar = b
		}
	}
	if feb.ChoresCompleted != 1 || feb.PointsEarned != 3 {
		t.Errorf("2025-02 = %+v, want 1 chore / 3 points", feb)
	}
	if mar.ChoresCompleted != 1 || mar.PointsEarned != 4 {
		t.Errorf("2025-03 = %+v, want 1 chore / 4 points", mar)
	}
}

func TestMonthlyRollup_CountsGeneratedChapters(t *testing.T) {
	// Monthly buckets count every generated chapter, read or not.
	chapters := []domain.StoryChapter{
		{IsRead: true, CreatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)},
		{IsRead: false, CreatedAt: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
	}

	buckets := analytics.MonthlyRollup(nil, chapters, rollNow)
	if got := buckets[5].Stories; got != 2 {
		t.Errorf("2025-03 stories = %d, want 2", got)
	}
}

func TestRollup_YearBoundary(t *testing.T) {
	newYear := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	daily := analytics.DailyRollup(nil, nil, newYear)
	if daily[0].PeriodKey != "2024-12-27" {
		t.Errorf("first daily key = %q, want 2024-12-27", daily[0].PeriodKey)
	}

	monthly := analytics.MonthlyRollup(nil, nil, newYear)
	if monthly[0].PeriodKey != "2024-08" || monthly[5].PeriodKey != "2025-01" {
		t.Errorf("monthly span = %q..%q, want 2024-08..2025-01", monthly[0].PeriodKey, monthly[5].PeriodKey)
	}
}
