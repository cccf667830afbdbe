package analytics_test

import (
	"testing"
	"time"

	"github.com/choreboard/choreboard/internal/app/analytics"
)

// ═══════════════════════════════════════════════════════════════════════════
// Reading Streak Tests
// ═══════════════════════════════════════════════════════════════════════════

var streakNow = time.Date(2025, 7, 10, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestReadingStreak_ThreeConsecutiveDays(t *testing.T) {
	events := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}

	if got := analytics.ReadingStreak(events, streakNow); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestReadingStreak_TodayMissing(t *testing.T) {
	// Yesterday and the day before were active, but today was not —
	// today must be a live link, so the streak is 0.
	events := []time.Time{daysAgo(1), daysAgo(2)}

	if got := analytics.ReadingStreak(events, streakNow); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestReadingStreak_NoEvents(t *testing.T) {
	if got := analytics.ReadingStreak(nil, streakNow); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestReadingStreak_GapBreaksWalk(t *testing.T) {
	// Active today, yesterday, then a gap, then more activity. The walk
	// must stop at the gap, not scan past it.
	events := []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4), daysAgo(5)}

	if got := analytics.ReadingStreak(events, streakNow); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestReadingStreak_MultipleEventsPerDay(t *testing.T) {
	// Several sessions on the same day count as one streak day.
	events := []time.Time{
		daysAgo(0),
		daysAgo(0).Add(-2 * time.Hour),
		daysAgo(1),
		daysAgo(1).Add(-5 * time.Hour),
	}

	if got := analytics.ReadingStreak(events, streakNow); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestReadingStreak_TimeOfDayIrrelevant(t *testing.T) {
	// An event at 00:01 today and one at 23:59 yesterday are adjacent
	// calendar days regardless of the hour gap between them.
	today := time.Date(2025, 7, 10, 0, 1, 0, 0, time.UTC)
	yesterday := time.Date(2025, 7, 9, 23, 59, 0, 0, time.UTC)

	if got := analytics.ReadingStreak([]time.Time{today, yesterday}, streakNow); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}
