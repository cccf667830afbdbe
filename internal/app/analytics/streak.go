package analytics

import "time"

// ReadingStreak counts consecutive calendar days with at least one event,
// walking backward from "today" (the day of now, in now's location).
//
// Today must be a live link: if today has no event the streak is 0 even
// when yesterday was active. A gap day strictly terminates the walk —
// there is no grace day or makeup mechanic. Streaks measure "currently
// active", not "was once active".
func ReadingStreak(events []time.Time, now time.Time) int {
	if len(events) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[time.Time]struct{}, len(events))
	for _, ts := range events {
		days[dayOf(ts, loc)] = struct{}{}
	}

	streak := 0
	for day := dayOf(now, loc); ; day = day.AddDate(0, 0, -1) {
		if _, active := days[day]; !active {
			break
		}
		streak++
	}
	return streak
}

// dayOf truncates a timestamp to its calendar day in loc. All calendar
// math in the engine goes through this one normalization.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
