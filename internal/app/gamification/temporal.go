package gamification

import "time"

// dayKeyLayout is the calendar-day identifier used for streak continuity.
// Insensitive to time of day.
const dayKeyLayout = "2006-01-02"

// DayKey maps an instant to its "YYYY-MM-DD" calendar-day key, using the
// instant's own location.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// IsConsecutiveDay reports whether cur is exactly one calendar day after
// prev. Both arguments are day keys as produced by DayKey.
func IsConsecutiveDay(prev, cur string) bool {
	p, err := time.Parse(dayKeyLayout, prev)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Format(dayKeyLayout) == cur
}

// DaysBetween returns the number of whole days elapsed from a to b.
// Same-day instants yield 0.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
