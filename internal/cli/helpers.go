package cli

import (
	"fmt"
	"time"

	"github.com/bottled-app/bottled/internal/domain"
)

// shortID abbreviates a bottle id for list output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// bottleStatus renders a bottle's lock state for list output.
func bottleStatus(b domain.Bottle, now time.Time) string {
	if b.Readable(now) {
		return "unlocked"
	}
	return "locked (" + untilText(b.UnlockDate, now) + " left)"
}

// untilText formats the time remaining until t as the largest sensible
// unit.
func untilText(t, now time.Time) string {
	d := t.Sub(now)
	switch {
	case d >= 48*time.Hour:
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	default:
		return "<1m"
	}
}

// printUnlocked announces newly unlocked achievements.
func printUnlocked(achievements []domain.Achievement) {
	for _, a := range achievements {
		fmt.Printf("%s Achievement unlocked: %s — %s\n", a.Icon, a.Title, a.Description)
	}
}
