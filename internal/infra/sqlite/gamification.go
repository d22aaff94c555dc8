package sqlite

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/bottled-app/bottled/internal/domain"
)

// Fixed keys for the three gamification records. Each is read and written
// independently as an opaque JSON blob; date fields serialize as RFC 3339
// strings, streak dates as "YYYY-MM-DD".
const (
	keyStats        = "stats"
	keyAchievements = "achievements"
	keyStreak       = "streak"
)

// LoadGamification reads the persisted triple. A malformed record falls
// back to its zero value — logged, never surfaced — so one corrupt blob
// cannot take the other two down with it.
func (d *DB) LoadGamification() (domain.UserStats, []domain.Achievement, domain.StreakData, error) {
	var stats domain.UserStats
	var achievements []domain.Achievement
	var streak domain.StreakData

	raw, err := d.getKV(keyStats)
	if err != nil {
		return stats, achievements, streak, fmt.Errorf("load stats: %w", err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &stats); err != nil {
			log.Printf("[sqlite] stats record malformed, starting empty: %v", err)
			stats = domain.UserStats{}
		}
	}

	raw, err = d.getKV(keyAchievements)
	if err != nil {
		return stats, achievements, streak, fmt.Errorf("load achievements: %w", err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &achievements); err != nil {
			log.Printf("[sqlite] achievements record malformed, starting empty: %v", err)
			achievements = nil
		}
	}

	raw, err = d.getKV(keyStreak)
	if err != nil {
		return stats, achievements, streak, fmt.Errorf("load streak: %w", err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &streak); err != nil {
			log.Printf("[sqlite] streak record malformed, starting empty: %v", err)
			streak = domain.StreakData{}
		}
	}

	return stats, achievements, streak, nil
}

// SaveGamification writes the full triple.
func (d *DB) SaveGamification(stats domain.UserStats, achievements []domain.Achievement, streak domain.StreakData) error {
	records := []struct {
		key   string
		value any
	}{
		{keyStats, stats},
		{keyAchievements, achievements},
		{keyStreak, streak},
	}
	for _, r := range records {
		blob, err := json.Marshal(r.value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", r.key, err)
		}
		if err := d.setKV(r.key, string(blob)); err != nil {
			return fmt.Errorf("save %s: %w", r.key, err)
		}
	}
	return nil
}
