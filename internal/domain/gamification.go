// Package domain — gamification aggregates: stats, streak, achievements.
// All three are owned by the gamification engine; everything else gets
// read-only snapshots.
package domain

import "time"

// ─── Stats ──────────────────────────────────────────────────────────────────

// UserStats is the persisted aggregate of everything the user has done.
// BottlesOpened can exceed BottlesCreated: opens are not de-duplicated by
// bottle id, and early unlocks count as regular opens.
type UserStats struct {
	BottlesCreated   int `json:"bottles_created"`
	BottlesOpened    int `json:"bottles_opened"`
	TotalDaysWaited  int `json:"total_days_waited"`
	LongestWait      int `json:"longest_wait"`
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
	TotalAttachments int `json:"total_attachments"`

	// AverageMessageLength is, despite its historical name, a running
	// MAXIMUM of message length. The storyteller achievement unlocks off
	// this value, so the semantics must not change.
	AverageMessageLength int `json:"average_message_length"`

	// FirstBottleDate is write-once: set on the first creation, never
	// overwritten.
	FirstBottleDate *time.Time `json:"first_bottle_date,omitempty"`
	LastOpenedDate  *time.Time `json:"last_opened_date,omitempty"`
}

// ─── Streak ─────────────────────────────────────────────────────────────────

// StreakData tracks consecutive days with at least one bottle opened.
// StreakDates is append-only and holds one "YYYY-MM-DD" key per calendar
// day of opening activity, never duplicated.
type StreakData struct {
	Current        int        `json:"current"`
	Longest        int        `json:"longest"`
	LastOpenedDate *time.Time `json:"last_opened_date,omitempty"`
	StreakDates    []string   `json:"streak_dates"`
}

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatMilestone  AchievementCategory = "milestone"
	CatStreak     AchievementCategory = "streak"
	CatCreativity AchievementCategory = "creativity"
	CatPatience   AchievementCategory = "patience"
	CatDedication AchievementCategory = "dedication"
)

// Achievement is a catalog definition plus its unlock state.
// ID through MaxProgress come from the fixed catalog and never change;
// IsUnlocked flips false→true exactly once, UnlockedAt is set at that
// transition, and Progress freezes at MaxProgress once unlocked.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	IsUnlocked  bool                `json:"is_unlocked"`
	UnlockedAt  *time.Time          `json:"unlocked_at,omitempty"`
	Progress    int                 `json:"progress"`
	MaxProgress int                 `json:"max_progress"`
}
