package gamification

import (
	"time"

	"github.com/bottled-app/bottled/internal/domain"
)

// Catalog returns the fixed achievement catalog: 18 achievements across
// 5 categories. Every call returns a fresh copy with locked state.
func Catalog() []domain.Achievement {
	return []domain.Achievement{
		// ── Milestones ─────────────────────────────────────────────────
		{
			ID: "first-bottle", Title: "Message in a Bottle",
			Description: "Create your very first bottle",
			Icon:        "🍾", Category: domain.CatMilestone, MaxProgress: 1,
		},
		{
			ID: "first-unlock", Title: "Time Traveler",
			Description: "Open your first bottle from the past",
			Icon:        "⏰", Category: domain.CatMilestone, MaxProgress: 1,
		},
		{
			ID: "bottles-5", Title: "Bottle Collector",
			Description: "Create 5 bottles",
			Icon:        "🗂️", Category: domain.CatMilestone, MaxProgress: 5,
		},
		{
			ID: "bottles-25", Title: "Message Master",
			Description: "Create 25 bottles",
			Icon:        "📚", Category: domain.CatMilestone, MaxProgress: 25,
		},
		{
			ID: "bottles-100", Title: "Ocean of Memories",
			Description: "Create 100 bottles",
			Icon:        "🌊", Category: domain.CatMilestone, MaxProgress: 100,
		},

		// ── Patience ───────────────────────────────────────────────────
		{
			ID: "wait-30", Title: "Patient Soul",
			Description: "Wait 30 days for a bottle to unlock",
			Icon:        "🧘", Category: domain.CatPatience, MaxProgress: 30,
		},
		{
			ID: "wait-100", Title: "Zen Master",
			Description: "Wait 100 days for a bottle to unlock",
			Icon:        "🕯️", Category: domain.CatPatience, MaxProgress: 100,
		},
		{
			ID: "wait-365", Title: "Time Keeper",
			Description: "Wait a full year for a bottle to unlock",
			Icon:        "📅", Category: domain.CatPatience, MaxProgress: 365,
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "streak-3", Title: "Getting Started",
			Description: "Open bottles for 3 days in a row",
			Icon:        "🔥", Category: domain.CatStreak, MaxProgress: 3,
		},
		{
			ID: "streak-7", Title: "Weekly Warrior",
			Description: "Open bottles for 7 days in a row",
			Icon:        "⚡", Category: domain.CatStreak, MaxProgress: 7,
		},
		{
			ID: "streak-30", Title: "Dedication Champion",
			Description: "Open bottles for 30 days in a row",
			Icon:        "👑", Category: domain.CatStreak, MaxProgress: 30,
		},

		// ── Creativity ─────────────────────────────────────────────────
		{
			ID: "media-master", Title: "Media Master",
			Description: "Attach media to 10 different bottles",
			Icon:        "🎨", Category: domain.CatCreativity, MaxProgress: 10,
		},
		{
			ID: "storyteller", Title: "Storyteller",
			Description: "Write a message over 1000 characters",
			Icon:        "📖", Category: domain.CatCreativity, MaxProgress: 1000,
		},
		{
			ID: "variety-pack", Title: "Variety Pack",
			Description: "Create bottles with 5 different delay periods",
			Icon:        "🎭", Category: domain.CatCreativity, MaxProgress: 5,
		},

		// ── Dedication ─────────────────────────────────────────────────
		{
			ID: "early-bird", Title: "Early Bird",
			Description: "Open a bottle within an hour of it unlocking",
			Icon:        "🐦", Category: domain.CatDedication, MaxProgress: 1,
		},
		{
			ID: "night-owl", Title: "Night Owl",
			Description: "Create a bottle between midnight and 6 AM",
			Icon:        "🦉", Category: domain.CatDedication, MaxProgress: 1,
		},
		{
			ID: "anniversary", Title: "Anniversary",
			Description: "Use the app for 365 days",
			Icon:        "🎂", Category: domain.CatDedication, MaxProgress: 365,
		},
		{
			ID: "collector-supreme", Title: "Collector Supreme",
			Description: "Unlock every other achievement",
			Icon:        "🏆", Category: domain.CatDedication, MaxProgress: 17,
		},
	}
}

// progressFn computes an achievement's progress from a fully-updated
// stats/streak snapshot.
type progressFn func(stats domain.UserStats, streak domain.StreakData, now time.Time) int

// progressFns is the fixed id → progress mapping used by the generic
// threshold scan. Achievements without an entry are never scanned:
// early-bird and night-owl unlock on one-shot temporal coincidences at the
// event site; variety-pack and collector-supreme have no tracked counter
// yet.
var progressFns = map[string]progressFn{
	"first-bottle": func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.BottlesCreated },
	"bottles-5":    func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.BottlesCreated },
	"bottles-25":   func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.BottlesCreated },
	"bottles-100":  func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.BottlesCreated },
	"first-unlock": func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.BottlesOpened },
	"wait-30":      func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.LongestWait },
	"wait-100":     func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.LongestWait },
	"wait-365":     func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.LongestWait },
	"streak-3":     func(_ domain.UserStats, k domain.StreakData, _ time.Time) int { return k.Longest },
	"streak-7":     func(_ domain.UserStats, k domain.StreakData, _ time.Time) int { return k.Longest },
	"streak-30":    func(_ domain.UserStats, k domain.StreakData, _ time.Time) int { return k.Longest },
	"media-master": func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.TotalAttachments },
	"storyteller":  func(s domain.UserStats, _ domain.StreakData, _ time.Time) int { return s.AverageMessageLength },
	"anniversary": func(s domain.UserStats, _ domain.StreakData, now time.Time) int {
		if s.FirstBottleDate == nil {
			return 0
		}
		return DaysBetween(*s.FirstBottleDate, now)
	},
}
