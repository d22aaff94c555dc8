// Package metrics provides Prometheus metrics for bottled — counters and
// gauges for bottles, attachments, achievements, streaks, and health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Bottles ────────────────────────────────────────────────────────────────

// BottlesCreated tracks total bottles created.
var BottlesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bottled",
	Name:      "bottles_created_total",
	Help:      "Total bottles created.",
})

// BottlesOpened tracks total bottle opening events, early unlocks included.
var BottlesOpened = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bottled",
	Name:      "bottles_opened_total",
	Help:      "Total bottle opening events.",
})

// AttachmentsStored tracks total attachments sealed into bottles.
var AttachmentsStored = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bottled",
	Name:      "attachments_stored_total",
	Help:      "Total attachments sealed into bottles.",
})

// ─── Gamification ───────────────────────────────────────────────────────────

// AchievementsUnlocked tracks total achievement unlock transitions.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bottled",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// StreakCurrent tracks the current opening streak in days.
var StreakCurrent = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "bottled",
	Name:      "streak_current_days",
	Help:      "Current opening streak in days.",
})

// StreakLongest tracks the longest opening streak ever reached.
var StreakLongest = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "bottled",
	Name:      "streak_longest_days",
	Help:      "Longest opening streak in days.",
})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bottled",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})
