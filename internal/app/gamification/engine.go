// Package gamification implements the bottled gamification engine.
// Raw user actions (bottle created, bottle opened) are folded into three
// persisted aggregates — stats, achievements, streak — with achievement
// unlocks decided against the fully-updated snapshot, never mid-update.
package gamification

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bottled-app/bottled/internal/domain"
	"github.com/bottled-app/bottled/internal/infra/metrics"
)

// nightOwlEndHour closes the night-owl window: creations at local hour
// [0, 6) qualify.
const nightOwlEndHour = 6

// earlyBirdWindow is how close (before or after) to the unlock date an
// open must land to count as early-bird.
const earlyBirdWindow = time.Hour

// Store persists the stats/achievements/streak triple. The engine treats
// it as fire-and-forget: in-memory state advances first and a failed save
// is logged, not surfaced.
type Store interface {
	LoadGamification() (domain.UserStats, []domain.Achievement, domain.StreakData, error)
	SaveGamification(stats domain.UserStats, achievements []domain.Achievement, streak domain.StreakData) error
}

// Snapshot is one immutable view of the three aggregates. Transitions
// build a new Snapshot rather than editing in place, so readers never see
// a half-updated state.
type Snapshot struct {
	Stats        domain.UserStats
	Achievements []domain.Achievement
	Streak       domain.StreakData
}

// Engine folds bottle events into gamification state. The mutex
// serializes transitions, so every event runs to completion — including
// its save — before the next one reads the snapshot; the wall clock is
// passed in as a value and read exactly once per transition.
type Engine struct {
	mu    sync.RWMutex
	store Store
	state Snapshot
}

// NewEngine creates an engine seeded from the store. A load failure falls
// back to a fresh catalog and zeroed stats — the engine itself has no
// error path.
func NewEngine(store Store) *Engine {
	e := &Engine{store: store}
	stats, achievements, streak, err := store.LoadGamification()
	if err != nil {
		log.Printf("[gamification] load state: %v (starting fresh)", err)
	}
	e.state = Snapshot{
		Stats:        stats,
		Achievements: reconcile(achievements),
		Streak:       streak,
	}
	return e
}

// reconcile overlays persisted unlock state onto the fixed catalog, keyed
// by id. All 18 achievements exist afterwards even when the persisted
// record is absent, partial, or predates newer catalog entries.
func reconcile(persisted []domain.Achievement) []domain.Achievement {
	catalog := Catalog()
	byID := make(map[string]domain.Achievement, len(persisted))
	for _, a := range persisted {
		byID[a.ID] = a
	}
	for i := range catalog {
		if p, ok := byID[catalog[i].ID]; ok {
			catalog[i].IsUnlocked = p.IsUnlocked
			catalog[i].UnlockedAt = p.UnlockedAt
			catalog[i].Progress = p.Progress
		}
	}
	return catalog
}

// ─── Transitions ────────────────────────────────────────────────────────────

// BottleCreated records a creation event and returns achievements that
// unlocked because of it, in unlock order.
func (e *Engine) BottleCreated(b domain.Bottle, now time.Time) []domain.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, unlocked := applyCreated(e.state, b, now)
	metrics.BottlesCreated.Inc()
	metrics.AttachmentsStored.Add(float64(len(b.Attachments)))
	e.commit(next, unlocked)
	return unlocked
}

// BottleOpened records an opening event (natural or early unlock alike)
// and returns newly unlocked achievements. Opens are deliberately not
// de-duplicated by bottle id.
func (e *Engine) BottleOpened(b domain.Bottle, now time.Time) []domain.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, unlocked := applyOpened(e.state, b, now)
	metrics.BottlesOpened.Inc()
	e.commit(next, unlocked)
	return unlocked
}

// commit advances in-memory state, updates gauges, and persists.
// The in-memory snapshot stays authoritative for the session when the
// write fails; the next transition writes the full triple again.
// Caller holds e.mu.
func (e *Engine) commit(next Snapshot, unlocked []domain.Achievement) {
	e.state = next
	metrics.StreakCurrent.Set(float64(next.Streak.Current))
	metrics.StreakLongest.Set(float64(next.Streak.Longest))
	if len(unlocked) > 0 {
		metrics.AchievementsUnlocked.Add(float64(len(unlocked)))
	}
	if err := e.store.SaveGamification(next.Stats, next.Achievements, next.Streak); err != nil {
		log.Printf("[gamification] save state: %v", err)
	}
}

// applyCreated is the pure creation transition.
func applyCreated(s Snapshot, b domain.Bottle, now time.Time) (Snapshot, []domain.Achievement) {
	stats := s.Stats
	stats.BottlesCreated++
	if stats.FirstBottleDate == nil {
		t := now
		stats.FirstBottleDate = &t
	}
	stats.TotalAttachments += len(b.Attachments)
	if n := len(b.Message); n > stats.AverageMessageLength {
		stats.AverageMessageLength = n
	}

	achievements := cloneAchievements(s.Achievements)
	var unlocked []domain.Achievement
	if now.Hour() < nightOwlEndHour {
		unlocked = unlockNow(achievements, "night-owl", now, unlocked)
	}
	unlocked = scan(achievements, stats, s.Streak, now, unlocked)

	return Snapshot{Stats: stats, Achievements: achievements, Streak: s.Streak}, unlocked
}

// applyOpened is the pure opening transition.
func applyOpened(s Snapshot, b domain.Bottle, now time.Time) (Snapshot, []domain.Achievement) {
	waitDays := DaysBetween(b.CreatedAt, now)

	stats := s.Stats
	stats.BottlesOpened++
	stats.TotalDaysWaited += waitDays
	if waitDays > stats.LongestWait {
		stats.LongestWait = waitDays
	}
	t := now
	stats.LastOpenedDate = &t

	streak := advanceStreak(s.Streak, now)
	stats.CurrentStreak = streak.Current
	stats.LongestStreak = streak.Longest

	achievements := cloneAchievements(s.Achievements)
	var unlocked []domain.Achievement
	if d := now.Sub(b.UnlockDate); d >= -earlyBirdWindow && d <= earlyBirdWindow {
		unlocked = unlockNow(achievements, "early-bird", now, unlocked)
	}
	unlocked = scan(achievements, stats, streak, now, unlocked)

	return Snapshot{Stats: stats, Achievements: achievements, Streak: streak}, unlocked
}

// advanceStreak applies one opening event to the streak state machine.
// A second open on an already-recorded day is a no-op; Longest is a
// ratchet, Current resets to 1 on a broken chain.
func advanceStreak(s domain.StreakData, now time.Time) domain.StreakData {
	day := DayKey(now)
	for _, d := range s.StreakDates {
		if d == day {
			return s
		}
	}

	next := s
	next.StreakDates = append(append([]string(nil), s.StreakDates...), day)
	switch {
	case s.LastOpenedDate == nil:
		next.Current = 1
	case IsConsecutiveDay(DayKey(*s.LastOpenedDate), day):
		next.Current = s.Current + 1
	default:
		next.Current = 1
	}
	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	t := now
	next.LastOpenedDate = &t
	return next
}

// scan is the generic threshold pass over every locked achievement.
// Progress is refreshed even when the threshold is not crossed, so UI
// progress bars stay current. Achievements without a progress mapping are
// skipped (see progressFns).
func scan(achievements []domain.Achievement, stats domain.UserStats, streak domain.StreakData, now time.Time, out []domain.Achievement) []domain.Achievement {
	for i := range achievements {
		a := &achievements[i]
		if a.IsUnlocked {
			continue
		}
		fn, ok := progressFns[a.ID]
		if !ok {
			continue
		}
		p := fn(stats, streak, now)
		if p >= a.MaxProgress {
			a.IsUnlocked = true
			t := now
			a.UnlockedAt = &t
			a.Progress = a.MaxProgress
			out = append(out, *a)
		} else {
			a.Progress = p
		}
	}
	return out
}

// unlockNow force-unlocks a single achievement outside the generic scan.
// Already-unlocked achievements are left untouched, so an achievement can
// never unlock twice.
func unlockNow(achievements []domain.Achievement, id string, now time.Time, out []domain.Achievement) []domain.Achievement {
	for i := range achievements {
		a := &achievements[i]
		if a.ID != id {
			continue
		}
		if a.IsUnlocked {
			return out
		}
		a.IsUnlocked = true
		t := now
		a.UnlockedAt = &t
		a.Progress = a.MaxProgress
		return append(out, *a)
	}
	return out
}

func cloneAchievements(in []domain.Achievement) []domain.Achievement {
	out := make([]domain.Achievement, len(in))
	copy(out, in)
	return out
}

// ─── Read-only views ────────────────────────────────────────────────────────

// Stats returns the current stats aggregate.
func (e *Engine) Stats() domain.UserStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Stats
}

// Achievements returns a copy of all 18 achievements in catalog order.
func (e *Engine) Achievements() []domain.Achievement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return cloneAchievements(e.state.Achievements)
}

// Streak returns a copy of the streak aggregate.
func (e *Engine) Streak() domain.StreakData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.state.Streak
	s.StreakDates = append([]string(nil), s.StreakDates...)
	return s
}

// StreakMessage renders the human-readable streak status for the current
// streak length.
func (e *Engine) StreakMessage() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return StreakMessage(e.state.Streak.Current)
}

// StreakMessage maps a streak length to its status message.
func StreakMessage(current int) string {
	switch {
	case current == 0:
		return "Start your streak by opening a bottle!"
	case current == 1:
		return "Great start! Keep it going!"
	case current < 7:
		return fmt.Sprintf("%d day streak! You're building momentum!", current)
	case current < 30:
		return fmt.Sprintf("%d day streak! You're on fire! 🔥", current)
	default:
		return fmt.Sprintf("%d day streak! You're a legend! 👑", current)
	}
}
