package api

import "net/http"

// --- GET /api/stats ---

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

// --- GET /api/achievements ---

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	achievements := s.engine.Achievements()
	unlocked := 0
	for _, a := range achievements {
		if a.IsUnlocked {
			unlocked++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"achievements": achievements,
		"unlocked":     unlocked,
		"total":        len(achievements),
	})
}

// --- GET /api/streak ---

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	streak := s.engine.Streak()
	writeJSON(w, http.StatusOK, map[string]any{
		"current":          streak.Current,
		"longest":          streak.Longest,
		"last_opened_date": streak.LastOpenedDate,
		"streak_dates":     streak.StreakDates,
		"message":          s.engine.StreakMessage(),
	})
}
