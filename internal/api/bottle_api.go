package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/domain"
)

// --- GET /api/bottles ---

func (s *Server) handleListBottles(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	// Flip bottles whose unlock date passed since the last request.
	if _, err := s.bottles.Refresh(now); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	bottles, err := s.bottles.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]map[string]any, len(bottles))
	for i, b := range bottles {
		out[i] = bottleView(b, now)
	}
	writeJSON(w, http.StatusOK, map[string]any{"bottles": out})
}

// --- POST /api/bottles ---

type createBottleRequest struct {
	Title       string                   `json:"title"`
	Message     string                   `json:"message"`
	DelayDays   int                      `json:"delay_days"`
	Attachments []domain.MediaAttachment `json:"attachments"`
}

func (s *Server) handleCreateBottle(w http.ResponseWriter, r *http.Request) {
	var req createBottleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	b, err := s.bottles.Create(bottle.CreateInput{
		Title:       req.Title,
		Message:     req.Message,
		DelayDays:   req.DelayDays,
		Attachments: req.Attachments,
	}, now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	unlocked := s.engine.BottleCreated(b, now)
	writeJSON(w, http.StatusCreated, map[string]any{
		"bottle":         bottleView(b, now),
		"newly_unlocked": unlocked,
	})
}

// --- GET /api/bottles/{id} ---

func (s *Server) handleGetBottle(w http.ResponseWriter, r *http.Request) {
	b, err := s.bottles.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeBottleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bottleView(b, time.Now()))
}

// --- DELETE /api/bottles/{id} ---

func (s *Server) handleDeleteBottle(w http.ResponseWriter, r *http.Request) {
	if err := s.bottles.Delete(chi.URLParam(r, "id")); err != nil {
		writeBottleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- POST /api/bottles/{id}/open ---

func (s *Server) handleOpenBottle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	b, err := s.bottles.Open(chi.URLParam(r, "id"), now)
	if err != nil {
		writeBottleError(w, err)
		return
	}

	unlocked := s.engine.BottleOpened(b, now)
	writeJSON(w, http.StatusOK, map[string]any{
		"bottle":         bottleView(b, now),
		"newly_unlocked": unlocked,
		"streak_message": s.engine.StreakMessage(),
	})
}

// --- POST /api/bottles/{id}/unlock (explicit early unlock) ---

func (s *Server) handleUnlockBottle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	b, err := s.bottles.Unlock(chi.URLParam(r, "id"))
	if err != nil {
		writeBottleError(w, err)
		return
	}

	// Early unlock counts as an opening event.
	unlocked := s.engine.BottleOpened(b, now)
	writeJSON(w, http.StatusOK, map[string]any{
		"bottle":         bottleView(b, now),
		"newly_unlocked": unlocked,
		"streak_message": s.engine.StreakMessage(),
	})
}

// bottleView renders a bottle for the API, hiding the message and
// attachments while the bottle is sealed.
func bottleView(b domain.Bottle, now time.Time) map[string]any {
	readable := b.Readable(now)
	view := map[string]any{
		"id":          b.ID,
		"title":       b.Title,
		"created_at":  b.CreatedAt,
		"unlock_date": b.UnlockDate,
		"is_unlocked": b.IsUnlocked,
		"delay_days":  b.DelayDays,
		"readable":    readable,
		"attachments": len(b.Attachments),
	}
	if readable {
		view["message"] = b.Message
		view["media"] = b.Attachments
	}
	return view
}

func writeBottleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBottleNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBottleLocked):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
