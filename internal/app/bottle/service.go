// Package bottle implements the bottle store: CRUD plus the time-gated
// unlock rules. The store owns bottle records; the gamification engine
// only ever sees read-only snapshots of them.
package bottle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bottled-app/bottled/internal/domain"
	"github.com/bottled-app/bottled/internal/infra/sqlite"
)

// Service manages bottle records.
type Service struct {
	db *sqlite.DB
}

// NewService creates a bottle service.
func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// CreateInput is everything needed to seal a new bottle.
type CreateInput struct {
	Title       string
	Message     string
	DelayDays   int
	Attachments []domain.MediaAttachment
}

// Create seals a new bottle. The unlock date is now plus the delay;
// invariant: unlock date >= creation date.
func (s *Service) Create(in CreateInput, now time.Time) (domain.Bottle, error) {
	if strings.TrimSpace(in.Message) == "" {
		return domain.Bottle{}, domain.ErrEmptyMessage
	}
	if in.DelayDays < 0 {
		return domain.Bottle{}, domain.ErrNegativeDelay
	}

	b := domain.Bottle{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Message:     in.Message,
		Attachments: in.Attachments,
		CreatedAt:   now,
		UnlockDate:  now.AddDate(0, 0, in.DelayDays),
		DelayDays:   in.DelayDays,
	}
	if err := s.db.InsertBottle(b); err != nil {
		return domain.Bottle{}, fmt.Errorf("store bottle: %w", err)
	}
	return b, nil
}

// Get retrieves a bottle by id.
func (s *Service) Get(id string) (domain.Bottle, error) {
	b, err := s.db.GetBottle(id)
	if err != nil {
		return domain.Bottle{}, err
	}
	return *b, nil
}

// List returns all bottles, newest first.
func (s *Service) List() ([]domain.Bottle, error) {
	return s.db.ListBottles()
}

// Delete removes a bottle permanently.
func (s *Service) Delete(id string) error {
	return s.db.DeleteBottle(id)
}

// Open returns a bottle for reading. A bottle whose unlock date has not
// passed and that was never unlocked early yields ErrBottleLocked.
// Opening a naturally-due bottle flips its unlocked flag.
func (s *Service) Open(id string, now time.Time) (domain.Bottle, error) {
	b, err := s.Get(id)
	if err != nil {
		return domain.Bottle{}, err
	}
	if !b.Readable(now) {
		return domain.Bottle{}, domain.ErrBottleLocked
	}
	if !b.IsUnlocked {
		if err := s.db.SetBottleUnlocked(id, true); err != nil {
			return domain.Bottle{}, err
		}
		b.IsUnlocked = true
	}
	return b, nil
}

// Unlock force-unlocks a bottle before its unlock date. The caller treats
// this exactly like a natural open for stats and achievements.
func (s *Service) Unlock(id string) (domain.Bottle, error) {
	b, err := s.Get(id)
	if err != nil {
		return domain.Bottle{}, err
	}
	if !b.IsUnlocked {
		if err := s.db.SetBottleUnlocked(id, true); err != nil {
			return domain.Bottle{}, err
		}
		b.IsUnlocked = true
	}
	return b, nil
}

// Refresh flips the unlocked flag on every bottle whose unlock date has
// passed. Returns how many bottles changed state.
func (s *Service) Refresh(now time.Time) (int, error) {
	bottles, err := s.db.ListBottles()
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, b := range bottles {
		if !b.IsUnlocked && b.Due(now) {
			if err := s.db.SetBottleUnlocked(b.ID, true); err != nil {
				return changed, err
			}
			changed++
		}
	}
	return changed, nil
}
