package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bottled-app/bottled/internal/domain"
)

// ─── Bottle Repository ──────────────────────────────────────────────────────

// InsertBottle stores a bottle and its attachments.
func (d *DB) InsertBottle(b domain.Bottle) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO bottles (id, title, message, created_at, unlock_date, is_unlocked, delay_days)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Message, b.CreatedAt.Unix(), b.UnlockDate.Unix(), b.IsUnlocked, b.DelayDays,
	)
	if err != nil {
		return fmt.Errorf("insert bottle: %w", err)
	}

	for _, a := range b.Attachments {
		_, err = tx.Exec(
			`INSERT INTO attachments (id, bottle_id, name, type, data, size)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, b.ID, a.Name, a.Type, a.Data, a.Size,
		)
		if err != nil {
			return fmt.Errorf("insert attachment %s: %w", a.Name, err)
		}
	}

	return tx.Commit()
}

// GetBottle retrieves a single bottle, attachments included.
func (d *DB) GetBottle(id string) (*domain.Bottle, error) {
	row := d.db.QueryRow(
		`SELECT id, title, message, created_at, unlock_date, is_unlocked, delay_days
		 FROM bottles WHERE id = ?`, id,
	)
	b, err := scanBottle(row)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBottleNotFound
	}

	attachments, err := d.listAttachments(b.ID)
	if err != nil {
		return nil, err
	}
	b.Attachments = attachments
	return b, nil
}

// ListBottles returns all bottles, newest first, attachments included.
func (d *DB) ListBottles() ([]domain.Bottle, error) {
	rows, err := d.db.Query(
		`SELECT id, title, message, created_at, unlock_date, is_unlocked, delay_days
		 FROM bottles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bottles []domain.Bottle
	for rows.Next() {
		b, err := scanBottle(rows)
		if err != nil {
			return nil, err
		}
		bottles = append(bottles, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bottles {
		attachments, err := d.listAttachments(bottles[i].ID)
		if err != nil {
			return nil, err
		}
		bottles[i].Attachments = attachments
	}
	return bottles, nil
}

// DeleteBottle removes a bottle; attachments cascade.
func (d *DB) DeleteBottle(id string) error {
	result, err := d.db.Exec(`DELETE FROM bottles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrBottleNotFound
	}
	return nil
}

// SetBottleUnlocked flips a bottle's unlocked flag.
func (d *DB) SetBottleUnlocked(id string, unlocked bool) error {
	result, err := d.db.Exec(`UPDATE bottles SET is_unlocked = ? WHERE id = ?`, unlocked, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrBottleNotFound
	}
	return nil
}

// listAttachments returns a bottle's attachments in insertion order.
func (d *DB) listAttachments(bottleID string) ([]domain.MediaAttachment, error) {
	rows, err := d.db.Query(
		`SELECT id, name, type, data, size FROM attachments WHERE bottle_id = ? ORDER BY rowid`,
		bottleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []domain.MediaAttachment
	for rows.Next() {
		var a domain.MediaAttachment
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Data, &a.Size); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBottle(s scanner) (*domain.Bottle, error) {
	var b domain.Bottle
	var createdAt, unlockDate int64

	err := s.Scan(&b.ID, &b.Title, &b.Message, &createdAt, &unlockDate, &b.IsUnlocked, &b.DelayDays)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}

	b.CreatedAt = time.Unix(createdAt, 0)
	b.UnlockDate = time.Unix(unlockDate, 0)
	return &b, nil
}
