// Package domain holds the core bottled types.
// Domain types are pure — no infrastructure dependency.
package domain

import (
	"fmt"
	"math"
	"time"
)

// MediaAttachment is a file sealed inside a bottle. The content is stored
// inline as a base64 data URL so a bottle is self-contained.
type MediaAttachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
	Size int64  `json:"size"`
}

// Bottle is a time-delayed message. The message stays sealed until
// UnlockDate passes, or until the user unlocks it early on purpose.
type Bottle struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Attachments []MediaAttachment `json:"attachments"`
	CreatedAt   time.Time         `json:"created_at"`
	UnlockDate  time.Time         `json:"unlock_date"`
	IsUnlocked  bool              `json:"is_unlocked"`
	DelayDays   int               `json:"delay_days"`
}

// Due reports whether the unlock date has passed at the given time.
func (b Bottle) Due(now time.Time) bool {
	return !now.Before(b.UnlockDate)
}

// Readable reports whether the message may be shown at the given time.
func (b Bottle) Readable(now time.Time) bool {
	return b.IsUnlocked || b.Due(now)
}

// HumanSize formats a byte count as "1.50 MB" style output.
func HumanSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB", "TB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	if i == 0 {
		return fmt.Sprintf("%d %s", bytes, units[i])
	}
	return fmt.Sprintf("%.2f %s", value, units[i])
}
