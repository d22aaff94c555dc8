package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Bottle errors
	ErrBottleNotFound = errors.New("bottle not found")
	ErrBottleLocked   = errors.New("bottle is still locked")
	ErrEmptyMessage   = errors.New("bottle message must not be empty")
	ErrNegativeDelay  = errors.New("delay must be zero or more days")

	// Attachment errors
	ErrAttachmentTooLarge = errors.New("attachment exceeds the size limit")
)
