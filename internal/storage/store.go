// Package storage persists exercises. The core domain re-sorts everything it
// reads, so implementations may return rows in any order.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

// Store is the persistence contract consumed by the exercise service.
type Store interface {
	// ListRange returns all exercises with day in [from, to] inclusive,
	// in any order.
	ListRange(ctx context.Context, from, to calendar.Date) ([]calendar.Exercise, error)

	// Insert stores a new exercise.
	Insert(ctx context.Context, ex calendar.Exercise) error

	// GetByID retrieves one exercise. Returns ErrNotFound if the id is unknown.
	GetByID(ctx context.Context, id uuid.UUID) (calendar.Exercise, error)

	// UpdateProgress persists an already-clamped progress value and the new
	// modification timestamp, returning the updated exercise.
	// Returns ErrNotFound if the id is unknown.
	UpdateProgress(ctx context.Context, id uuid.UUID, progress float64, updatedAt time.Time) (calendar.Exercise, error)

	// Close releases any resources held by the store.
	Close() error
}

// ErrNotFound is returned when an exercise doesn't exist.
type ErrNotFound struct {
	ID uuid.UUID
}

func (e ErrNotFound) Error() string {
	return "exercise not found: " + e.ID.String()
}

// IsNotFound returns true if the error is ErrNotFound.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}

// maxTitleLen mirrors the column constraint; longer titles are truncated by
// the store, not rejected by the core.
const maxTitleLen = 200

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen])
}
