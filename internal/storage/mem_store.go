package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

// MemStore is an in-memory Store for tests and ephemeral runs.
type MemStore struct {
	mu        sync.RWMutex
	exercises map[uuid.UUID]calendar.Exercise
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{exercises: make(map[uuid.UUID]calendar.Exercise)}
}

// ListRange returns exercises with day in [from, to] inclusive, in map order.
func (s *MemStore) ListRange(_ context.Context, from, to calendar.Date) ([]calendar.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []calendar.Exercise
	for _, ex := range s.exercises {
		if ex.Day.Compare(from) >= 0 && ex.Day.Compare(to) <= 0 {
			result = append(result, ex)
		}
	}
	return result, nil
}

// Insert stores a new exercise.
func (s *MemStore) Insert(_ context.Context, ex calendar.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex.Title = truncateTitle(ex.Title)
	s.exercises[ex.ID] = ex
	return nil
}

// GetByID retrieves one exercise.
func (s *MemStore) GetByID(_ context.Context, id uuid.UUID) (calendar.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ex, ok := s.exercises[id]
	if !ok {
		return calendar.Exercise{}, ErrNotFound{ID: id}
	}
	return ex, nil
}

// UpdateProgress persists a clamped progress value.
func (s *MemStore) UpdateProgress(_ context.Context, id uuid.UUID, progress float64, updatedAt time.Time) (calendar.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.exercises[id]
	if !ok {
		return calendar.Exercise{}, ErrNotFound{ID: id}
	}
	ex.Progress = progress
	ex.UpdatedAt = updatedAt
	s.exercises[id] = ex
	return ex, nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error { return nil }
