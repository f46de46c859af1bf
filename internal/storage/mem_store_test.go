package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

func TestMemStoreBehavesLikeStore(t *testing.T) {
	store := NewMemStore()
	defer func() { _ = store.Close() }()

	ctx := t.Context()
	ex := newTestExercise("2025-03-01")
	if err := store.Insert(ctx, ex); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	from, _ := calendar.ParseDate("2025-03-01")
	to, _ := calendar.ParseDate("2025-03-01")
	got, err := store.ListRange(ctx, from, to)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(got))
	}

	updated, err := store.UpdateProgress(ctx, ex.ID, 4, time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}
	if updated.Progress != 4 {
		t.Errorf("expected progress 4, got %v", updated.Progress)
	}

	if _, err := store.GetByID(ctx, uuid.New()); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
