// Package events publishes exercise lifecycle notifications for downstream
// consumers (calendar clients, notification bots). Publishing is best-effort:
// a failed publish is logged and never fails the originating request.
package events

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

// Subjects for published events.
const (
	SubjectExerciseCreated = "sportcal.exercise.created"
	SubjectProgressUpdated = "sportcal.exercise.progress"
)

// ExerciseEvent is the JSON payload published on both subjects.
type ExerciseEvent struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Target   float64   `json:"target"`
	Progress float64   `json:"progress"`
	At       time.Time `json:"at"`
}

// Publisher emits exercise lifecycle events.
type Publisher interface {
	ExerciseCreated(ctx context.Context, ex calendar.Exercise)
	ProgressUpdated(ctx context.Context, ex calendar.Exercise)
	Close()
}

// NoopPublisher is used when no event transport is configured.
type NoopPublisher struct{}

func (NoopPublisher) ExerciseCreated(context.Context, calendar.Exercise) {}
func (NoopPublisher) ProgressUpdated(context.Context, calendar.Exercise) {}
func (NoopPublisher) Close()                                             {}

func eventFor(ex calendar.Exercise, at time.Time) ExerciseEvent {
	return ExerciseEvent{
		ID:       ex.ID.String(),
		Date:     ex.Day.String(),
		Type:     string(ex.Type),
		Title:    ex.Title,
		Target:   ex.Target,
		Progress: ex.Progress,
		At:       at.UTC(),
	}
}
