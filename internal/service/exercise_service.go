// Package service coordinates validation, persistence, aggregation, and
// event publishing for exercise operations.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
	"git.home.luguber.info/inful/sportcal/internal/events"
	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
	"git.home.luguber.info/inful/sportcal/internal/i18n"
	"git.home.luguber.info/inful/sportcal/internal/logfields"
	"git.home.luguber.info/inful/sportcal/internal/metrics"
	"git.home.luguber.info/inful/sportcal/internal/storage"
)

// ExerciseService implements the exercise operations behind the HTTP surface.
// All methods are safe to call concurrently; the service keeps no mutable
// state of its own.
type ExerciseService struct {
	store    storage.Store
	titler   *i18n.Titler
	pub      events.Publisher
	recorder metrics.Recorder
	now      func() time.Time
}

// Options configures optional collaborators of the service.
type Options struct {
	Publisher events.Publisher
	Recorder  metrics.Recorder
	// Now supplies the reference clock. Defaults to time.Now. Tests inject a
	// fixed clock so status resolution is reproducible.
	Now func() time.Time
}

// New creates an ExerciseService on top of a store.
func New(store storage.Store, titler *i18n.Titler, opts Options) *ExerciseService {
	if opts.Publisher == nil {
		opts.Publisher = events.NoopPublisher{}
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ExerciseService{
		store:    store,
		titler:   titler,
		pub:      opts.Publisher,
		recorder: opts.Recorder,
		now:      opts.Now,
	}
}

// List returns the exercises scheduled in [from, to], ordered by day, then
// creation time, then id.
func (s *ExerciseService) List(ctx context.Context, from, to string) ([]calendar.Exercise, error) {
	fromDate, toDate, err := calendar.ValidateRange(from, to)
	if err != nil {
		return nil, err
	}

	exercises, err := s.store.ListRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryStorage, "failed to list exercises").Build()
	}
	calendar.SortExercises(exercises)
	return exercises, nil
}

// Summarize returns per-day status rollups for [from, to]. The reference
// date is captured once so every exercise in the batch is classified against
// the same "today".
func (s *ExerciseService) Summarize(ctx context.Context, from, to string) ([]calendar.DailySummary, error) {
	fromDate, toDate, err := calendar.ValidateRange(from, to)
	if err != nil {
		return nil, err
	}

	exercises, err := s.store.ListRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryStorage, "failed to load exercises for summary").Build()
	}

	today := calendar.DateOf(s.now())
	summaries := calendar.Summarize(exercises, today)
	s.recorder.ObserveSummarySize(len(summaries))
	return summaries, nil
}

// Create validates the payload and persists a new exercise. Progress always
// starts at zero regardless of the caller's payload; blank titles receive the
// localized "<type> training" default.
func (s *ExerciseService) Create(ctx context.Context, req calendar.CreateRequest) (calendar.Exercise, error) {
	validated, err := calendar.ValidateCreate(req)
	if err != nil {
		return calendar.Exercise{}, err
	}

	title := validated.Title
	if title == "" {
		title = s.titler.DefaultTitle(validated.Type)
	}

	now := s.now().UTC()
	ex := calendar.Exercise{
		ID:        uuid.New(),
		Day:       validated.Day,
		Type:      validated.Type,
		Title:     title,
		Target:    validated.Target,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Insert(ctx, ex); err != nil {
		return calendar.Exercise{}, ferrors.WrapError(err, ferrors.CategoryStorage, "failed to store exercise").Build()
	}

	slog.Info("exercise created",
		logfields.ExerciseID(ex.ID.String()),
		logfields.Day(ex.Day.String()),
		logfields.ExerciseType(string(ex.Type)))
	s.recorder.IncExerciseCreated(string(ex.Type))
	s.pub.ExerciseCreated(ctx, ex)
	return ex, nil
}

// UpdateProgress applies a progress value to an existing exercise. Values
// above the target are clamped silently, never rejected; negative values fail
// validation. Applying the same clamped value twice only moves UpdatedAt.
func (s *ExerciseService) UpdateProgress(ctx context.Context, rawID string, progress float64) (calendar.Exercise, error) {
	if err := calendar.ValidateProgress(progress); err != nil {
		return calendar.Exercise{}, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		// An unparseable id cannot name any exercise.
		return calendar.Exercise{}, ferrors.NotFoundError("exercise not found").
			WithContext("id", rawID).
			Build()
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return calendar.Exercise{}, s.mapStoreError(err, rawID)
	}

	clamped := calendar.ClampProgress(progress, existing.Target)
	updated, err := s.store.UpdateProgress(ctx, id, clamped, s.now().UTC())
	if err != nil {
		return calendar.Exercise{}, s.mapStoreError(err, rawID)
	}

	slog.Info("exercise progress updated",
		logfields.ExerciseID(updated.ID.String()),
		slog.Float64("progress", updated.Progress))
	s.recorder.IncProgressUpdate()
	s.pub.ProgressUpdated(ctx, updated)
	return updated, nil
}

func (s *ExerciseService) mapStoreError(err error, rawID string) error {
	if storage.IsNotFound(err) {
		return ferrors.NotFoundError("exercise not found").
			WithContext("id", rawID).
			Build()
	}
	return ferrors.WrapError(err, ferrors.CategoryStorage, "failed to update exercise").Build()
}
