package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
	"git.home.luguber.info/inful/sportcal/internal/i18n"
	"git.home.luguber.info/inful/sportcal/internal/storage"
)

// fixedClock pins "today" to 2025-01-02 so status resolution is reproducible.
var fixedClock = func() time.Time {
	return time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, locale string) *ExerciseService {
	t.Helper()
	return New(storage.NewMemStore(), i18n.NewTitler(locale), Options{Now: fixedClock})
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService(t, "en")

	ex, err := svc.Create(t.Context(), calendar.CreateRequest{
		Date:   "2025-01-05",
		Type:   "Run",
		Target: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, calendar.TypeRun, ex.Type)
	assert.Equal(t, "run training", ex.Title)
	assert.Equal(t, "2025-01-05", ex.Day.String())
	// Progress is never settable at creation.
	assert.Equal(t, 0.0, ex.Progress)
	assert.Equal(t, ex.CreatedAt, ex.UpdatedAt)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", ex.ID.String())
}

func TestCreateLocalizedDefaultTitle(t *testing.T) {
	svc := newTestService(t, "ru")

	ex, err := svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-01-05", Type: "swim", Target: 1})
	require.NoError(t, err)
	assert.Equal(t, "swim тренировка", ex.Title)
}

func TestCreateKeepsExplicitTitle(t *testing.T) {
	svc := newTestService(t, "ru")

	ex, err := svc.Create(t.Context(), calendar.CreateRequest{
		Date: "2025-01-05", Type: "bike", Title: " hill repeats ", Target: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "hill repeats", ex.Title)
}

func TestCreateRejectsInvalidPayloads(t *testing.T) {
	svc := newTestService(t, "en")

	_, err := svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-02-30", Type: "run", Target: 5})
	require.Error(t, err)
	assert.Equal(t, calendar.CodeInvalidFormat, ferrors.GetCode(err))

	_, err = svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-01-05", Type: "surfing", Target: 5})
	require.Error(t, err)
	assert.Equal(t, calendar.CodeUnsupportedType, ferrors.GetCode(err))
}

func TestUpdateProgressClampsToTarget(t *testing.T) {
	svc := newTestService(t, "en")
	ex, err := svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-01-05", Type: "run", Target: 10})
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(t.Context(), ex.ID.String(), ex.Target+100)
	require.NoError(t, err)
	// Overflow is reduced silently, never rejected.
	assert.Equal(t, ex.Target, updated.Progress)
}

func TestUpdateProgressIsIdempotent(t *testing.T) {
	svc := newTestService(t, "en")
	ex, err := svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-01-05", Type: "run", Target: 10})
	require.NoError(t, err)

	first, err := svc.UpdateProgress(t.Context(), ex.ID.String(), 6)
	require.NoError(t, err)
	second, err := svc.UpdateProgress(t.Context(), ex.ID.String(), 6)
	require.NoError(t, err)

	assert.Equal(t, first.Progress, second.Progress)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestUpdateProgressErrors(t *testing.T) {
	svc := newTestService(t, "en")

	_, err := svc.UpdateProgress(t.Context(), "3b1f8f64-0000-0000-0000-000000000000", -1)
	require.Error(t, err)
	assert.Equal(t, calendar.CodeInvalidProgress, ferrors.GetCode(err))

	_, err = svc.UpdateProgress(t.Context(), "3b1f8f64-0000-0000-0000-000000000000", 1)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))

	// An id that is not a UUID cannot name any exercise.
	_, err = svc.UpdateProgress(t.Context(), "not-a-uuid", 1)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestListValidatesAndOrders(t *testing.T) {
	svc := newTestService(t, "en")

	_, err := svc.List(t.Context(), "2025-01-31", "2025-01-01")
	require.Error(t, err)
	assert.Equal(t, calendar.CodeInvalidRange, ferrors.GetCode(err))

	_, err = svc.List(t.Context(), "bogus", "2025-01-01")
	require.Error(t, err)
	assert.Equal(t, calendar.CodeInvalidFormat, ferrors.GetCode(err))

	for _, day := range []string{"2025-01-07", "2025-01-05", "2025-01-06"} {
		_, err := svc.Create(t.Context(), calendar.CreateRequest{Date: day, Type: "run", Target: 5})
		require.NoError(t, err)
	}

	exercises, err := svc.List(t.Context(), "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	for i := 1; i < len(exercises); i++ {
		assert.True(t, exercises[i-1].Day.Before(exercises[i].Day) || exercises[i-1].Day == exercises[i].Day)
	}
	assert.Equal(t, "2025-01-05", exercises[0].Day.String())
}

func TestSummarizeScenarioDoneOverridesLateness(t *testing.T) {
	// One exercise on 2025-01-01, target 10, progress 10, today 2025-01-02:
	// the day is in the past, but the exercise was finished, so it is Done.
	svc := newTestService(t, "en")

	ex, err := svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-01-01", Type: "run", Target: 10})
	require.NoError(t, err)
	_, err = svc.UpdateProgress(t.Context(), ex.ID.String(), 10)
	require.NoError(t, err)

	summaries, err := svc.Summarize(t.Context(), "2025-01-01", "2025-01-01")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	sum := summaries[0]
	assert.Equal(t, "2025-01-01", sum.Day.String())
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Done)
	assert.Equal(t, 0, sum.Planned)
	assert.Equal(t, 0, sum.InProgress)
	assert.Equal(t, 0, sum.Skipped)
}

func TestSummarizeScenarioPartialPastIsSkipped(t *testing.T) {
	svc := newTestService(t, "en")

	ex, err := svc.Create(t.Context(), calendar.CreateRequest{Date: "2025-01-01", Type: "run", Target: 10})
	require.NoError(t, err)
	_, err = svc.UpdateProgress(t.Context(), ex.ID.String(), 3)
	require.NoError(t, err)

	summaries, err := svc.Summarize(t.Context(), "2025-01-01", "2025-01-01")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Skipped)
	assert.Equal(t, 0, summaries[0].Done)
}
