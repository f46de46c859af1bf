// Package daemon schedules background jobs for the SportCal service.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
	"git.home.luguber.info/inful/sportcal/internal/logfields"
	"git.home.luguber.info/inful/sportcal/internal/service"
)

// SnapshotScheduler logs today's summary counts once per day at a configured
// time. It is purely observational; nothing is persisted.
type SnapshotScheduler struct {
	scheduler gocron.Scheduler
	svc       *service.ExerciseService
}

// NewSnapshotScheduler creates the scheduler and registers the daily job at
// hour:minute local time.
func NewSnapshotScheduler(svc *service.ExerciseService, hour, minute int) (*SnapshotScheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	ss := &SnapshotScheduler{scheduler: s, svc: svc}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(ss.logTodaySnapshot),
		gocron.WithName("daily-snapshot"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to schedule snapshot job: %w", err)
	}
	return ss, nil
}

// Start begins the scheduler.
func (s *SnapshotScheduler) Start() {
	slog.Info("Starting snapshot scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *SnapshotScheduler) Stop() error {
	slog.Info("Stopping snapshot scheduler")
	return s.scheduler.Shutdown()
}

func (s *SnapshotScheduler) logTodaySnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	today := calendar.DateOf(time.Now()).String()
	summaries, err := s.svc.Summarize(ctx, today, today)
	if err != nil {
		slog.Warn("daily snapshot failed", logfields.Error(err))
		return
	}
	if len(summaries) == 0 {
		slog.Info("daily snapshot", logfields.Day(today), logfields.Count(0))
		return
	}
	sum := summaries[0]
	slog.Info("daily snapshot",
		logfields.Day(today),
		logfields.Count(sum.Total),
		slog.Int("planned", sum.Planned),
		slog.Int("in_progress", sum.InProgress),
		slog.Int("done", sum.Done),
		slog.Int("skipped", sum.Skipped))
}
