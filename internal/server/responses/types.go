// Package responses defines the JSON response shapes of the SportCal API.
package responses

import (
	"time"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

// ExerciseResponse is the wire representation of one exercise.
type ExerciseResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
}

// NewExerciseResponse converts a domain exercise into its wire form.
func NewExerciseResponse(ex calendar.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:       ex.ID.String(),
		Date:     ex.Day.String(),
		Type:     string(ex.Type),
		Title:    ex.Title,
		Target:   ex.Target,
		Progress: ex.Progress,
	}
}

// DailySummaryResponse is the wire representation of one day's rollup.
type DailySummaryResponse struct {
	Date                string `json:"date"`
	TotalExercises      int    `json:"totalExercises"`
	PlannedExercises    int    `json:"plannedExercises"`
	InProgressExercises int    `json:"inProgressExercises"`
	DoneExercises       int    `json:"doneExercises"`
	SkippedExercises    int    `json:"skippedExercises"`
}

// NewDailySummaryResponse converts a domain summary into its wire form.
func NewDailySummaryResponse(s calendar.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:                s.Day.String(),
		TotalExercises:      s.Total,
		PlannedExercises:    s.Planned,
		InProgressExercises: s.InProgress,
		DoneExercises:       s.Done,
		SkippedExercises:    s.Skipped,
	}
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// StatusResponse is the admin status payload.
type StatusResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime_seconds"`
	StartTime time.Time `json:"start_time"`
}
