// Package metrics defines observability hooks for the HTTP surface and the
// exercise service. Implementations may forward to Prometheus or stay no-op;
// all methods must be safe on nil receivers so injection stays optional.
package metrics

import "time"

// Recorder defines the metric hooks recorded by SportCal.
type Recorder interface {
	IncHTTPRequest(method, path string, status int)
	ObserveRequestDuration(path string, d time.Duration)
	IncExerciseCreated(exerciseType string)
	IncProgressUpdate()
	ObserveSummarySize(days int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) IncHTTPRequest(string, string, int)            {}
func (NoopRecorder) ObserveRequestDuration(string, time.Duration)  {}
func (NoopRecorder) IncExerciseCreated(string)                     {}
func (NoopRecorder) IncProgressUpdate()                            {}
func (NoopRecorder) ObserveSummarySize(int)                        {}
