package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	rec := NewPrometheusRecorder(reg)

	rec.IncHTTPRequest("GET", "/exercises", 200)
	rec.IncHTTPRequest("GET", "/exercises", 200)
	rec.IncHTTPRequest("POST", "/exercises", 201)
	rec.IncExerciseCreated("run")
	rec.IncProgressUpdate()
	rec.ObserveRequestDuration("/exercises", 25*time.Millisecond)
	rec.ObserveSummarySize(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.httpRequests.WithLabelValues("GET", "/exercises", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.httpRequests.WithLabelValues("POST", "/exercises", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.exercisesCreated.WithLabelValues("run")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.progressUpdates))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *PrometheusRecorder
	rec.IncHTTPRequest("GET", "/health", 200)
	rec.ObserveRequestDuration("/health", time.Millisecond)
	rec.IncExerciseCreated("run")
	rec.IncProgressUpdate()
	rec.ObserveSummarySize(0)
}

func TestNoopRecorderImplementsInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncHTTPRequest("GET", "/health", 200)
	r.IncProgressUpdate()
}
