package metrics

import (
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	httpRequests     *prom.CounterVec
	requestDuration  *prom.HistogramVec
	exercisesCreated *prom.CounterVec
	progressUpdates  prom.Counter
	summarySize      prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.httpRequests = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sportcal",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path, and status code",
		}, []string{"method", "path", "status"})
		pr.requestDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sportcal",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request handling duration",
			Buckets:   prom.DefBuckets,
		}, []string{"path"})
		pr.exercisesCreated = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sportcal",
			Name:      "exercises_created_total",
			Help:      "Exercises created by activity type",
		}, []string{"type"})
		pr.progressUpdates = prom.NewCounter(prom.CounterOpts{
			Namespace: "sportcal",
			Name:      "progress_updates_total",
			Help:      "Progress update operations applied",
		})
		pr.summarySize = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sportcal",
			Name:      "summary_days",
			Help:      "Number of distinct days per daily-summary response",
			Buckets:   []float64{1, 7, 14, 31, 92, 366},
		})
		reg.MustRegister(pr.httpRequests, pr.requestDuration, pr.exercisesCreated, pr.progressUpdates, pr.summarySize)
	})
	return pr
}

func (p *PrometheusRecorder) IncHTTPRequest(method, path string, status int) {
	if p == nil || p.httpRequests == nil {
		return
	}
	p.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func (p *PrometheusRecorder) ObserveRequestDuration(path string, d time.Duration) {
	if p == nil || p.requestDuration == nil {
		return
	}
	p.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncExerciseCreated(exerciseType string) {
	if p == nil || p.exercisesCreated == nil {
		return
	}
	p.exercisesCreated.WithLabelValues(exerciseType).Inc()
}

func (p *PrometheusRecorder) IncProgressUpdate() {
	if p == nil || p.progressUpdates == nil {
		return
	}
	p.progressUpdates.Inc()
}

func (p *PrometheusRecorder) ObserveSummarySize(days int) {
	if p == nil || p.summarySize == nil {
		return
	}
	p.summarySize.Observe(float64(days))
}
