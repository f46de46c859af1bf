package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
	"git.home.luguber.info/inful/sportcal/internal/logfields"
	"git.home.luguber.info/inful/sportcal/internal/retry"
)

// NATSPublisher publishes exercise events to a NATS server. Publishes are
// best effort: transient failures are retried with backoff, then logged and
// dropped.
type NATSPublisher struct {
	conn   *nats.Conn
	policy retry.Policy
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("sportcal"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{conn: conn, policy: retry.DefaultPolicy()}, nil
}

// ExerciseCreated publishes a creation event.
func (p *NATSPublisher) ExerciseCreated(ctx context.Context, ex calendar.Exercise) {
	p.publish(ctx, SubjectExerciseCreated, eventFor(ex, time.Now()))
}

// ProgressUpdated publishes a progress-update event.
func (p *NATSPublisher) ProgressUpdated(ctx context.Context, ex calendar.Exercise) {
	p.publish(ctx, SubjectProgressUpdated, eventFor(ex, time.Now()))
}

func (p *NATSPublisher) publish(ctx context.Context, subject string, event ExerciseEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", logfields.Subject(subject), logfields.Error(err))
		return
	}
	err = p.policy.Do(ctx.Done(), func() error {
		return p.conn.Publish(subject, data)
	})
	if err != nil {
		slog.Warn("failed to publish event", logfields.Subject(subject), logfields.Error(err))
	}
}

// Close drains the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		slog.Warn("failed to drain NATS connection", logfields.Error(err))
	}
}
