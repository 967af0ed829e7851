// Package audit persists the activity events returned by commands.
//
// Recording is best-effort: a failed write is logged and counted, and never
// fails or rolls back the command that produced the event.
package audit

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/platform/logging"
	"github.com/jsamuelsen11/ticketcore/internal/platform/telemetry"
	"github.com/jsamuelsen11/ticketcore/internal/ports"
)

// Recorder writes events through an ActivityWriter one at a time.
type Recorder struct {
	writer   ports.ActivityWriter
	logger   *slog.Logger
	failures metric.Int64Counter
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithFailureCounter counts every event that could not be written.
func WithFailureCounter(c metric.Int64Counter) Option {
	return func(r *Recorder) {
		r.failures = c
	}
}

// NewRecorder creates a Recorder. A nil logger discards log output.
func NewRecorder(writer ports.ActivityWriter, logger *slog.Logger, opts ...Option) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Recorder{writer: writer, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record attempts every event in order and returns how many failed.
// A failure does not stop the remaining events from being written.
func (r *Recorder) Record(ctx context.Context, events []activity.NewEvent) int {
	failed := 0
	for _, e := range events {
		if _, err := r.writer.Append(ctx, e); err != nil {
			failed++
			r.logFailure(ctx, e, err)
			if r.failures != nil {
				r.failures.Add(ctx, 1, metric.WithAttributes(telemetry.AttrEventType.String(e.Type.String())))
			}
		}
	}
	return failed
}

func (r *Recorder) logFailure(ctx context.Context, e activity.NewEvent, err error) {
	attrs := []any{
		slog.String("operation", "Record"),
		slog.String("event_type", e.Type.String()),
		slog.String("org_id", e.OrgID.String()),
		slog.String("project_id", e.ProjectID.String()),
		slog.String("actor_id", e.ActorID.String()),
	}
	if e.TicketID != nil {
		attrs = append(attrs, slog.String("ticket_id", e.TicketID.String()))
	}
	attrs = append(attrs, slog.Any("error", err))
	logging.FromContextOr(ctx, r.logger).ErrorContext(ctx, "failed to record activity event", attrs...)
}
