package app

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
	"github.com/jsamuelsen11/ticketcore/internal/platform/telemetry"
)

// Defaults applied by NewTicketService.
const (
	DefaultConflictRetries = 3
	DefaultBulkWorkers     = 4
)

// Option configures a TicketService.
type Option func(*TicketService)

// WithLogger sets the service logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *TicketService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the source of command timestamps. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *TicketService) {
		s.now = now
	}
}

// WithIDGenerator sets the source of new entity IDs. Defaults to uuid.New.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *TicketService) {
		s.newID = newID
	}
}

// WithConflictRetries sets how many times a command is re-run after its
// write lost a race with a concurrent writer. Zero disables retries.
func WithConflictRetries(n int) Option {
	return func(s *TicketService) {
		s.retries = max(n, 0)
	}
}

// WithBulkWorkers sets how many moves BulkMoveTickets runs concurrently.
func WithBulkWorkers(n int) Option {
	return func(s *TicketService) {
		s.bulkWorkers = max(n, 1)
	}
}

// WithDefaultFilter sets the filter that ListTickets layers request filters
// over.
func WithDefaultFilter(f ticket.Filter) Option {
	return func(s *TicketService) {
		s.defaultFilter = f
	}
}

// WithTracer sets the tracer that spans every command.
// Defaults to the global tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *TicketService) {
		s.tracer = tracer
	}
}

// WithMetrics sets the command metric instruments. Defaults to no-op
// instruments.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *TicketService) {
		if m != nil {
			s.metrics = m
		}
	}
}
