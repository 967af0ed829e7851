package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/ports"
)

// Compile-time check that ActivityLog implements ports.ActivityWriter.
var _ ports.ActivityWriter = (*ActivityLog)(nil)

// ActivityLog is an append-only in-memory activity log.
// It is safe for concurrent use.
type ActivityLog struct {
	mu     sync.RWMutex
	events []activity.Event
	newID  func() uuid.UUID
}

// LogOption configures an ActivityLog.
type LogOption func(*ActivityLog)

// WithIDGenerator sets the function used to assign event IDs.
// Defaults to uuid.New.
func WithIDGenerator(fn func() uuid.UUID) LogOption {
	return func(l *ActivityLog) {
		l.newID = fn
	}
}

// NewActivityLog returns an empty ActivityLog.
func NewActivityLog(opts ...LogOption) *ActivityLog {
	l := &ActivityLog{newID: uuid.New}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append validates e, assigns it an ID and appends it to the log.
func (l *ActivityLog) Append(ctx context.Context, e activity.NewEvent) (activity.Event, error) {
	if err := ctx.Err(); err != nil {
		return activity.Event{}, err
	}

	ev := activity.Event{ID: l.newID(), NewEvent: e}
	if err := ev.Validate(); err != nil {
		return activity.Event{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
	return ev, nil
}

// Events returns the logged events in append order.
func (l *ActivityLog) Events() []activity.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.events)
}
