package memstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/ticketcore/internal/ports"
)

var (
	_ ports.HealthChecker = (*Store)(nil)
	_ ports.HealthChecker = (*ActivityLog)(nil)
)

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memstore" }

// HealthCheck verifies referential integrity: every ticket is stored under
// its project and key, and references a column and tags of that project.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var errs []error
	for id, t := range s.tickets {
		if err := s.checkRefsLocked(&t); err != nil {
			errs = append(errs, fmt.Errorf("ticket %s: %w", t.Key, err))
		}
		if s.keys[t.Key] != id {
			errs = append(errs, fmt.Errorf("ticket %s: key index points elsewhere", t.Key))
		}
	}
	return errors.Join(errs...)
}

// Name implements ports.HealthChecker.
func (l *ActivityLog) Name() string { return "activity-log" }

// HealthCheck re-validates every logged event.
func (l *ActivityLog) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var errs []error
	for i := range l.events {
		if err := l.events[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", l.events[i].ID, err))
		}
	}
	return errors.Join(errs...)
}
