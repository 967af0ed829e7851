// Package command implements every state-changing operation of the ticket
// domain as a pure function.
//
// A command validates its inputs, applies the business rules and returns the
// next entity state together with the events describing what happened. It
// never mutates its arguments, performs no I/O and takes identifiers and the
// current time from its caller. An empty event list means the command was a
// no-op.
package command

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

// Result bundles a command's resulting state with the events it produced.
type Result[T any] struct {
	Data   T                   `json:"data"`
	Events []activity.NewEvent `json:"events"`
}

// IsNoop reports whether the command changed nothing.
func (r Result[T]) IsNoop() bool {
	return len(r.Events) == 0
}

func noop[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Meta carries the caller-supplied facts every command needs: who acts, and
// the clock value to stamp new state and events with.
type Meta struct {
	ActorID uuid.UUID `json:"actor_id" validate:"required"`
	Now     time.Time `json:"now" validate:"required"`
}

// Validate checks the Meta schema.
func (m *Meta) Validate() error {
	return domain.Validate(m)
}

// advance returns the next updated_at for an entity last updated at prev.
// updated_at must strictly increase on every change, so a clock that has not
// moved past prev yields prev plus one microsecond.
func advance(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

type validatable interface {
	Validate() error
}

type named struct {
	prefix string
	v      validatable
}

func arg(prefix string, v validatable) named {
	return named{prefix: prefix, v: v}
}

// validateAll validates every argument and merges the field errors into one
// *domain.ValidationError, prefixing each path with its argument's name. An
// empty prefix keeps the paths as they are.
func validateAll(args ...named) error {
	fields := make(map[string]string)
	for _, a := range args {
		err := a.v.Validate()
		if err == nil {
			continue
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for path, msg := range verr.Fields {
			if a.prefix != "" {
				path = a.prefix + "." + path
			}
			fields[path] = msg
		}
	}
	return domain.FieldsError(fields)
}

// checkTicket validates the common inputs of a ticket mutation and that the
// ticket belongs to the project.
func checkTicket(meta Meta, p project.Project, t ticket.Ticket) error {
	if err := validateAll(arg("meta", &meta), arg("project", &p), arg("ticket", &t)); err != nil {
		return err
	}
	if t.ProjectID != p.ID {
		return domain.NewValidationError("ticket.project_id", "must match the project id")
	}
	return nil
}

func projectEvent(meta Meta, p project.Project, typ activity.Type, payload map[string]any) activity.NewEvent {
	return activity.NewEvent{
		OrgID:      p.OrgID,
		ProjectID:  p.ID,
		ActorID:    meta.ActorID,
		Type:       typ,
		Payload:    payload,
		OccurredAt: meta.Now,
	}
}

func ticketEvent(meta Meta, p project.Project, t ticket.Ticket, typ activity.Type, payload map[string]any) activity.NewEvent {
	e := projectEvent(meta, p, typ, payload)
	id := t.ID
	e.TicketID = &id
	return e
}
