// Package activity defines the audit events produced by commands.
//
// A NewEvent has no identity; a writer assigns the ID when it appends the
// event to the durable log, yielding an Event.
package activity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Type names the command that produced an event.
type Type string

const (
	TypeProjectCreated Type = "project_created"
	TypeColumnAdded    Type = "column_added"
	TypeTagCreated     Type = "tag_created"
	TypeTicketCreated  Type = "ticket_created"
	TypeTicketUpdated  Type = "ticket_updated"
	TypeTicketMoved    Type = "ticket_moved"
	TypeTicketClosed   Type = "ticket_closed"
	TypeTicketReopened Type = "ticket_reopened"
	TypeTicketAssigned Type = "ticket_assigned"
	TypeTagAdded       Type = "tag_added"
	TypeTagRemoved     Type = "tag_removed"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeProjectCreated, TypeColumnAdded, TypeTagCreated,
		TypeTicketCreated, TypeTicketUpdated, TypeTicketMoved,
		TypeTicketClosed, TypeTicketReopened, TypeTicketAssigned,
		TypeTagAdded, TypeTagRemoved:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// TicketScoped reports whether events of this type always refer to a ticket.
func (t Type) TicketScoped() bool {
	switch t {
	case TypeProjectCreated, TypeColumnAdded, TypeTagCreated:
		return false
	default:
		return true
	}
}

// NewEvent is an event emitted by a command and not yet persisted.
type NewEvent struct {
	OrgID     uuid.UUID  `json:"org_id" validate:"required"`
	ProjectID uuid.UUID  `json:"project_id" validate:"required"`
	TicketID  *uuid.UUID `json:"ticket_id,omitempty"`
	ActorID   uuid.UUID  `json:"actor_id" validate:"required"`
	Type      Type       `json:"type"`
	// Payload is a JSON-compatible summary of what changed.
	Payload    map[string]any `json:"payload"`
	OccurredAt time.Time      `json:"occurred_at" validate:"required"`
}

// Validate checks the NewEvent schema. Ticket-scoped types require a
// TicketID; project-level types must not carry one.
func (e *NewEvent) Validate() error {
	return domain.FieldsError(e.violations())
}

func (e *NewEvent) violations() map[string]string {
	fields := domain.Violations(e)
	switch {
	case !e.Type.IsValid():
		fields["type"] = fmt.Sprintf("invalid: %q", e.Type)
	case e.Type.TicketScoped() && (e.TicketID == nil || *e.TicketID == uuid.Nil):
		fields["ticket_id"] = domain.MsgRequired
	case !e.Type.TicketScoped() && e.TicketID != nil:
		fields["ticket_id"] = "must be empty for " + e.Type.String()
	}
	return fields
}

// Event is a persisted activity event.
type Event struct {
	ID uuid.UUID `json:"id"`
	NewEvent
}

// Validate checks the Event schema.
func (e *Event) Validate() error {
	fields := e.violations()
	if e.ID == uuid.Nil {
		fields["id"] = domain.MsgRequired
	}
	return domain.FieldsError(fields)
}
