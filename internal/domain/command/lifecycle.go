package command

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

// CloseTicket marks a ticket closed. It fails with domain.ErrAlreadyClosed
// when the ticket is already closed.
func CloseTicket(meta Meta, p project.Project, t ticket.Ticket) (Result[ticket.Ticket], error) {
	if err := checkTicket(meta, p, t); err != nil {
		return Result[ticket.Ticket]{}, err
	}
	if t.IsClosed() {
		return Result[ticket.Ticket]{}, domain.ErrAlreadyClosed
	}

	next := t.Clone()
	next.UpdatedAt = advance(t.UpdatedAt, meta.Now)
	closedAt := next.UpdatedAt
	next.ClosedAt = &closedAt

	return Result[ticket.Ticket]{
		Data: next,
		Events: []activity.NewEvent{
			ticketEvent(meta, p, next, activity.TypeTicketClosed, map[string]any{
				"column_id": next.StatusColumnID,
			}),
		},
	}, nil
}

// ReopenTicket clears a ticket's closed state. It fails with
// domain.ErrNotClosed when the ticket is open.
func ReopenTicket(meta Meta, p project.Project, t ticket.Ticket) (Result[ticket.Ticket], error) {
	if err := checkTicket(meta, p, t); err != nil {
		return Result[ticket.Ticket]{}, err
	}
	if !t.IsClosed() {
		return Result[ticket.Ticket]{}, domain.ErrNotClosed
	}

	next := t.Clone()
	next.ClosedAt = nil
	next.UpdatedAt = advance(t.UpdatedAt, meta.Now)

	return Result[ticket.Ticket]{
		Data: next,
		Events: []activity.NewEvent{
			ticketEvent(meta, p, next, activity.TypeTicketReopened, map[string]any{
				"closed_at": *t.ClosedAt,
			}),
		},
	}, nil
}

// AssignTicket sets or clears (nil assigneeID) a ticket's assignee.
//
// The caller looks up the assignee's membership and passes it in; this layer
// only checks it. A new assignee needs a membership of that user in the
// project's org, else the command fails with a validation error on
// "assignee_id". Assigning the current assignee is a no-op.
func AssignTicket(meta Meta, p project.Project, t ticket.Ticket, assigneeID *uuid.UUID, membership *org.Membership) (Result[ticket.Ticket], error) {
	if err := checkTicket(meta, p, t); err != nil {
		return Result[ticket.Ticket]{}, err
	}
	if membership != nil {
		if err := validateAll(arg("membership", membership)); err != nil {
			return Result[ticket.Ticket]{}, err
		}
	}

	if assigneeID != nil {
		if *assigneeID == uuid.Nil {
			return Result[ticket.Ticket]{}, domain.NewValidationError("assignee_id", "must not be the nil uuid")
		}
		if !membership.Grants(p.OrgID, *assigneeID) {
			return Result[ticket.Ticket]{}, domain.NewValidationError("assignee_id", "must be a member of the project's org")
		}
	}
	if sameAssignee(t.AssigneeID, assigneeID) {
		return noop(t.Clone()), nil
	}

	next := t.Clone()
	next.AssigneeID = nil
	if assigneeID != nil {
		id := *assigneeID
		next.AssigneeID = &id
	}
	next.UpdatedAt = advance(t.UpdatedAt, meta.Now)

	return Result[ticket.Ticket]{
		Data: next,
		Events: []activity.NewEvent{
			ticketEvent(meta, p, next, activity.TypeTicketAssigned, map[string]any{
				"from": optionalID(t.AssigneeID),
				"to":   optionalID(next.AssigneeID),
			}),
		},
	}, nil
}

func sameAssignee(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// optionalID renders an optional id as a payload value: the id, or nil.
func optionalID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
