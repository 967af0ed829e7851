package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

// CreateTicketInput is the input of CreateTicket. Number is the project's
// next ticket sequence number, reserved by the caller.
type CreateTicketInput struct {
	ID          uuid.UUID  `json:"id" validate:"required"`
	Number      int        `json:"number" validate:"gte=1"`
	Title       string     `json:"title" validate:"notblank,max=200"`
	Description string     `json:"description" validate:"max=10000"`
	ColumnID    *uuid.UUID `json:"column_id,omitempty"`
}

// Validate checks the CreateTicketInput schema.
func (in *CreateTicketInput) Validate() error {
	fields := domain.Violations(in)
	if in.ColumnID != nil && *in.ColumnID == uuid.Nil {
		fields["column_id"] = "must not be the nil uuid"
	}
	return domain.FieldsError(fields)
}

// CreateTicket creates a ticket in the project's initial column, or in
// in.ColumnID when set. An explicit column must exist in cols and belong to
// the project, else domain.ErrInvalidColumn; a project with no columns fails
// with domain.ErrEmptyBoard.
func CreateTicket(meta Meta, p project.Project, cols []board.Column, in CreateTicketInput) (Result[ticket.Ticket], error) {
	if err := validateAll(arg("meta", &meta), arg("project", &p), arg("", &in)); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	var column board.Column
	if in.ColumnID != nil {
		c, ok := board.Find(cols, *in.ColumnID)
		if !ok || c.ProjectID != p.ID {
			return Result[ticket.Ticket]{}, fmt.Errorf("column %s: %w", *in.ColumnID, domain.ErrInvalidColumn)
		}
		column = c
	} else {
		c, err := board.Initial(board.ForProject(cols, p.ID))
		if err != nil {
			return Result[ticket.Ticket]{}, fmt.Errorf("project %s: %w", p.ID, err)
		}
		column = c
	}

	t := ticket.Ticket{
		ID:             in.ID,
		ProjectID:      p.ID,
		Key:            ticket.GenerateKey(p.Prefix, in.Number),
		Title:          in.Title,
		Description:    in.Description,
		StatusColumnID: column.ID,
		TagIDs:         []uuid.UUID{},
		CreatedAt:      meta.Now,
		UpdatedAt:      meta.Now,
	}
	if err := t.Validate(); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	return Result[ticket.Ticket]{
		Data: t,
		Events: []activity.NewEvent{
			ticketEvent(meta, p, t, activity.TypeTicketCreated, map[string]any{
				"key":       t.Key,
				"title":     t.Title,
				"column_id": t.StatusColumnID,
			}),
		},
	}, nil
}

// UpdateTicket applies a title/description patch. Fields set to their
// current value do not count as changes; a patch with no changes is a no-op.
// When the description changes, the ticket keys it mentions are recorded in
// the event payload under "mentions".
func UpdateTicket(meta Meta, p project.Project, t ticket.Ticket, patch ticket.Patch) (Result[ticket.Ticket], error) {
	if err := checkTicket(meta, p, t); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	next, changes := patch.Apply(t)
	if len(changes) == 0 {
		return noop(t.Clone()), nil
	}
	next.UpdatedAt = advance(t.UpdatedAt, meta.Now)
	if err := next.Validate(); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	payload := make(map[string]any, len(changes)+1)
	for field, c := range changes {
		payload[field] = c
	}
	if _, ok := changes["description"]; ok {
		if mentions := mentionedKeys(next); len(mentions) > 0 {
			payload["mentions"] = mentions
		}
	}

	return Result[ticket.Ticket]{
		Data:   next,
		Events: []activity.NewEvent{ticketEvent(meta, p, next, activity.TypeTicketUpdated, payload)},
	}, nil
}

// mentionedKeys lists the keys referenced in t's description, excluding t
// itself.
func mentionedKeys(t ticket.Ticket) []string {
	var keys []string
	for _, k := range ticket.FindKeyMentions(t.Description) {
		if s := k.String(); s != t.Key {
			keys = append(keys, s)
		}
	}
	return keys
}

// MoveTicket moves a ticket to the target column. The target must exist in
// cols and belong to the ticket's project, else domain.ErrInvalidColumn.
// Moving to the current column is a no-op. Closed tickets can be moved; the
// closed state is unaffected.
func MoveTicket(meta Meta, p project.Project, t ticket.Ticket, cols []board.Column, targetID uuid.UUID) (Result[ticket.Ticket], error) {
	if err := checkTicket(meta, p, t); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	target, ok := board.Find(cols, targetID)
	if !ok || target.ProjectID != t.ProjectID {
		return Result[ticket.Ticket]{}, fmt.Errorf("column %s: %w", targetID, domain.ErrInvalidColumn)
	}
	if target.ID == t.StatusColumnID {
		return noop(t.Clone()), nil
	}

	next := t.Clone()
	next.StatusColumnID = target.ID
	next.UpdatedAt = advance(t.UpdatedAt, meta.Now)

	return Result[ticket.Ticket]{
		Data: next,
		Events: []activity.NewEvent{
			ticketEvent(meta, p, next, activity.TypeTicketMoved, map[string]any{
				"from": t.StatusColumnID,
				"to":   target.ID,
			}),
		},
	}, nil
}
