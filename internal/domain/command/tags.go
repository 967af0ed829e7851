package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

// AddTag attaches the project tag named name (compared after normalization)
// to a ticket. An unknown tag fails with an error wrapping domain.ErrNotFound.
// Adding a tag the ticket already carries is a no-op.
func AddTag(meta Meta, p project.Project, t ticket.Ticket, tags []tag.Tag, name string) (Result[ticket.Ticket], error) {
	if err := checkTagged(meta, p, t, name); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	tg, ok := tag.Find(tag.ForProject(tags, p.ID), name)
	if !ok {
		return Result[ticket.Ticket]{}, fmt.Errorf("tag %q: %w", tag.Normalize(name), domain.ErrNotFound)
	}
	ids, changed := tag.AddID(t.TagIDs, tg.ID)
	if !changed {
		return noop(t.Clone()), nil
	}
	return retag(meta, p, t, ids, tg, activity.TypeTagAdded), nil
}

// RemoveTag detaches the project tag named name from a ticket. Removing an
// unknown tag, or one the ticket does not carry, is a no-op.
func RemoveTag(meta Meta, p project.Project, t ticket.Ticket, tags []tag.Tag, name string) (Result[ticket.Ticket], error) {
	if err := checkTagged(meta, p, t, name); err != nil {
		return Result[ticket.Ticket]{}, err
	}

	tg, ok := tag.Find(tag.ForProject(tags, p.ID), name)
	if !ok {
		return noop(t.Clone()), nil
	}
	ids, changed := tag.RemoveID(t.TagIDs, tg.ID)
	if !changed {
		return noop(t.Clone()), nil
	}
	return retag(meta, p, t, ids, tg, activity.TypeTagRemoved), nil
}

func checkTagged(meta Meta, p project.Project, t ticket.Ticket, name string) error {
	if err := checkTicket(meta, p, t); err != nil {
		return err
	}
	if tag.Normalize(name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}

func retag(meta Meta, p project.Project, t ticket.Ticket, ids []uuid.UUID, tg tag.Tag, typ activity.Type) Result[ticket.Ticket] {
	next := t.Clone()
	next.TagIDs = ids
	next.UpdatedAt = advance(t.UpdatedAt, meta.Now)

	return Result[ticket.Ticket]{
		Data: next,
		Events: []activity.NewEvent{
			ticketEvent(meta, p, next, typ, map[string]any{
				"tag_id": tg.ID,
				"name":   tg.Name,
			}),
		},
	}
}
