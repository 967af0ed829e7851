// Package ticket defines the Ticket schema and the pure rules over ticket
// collections: the key codec, field patches, filtering and recency sorting.
package ticket

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Ticket is the mutable subject of all ticket commands.
//
// A ticket is closed exactly when ClosedAt is set. Closing does not move the
// ticket between columns.
type Ticket struct {
	ID             uuid.UUID   `json:"id" validate:"required"`
	ProjectID      uuid.UUID   `json:"project_id" validate:"required"`
	Key            string      `json:"key" validate:"required,ticket_key"`
	Title          string      `json:"title" validate:"notblank,max=200"`
	Description    string      `json:"description" validate:"max=10000"`
	StatusColumnID uuid.UUID   `json:"status_column_id" validate:"required"`
	AssigneeID     *uuid.UUID  `json:"assignee_id,omitempty"`
	TagIDs         []uuid.UUID `json:"tag_ids" validate:"unique"`
	ClosedAt       *time.Time  `json:"closed_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at" validate:"required"`
	UpdatedAt      time.Time   `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// Validate checks the Ticket schema.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Ticket) Validate() error {
	fields := domain.Violations(t)
	if t.AssigneeID != nil && *t.AssigneeID == uuid.Nil {
		fields["assignee_id"] = "must not be the nil uuid"
	}
	return domain.FieldsError(fields)
}

// IsClosed reports whether the ticket is in the closed state.
func (t *Ticket) IsClosed() bool {
	return t.ClosedAt != nil
}

// Clone returns a deep copy of t, so that a copy can be modified without
// touching the caller's slices or pointers.
func (t Ticket) Clone() Ticket {
	if t.TagIDs != nil {
		t.TagIDs = append([]uuid.UUID(nil), t.TagIDs...)
	}
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		t.AssigneeID = &id
	}
	if t.ClosedAt != nil {
		at := *t.ClosedAt
		t.ClosedAt = &at
	}
	return t
}
