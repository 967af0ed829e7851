package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

// BoardStore defines the persistence port for projects and everything on
// their boards. Implemented by persistence adapters; called by the
// application layer.
//
// Implementations validate entities on write and return domain.ErrNotFound
// for missing records. Writes that lose a race with a concurrent writer fail
// with domain.ErrConflict so that the caller can reload and retry.
type BoardStore interface {
	// GetProject returns a single project by ID.
	GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error)

	// ListColumns returns the project's workflow columns ordered by position.
	ListColumns(ctx context.Context, projectID uuid.UUID) ([]board.Column, error)

	// ListTags returns the project's tags ordered by creation time.
	ListTags(ctx context.Context, projectID uuid.UUID) ([]tag.Tag, error)

	// GetTicket returns a single ticket by ID.
	GetTicket(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)

	// ListTickets returns every ticket of the project, in key order.
	ListTickets(ctx context.Context, projectID uuid.UUID) ([]ticket.Ticket, error)

	// GetMembership returns the membership of userID in orgID.
	// Returns domain.ErrNotFound if the user is not a member.
	GetMembership(ctx context.Context, orgID, userID uuid.UUID) (*org.Membership, error)

	// NextTicketNumber reserves and returns the project's next ticket
	// sequence number, starting at 1. Reserved numbers are never reused,
	// even when the ticket that would have used one is never created.
	NextTicketNumber(ctx context.Context, projectID uuid.UUID) (int, error)

	// CreateProject stores a new project together with its initial columns.
	// Returns domain.ErrConflict if the project ID or prefix is taken.
	CreateProject(ctx context.Context, p project.Project, cols []board.Column) error

	// CreateColumn stores a new column. Returns domain.ErrConflict if its
	// position is already taken.
	CreateColumn(ctx context.Context, c board.Column) error

	// CreateTag stores a new tag. Returns domain.ErrConflict if the project
	// already has a tag with the same name.
	CreateTag(ctx context.Context, t tag.Tag) error

	// CreateTicket stores a new ticket. Returns domain.ErrConflict if its key
	// is taken.
	CreateTicket(ctx context.Context, t ticket.Ticket) error

	// UpdateTicket replaces a stored ticket if it was last updated at
	// expectedUpdatedAt, and fails with domain.ErrConflict otherwise.
	UpdateTicket(ctx context.Context, t ticket.Ticket, expectedUpdatedAt time.Time) error
}

// ActivityWriter defines the port for the durable activity log.
type ActivityWriter interface {
	// Append persists one event and returns it with its assigned ID.
	Append(ctx context.Context, e activity.NewEvent) (activity.Event, error)
}
