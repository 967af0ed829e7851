package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/command"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

// TicketService defines the service port for board and ticket operations.
// Implemented by the application layer; called by inbound adapters.
//
// Every mutating method acts on behalf of the actor carried by ctx (see
// appctx.WithActor) and returns the resulting entity. Commands that change
// nothing succeed and return the unchanged entity.
type TicketService interface {
	// CreateProject creates a project with its initial columns.
	// Returns domain.ErrEmptyBoard if no columns are given.
	CreateProject(ctx context.Context, in NewProject) (*command.ProjectBoard, error)

	// AddColumn appends a column to the project's board.
	AddColumn(ctx context.Context, projectID uuid.UUID, name string) (*board.Column, error)

	// CreateTag creates a project tag. Returns domain.ErrValidation if a tag
	// with the same normalized name exists.
	CreateTag(ctx context.Context, projectID uuid.UUID, name string) (*tag.Tag, error)

	// CreateTicket creates a ticket with the project's next key.
	// Returns domain.ErrInvalidColumn for a column of another project.
	CreateTicket(ctx context.Context, projectID uuid.UUID, in NewTicket) (*ticket.Ticket, error)

	// UpdateTicket applies a title/description patch.
	UpdateTicket(ctx context.Context, ticketID uuid.UUID, patch ticket.Patch) (*ticket.Ticket, error)

	// MoveTicket moves a ticket to another column of its project.
	// Returns domain.ErrInvalidColumn otherwise.
	MoveTicket(ctx context.Context, ticketID, columnID uuid.UUID) (*ticket.Ticket, error)

	// BulkMoveTickets moves several tickets concurrently. Uses partial
	// success semantics: each move succeeds or fails independently and
	// failures are collected in BulkMoveResult.Errors.
	BulkMoveTickets(ctx context.Context, moves []TicketMove) *BulkMoveResult

	// CloseTicket closes a ticket. Returns domain.ErrAlreadyClosed if it is
	// closed.
	CloseTicket(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error)

	// ReopenTicket reopens a ticket. Returns domain.ErrNotClosed if it is
	// open.
	ReopenTicket(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error)

	// AssignTicket sets the assignee, or clears it when assigneeID is nil.
	// Returns domain.ErrValidation if the assignee is not a member of the
	// project's org.
	AssignTicket(ctx context.Context, ticketID uuid.UUID, assigneeID *uuid.UUID) (*ticket.Ticket, error)

	// AddTag attaches a project tag by name. Returns domain.ErrNotFound for
	// an unknown tag.
	AddTag(ctx context.Context, ticketID uuid.UUID, name string) (*ticket.Ticket, error)

	// RemoveTag detaches a project tag by name.
	RemoveTag(ctx context.Context, ticketID uuid.UUID, name string) (*ticket.Ticket, error)

	// ListTickets returns the project's tickets matching filter layered over
	// the configured default filter, most recently updated first.
	ListTickets(ctx context.Context, projectID uuid.UUID, filter ticket.Filter) ([]ticket.Ticket, error)
}

// NewProject is the input of TicketService.CreateProject. Identifiers are
// generated by the service.
type NewProject struct {
	OrgID   uuid.UUID
	Name    string
	Prefix  string
	Columns []string
}

// NewTicket is the input of TicketService.CreateTicket. A nil ColumnID
// places the ticket in the project's initial column.
type NewTicket struct {
	Title       string
	Description string
	ColumnID    *uuid.UUID
}

// TicketMove pairs a ticket with its target column for bulk moves.
type TicketMove struct {
	TicketID uuid.UUID
	ColumnID uuid.UUID
}

// BulkMoveError records a single failed move within a bulk operation.
type BulkMoveError struct {
	TicketID uuid.UUID
	Err      error
}

// BulkMoveResult holds the outcomes of a bulk move.
// Moved contains successfully moved tickets; Errors contains per-item failures.
type BulkMoveResult struct {
	Moved  []ticket.Ticket
	Errors []BulkMoveError
}
