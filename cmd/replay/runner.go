package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/ticketcore/internal/app/context"
	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
	"github.com/jsamuelsen11/ticketcore/internal/domain/user"
	"github.com/jsamuelsen11/ticketcore/internal/platform/logging"
	"github.com/jsamuelsen11/ticketcore/internal/ports"
)

// Seeder creates the org, users and memberships a scenario starts from.
type Seeder interface {
	AddOrg(ctx context.Context, o org.Org) error
	AddUser(ctx context.Context, u user.User) error
	AddMembership(ctx context.Context, m org.Membership) error
}

// EventSource exposes the activity recorded so far, in order.
type EventSource interface {
	Events() []activity.Event
}

// ErrStepFailed is returned by Run when a step fails and the runner stops on
// errors.
var ErrStepFailed = errors.New("scenario step failed")

// Runner drives a TicketService through a scenario and writes every recorded
// event and listing to its output as JSON lines.
type Runner struct {
	svc         ports.TicketService
	seeder      Seeder
	events      EventSource
	logger      *slog.Logger
	stopOnError bool
	now         func() time.Time
	newID       func() uuid.UUID
	enc         *json.Encoder
}

// RunnerConfig holds the collaborators of a Runner.
type RunnerConfig struct {
	Service     ports.TicketService
	Seeder      Seeder
	Events      EventSource
	Output      io.Writer
	Logger      *slog.Logger
	StopOnError bool
	Now         func() time.Time
	NewID       func() uuid.UUID
}

// NewRunner creates a Runner.
func NewRunner(cfg RunnerConfig) *Runner {
	r := &Runner{
		svc:         cfg.Service,
		seeder:      cfg.Seeder,
		events:      cfg.Events,
		logger:      cfg.Logger,
		stopOnError: cfg.StopOnError,
		now:         cfg.Now,
		newID:       cfg.NewID,
		enc:         json.NewEncoder(cfg.Output),
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = uuid.New
	}
	return r
}

// Summary counts the outcome of a run.
type Summary struct {
	Steps  int `json:"steps"`
	Failed int `json:"failed"`
	Events int `json:"events"`
}

// record is one output line.
type record struct {
	Step    int              `json:"step"`
	Op      string           `json:"op"`
	Event   *activity.Event  `json:"event,omitempty"`
	Tickets *[]ticket.Ticket `json:"tickets,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// state resolves scenario refs to the IDs the service assigned.
type state struct {
	orgID    uuid.UUID
	users    map[string]uuid.UUID
	projects map[string]uuid.UUID
	columns  map[uuid.UUID][]board.Column
	tags     map[uuid.UUID][]tag.Tag
	tickets  map[string]uuid.UUID
	// ticketProject maps ticket IDs to their project.
	ticketProject map[uuid.UUID]uuid.UUID
}

// Run seeds the scenario and runs its steps in order. Step failures are
// logged and written to the output; unless the runner stops on errors, the
// remaining steps still run.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (Summary, error) {
	ctx = logging.WithLogger(ctx, r.logger)

	st, err := r.seed(ctx, sc)
	if err != nil {
		return Summary{}, fmt.Errorf("seeding scenario: %w", err)
	}

	var sum Summary
	seen := len(r.events.Events())
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Steps++

		actor := sc.Actor
		if step.Actor != "" {
			actor = step.Actor
		}
		stepCtx := logging.With(appctx.WithActor(ctx, st.users[actor]),
			slog.Int("step", i),
			slog.String("op", step.Op),
		)

		listing, err := r.runStep(stepCtx, st, step)

		events := r.events.Events()
		for j := seen; j < len(events); j++ {
			r.emit(record{Step: i, Op: step.Op, Event: &events[j]})
		}
		sum.Events += len(events) - seen
		seen = len(events)

		if listing != nil {
			r.emit(record{Step: i, Op: step.Op, Tickets: &listing})
		}

		if err != nil {
			sum.Failed++
			logging.FromContext(stepCtx).WarnContext(stepCtx, "step failed", slog.Any("error", err))
			r.emit(record{Step: i, Op: step.Op, Error: err.Error()})
			if r.stopOnError {
				return sum, fmt.Errorf("step %d (%s): %w: %w", i, step.Op, ErrStepFailed, err)
			}
		}
	}

	return sum, nil
}

func (r *Runner) seed(ctx context.Context, sc *Scenario) (*state, error) {
	now := r.now().UTC()
	st := &state{
		orgID:    r.newID(),
		users:    make(map[string]uuid.UUID, len(sc.Users)),
		projects: make(map[string]uuid.UUID),
		columns:  make(map[uuid.UUID][]board.Column),
		tags:     make(map[uuid.UUID][]tag.Tag),
		tickets:  make(map[string]uuid.UUID),

		ticketProject: make(map[uuid.UUID]uuid.UUID),
	}

	if err := r.seeder.AddOrg(ctx, org.Org{ID: st.orgID, Name: sc.Org.Name, CreatedAt: now, UpdatedAt: now}); err != nil {
		return nil, fmt.Errorf("org: %w", err)
	}

	for _, su := range sc.Users {
		u := user.User{ID: r.newID(), Email: su.Email, DisplayName: su.DisplayName, CreatedAt: now}
		if err := r.seeder.AddUser(ctx, u); err != nil {
			return nil, fmt.Errorf("user %s: %w", su.Ref, err)
		}
		st.users[su.Ref] = u.ID

		if su.Role == "" {
			continue
		}
		m := org.Membership{ID: r.newID(), OrgID: st.orgID, UserID: u.ID, Role: org.Role(su.Role), CreatedAt: now}
		if err := r.seeder.AddMembership(ctx, m); err != nil {
			return nil, fmt.Errorf("membership of %s: %w", su.Ref, err)
		}
	}

	logging.FromContext(ctx).InfoContext(ctx, "seeded scenario",
		slog.String("org_id", st.orgID.String()),
		slog.Int("users", len(sc.Users)),
	)
	return st, nil
}

// runStep performs one step and returns the listing of list_tickets steps.
func (r *Runner) runStep(ctx context.Context, st *state, step Step) ([]ticket.Ticket, error) {
	switch step.Op {
	case opCreateProject:
		pb, err := r.svc.CreateProject(ctx, ports.NewProject{
			OrgID:   st.orgID,
			Name:    step.Name,
			Prefix:  step.Prefix,
			Columns: step.Columns,
		})
		if err != nil {
			return nil, err
		}
		st.projects[step.Ref] = pb.Project.ID
		st.columns[pb.Project.ID] = pb.Columns
		return nil, nil

	case opAddColumn:
		projectID, err := st.project(step.Project)
		if err != nil {
			return nil, err
		}
		col, err := r.svc.AddColumn(ctx, projectID, step.Name)
		if err != nil {
			return nil, err
		}
		st.columns[projectID] = append(st.columns[projectID], *col)
		return nil, nil

	case opCreateTag:
		projectID, err := st.project(step.Project)
		if err != nil {
			return nil, err
		}
		tg, err := r.svc.CreateTag(ctx, projectID, step.Name)
		if err != nil {
			return nil, err
		}
		st.tags[projectID] = append(st.tags[projectID], *tg)
		return nil, nil

	case opCreateTicket:
		projectID, err := st.project(step.Project)
		if err != nil {
			return nil, err
		}
		in := ports.NewTicket{Title: step.Title, Description: step.Description}
		if step.Column != "" {
			colID, err := st.column(projectID, step.Column)
			if err != nil {
				return nil, err
			}
			in.ColumnID = &colID
		}
		t, err := r.svc.CreateTicket(ctx, projectID, in)
		if err != nil {
			return nil, err
		}
		st.tickets[step.Ref] = t.ID
		st.ticketProject[t.ID] = projectID
		return nil, nil

	case opUpdateTicket:
		ticketID, err := st.ticket(step.Ticket)
		if err != nil {
			return nil, err
		}
		patch, err := ticket.PatchFromMap(step.Patch)
		if err != nil {
			return nil, err
		}
		_, err = r.svc.UpdateTicket(ctx, ticketID, patch)
		return nil, err

	case opMoveTicket:
		ticketID, colID, err := st.moveTarget(step.Ticket, step.Column)
		if err != nil {
			return nil, err
		}
		_, err = r.svc.MoveTicket(ctx, ticketID, colID)
		return nil, err

	case opBulkMove:
		moves := make([]ports.TicketMove, 0, len(step.Tickets))
		for _, ref := range step.Tickets {
			ticketID, colID, err := st.moveTarget(ref, step.Column)
			if err != nil {
				return nil, err
			}
			moves = append(moves, ports.TicketMove{TicketID: ticketID, ColumnID: colID})
		}
		res := r.svc.BulkMoveTickets(ctx, moves)
		errs := make([]error, 0, len(res.Errors))
		for _, e := range res.Errors {
			errs = append(errs, fmt.Errorf("ticket %s: %w", e.TicketID, e.Err))
		}
		return nil, errors.Join(errs...)

	case opCloseTicket, opReopenTicket:
		ticketID, err := st.ticket(step.Ticket)
		if err != nil {
			return nil, err
		}
		if step.Op == opCloseTicket {
			_, err = r.svc.CloseTicket(ctx, ticketID)
		} else {
			_, err = r.svc.ReopenTicket(ctx, ticketID)
		}
		return nil, err

	case opAssignTicket:
		ticketID, err := st.ticket(step.Ticket)
		if err != nil {
			return nil, err
		}
		var assignee *uuid.UUID
		if step.Assignee != "" {
			id, err := st.user(step.Assignee)
			if err != nil {
				return nil, err
			}
			assignee = &id
		}
		_, err = r.svc.AssignTicket(ctx, ticketID, assignee)
		return nil, err

	case opAddTag, opRemoveTag:
		ticketID, err := st.ticket(step.Ticket)
		if err != nil {
			return nil, err
		}
		if step.Op == opAddTag {
			_, err = r.svc.AddTag(ctx, ticketID, step.Tag)
		} else {
			_, err = r.svc.RemoveTag(ctx, ticketID, step.Tag)
		}
		return nil, err

	case opListTickets:
		projectID, err := st.project(step.Project)
		if err != nil {
			return nil, err
		}
		filter, err := st.filter(projectID, step.Filter)
		if err != nil {
			return nil, err
		}
		tickets, err := r.svc.ListTickets(ctx, projectID, filter)
		if err != nil {
			return nil, err
		}
		if tickets == nil {
			tickets = []ticket.Ticket{}
		}
		return tickets, nil

	default:
		return nil, fmt.Errorf("unknown op %q", step.Op)
	}
}

func (r *Runner) emit(rec record) {
	if err := r.enc.Encode(rec); err != nil {
		r.logger.Error("failed to write output", slog.Any("error", err))
	}
}

func (st *state) project(ref string) (uuid.UUID, error) {
	id, ok := st.projects[ref]
	if !ok {
		return uuid.Nil, fmt.Errorf("project %q: %w", ref, domain.ErrNotFound)
	}
	return id, nil
}

func (st *state) ticket(ref string) (uuid.UUID, error) {
	id, ok := st.tickets[ref]
	if !ok {
		return uuid.Nil, fmt.Errorf("ticket %q: %w", ref, domain.ErrNotFound)
	}
	return id, nil
}

func (st *state) user(ref string) (uuid.UUID, error) {
	id, ok := st.users[ref]
	if !ok {
		return uuid.Nil, fmt.Errorf("user %q: %w", ref, domain.ErrNotFound)
	}
	return id, nil
}

func (st *state) column(projectID uuid.UUID, name string) (uuid.UUID, error) {
	for _, c := range st.columns[projectID] {
		if c.Name == name {
			return c.ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("column %q: %w", name, domain.ErrInvalidColumn)
}

func (st *state) tag(projectID uuid.UUID, name string) (uuid.UUID, error) {
	t, ok := tag.Find(st.tags[projectID], name)
	if !ok {
		return uuid.Nil, fmt.Errorf("tag %q: %w", name, domain.ErrNotFound)
	}
	return t.ID, nil
}

// moveTarget resolves a ticket ref and a column name of the ticket's project.
func (st *state) moveTarget(ticketRef, column string) (uuid.UUID, uuid.UUID, error) {
	ticketID, err := st.ticket(ticketRef)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	colID, err := st.column(st.ticketProject[ticketID], column)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return ticketID, colID, nil
}

func (st *state) filter(projectID uuid.UUID, sf StepFilter) (ticket.Filter, error) {
	f := ticket.Filter{Closed: sf.Closed, Query: sf.Query}
	if sf.Column != "" {
		id, err := st.column(projectID, sf.Column)
		if err != nil {
			return ticket.Filter{}, err
		}
		f.ColumnID = &id
	}
	if sf.Assignee != "" {
		id, err := st.user(sf.Assignee)
		if err != nil {
			return ticket.Filter{}, err
		}
		f.AssigneeID = &id
	}
	for _, name := range sf.Tags {
		id, err := st.tag(projectID, name)
		if err != nil {
			return ticket.Filter{}, err
		}
		f.TagIDs = append(f.TagIDs, id)
	}
	return f, nil
}
