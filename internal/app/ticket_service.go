// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/ticketcore/internal/app/audit"
	appctx "github.com/jsamuelsen11/ticketcore/internal/app/context"
	"github.com/jsamuelsen11/ticketcore/internal/app/fanout"
	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/command"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
	"github.com/jsamuelsen11/ticketcore/internal/platform/logging"
	"github.com/jsamuelsen11/ticketcore/internal/platform/telemetry"
	"github.com/jsamuelsen11/ticketcore/internal/ports"
)

// Compile-time check that TicketService implements ports.TicketService.
var _ ports.TicketService = (*TicketService)(nil)

// TicketService implements ports.TicketService. Each call loads current
// state through the BoardStore, runs exactly one command, persists the
// result and then records the command's events. It contains no business
// rules of its own.
type TicketService struct {
	store    ports.BoardStore
	recorder *audit.Recorder
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *telemetry.Metrics

	now           func() time.Time
	newID         func() uuid.UUID
	retries       int
	bulkWorkers   int
	defaultFilter ticket.Filter
}

// NewTicketService creates a TicketService over store. Events are recorded
// through recorder after every successful write.
func NewTicketService(store ports.BoardStore, recorder *audit.Recorder, opts ...Option) *TicketService {
	s := &TicketService{
		store:       store,
		recorder:    recorder,
		logger:      slog.New(slog.DiscardHandler),
		tracer:      otel.Tracer(telemetry.ScopeName),
		now:         time.Now,
		newID:       uuid.New,
		retries:     DefaultConflictRetries,
		bulkWorkers: DefaultBulkWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		// Instrument creation cannot fail on the no-op provider.
		s.metrics, _ = telemetry.NewMetrics(noop.NewMeterProvider())
	}
	return s
}

// --- project-level commands ---

// CreateProject creates a project with one column per name, in order.
func (s *TicketService) CreateProject(ctx context.Context, in ports.NewProject) (*command.ProjectBoard, error) {
	var res command.Result[command.ProjectBoard]
	err := s.observe(ctx, "CreateProject", func(ctx context.Context, span trace.Span) (string, error) {
		s.log(ctx).InfoContext(ctx, "creating project",
			slog.String("org_id", in.OrgID.String()),
			slog.String("prefix", in.Prefix),
		)

		meta, err := s.meta(ctx)
		if err != nil {
			return "", err
		}

		cmdIn := command.CreateProjectInput{
			ID:     s.newID(),
			OrgID:  in.OrgID,
			Name:   in.Name,
			Prefix: in.Prefix,
		}
		for _, name := range in.Columns {
			cmdIn.Columns = append(cmdIn.Columns, command.ColumnSpec{ID: s.newID(), Name: name})
		}

		res, err = command.CreateProject(meta, cmdIn)
		if err != nil {
			return "", err
		}
		span.SetAttributes(telemetry.AttrProjectID.String(cmdIn.ID.String()))

		if err := s.store.CreateProject(ctx, res.Data.Project, res.Data.Columns); err != nil {
			return "", fmt.Errorf("creating project: %w", err)
		}
		s.record(ctx, res.Events)
		return telemetry.ResultOK, nil
	})
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// AddColumn appends a column named name to the project's board.
func (s *TicketService) AddColumn(ctx context.Context, projectID uuid.UUID, name string) (*board.Column, error) {
	var res command.Result[board.Column]
	err := s.observe(ctx, "AddColumn", func(ctx context.Context, span trace.Span) (string, error) {
		span.SetAttributes(telemetry.AttrProjectID.String(projectID.String()))
		s.log(ctx).InfoContext(ctx, "adding column", slog.String("project_id", projectID.String()))

		id := s.newID()
		return s.withRetry(ctx, "AddColumn", func() (string, error) {
			meta, p, err := s.loadProject(ctx, projectID)
			if err != nil {
				return "", err
			}
			cols, err := s.store.ListColumns(ctx, projectID)
			if err != nil {
				return "", fmt.Errorf("loading columns: %w", err)
			}

			res, err = command.AddColumn(meta, *p, cols, command.NewColumn{ID: id, Name: name})
			if err != nil {
				return "", err
			}
			if err := s.store.CreateColumn(ctx, res.Data); err != nil {
				return "", fmt.Errorf("creating column: %w", err)
			}
			s.record(ctx, res.Events)
			return telemetry.ResultOK, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// CreateTag creates a project tag named name.
func (s *TicketService) CreateTag(ctx context.Context, projectID uuid.UUID, name string) (*tag.Tag, error) {
	var res command.Result[tag.Tag]
	err := s.observe(ctx, "CreateTag", func(ctx context.Context, span trace.Span) (string, error) {
		span.SetAttributes(telemetry.AttrProjectID.String(projectID.String()))
		s.log(ctx).InfoContext(ctx, "creating tag", slog.String("project_id", projectID.String()))

		id := s.newID()
		return s.withRetry(ctx, "CreateTag", func() (string, error) {
			meta, p, err := s.loadProject(ctx, projectID)
			if err != nil {
				return "", err
			}
			tags, err := s.store.ListTags(ctx, projectID)
			if err != nil {
				return "", fmt.Errorf("loading tags: %w", err)
			}

			res, err = command.CreateTag(meta, *p, tags, command.NewTag{ID: id, Name: name})
			if err != nil {
				return "", err
			}
			if err := s.store.CreateTag(ctx, res.Data); err != nil {
				return "", fmt.Errorf("creating tag: %w", err)
			}
			s.record(ctx, res.Events)
			return telemetry.ResultOK, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// CreateTicket creates a ticket keyed with the project's next sequence
// number. A number whose ticket could not be stored is not reused.
func (s *TicketService) CreateTicket(ctx context.Context, projectID uuid.UUID, in ports.NewTicket) (*ticket.Ticket, error) {
	var res command.Result[ticket.Ticket]
	err := s.observe(ctx, "CreateTicket", func(ctx context.Context, span trace.Span) (string, error) {
		span.SetAttributes(telemetry.AttrProjectID.String(projectID.String()))
		s.log(ctx).InfoContext(ctx, "creating ticket", slog.String("project_id", projectID.String()))

		rc := appctx.New(ctx)
		id := s.newID()
		span.SetAttributes(telemetry.AttrTicketID.String(id.String()))

		attempt := 0
		return s.withRetry(ctx, "CreateTicket", func() (string, error) {
			meta, err := s.meta(ctx)
			if err != nil {
				return "", err
			}
			p, err := s.project(rc, projectID)
			if err != nil {
				return "", err
			}
			if attempt++; attempt > 1 {
				forgetBoard(rc, p)
			}
			cols, err := s.columns(rc, projectID)
			if err != nil {
				return "", err
			}
			number, err := s.store.NextTicketNumber(ctx, projectID)
			if err != nil {
				return "", fmt.Errorf("reserving ticket number: %w", err)
			}

			res, err = command.CreateTicket(meta, *p, cols, command.CreateTicketInput{
				ID:          id,
				Number:      number,
				Title:       in.Title,
				Description: in.Description,
				ColumnID:    in.ColumnID,
			})
			if err != nil {
				return "", err
			}
			if err := s.store.CreateTicket(ctx, res.Data); err != nil {
				return "", fmt.Errorf("creating ticket: %w", err)
			}
			s.record(ctx, res.Events)
			return telemetry.ResultOK, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// --- ticket commands ---

// ticketCommand runs one command against the current state of a ticket.
type ticketCommand func(rc *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error)

// UpdateTicket applies a title/description patch.
func (s *TicketService) UpdateTicket(ctx context.Context, ticketID uuid.UUID, patch ticket.Patch) (*ticket.Ticket, error) {
	return s.mutateTicket(appctx.New(ctx), "UpdateTicket", ticketID,
		func(_ *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			return command.UpdateTicket(meta, p, t, patch)
		})
}

// MoveTicket moves a ticket to columnID.
func (s *TicketService) MoveTicket(ctx context.Context, ticketID, columnID uuid.UUID) (*ticket.Ticket, error) {
	return s.moveTicket(appctx.New(ctx), ticketID, columnID)
}

func (s *TicketService) moveTicket(rc *appctx.RequestContext, ticketID, columnID uuid.UUID) (*ticket.Ticket, error) {
	return s.mutateTicket(rc, "MoveTicket", ticketID,
		func(rc *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			cols, err := s.columns(rc, p.ID)
			if err != nil {
				return command.Result[ticket.Ticket]{}, err
			}
			return command.MoveTicket(meta, p, t, cols, columnID)
		}, slog.String("column_id", columnID.String()))
}

// BulkMoveTickets runs the moves concurrently on a bounded worker pool.
// The project, its board and the actor are resolved once for the batch.
func (s *TicketService) BulkMoveTickets(ctx context.Context, moves []ports.TicketMove) *ports.BulkMoveResult {
	ctx, span := s.tracer.Start(ctx, "BulkMoveTickets")
	defer span.End()

	s.log(ctx).InfoContext(ctx, "moving tickets", slog.Int("count", len(moves)))

	rc := appctx.New(ctx)
	results := fanout.Run(rc, s.bulkWorkers, moves, func(_ context.Context, m ports.TicketMove) (*ticket.Ticket, error) {
		return s.moveTicket(rc, m.TicketID, m.ColumnID)
	})

	out := &ports.BulkMoveResult{}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkMoveError{TicketID: moves[i].TicketID, Err: r.Err})
			continue
		}
		out.Moved = append(out.Moved, *r.Value)
	}

	if len(out.Errors) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d moves failed", len(out.Errors), len(moves)))
		s.log(ctx).WarnContext(ctx, "bulk move completed with errors",
			slog.Int("moved", len(out.Moved)),
			slog.Int("failed", len(out.Errors)),
		)
	}
	return out
}

// CloseTicket closes a ticket without moving it.
func (s *TicketService) CloseTicket(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error) {
	return s.mutateTicket(appctx.New(ctx), "CloseTicket", ticketID,
		func(_ *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			return command.CloseTicket(meta, p, t)
		})
}

// ReopenTicket reopens a closed ticket.
func (s *TicketService) ReopenTicket(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error) {
	return s.mutateTicket(appctx.New(ctx), "ReopenTicket", ticketID,
		func(_ *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			return command.ReopenTicket(meta, p, t)
		})
}

// AssignTicket assigns the ticket to assigneeID, or unassigns it when
// assigneeID is nil. The assignee's membership in the project's org is
// looked up here and judged by the command.
func (s *TicketService) AssignTicket(ctx context.Context, ticketID uuid.UUID, assigneeID *uuid.UUID) (*ticket.Ticket, error) {
	return s.mutateTicket(appctx.New(ctx), "AssignTicket", ticketID,
		func(rc *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			var membership *org.Membership
			if assigneeID != nil {
				m, err := s.membership(rc, p.OrgID, *assigneeID)
				if err != nil {
					return command.Result[ticket.Ticket]{}, err
				}
				membership = m
			}
			return command.AssignTicket(meta, p, t, assigneeID, membership)
		})
}

// AddTag attaches the project tag called name.
func (s *TicketService) AddTag(ctx context.Context, ticketID uuid.UUID, name string) (*ticket.Ticket, error) {
	return s.mutateTicket(appctx.New(ctx), "AddTag", ticketID,
		func(rc *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			tags, err := s.tags(rc, p.ID)
			if err != nil {
				return command.Result[ticket.Ticket]{}, err
			}
			return command.AddTag(meta, p, t, tags, name)
		})
}

// RemoveTag detaches the project tag called name.
func (s *TicketService) RemoveTag(ctx context.Context, ticketID uuid.UUID, name string) (*ticket.Ticket, error) {
	return s.mutateTicket(appctx.New(ctx), "RemoveTag", ticketID,
		func(rc *appctx.RequestContext, meta command.Meta, p project.Project, t ticket.Ticket) (command.Result[ticket.Ticket], error) {
			tags, err := s.tags(rc, p.ID)
			if err != nil {
				return command.Result[ticket.Ticket]{}, err
			}
			return command.RemoveTag(meta, p, t, tags, name)
		})
}

// mutateTicket loads the ticket, runs cmd and writes the result back,
// conditional on the ticket not having changed since it was loaded. On a
// conflict the ticket is reloaded and cmd re-run.
func (s *TicketService) mutateTicket(rc *appctx.RequestContext, op string, ticketID uuid.UUID, cmd ticketCommand, attrs ...slog.Attr) (*ticket.Ticket, error) {
	var res command.Result[ticket.Ticket]
	err := s.observe(rc, op, func(ctx context.Context, span trace.Span) (string, error) {
		span.SetAttributes(telemetry.AttrTicketID.String(ticketID.String()))
		s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "executing ticket command",
			append([]slog.Attr{
				slog.String("operation", op),
				slog.String("ticket_id", ticketID.String()),
			}, attrs...)...)

		attempt := 0
		return s.withRetry(ctx, op, func() (string, error) {
			meta, err := s.meta(ctx)
			if err != nil {
				return "", err
			}
			current, err := s.store.GetTicket(ctx, ticketID)
			if err != nil {
				return "", fmt.Errorf("loading ticket: %w", err)
			}
			p, err := s.project(rc, current.ProjectID)
			if err != nil {
				return "", err
			}
			if attempt++; attempt > 1 {
				forgetBoard(rc, p)
			}

			res, err = cmd(rc, meta, *p, *current)
			if err != nil {
				return "", err
			}
			if res.IsNoop() {
				return telemetry.ResultNoop, nil
			}

			if err := s.store.UpdateTicket(ctx, res.Data, current.UpdatedAt); err != nil {
				return "", fmt.Errorf("updating ticket: %w", err)
			}
			s.record(ctx, res.Events)
			return telemetry.ResultOK, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// --- queries ---

// ListTickets returns the project's tickets matching filter layered over
// the default filter, most recently updated first.
func (s *TicketService) ListTickets(ctx context.Context, projectID uuid.UUID, filter ticket.Filter) ([]ticket.Ticket, error) {
	ctx, span := s.tracer.Start(ctx, "ListTickets",
		trace.WithAttributes(telemetry.AttrProjectID.String(projectID.String())))
	defer span.End()

	s.log(ctx).InfoContext(ctx, "listing tickets", slog.String("project_id", projectID.String()))

	tickets, err := s.store.ListTickets(ctx, projectID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log(ctx).ErrorContext(ctx, "failed to list tickets",
			slog.String("operation", "ListTickets"),
			slog.String("project_id", projectID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing tickets: %w", err)
	}

	matched := ticket.FilterTickets(tickets, ticket.MergeFilters(s.defaultFilter, filter))
	return ticket.SortByRecency(matched), nil
}

// --- helpers ---

// observe wraps one command execution in a span, records its metrics and
// logs its failure. fn returns the metric result label on success.
func (s *TicketService) observe(ctx context.Context, op string, fn func(context.Context, trace.Span) (string, error)) error {
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()

	start := time.Now()
	result, err := fn(ctx, span)
	if err != nil {
		result = telemetry.ResultError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logFailure(ctx, op, err)
	}
	s.metrics.RecordCommand(ctx, op, result, time.Since(start))
	return err
}

// withRetry re-runs fn while it fails with domain.ErrConflict, at most
// s.retries more times.
func (s *TicketService) withRetry(ctx context.Context, op string, fn func() (string, error)) (string, error) {
	for attempt := 1; ; attempt++ {
		result, err := fn()
		if err == nil || !errors.Is(err, domain.ErrConflict) || attempt > s.retries {
			return result, err
		}
		s.metrics.ConflictRetries.Add(ctx, 1)
		s.log(ctx).WarnContext(ctx, "write conflict, retrying",
			slog.String("operation", op),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
	}
}

// logFailure logs rejected commands at warn level and infrastructure
// failures at error level.
func (s *TicketService) logFailure(ctx context.Context, op string, err error) {
	level, msg := slog.LevelError, "command failed"
	if isRejection(err) {
		level, msg = slog.LevelWarn, "command rejected"
	}
	s.log(ctx).LogAttrs(ctx, level, msg,
		slog.String("operation", op),
		slog.Any("error", err),
	)
}

func isRejection(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrInvalidColumn,
		domain.ErrEmptyBoard,
		domain.ErrAlreadyClosed,
		domain.ErrNotClosed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// meta builds the command metadata for the actor carried by ctx.
func (s *TicketService) meta(ctx context.Context) (command.Meta, error) {
	actor, ok := appctx.ActorFrom(ctx)
	if !ok {
		return command.Meta{}, domain.NewValidationError("actor_id", domain.MsgRequired)
	}
	return command.Meta{ActorID: actor, Now: s.now().UTC()}, nil
}

func (s *TicketService) loadProject(ctx context.Context, id uuid.UUID) (command.Meta, *project.Project, error) {
	meta, err := s.meta(ctx)
	if err != nil {
		return command.Meta{}, nil, err
	}
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return command.Meta{}, nil, fmt.Errorf("loading project: %w", err)
	}
	return meta, p, nil
}

func (s *TicketService) project(rc *appctx.RequestContext, id uuid.UUID) (*project.Project, error) {
	p, err := appctx.GetOrFetch(rc, "project:"+id.String(), func(ctx context.Context) (*project.Project, error) {
		return s.store.GetProject(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return p, nil
}

func (s *TicketService) columns(rc *appctx.RequestContext, projectID uuid.UUID) ([]board.Column, error) {
	cols, err := appctx.GetOrFetch(rc, columnsKey(projectID), func(ctx context.Context) ([]board.Column, error) {
		return s.store.ListColumns(ctx, projectID)
	})
	if err != nil {
		return nil, fmt.Errorf("loading columns: %w", err)
	}
	return cols, nil
}

func (s *TicketService) tags(rc *appctx.RequestContext, projectID uuid.UUID) ([]tag.Tag, error) {
	tags, err := appctx.GetOrFetch(rc, tagsKey(projectID), func(ctx context.Context) ([]tag.Tag, error) {
		return s.store.ListTags(ctx, projectID)
	})
	if err != nil {
		return nil, fmt.Errorf("loading tags: %w", err)
	}
	return tags, nil
}

// forgetBoard drops the cached columns, tags and org memberships of p so
// that a retried command sees writes made since the first attempt.
func forgetBoard(rc *appctx.RequestContext, p *project.Project) {
	rc.Invalidate(columnsKey(p.ID))
	rc.Invalidate(tagsKey(p.ID))
	rc.InvalidatePrefix(membershipKeyPrefix(p.OrgID))
}

func columnsKey(projectID uuid.UUID) string { return "columns:" + projectID.String() }

func tagsKey(projectID uuid.UUID) string { return "tags:" + projectID.String() }

func membershipKeyPrefix(orgID uuid.UUID) string { return "membership:" + orgID.String() + ":" }

// membership returns the user's membership in the org, or nil if the user
// is not a member.
func (s *TicketService) membership(rc *appctx.RequestContext, orgID, userID uuid.UUID) (*org.Membership, error) {
	key := membershipKeyPrefix(orgID) + userID.String()
	m, err := appctx.GetOrFetch(rc, key, func(ctx context.Context) (*org.Membership, error) {
		m, err := s.store.GetMembership(ctx, orgID, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("loading membership: %w", err)
	}
	return m, nil
}

// record persists events best-effort; failures are handled by the recorder.
func (s *TicketService) record(ctx context.Context, events []activity.NewEvent) {
	failed := s.recorder.Record(ctx, events)
	s.log(ctx).DebugContext(ctx, "recorded activity",
		slog.Any("event_types", eventTypes(events)),
		slog.Int("failed", failed),
	)
}

// log returns the logger carried by ctx, falling back to the service logger.
func (s *TicketService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// eventTypes lists the types of events, for logging.
func eventTypes(events []activity.NewEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Type.String()
	}
	return out
}
