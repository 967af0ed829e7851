package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/ticketcore/internal/adapters/memstore"
	"github.com/jsamuelsen11/ticketcore/internal/app/audit"
	appctx "github.com/jsamuelsen11/ticketcore/internal/app/context"
	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
	"github.com/jsamuelsen11/ticketcore/internal/domain/user"
	"github.com/jsamuelsen11/ticketcore/internal/ports"
	"github.com/jsamuelsen11/ticketcore/mocks"
)

var t0 = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string         { return &s }
func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
func boolPtr(b bool) *bool            { return &b }

// stepClock advances one minute on every reading.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

// harness is a service over a seeded in-memory store.
type harness struct {
	store    *memstore.Store
	log      *memstore.ActivityLog
	svc      *TicketService
	clock    *stepClock
	ctx      context.Context
	orgID    uuid.UUID
	alice    uuid.UUID // member
	outsider uuid.UUID // user without a membership
}

func newHarness(t *testing.T, opts ...Option) harness {
	t.Helper()

	store := memstore.New()
	h := harness{
		store:    store,
		log:      memstore.NewActivityLog(),
		clock:    &stepClock{now: t0},
		orgID:    uuid.New(),
		alice:    uuid.New(),
		outsider: uuid.New(),
	}
	h.svc = h.service(store, h.log, opts...)
	h.ctx = appctx.WithActor(context.Background(), h.alice)
	h.seed(t)
	return h
}

func newService(clock *stepClock, store ports.BoardStore, writer ports.ActivityWriter, opts ...Option) *TicketService {
	base := []Option{WithLogger(discardLogger()), WithClock(clock.Now)}
	return NewTicketService(store, audit.NewRecorder(writer, discardLogger()), append(base, opts...)...)
}

// service builds another service over the harness clock, so timestamps
// keep increasing across services.
func (h harness) service(store ports.BoardStore, writer ports.ActivityWriter, opts ...Option) *TicketService {
	return newService(h.clock, store, writer, opts...)
}

func (h harness) seed(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	if err := h.store.AddOrg(ctx, org.Org{ID: h.orgID, Name: "Acme", CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("AddOrg() error = %v", err)
	}
	for _, u := range []user.User{
		{ID: h.alice, Email: "alice@example.com", DisplayName: "Alice", CreatedAt: t0},
		{ID: h.outsider, Email: "mallory@example.com", DisplayName: "Mallory", CreatedAt: t0},
	} {
		if err := h.store.AddUser(ctx, u); err != nil {
			t.Fatalf("AddUser() error = %v", err)
		}
	}
	m := org.Membership{ID: uuid.New(), OrgID: h.orgID, UserID: h.alice, Role: org.RoleMember, CreatedAt: t0}
	if err := h.store.AddMembership(ctx, m); err != nil {
		t.Fatalf("AddMembership() error = %v", err)
	}
}

func (h harness) createProject(t *testing.T) ports.NewProject {
	t.Helper()
	return ports.NewProject{OrgID: h.orgID, Name: "Engineering", Prefix: "ENG", Columns: []string{"Backlog", "Doing", "Done"}}
}

func (h harness) board(t *testing.T) (projectID uuid.UUID, backlog, doing, done uuid.UUID) {
	t.Helper()

	pb, err := h.svc.CreateProject(h.ctx, h.createProject(t))
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	return pb.Project.ID, pb.Columns[0].ID, pb.Columns[1].ID, pb.Columns[2].ID
}

func (h harness) ticket(t *testing.T, projectID uuid.UUID, title string) *ticket.Ticket {
	t.Helper()

	tk, err := h.svc.CreateTicket(h.ctx, projectID, ports.NewTicket{Title: title})
	if err != nil {
		t.Fatalf("CreateTicket(%q) error = %v", title, err)
	}
	return tk
}

func (h harness) eventTypes() []activity.Type {
	events := h.log.Events()
	out := make([]activity.Type, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

// ticketEventTypes returns the types of the events of one ticket in log order.
func ticketEventTypes(events []activity.Event, ticketID uuid.UUID) []activity.Type {
	var out []activity.Type
	for _, e := range events {
		if e.TicketID != nil && *e.TicketID == ticketID {
			out = append(out, e.Type)
		}
	}
	return out
}

func requireTypes(t *testing.T, got []activity.Type, want ...activity.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("event types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event types = %v, want %v", got, want)
		}
	}
}

// --- NewTicketService ---

func TestNewTicketService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewTicketService(memstore.New(), audit.NewRecorder(memstore.NewActivityLog(), nil))
	if svc.logger == nil || svc.metrics == nil || svc.tracer == nil {
		t.Fatal("NewTicketService() left logger, metrics or tracer nil")
	}
	if svc.retries != DefaultConflictRetries {
		t.Errorf("retries = %d, want %d", svc.retries, DefaultConflictRetries)
	}
	if svc.bulkWorkers != DefaultBulkWorkers {
		t.Errorf("bulkWorkers = %d, want %d", svc.bulkWorkers, DefaultBulkWorkers)
	}
}

// --- project-level commands ---

func TestTicketService_CreateProject(t *testing.T) {
	t.Parallel()

	t.Run("creates the board in order and records one event", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		pb, err := h.svc.CreateProject(h.ctx, h.createProject(t))
		if err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}

		cols, err := h.store.ListColumns(context.Background(), pb.Project.ID)
		if err != nil {
			t.Fatalf("ListColumns() error = %v", err)
		}
		if len(cols) != 3 || cols[0].Name != "Backlog" || cols[0].Position != 0 || cols[2].Name != "Done" {
			t.Errorf("stored columns = %+v, want Backlog, Doing, Done at 0..2", cols)
		}
		requireTypes(t, h.eventTypes(), activity.TypeProjectCreated)
	})

	t.Run("rejects an empty board", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		in := h.createProject(t)
		in.Columns = nil
		_, err := h.svc.CreateProject(h.ctx, in)
		if !errors.Is(err, domain.ErrEmptyBoard) {
			t.Errorf("CreateProject() error = %v, want ErrEmptyBoard", err)
		}
		requireTypes(t, h.eventTypes())
	})

	t.Run("rejects a taken prefix", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		if _, err := h.svc.CreateProject(h.ctx, h.createProject(t)); err != nil {
			t.Fatalf("first CreateProject() error = %v", err)
		}
		_, err := h.svc.CreateProject(h.ctx, h.createProject(t))
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("second CreateProject() error = %v, want ErrConflict", err)
		}
		requireTypes(t, h.eventTypes(), activity.TypeProjectCreated)
	})

	t.Run("requires an actor", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.svc.CreateProject(context.Background(), h.createProject(t))
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("CreateProject() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["actor_id"]; !ok {
			t.Errorf("Fields = %v, want actor_id", verr.Fields)
		}
	})
}

func TestTicketService_AddColumnAndCreateTag(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, _, _ := h.board(t)

	col, err := h.svc.AddColumn(h.ctx, projectID, "Review")
	if err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	if col.Position != 3 {
		t.Errorf("AddColumn().Position = %d, want 3", col.Position)
	}

	tg, err := h.svc.CreateTag(h.ctx, projectID, "  Backend ")
	if err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	if tg.Name != "backend" {
		t.Errorf("CreateTag().Name = %q, want %q", tg.Name, "backend")
	}

	_, err = h.svc.CreateTag(h.ctx, projectID, "BACKEND")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("duplicate CreateTag() error = %v, want ErrValidation", err)
	}

	_, err = h.svc.AddColumn(h.ctx, uuid.New(), "Review")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AddColumn(unknown project) error = %v, want ErrNotFound", err)
	}

	requireTypes(t, h.eventTypes(), activity.TypeProjectCreated, activity.TypeColumnAdded, activity.TypeTagCreated)
}

// --- ticket commands ---

func TestTicketService_CreateTicket(t *testing.T) {
	t.Parallel()

	t.Run("keys follow the project sequence", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		projectID, backlog, _, _ := h.board(t)

		first := h.ticket(t, projectID, "Login page")
		second := h.ticket(t, projectID, "Signup page")

		if first.Key != "ENG-1" || second.Key != "ENG-2" {
			t.Errorf("keys = %q, %q, want ENG-1, ENG-2", first.Key, second.Key)
		}
		if first.StatusColumnID != backlog {
			t.Errorf("StatusColumnID = %s, want the initial column %s", first.StatusColumnID, backlog)
		}
		if first.AssigneeID != nil || len(first.TagIDs) != 0 || first.IsClosed() {
			t.Errorf("new ticket = %+v, want unassigned, untagged and open", first)
		}
		requireTypes(t, h.eventTypes(), activity.TypeProjectCreated, activity.TypeTicketCreated, activity.TypeTicketCreated)
	})

	t.Run("explicit column of another project", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		projectID, _, _, _ := h.board(t)

		other := h.createProject(t)
		other.Prefix = "OPS"
		ob, err := h.svc.CreateProject(h.ctx, other)
		if err != nil {
			t.Fatalf("CreateProject(OPS) error = %v", err)
		}

		_, err = h.svc.CreateTicket(h.ctx, projectID, ports.NewTicket{Title: "x", ColumnID: uuidPtr(ob.Columns[1].ID)})
		if !errors.Is(err, domain.ErrInvalidColumn) {
			t.Errorf("CreateTicket() error = %v, want ErrInvalidColumn", err)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.svc.CreateTicket(h.ctx, uuid.New(), ports.NewTicket{Title: "x"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("CreateTicket() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTicketService_TicketLifecycle(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, doing, done := h.board(t)
	tk := h.ticket(t, projectID, "Login page")
	if _, err := h.svc.CreateTag(h.ctx, projectID, "Backend"); err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}

	steps := []struct {
		name string
		run  func() (*ticket.Ticket, error)
	}{
		{"update", func() (*ticket.Ticket, error) {
			return h.svc.UpdateTicket(h.ctx, tk.ID, ticket.Patch{Description: strPtr("blocked by ENG-7")})
		}},
		{"move", func() (*ticket.Ticket, error) { return h.svc.MoveTicket(h.ctx, tk.ID, doing) }},
		{"assign", func() (*ticket.Ticket, error) { return h.svc.AssignTicket(h.ctx, tk.ID, uuidPtr(h.alice)) }},
		{"tag", func() (*ticket.Ticket, error) { return h.svc.AddTag(h.ctx, tk.ID, "backend") }},
		{"close", func() (*ticket.Ticket, error) { return h.svc.CloseTicket(h.ctx, tk.ID) }},
		{"move closed", func() (*ticket.Ticket, error) { return h.svc.MoveTicket(h.ctx, tk.ID, done) }},
		{"reopen", func() (*ticket.Ticket, error) { return h.svc.ReopenTicket(h.ctx, tk.ID) }},
		{"untag", func() (*ticket.Ticket, error) { return h.svc.RemoveTag(h.ctx, tk.ID, "BACKEND") }},
		{"unassign", func() (*ticket.Ticket, error) { return h.svc.AssignTicket(h.ctx, tk.ID, nil) }},
	}

	prev := tk.UpdatedAt
	for _, step := range steps {
		got, err := step.run()
		if err != nil {
			t.Fatalf("%s: error = %v", step.name, err)
		}
		if !got.UpdatedAt.After(prev) {
			t.Errorf("%s: UpdatedAt %v did not advance past %v", step.name, got.UpdatedAt, prev)
		}
		prev = got.UpdatedAt
	}

	stored, err := h.store.GetTicket(context.Background(), tk.ID)
	if err != nil {
		t.Fatalf("GetTicket() error = %v", err)
	}
	if stored.StatusColumnID != done || stored.IsClosed() || stored.AssigneeID != nil || len(stored.TagIDs) != 0 {
		t.Errorf("stored ticket = %+v, want open, unassigned, untagged in Done", stored)
	}
	if !stored.UpdatedAt.Equal(prev) {
		t.Errorf("stored UpdatedAt = %v, want %v", stored.UpdatedAt, prev)
	}

	requireTypes(t, ticketEventTypes(h.log.Events(), tk.ID),
		activity.TypeTicketCreated,
		activity.TypeTicketUpdated,
		activity.TypeTicketMoved,
		activity.TypeTicketAssigned,
		activity.TypeTagAdded,
		activity.TypeTicketClosed,
		activity.TypeTicketMoved,
		activity.TypeTicketReopened,
		activity.TypeTagRemoved,
		activity.TypeTicketAssigned,
	)

	var ticketEvents []activity.Event
	for _, e := range h.log.Events() {
		if e.TicketID != nil && *e.TicketID == tk.ID {
			ticketEvents = append(ticketEvents, e)
		}
	}
	mentions, _ := ticketEvents[1].Payload["mentions"].([]string)
	if len(mentions) != 1 || mentions[0] != "ENG-7" {
		t.Errorf("ticket_updated mentions = %v, want [ENG-7]", ticketEvents[1].Payload["mentions"])
	}
}

func TestTicketService_NoopsRecordNothing(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, backlog, _, _ := h.board(t)
	tk := h.ticket(t, projectID, "Login page")
	if _, err := h.svc.CreateTag(h.ctx, projectID, "backend"); err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	if _, err := h.svc.AddTag(h.ctx, tk.ID, "Backend"); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}
	before := len(h.log.Events())

	noops := map[string]func() (*ticket.Ticket, error){
		"move to current column": func() (*ticket.Ticket, error) { return h.svc.MoveTicket(h.ctx, tk.ID, backlog) },
		"add present tag":        func() (*ticket.Ticket, error) { return h.svc.AddTag(h.ctx, tk.ID, "BACKEND") },
		"remove unknown tag":     func() (*ticket.Ticket, error) { return h.svc.RemoveTag(h.ctx, tk.ID, "frontend") },
		"unassign unassigned":    func() (*ticket.Ticket, error) { return h.svc.AssignTicket(h.ctx, tk.ID, nil) },
		"same title": func() (*ticket.Ticket, error) {
			return h.svc.UpdateTicket(h.ctx, tk.ID, ticket.Patch{Title: strPtr("Login page")})
		},
	}
	for name, run := range noops {
		if _, err := run(); err != nil {
			t.Errorf("%s: error = %v", name, err)
		}
	}

	if after := len(h.log.Events()); after != before {
		t.Errorf("events recorded by no-ops = %d, want 0", after-before)
	}
}

func TestTicketService_Rejections(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, _, _ := h.board(t)
	tk := h.ticket(t, projectID, "Login page")
	before := len(h.log.Events())

	other := h.createProject(t)
	other.Prefix = "OPS"
	ob, err := h.svc.CreateProject(h.ctx, other)
	if err != nil {
		t.Fatalf("CreateProject(OPS) error = %v", err)
	}
	before++

	tests := []struct {
		name    string
		run     func() (*ticket.Ticket, error)
		wantErr error
	}{
		{
			name:    "move to a column of another project",
			run:     func() (*ticket.Ticket, error) { return h.svc.MoveTicket(h.ctx, tk.ID, ob.Columns[0].ID) },
			wantErr: domain.ErrInvalidColumn,
		},
		{
			name:    "reopen an open ticket",
			run:     func() (*ticket.Ticket, error) { return h.svc.ReopenTicket(h.ctx, tk.ID) },
			wantErr: domain.ErrNotClosed,
		},
		{
			name:    "assign a non-member",
			run:     func() (*ticket.Ticket, error) { return h.svc.AssignTicket(h.ctx, tk.ID, uuidPtr(h.outsider)) },
			wantErr: domain.ErrValidation,
		},
		{
			name:    "add an unknown tag",
			run:     func() (*ticket.Ticket, error) { return h.svc.AddTag(h.ctx, tk.ID, "frontend") },
			wantErr: domain.ErrNotFound,
		},
		{
			name: "blank title",
			run: func() (*ticket.Ticket, error) {
				return h.svc.UpdateTicket(h.ctx, tk.ID, ticket.Patch{Title: strPtr("  ")})
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown ticket",
			run:     func() (*ticket.Ticket, error) { return h.svc.CloseTicket(h.ctx, uuid.New()) },
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		if _, err := tt.run(); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}

	if _, err := h.svc.CloseTicket(h.ctx, tk.ID); err != nil {
		t.Fatalf("CloseTicket() error = %v", err)
	}
	if _, err := h.svc.CloseTicket(h.ctx, tk.ID); !errors.Is(err, domain.ErrAlreadyClosed) {
		t.Errorf("second CloseTicket() error = %v, want ErrAlreadyClosed", err)
	}

	if got := len(h.log.Events()) - before; got != 1 {
		t.Errorf("events recorded = %d, want only the first close", got)
	}
}

// --- optimistic concurrency ---

// conflictingStore fails the first n ticket updates with domain.ErrConflict.
type conflictingStore struct {
	*memstore.Store

	mu       sync.Mutex
	failures int
	updates  int
}

func (s *conflictingStore) UpdateTicket(ctx context.Context, t ticket.Ticket, expected time.Time) error {
	s.mu.Lock()
	s.updates++
	fail := s.updates <= s.failures
	s.mu.Unlock()

	if fail {
		return domain.ErrConflict
	}
	return s.Store.UpdateTicket(ctx, t, expected)
}

func TestTicketService_ConflictRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		failures    int
		retries     int
		wantErr     error
		wantUpdates int
		wantEvents  int
	}{
		{name: "no conflict", failures: 0, retries: 2, wantUpdates: 1, wantEvents: 1},
		{name: "recovers within budget", failures: 2, retries: 2, wantUpdates: 3, wantEvents: 1},
		{name: "gives up after budget", failures: 3, retries: 2, wantErr: domain.ErrConflict, wantUpdates: 3, wantEvents: 0},
		{name: "retries disabled", failures: 1, retries: 0, wantErr: domain.ErrConflict, wantUpdates: 1, wantEvents: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			projectID, _, doing, _ := h.board(t)
			tk := h.ticket(t, projectID, "Login page")

			store := &conflictingStore{Store: h.store, failures: tt.failures}
			svc := h.service(store, h.log, WithConflictRetries(tt.retries))
			before := len(h.log.Events())

			_, err := svc.MoveTicket(h.ctx, tk.ID, doing)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("MoveTicket() error = %v, want %v", err, tt.wantErr)
			}
			if store.updates != tt.wantUpdates {
				t.Errorf("UpdateTicket calls = %d, want %d", store.updates, tt.wantUpdates)
			}
			if got := len(h.log.Events()) - before; got != tt.wantEvents {
				t.Errorf("events recorded = %d, want %d", got, tt.wantEvents)
			}
		})
	}
}

// boardReadStore counts board reads on top of conflictingStore.
type boardReadStore struct {
	*conflictingStore

	columnReads     atomic.Int32
	tagReads        atomic.Int32
	membershipReads atomic.Int32
}

func (s *boardReadStore) ListColumns(ctx context.Context, projectID uuid.UUID) ([]board.Column, error) {
	s.columnReads.Add(1)
	return s.conflictingStore.ListColumns(ctx, projectID)
}

func (s *boardReadStore) ListTags(ctx context.Context, projectID uuid.UUID) ([]tag.Tag, error) {
	s.tagReads.Add(1)
	return s.conflictingStore.ListTags(ctx, projectID)
}

func (s *boardReadStore) GetMembership(ctx context.Context, orgID, userID uuid.UUID) (*org.Membership, error) {
	s.membershipReads.Add(1)
	return s.conflictingStore.GetMembership(ctx, orgID, userID)
}

func TestTicketService_ConflictRetryReloadsBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		run   func(h harness, svc *TicketService, tk *ticket.Ticket, doing uuid.UUID) error
		reads func(s *boardReadStore) int32
	}{
		{
			name: "move reloads columns",
			run: func(h harness, svc *TicketService, tk *ticket.Ticket, doing uuid.UUID) error {
				_, err := svc.MoveTicket(h.ctx, tk.ID, doing)
				return err
			},
			reads: func(s *boardReadStore) int32 { return s.columnReads.Load() },
		},
		{
			name: "add tag reloads tags",
			run: func(h harness, svc *TicketService, tk *ticket.Ticket, _ uuid.UUID) error {
				_, err := svc.AddTag(h.ctx, tk.ID, "bug")
				return err
			},
			reads: func(s *boardReadStore) int32 { return s.tagReads.Load() },
		},
		{
			name: "assign reloads membership",
			run: func(h harness, svc *TicketService, tk *ticket.Ticket, _ uuid.UUID) error {
				_, err := svc.AssignTicket(h.ctx, tk.ID, uuidPtr(h.alice))
				return err
			},
			reads: func(s *boardReadStore) int32 { return s.membershipReads.Load() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			projectID, _, doing, _ := h.board(t)
			tk := h.ticket(t, projectID, "Login page")
			if _, err := h.svc.CreateTag(h.ctx, projectID, "bug"); err != nil {
				t.Fatalf("CreateTag() error = %v", err)
			}

			store := &boardReadStore{conflictingStore: &conflictingStore{Store: h.store, failures: 1}}
			svc := h.service(store, h.log, WithConflictRetries(1))

			if err := tt.run(h, svc, tk, doing); err != nil {
				t.Fatalf("command error = %v", err)
			}
			if got := tt.reads(store); got != 2 {
				t.Errorf("board reads = %d, want 2 (one per attempt)", got)
			}
		})
	}
}

func TestTicketService_NoConflictReadsBoardOnce(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, doing, _ := h.board(t)
	tk := h.ticket(t, projectID, "Login page")

	store := &boardReadStore{conflictingStore: &conflictingStore{Store: h.store}}
	svc := h.service(store, h.log)

	if _, err := svc.MoveTicket(h.ctx, tk.ID, doing); err != nil {
		t.Fatalf("MoveTicket() error = %v", err)
	}
	if got := store.columnReads.Load(); got != 1 {
		t.Errorf("column reads = %d, want 1", got)
	}
}

func TestTicketService_ConcurrentWritersBothApply(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, _, _ := h.board(t)
	tk := h.ticket(t, projectID, "Login page")
	for _, name := range []string{"backend", "ui", "api", "infra"} {
		if _, err := h.svc.CreateTag(h.ctx, projectID, name); err != nil {
			t.Fatalf("CreateTag(%q) error = %v", name, err)
		}
	}
	svc := h.service(h.store, h.log, WithConflictRetries(10))

	var wg sync.WaitGroup
	for _, name := range []string{"backend", "ui", "api", "infra"} {
		wg.Go(func() {
			if _, err := svc.AddTag(h.ctx, tk.ID, name); err != nil {
				t.Errorf("AddTag(%q) error = %v", name, err)
			}
		})
	}
	wg.Wait()

	stored, err := h.store.GetTicket(context.Background(), tk.ID)
	if err != nil {
		t.Fatalf("GetTicket() error = %v", err)
	}
	if len(stored.TagIDs) != 4 {
		t.Errorf("TagIDs = %v, want all four tags", stored.TagIDs)
	}
}

// --- bulk ---

func TestTicketService_BulkMoveTickets(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, _, done := h.board(t)
	a := h.ticket(t, projectID, "A")
	b := h.ticket(t, projectID, "B")
	missing := uuid.New()

	svc := h.service(h.store, h.log, WithBulkWorkers(2))
	res := svc.BulkMoveTickets(h.ctx, []ports.TicketMove{
		{TicketID: a.ID, ColumnID: done},
		{TicketID: missing, ColumnID: done},
		{TicketID: b.ID, ColumnID: done},
	})

	if len(res.Moved) != 2 || res.Moved[0].ID != a.ID || res.Moved[1].ID != b.ID {
		t.Errorf("Moved = %+v, want A and B in input order", res.Moved)
	}
	if len(res.Errors) != 1 || res.Errors[0].TicketID != missing || !errors.Is(res.Errors[0].Err, domain.ErrNotFound) {
		t.Errorf("Errors = %+v, want one ErrNotFound for the missing ticket", res.Errors)
	}
	for _, id := range []uuid.UUID{a.ID, b.ID} {
		stored, err := h.store.GetTicket(context.Background(), id)
		if err != nil {
			t.Fatalf("GetTicket() error = %v", err)
		}
		if stored.StatusColumnID != done {
			t.Errorf("ticket %s column = %s, want Done", stored.Key, stored.StatusColumnID)
		}
	}
}

func TestTicketService_BulkMoveTickets_Empty(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	res := h.svc.BulkMoveTickets(h.ctx, nil)
	if len(res.Moved) != 0 || len(res.Errors) != 0 {
		t.Errorf("BulkMoveTickets(nil) = %+v, want empty", res)
	}
}

// --- queries ---

func TestTicketService_ListTickets(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, doing, _ := h.board(t)
	first := h.ticket(t, projectID, "Login page")
	second := h.ticket(t, projectID, "Signup page")
	third := h.ticket(t, projectID, "Password reset")

	svc := h.service(h.store, h.log, WithDefaultFilter(ticket.Filter{Closed: boolPtr(false)}))
	if _, err := svc.MoveTicket(h.ctx, first.ID, doing); err != nil {
		t.Fatalf("MoveTicket() error = %v", err)
	}
	if _, err := svc.CloseTicket(h.ctx, second.ID); err != nil {
		t.Fatalf("CloseTicket() error = %v", err)
	}

	tests := []struct {
		name   string
		filter ticket.Filter
		want   []string
	}{
		{name: "default hides closed, newest first", filter: ticket.Filter{}, want: []string{first.Key, third.Key}},
		{name: "request overrides default", filter: ticket.Filter{Closed: boolPtr(true)}, want: []string{second.Key}},
		{name: "criteria are ANDed", filter: ticket.Filter{ColumnID: uuidPtr(doing), Query: "LOGIN"}, want: []string{first.Key}},
		{name: "no match", filter: ticket.Filter{Query: "billing"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.ListTickets(h.ctx, projectID, tt.filter)
			if err != nil {
				t.Fatalf("ListTickets() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ListTickets() = %d tickets, want %v", len(got), tt.want)
			}
			for i := range tt.want {
				if got[i].Key != tt.want[i] {
					t.Errorf("ListTickets()[%d] = %s, want %s", i, got[i].Key, tt.want[i])
				}
			}
		})
	}

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ListTickets(h.ctx, uuid.New(), ticket.Filter{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ListTickets() error = %v, want ErrNotFound", err)
		}
	})
}

// --- collaborator failures ---

func TestTicketService_ActivityFailureDoesNotFailCommand(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	projectID, _, doing, _ := h.board(t)
	tk := h.ticket(t, projectID, "Login page")

	writer := mocks.NewMockActivityWriter(t)
	writer.EXPECT().Append(mock.Anything, mock.Anything).Return(activity.Event{}, errors.New("log offline")).Once()
	svc := h.service(h.store, writer)

	got, err := svc.MoveTicket(h.ctx, tk.ID, doing)
	if err != nil {
		t.Fatalf("MoveTicket() error = %v, want nil", err)
	}
	stored, err := h.store.GetTicket(context.Background(), tk.ID)
	if err != nil {
		t.Fatalf("GetTicket() error = %v", err)
	}
	if stored.StatusColumnID != doing || !stored.UpdatedAt.Equal(got.UpdatedAt) {
		t.Errorf("stored ticket = %+v, want the moved ticket", stored)
	}
}

func TestTicketService_StoreFailures(t *testing.T) {
	t.Parallel()

	errDown := errors.New("store down")
	ctx := appctx.WithActor(context.Background(), uuid.New())

	t.Run("load failure skips command and recording", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockBoardStore(t)
		writer := mocks.NewMockActivityWriter(t)
		svc := newService(&stepClock{now: t0}, store, writer)

		id := uuid.New()
		store.EXPECT().GetTicket(mock.Anything, id).Return(nil, errDown)

		_, err := svc.CloseTicket(ctx, id)
		if !errors.Is(err, errDown) {
			t.Errorf("CloseTicket() error = %v, want %v", err, errDown)
		}
	})

	t.Run("list failure is wrapped", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockBoardStore(t)
		svc := newService(&stepClock{now: t0}, store, mocks.NewMockActivityWriter(t))

		projectID := uuid.New()
		store.EXPECT().ListTickets(mock.Anything, projectID).Return(nil, errDown)

		_, err := svc.ListTickets(ctx, projectID, ticket.Filter{})
		if !errors.Is(err, errDown) {
			t.Errorf("ListTickets() error = %v, want %v", err, errDown)
		}
	})

	t.Run("actor is checked before any read", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockBoardStore(t)
		svc := newService(&stepClock{now: t0}, store, mocks.NewMockActivityWriter(t))

		_, err := svc.MoveTicket(context.Background(), uuid.New(), uuid.New())
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("MoveTicket() error = %v, want ErrValidation", err)
		}
	})
}
