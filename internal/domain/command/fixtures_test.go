package command

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
	"github.com/jsamuelsen11/ticketcore/internal/domain/activity"
	"github.com/jsamuelsen11/ticketcore/internal/domain/board"
	"github.com/jsamuelsen11/ticketcore/internal/domain/org"
	"github.com/jsamuelsen11/ticketcore/internal/domain/project"
	"github.com/jsamuelsen11/ticketcore/internal/domain/tag"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
)

var (
	t0      = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	actorID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

// fixture is a project with a two-column board and two tags, plus a
// ticket in the first column.
type fixture struct {
	meta    Meta
	project project.Project
	cols    []board.Column
	tags    []tag.Tag
	ticket  ticket.Ticket
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	meta := Meta{ActorID: actorID, Now: t0}
	res, err := CreateProject(meta, CreateProjectInput{
		ID:     uuid.New(),
		OrgID:  uuid.New(),
		Name:   "Engineering",
		Prefix: "ENG",
		Columns: []ColumnSpec{
			{ID: uuid.New(), Name: "Backlog"},
			{ID: uuid.New(), Name: "Done"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	p := res.Data.Project

	var tags []tag.Tag
	for _, name := range []string{"Backend", "UI"} {
		tr, err := CreateTag(meta, p, tags, NewTag{ID: uuid.New(), Name: name})
		if err != nil {
			t.Fatalf("CreateTag(%q) error = %v", name, err)
		}
		tags = append(tags, tr.Data)
	}

	tk, err := CreateTicket(meta, p, res.Data.Columns, CreateTicketInput{ID: uuid.New(), Number: 1, Title: "Fix bug"})
	if err != nil {
		t.Fatalf("CreateTicket() error = %v", err)
	}

	return fixture{
		meta:    Meta{ActorID: actorID, Now: t0.Add(time.Minute)},
		project: p,
		cols:    res.Data.Columns,
		tags:    tags,
		ticket:  tk.Data,
	}
}

// otherProject returns a second project of the same org with its own board.
func (f fixture) otherProject(t *testing.T) ProjectBoard {
	t.Helper()

	res, err := CreateProject(f.meta, CreateProjectInput{
		ID:      uuid.New(),
		OrgID:   f.project.OrgID,
		Name:    "Operations",
		Prefix:  "OPS",
		Columns: []ColumnSpec{{ID: uuid.New(), Name: "Inbox"}},
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	return res.Data
}

func (f fixture) membership(userID uuid.UUID) *org.Membership {
	return &org.Membership{
		ID:        uuid.New(),
		OrgID:     f.project.OrgID,
		UserID:    userID,
		Role:      org.RoleMember,
		CreatedAt: t0,
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func requireSingleEvent(t *testing.T, events []activity.NewEvent, typ activity.Type) activity.NewEvent {
	t.Helper()

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Type != typ {
		t.Errorf("event type = %s, want %s", e.Type, typ)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("event.Validate() = %v", err)
	}
	return e
}
