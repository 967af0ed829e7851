package ticket

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	colTodo = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	colDone = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	alice   = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	bob     = uuid.MustParse("00000000-0000-0000-0000-0000000000b0")
	tagBE   = uuid.MustParse("00000000-0000-0000-0000-0000000000e1")
	tagUI   = uuid.MustParse("00000000-0000-0000-0000-0000000000e2")
)

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
func boolPtr(b bool) *bool            { return &b }

func fixtureTickets() []Ticket {
	closedAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return []Ticket{
		{Key: "ENG-1", Title: "Fix login bug", StatusColumnID: colTodo, AssigneeID: uuidPtr(alice), TagIDs: []uuid.UUID{tagBE}},
		{Key: "ENG-2", Title: "Polish header", Description: "UI spacing", StatusColumnID: colTodo, TagIDs: []uuid.UUID{tagUI}},
		{Key: "ENG-3", Title: "Ship release", StatusColumnID: colDone, AssigneeID: uuidPtr(bob), TagIDs: []uuid.UUID{tagBE, tagUI}, ClosedAt: &closedAt},
	}
}

func keys(tickets []Ticket) []string {
	out := make([]string, len(tickets))
	for i := range tickets {
		out[i] = tickets[i].Key
	}
	return out
}

func TestFilterTickets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "zero filter matches all", filter: Filter{}, want: []string{"ENG-1", "ENG-2", "ENG-3"}},
		{name: "by column", filter: Filter{ColumnID: uuidPtr(colTodo)}, want: []string{"ENG-1", "ENG-2"}},
		{name: "by assignee", filter: Filter{AssigneeID: uuidPtr(bob)}, want: []string{"ENG-3"}},
		{name: "single tag", filter: Filter{TagIDs: []uuid.UUID{tagUI}}, want: []string{"ENG-2", "ENG-3"}},
		{name: "all tags required", filter: Filter{TagIDs: []uuid.UUID{tagUI, tagBE}}, want: []string{"ENG-3"}},
		{name: "open only", filter: Filter{Closed: boolPtr(false)}, want: []string{"ENG-1", "ENG-2"}},
		{name: "closed only", filter: Filter{Closed: boolPtr(true)}, want: []string{"ENG-3"}},
		{name: "query on title is case-insensitive", filter: Filter{Query: "LOGIN"}, want: []string{"ENG-1"}},
		{name: "query on description", filter: Filter{Query: "spacing"}, want: []string{"ENG-2"}},
		{name: "query on key", filter: Filter{Query: "eng-3"}, want: []string{"ENG-3"}},
		{
			name:   "criteria combine with AND",
			filter: Filter{ColumnID: uuidPtr(colTodo), TagIDs: []uuid.UUID{tagBE}},
			want:   []string{"ENG-1"},
		},
		{name: "no match", filter: Filter{AssigneeID: uuidPtr(uuid.New())}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := keys(FilterTickets(fixtureTickets(), tt.filter))
			if len(got) != len(tt.want) {
				t.Fatalf("FilterTickets() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FilterTickets()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterTickets_PartitionProperty(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 8))
	cols := []uuid.UUID{colTodo, colDone}
	people := []uuid.UUID{alice, bob}
	tags := []uuid.UUID{tagBE, tagUI}

	pickFilter := func() Filter {
		var f Filter
		if r.IntN(2) == 0 {
			f.ColumnID = uuidPtr(cols[r.IntN(2)])
		}
		if r.IntN(2) == 0 {
			f.AssigneeID = uuidPtr(people[r.IntN(2)])
		}
		if r.IntN(2) == 0 {
			f.TagIDs = []uuid.UUID{tags[r.IntN(2)]}
		}
		if r.IntN(2) == 0 {
			f.Closed = boolPtr(r.IntN(2) == 0)
		}
		return f
	}

	for range 200 {
		tickets := fixtureTickets()
		f := pickFilter()
		got := FilterTickets(tickets, f)

		in := make(map[string]bool, len(got))
		for i := range got {
			if !Matches(&got[i], f) {
				t.Fatalf("FilterTickets() returned %s which does not match %+v", got[i].Key, f)
			}
			in[got[i].Key] = true
		}
		for i := range tickets {
			if !in[tickets[i].Key] && Matches(&tickets[i], f) {
				t.Fatalf("FilterTickets() dropped %s which matches %+v", tickets[i].Key, f)
			}
		}
	}
}

func TestMergeFilters(t *testing.T) {
	t.Parallel()

	defaults := Filter{Closed: boolPtr(false), ColumnID: uuidPtr(colTodo), Query: "bug"}
	overrides := Filter{Closed: boolPtr(true), AssigneeID: uuidPtr(alice)}

	got := MergeFilters(defaults, overrides)

	if got.Closed == nil || !*got.Closed {
		t.Errorf("Closed = %v, want override true", got.Closed)
	}
	if got.ColumnID == nil || *got.ColumnID != colTodo {
		t.Errorf("ColumnID = %v, want default kept", got.ColumnID)
	}
	if got.AssigneeID == nil || *got.AssigneeID != alice {
		t.Errorf("AssigneeID = %v, want override", got.AssigneeID)
	}
	if got.Query != "bug" {
		t.Errorf("Query = %q, want default kept", got.Query)
	}

	if merged := MergeFilters(Filter{}, Filter{}); merged.ColumnID != nil || merged.Closed != nil || merged.Query != "" {
		t.Errorf("MergeFilters(zero, zero) = %+v, want zero", merged)
	}

	tagged := MergeFilters(Filter{TagIDs: []uuid.UUID{tagBE}}, Filter{TagIDs: []uuid.UUID{tagUI}})
	if len(tagged.TagIDs) != 1 || tagged.TagIDs[0] != tagUI {
		t.Errorf("TagIDs = %v, want override [ui]", tagged.TagIDs)
	}
}
