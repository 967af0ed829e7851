package ticket

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Filter holds optional filter criteria for listing tickets.
// Zero-value fields mean "no filter" for that dimension; set fields are
// combined with AND.
type Filter struct {
	ColumnID   *uuid.UUID `json:"column_id,omitempty"`
	AssigneeID *uuid.UUID `json:"assignee_id,omitempty"`
	// TagIDs matches tickets carrying every listed tag.
	TagIDs []uuid.UUID `json:"tag_ids,omitempty"`
	Closed *bool       `json:"closed,omitempty"`
	// Query is a case-insensitive substring matched against the key, title
	// and description.
	Query string `json:"query,omitempty"`
}

// Matches reports whether t satisfies every set criterion of f.
func Matches(t *Ticket, f Filter) bool {
	if f.ColumnID != nil && t.StatusColumnID != *f.ColumnID {
		return false
	}
	if f.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *f.AssigneeID) {
		return false
	}
	for _, id := range f.TagIDs {
		if !slices.Contains(t.TagIDs, id) {
			return false
		}
	}
	if f.Closed != nil && t.IsClosed() != *f.Closed {
		return false
	}
	if f.Query != "" && !matchesQuery(t, strings.ToLower(f.Query)) {
		return false
	}
	return true
}

func matchesQuery(t *Ticket, query string) bool {
	return strings.Contains(strings.ToLower(t.Key), query) ||
		strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

// FilterTickets returns the tickets that match f, preserving their order.
func FilterTickets(tickets []Ticket, f Filter) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for i := range tickets {
		if Matches(&tickets[i], f) {
			out = append(out, tickets[i])
		}
	}
	return out
}

// MergeFilters layers b over a: every field set in b replaces the same field
// of a. It is used to apply user overrides on top of default filters.
func MergeFilters(a, b Filter) Filter {
	merged := a
	if b.ColumnID != nil {
		merged.ColumnID = b.ColumnID
	}
	if b.AssigneeID != nil {
		merged.AssigneeID = b.AssigneeID
	}
	if len(b.TagIDs) > 0 {
		merged.TagIDs = b.TagIDs
	}
	if b.Closed != nil {
		merged.Closed = b.Closed
	}
	if b.Query != "" {
		merged.Query = b.Query
	}
	return merged
}
