package ticket

import "slices"

// SortByRecency returns a copy of tickets ordered by UpdatedAt, most recent
// first. Tickets with equal UpdatedAt keep their input order.
func SortByRecency(tickets []Ticket) []Ticket {
	sorted := slices.Clone(tickets)
	slices.SortStableFunc(sorted, func(a, b Ticket) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return sorted
}
