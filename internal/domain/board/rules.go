package board

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Sort returns a copy of cols ordered by ascending Position. Columns that
// share a position keep their input order.
func Sort(cols []Column) []Column {
	sorted := slices.Clone(cols)
	slices.SortStableFunc(sorted, func(a, b Column) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return sorted
}

// Find returns the column with the given id.
func Find(cols []Column, id uuid.UUID) (Column, bool) {
	for _, c := range cols {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Initial returns the lowest-positioned column. It returns
// domain.ErrEmptyBoard when cols is empty.
func Initial(cols []Column) (Column, error) {
	if len(cols) == 0 {
		return Column{}, domain.ErrEmptyBoard
	}
	return Sort(cols)[0], nil
}

// ForProject returns the columns that belong to projectID, in input order.
func ForProject(cols []Column, projectID uuid.UUID) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out
}

// NextPosition returns the position a newly appended column should take:
// one past the current maximum, or 0 for an empty board.
func NextPosition(cols []Column) int {
	if len(cols) == 0 {
		return 0
	}
	return slices.MaxFunc(cols, func(a, b Column) int {
		return cmp.Compare(a.Position, b.Position)
	}).Position + 1
}
