// Package board defines workflow columns and the ordering rules over a
// project's columns. Columns are ordered by Position; the lowest position
// is the project's initial column, where new tickets land by default.
package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Column is an ordered lane on a project's board.
type Column struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Name      string    `json:"name" validate:"notblank,max=100"`
	Position  int       `json:"position" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Validate checks the Column schema.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Column) Validate() error {
	return domain.Validate(c)
}
