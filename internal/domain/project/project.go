// Package project defines the Project schema. A project's prefix feeds the
// ticket key codec in domain/ticket.
package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Project groups tickets, workflow columns and tags inside an org.
type Project struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	OrgID     uuid.UUID `json:"org_id" validate:"required"`
	Name      string    `json:"name" validate:"notblank,max=100"`
	Prefix    string    `json:"prefix" validate:"required,max=10,prefix"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
	UpdatedAt time.Time `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// Validate checks the Project schema.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	return domain.Validate(p)
}
