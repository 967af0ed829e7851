// Package user defines the User schema.
package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// User is a person who can act on tickets and be assigned to them.
type User struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Email       string    `json:"email" validate:"required,email,max=254"`
	DisplayName string    `json:"display_name" validate:"notblank,max=100"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
}

// Validate checks the User schema.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (u *User) Validate() error {
	return domain.Validate(u)
}
