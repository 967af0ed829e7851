// Package org defines the tenant root (Org) and the org-user join
// (Membership) with its access level.
package org

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Role is a member's access level within an org.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Org is a tenant. Every project belongs to exactly one org.
type Org struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"notblank,max=100"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
	UpdatedAt time.Time `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// Validate checks the Org schema.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (o *Org) Validate() error {
	return domain.Validate(o)
}

// Membership grants a user access to an org.
type Membership struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	OrgID     uuid.UUID `json:"org_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Validate checks the Membership schema.
func (m *Membership) Validate() error {
	fields := domain.Violations(m)
	if !m.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", m.Role)
	}
	return domain.FieldsError(fields)
}

// Grants reports whether m is a membership of userID in orgID.
func (m *Membership) Grants(orgID, userID uuid.UUID) bool {
	return m != nil && m.OrgID == orgID && m.UserID == userID
}
