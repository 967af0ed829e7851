// Package tag defines project-scoped tags and the rules for canonicalizing
// tag names and maintaining de-duplicated tag-id lists on tickets.
//
// Tag names are stored in normalized form (see Normalize), so two names are
// the same tag exactly when their normalized forms are equal.
package tag

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// MaxNameLength is the maximum length of a normalized tag name, in runes.
const MaxNameLength = 50

// Tag is a label that can be attached to tickets of one project.
type Tag struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Name      string    `json:"name" validate:"notblank,max=50"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Validate checks the Tag schema, including that Name is already in
// normalized form.
func (t *Tag) Validate() error {
	fields := domain.Violations(t)
	if _, bad := fields["name"]; !bad && Normalize(t.Name) != t.Name {
		fields["name"] = "must be normalized"
	}
	return domain.FieldsError(fields)
}
