package ticket

import (
	"fmt"
	"sort"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

// Patch is a partial update of a ticket's editable text fields. Nil fields
// are left unchanged.
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PatchFromMap builds a Patch from loosely typed input such as a decoded JSON
// object. Unknown fields and non-string values are rejected with a
// *domain.ValidationError naming every offending field.
func PatchFromMap(raw map[string]any) (Patch, error) {
	var p Patch
	fields := make(map[string]string)

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var dst **string
		switch k {
		case "title":
			dst = &p.Title
		case "description":
			dst = &p.Description
		default:
			fields[k] = "unknown field"
			continue
		}

		s, ok := raw[k].(string)
		if !ok {
			fields[k] = fmt.Sprintf("must be a string, got %T", raw[k])
			continue
		}
		*dst = &s
	}

	if err := domain.FieldsError(fields); err != nil {
		return Patch{}, err
	}
	return p, nil
}

// IsEmpty reports whether the patch sets no fields.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}

// Change records one field's old and new value.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Apply returns a copy of t with the patch applied and the fields that
// actually changed, keyed by JSON field name. Setting a field to its
// current value is not a change.
func (p Patch) Apply(t Ticket) (Ticket, map[string]Change) {
	next := t.Clone()
	changes := make(map[string]Change)

	if p.Title != nil && *p.Title != t.Title {
		changes["title"] = Change{From: t.Title, To: *p.Title}
		next.Title = *p.Title
	}
	if p.Description != nil && *p.Description != t.Description {
		changes["description"] = Change{From: t.Description, To: *p.Description}
		next.Description = *p.Description
	}
	return next, changes
}
