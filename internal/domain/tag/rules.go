package tag

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a tag name: NFKC normalization, surrounding
// whitespace trimmed, interior whitespace runs collapsed to one space, and
// Unicode case folding. "  Back\tEnd " and "back end" normalize equally.
func Normalize(name string) string {
	s := norm.NFKC.String(name)
	s = strings.Join(strings.Fields(s), " ")
	// Casers carry state and must not be shared between goroutines.
	return cases.Fold().String(s)
}

// NormalizeAll normalizes names and drops duplicates and blanks. The first
// occurrence of each normalized name wins.
func NormalizeAll(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = Normalize(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// HasName reports whether names contains name under normalized equality.
func HasName(names []string, name string) bool {
	want := Normalize(name)
	return slices.ContainsFunc(names, func(n string) bool {
		return Normalize(n) == want
	})
}

// Find returns the tag whose name equals name under normalized equality.
func Find(tags []Tag, name string) (Tag, bool) {
	want := Normalize(name)
	for _, t := range tags {
		if Normalize(t.Name) == want {
			return t, true
		}
	}
	return Tag{}, false
}

// ForProject returns the tags that belong to projectID, in input order.
func ForProject(tags []Tag, projectID uuid.UUID) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// AddID returns a new list with id appended, and whether the list changed.
// Adding an id that is already present is a no-op.
func AddID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	if slices.Contains(ids, id) {
		return slices.Clone(ids), false
	}
	out := make([]uuid.UUID, len(ids), len(ids)+1)
	copy(out, ids)
	return append(out, id), true
}

// RemoveID returns a new list without id, and whether the list changed.
// Removing an absent id is a no-op.
func RemoveID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	if !slices.Contains(ids, id) {
		return slices.Clone(ids), false
	}
	out := make([]uuid.UUID, 0, len(ids)-1)
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out, true
}
