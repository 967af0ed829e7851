package ticket

import (
	"regexp"
	"strconv"

	"github.com/jsamuelsen11/ticketcore/internal/domain"
)

var (
	keyRe     = regexp.MustCompile(`^(` + domain.PrefixPattern + `)-(\d+)$`)
	mentionRe = regexp.MustCompile(`\b(` + domain.PrefixPattern + `)-(\d+)\b`)
)

// Key is a parsed ticket key.
type Key struct {
	Prefix string
	Number int
}

// String formats the key as PREFIX-NUMBER.
func (k Key) String() string {
	return GenerateKey(k.Prefix, k.Number)
}

// GenerateKey returns the human-facing ticket key for a project prefix and a
// per-project sequence number. prefix must already be a valid project prefix.
func GenerateKey(prefix string, number int) string {
	return prefix + "-" + strconv.Itoa(number)
}

// ParseKey splits a ticket key into its prefix and number. It returns false
// when key is not a ticket reference; callers scanning free text treat that
// as "not a ticket", not as an error.
func ParseKey(key string) (Key, bool) {
	m := keyRe.FindStringSubmatch(key)
	if m == nil {
		return Key{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		// Out of int range.
		return Key{}, false
	}
	return Key{Prefix: m[1], Number: n}, true
}

// FindKeyMentions returns the ticket keys referenced in text, in order of
// first appearance and without duplicates.
func FindKeyMentions(text string) []Key {
	matches := mentionRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	keys := make([]Key, 0, len(matches))
	seen := make(map[Key]struct{}, len(matches))
	for _, m := range matches {
		k, ok := ParseKey(m)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
