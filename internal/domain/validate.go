package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PrefixPattern is the unanchored form of a project prefix: an uppercase
// letter followed by uppercase letters or digits.
const PrefixPattern = `[A-Z][A-Z0-9]*`

var (
	prefixRe    = regexp.MustCompile(`^` + PrefixPattern + `$`)
	ticketKeyRe = regexp.MustCompile(`^` + PrefixPattern + `-\d+$`)
)

// validate is safe for concurrent use and caches struct metadata per type.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so field paths match what callers send and store.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "prefix", func(fl validator.FieldLevel) bool {
		return prefixRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "ticket_key", func(fl validator.FieldLevel) bool {
		return ticketKeyRe.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

// Violations runs the struct-tag constraints of s (a struct or pointer to
// struct) and returns the violated constraints keyed by field path. Only the
// first violated constraint of a field is kept, in tag order. The returned map
// is never nil so callers can add their own checks to it.
func Violations(s any) map[string]string {
	fields := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := fields[path]; !seen {
			fields[path] = message(fe)
		}
	}
	return fields
}

// Validate runs Violations and wraps any result in a *ValidationError.
func Validate(s any) error {
	return FieldsError(Violations(s))
}

// fieldPath drops the leading struct type name from a validator namespace
// ("Ticket.tag_ids[1]" -> "tag_ids[1]").
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return MsgRequired
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gtefield":
		return "must not be before " + snakeCase(fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "unique":
		return "must not contain duplicates"
	case "prefix":
		return "must start with an uppercase letter followed by uppercase letters or digits"
	case "ticket_key":
		return "must have the form PREFIX-NUMBER"
	default:
		return "failed " + fe.Tag() + " constraint"
	}
}

// snakeCase converts a Go field name used as a cross-field parameter
// ("CreatedAt") to its JSON form ("created_at").
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
