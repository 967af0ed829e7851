package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the set of attribute names (lowercase) whose values are
// personal data or credentials and must be redacted before logging.
var SensitiveFields = map[string]bool{
	"email":         true,
	"password":      true,
	"token":         true,
	"authorization": true,
}

// emailPattern matches raw email addresses inside arbitrary string values,
// such as wrapped error messages.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>"
// patterns that may appear in arbitrary string fields.
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveFields set (1 prefix + 3 regexes).
const fixedRedactOptions = 4

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveFields))

	for name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		// Prefix-based redaction for variations like "secret_key".
		masq.WithFieldPrefix("secret"),

		masq.WithRegex(emailPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
