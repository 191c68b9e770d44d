package payment

import (
	"regexp"
	"strings"
)

var (
	honorificPrefix = regexp.MustCompile(`^(?i)(mr|mrs|ms|dr)\b\.?\s*`)
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// NormalizeReceiverName reduces an account holder name to a comparable form:
// a leading honorific (Mr, Mrs, Ms, Dr, with optional period) is stripped,
// everything that is not an ASCII letter or digit is dropped, and the result
// is upper-cased. The function is idempotent.
func NormalizeReceiverName(name string) string {
	s := strings.TrimSpace(name)
	s = honorificPrefix.ReplaceAllString(s, "")
	s = nonAlphanumeric.ReplaceAllString(s, "")
	return strings.ToUpper(strings.TrimSpace(s))
}
