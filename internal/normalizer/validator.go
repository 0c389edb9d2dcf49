package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"userclean/internal/models"
)

// ws matches whitespace the way a Unicode-aware \s does: ASCII whitespace,
// vertical tab, the byte order mark and every separator in category Z.
const ws = `\s\v\x{FEFF}\p{Z}`

// isSpace reports whether r is in the ws class.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}

	return unicode.Is(unicode.Z, r)
}

// trimSpace trims leading and trailing runes of the ws class.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// emailPattern is local-part@domain.tld with no whitespace or extra '@'.
var emailPattern = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)

// IsValidEmail reports whether candidate has a local-part@domain.tld shape.
// It performs no DNS or deliverability checks.
func IsValidEmail(candidate string) bool {
	return emailPattern.MatchString(candidate)
}

// Accept reports whether rec has a first name, an address and a valid email.
// Both cleaning strategies filter with it.
func Accept(rec models.NormalizedRecord) bool {
	return rec.FirstName != "" &&
		rec.Email != "" &&
		rec.Address != "" &&
		IsValidEmail(rec.Email)
}
