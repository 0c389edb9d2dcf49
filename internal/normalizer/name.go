package normalizer

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// letters is a run of letters, each optionally followed by combining marks.
const letters = `(?:\p{L}\p{M}*)+`

// namePattern captures an optional "Title." token, the core first name and
// the rest of the line after the next whitespace run.
var namePattern = regexp.MustCompile(
	`^(?:(` + letters + `\.))?[` + ws + `]*(` + letters + `)(?:[` + ws + `]+([^\n\r\x{2028}\x{2029}]*))?$`)

// ParsedName is the result of splitting a full name.
type ParsedName struct {
	FirstName string
	LastName  string
}

// ParseName splits fullName into first and last name. A leading title is kept
// as part of the first name ("Dr. Jane"). Names that do not start with a
// letter-only token yield an empty result.
//
// The first name is NFC-composed; the last name is kept as written, trimmed.
func ParseName(fullName string) ParsedName {
	s := trimSpace(fullName)
	if s == "" {
		return ParsedName{}
	}

	m := namePattern.FindStringSubmatch(s)
	if m == nil {
		return ParsedName{}
	}

	title, core, rest := m[1], m[2], m[3]

	first := norm.NFC.String(core)
	if title != "" {
		first = norm.NFC.String(title) + " " + first
	}

	return ParsedName{
		FirstName: first,
		LastName:  trimSpace(rest),
	}
}
