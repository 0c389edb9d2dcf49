// Package models defines data structures for the cleaner and stats report.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Field is a raw input value coerced to a string.
// Decoding never fails: strings are kept as-is, null, false, zero and
// composite values become "", other numbers keep their literal text.
type Field string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	*f = Field(coerce(data))
	return nil
}

func coerce(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}

		return s
	case 't':
		return "true"
	case 'f', 'n', '[', '{':
		return ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return ""
		}

		if f, err := n.Float64(); err == nil && f == 0 {
			return ""
		}

		return n.String()
	}
}

// RawRecord is an untrusted user record as read from the input file.
type RawRecord struct {
	Name    Field `json:"name"`
	Email   Field `json:"email"`
	Address Field `json:"address"`
}

// UnmarshalJSON decodes a record, treating any non-object value as an empty record.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	*r = RawRecord{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	var fields map[string]Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	r.Name = fields["name"]
	r.Email = fields["email"]
	r.Address = fields["address"]

	return nil
}

// NormalizedRecord is a validated, canonicalized user record.
type NormalizedRecord struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// FullName joins first and last name.
func (n NormalizedRecord) FullName() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

// Raw returns the record in its raw input shape.
func (n NormalizedRecord) Raw() RawRecord {
	return RawRecord{
		Name:    Field(n.FullName()),
		Email:   Field(n.Email),
		Address: Field(n.Address),
	}
}
