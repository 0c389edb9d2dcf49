package normalizer

import (
	"strings"

	"userclean/internal/models"
)

// NormalizeUser trims and lowercases the email, trims the address and splits
// the name. It always returns a record; use Accept to decide whether to keep it.
func NormalizeUser(raw models.RawRecord) models.NormalizedRecord {
	email := strings.ToLower(trimSpace(string(raw.Email)))
	address := trimSpace(string(raw.Address))
	name := ParseName(string(raw.Name))

	return models.NormalizedRecord{
		FirstName: name.FirstName,
		LastName:  name.LastName,
		Email:     email,
		Address:   address,
	}
}
