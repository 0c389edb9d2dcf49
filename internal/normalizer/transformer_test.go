package normalizer

import (
	"encoding/json"
	"testing"

	"userclean/internal/models"
)

func TestNormalizeUser(t *testing.T) {
	raw := models.RawRecord{
		Name:    "  Dr. Jane   Smith ",
		Email:   " JANE.Smith@Example.COM ",
		Address: "  42 Elm St, Shelbyville  ",
	}

	got := NormalizeUser(raw)

	want := models.NormalizedRecord{
		FirstName: "Dr. Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
		Address:   "42 Elm St, Shelbyville",
	}

	if got != want {
		t.Errorf("NormalizeUser() = %+v, want %+v", got, want)
	}
}

func TestNormalizeUser_TrimsUnicodeWhitespace(t *testing.T) {
	raw := models.RawRecord{
		Name:    "\uFEFFAnn Lee",
		Email:   "\uFEFFann@x.com\u00a0",
		Address: "\u3000 1 Main St, Springfield\uFEFF",
	}

	got := NormalizeUser(raw)

	want := models.NormalizedRecord{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Address:   "1 Main St, Springfield",
	}

	if got != want {
		t.Errorf("NormalizeUser() = %+v, want %+v", got, want)
	}

	if !Accept(got) {
		t.Errorf("Accept(%+v) = false, want true", got)
	}
}

func TestNormalizeUser_NeverFails(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"name": null, "email": null, "address": null}`,
		`{"name": 42, "email": true, "address": ["x"]}`,
		`{"name": {"first": "Ann"}, "email": 0, "address": false}`,
		`"just a string"`,
		`17`,
		`null`,
	}

	for _, in := range inputs {
		var raw models.RawRecord
		if err := json.Unmarshal([]byte(in), &raw); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", in, err)
		}

		got := NormalizeUser(raw)
		if Accept(got) {
			t.Errorf("NormalizeUser(%s) accepted %+v", in, got)
		}
	}
}

func TestNormalizeUser_Idempotent(t *testing.T) {
	raws := []models.RawRecord{
		{Name: "Ann Lee", Email: " ANN@Example.COM ", Address: "1 Main St, Springfield"},
		{Name: "Dr. Jane Smith", Email: "jane@x.org", Address: "2 Oak Ave, Capital City"},
		{Name: "Mrs.Jane   van der Berg", Email: "J@X.NL", Address: "Canal 1, Amsterdam"},
		{Name: "Madonna", Email: "m@pop.com", Address: "Somewhere"},
		{Name: "", Email: "bad", Address: "X"},
	}

	for _, raw := range raws {
		once := NormalizeUser(raw)
		twice := NormalizeUser(once.Raw())

		if once != twice {
			t.Errorf("NormalizeUser not idempotent for %+v: %+v != %+v", raw, once, twice)
		}
	}
}
