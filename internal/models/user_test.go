package models

import (
	"encoding/json"
	"testing"
)

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Field
	}{
		{name: "String", input: `"Ann Lee"`, want: "Ann Lee"},
		{name: "Escaped string", input: `"José"`, want: "José"},
		{name: "Null", input: `null`, want: ""},
		{name: "Integer", input: `42`, want: "42"},
		{name: "Float", input: `4.5`, want: "4.5"},
		{name: "Zero", input: `0`, want: ""},
		{name: "True", input: `true`, want: "true"},
		{name: "False", input: `false`, want: ""},
		{name: "Array", input: `["a", "b"]`, want: ""},
		{name: "Object", input: `{"a": 1}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}

			if f != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, f, tt.want)
			}
		})
	}
}

func TestRawRecord_UnmarshalJSON(t *testing.T) {
	input := `[
		{"name": "Ann Lee", "email": "ann@example.com", "address": "1 Main St, Springfield", "extra": 1},
		{"email": 7},
		"not a record",
		null,
		[1, 2]
	]`

	var records []RawRecord
	if err := json.Unmarshal([]byte(input), &records); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}

	first := RawRecord{Name: "Ann Lee", Email: "ann@example.com", Address: "1 Main St, Springfield"}
	if records[0] != first {
		t.Errorf("records[0] = %+v, want %+v", records[0], first)
	}

	if records[1] != (RawRecord{Email: "7"}) {
		t.Errorf("records[1] = %+v, want only Email=7", records[1])
	}

	for i := 2; i < len(records); i++ {
		if records[i] != (RawRecord{}) {
			t.Errorf("records[%d] = %+v, want zero record", i, records[i])
		}
	}
}

func TestNormalizedRecord_Raw(t *testing.T) {
	rec := NormalizedRecord{FirstName: "Madonna", Email: "m@pop.com", Address: "Somewhere"}

	raw := rec.Raw()
	if raw.Name != "Madonna" {
		t.Errorf("Raw().Name = %q, want %q", raw.Name, "Madonna")
	}

	if raw.Email != "m@pop.com" || raw.Address != "Somewhere" {
		t.Errorf("Raw() = %+v, fields not carried over", raw)
	}
}

func TestRankedEntry_JSON(t *testing.T) {
	entries := []RankedEntry{{Key: "b", Count: 9}, {Key: "a", Count: 5}}

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	if string(data) != `[["b",9],["a",5]]` {
		t.Errorf("Marshal = %s, want [[\"b\",9],[\"a\",5]]", data)
	}

	var back []RankedEntry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if len(back) != 2 || back[0] != entries[0] || back[1] != entries[1] {
		t.Errorf("Unmarshal = %+v, want %+v", back, entries)
	}

	var bad RankedEntry
	if err := json.Unmarshal([]byte(`["only"]`), &bad); err == nil {
		t.Error("Unmarshal of single-element pair succeeded, want error")
	}
}

func TestFrequencyTable_Add(t *testing.T) {
	table := FrequencyTable{}
	table.Add("x")
	table.Add("x")
	table.Add("")

	if len(table) != 1 || table["x"] != 2 {
		t.Errorf("table = %v, want map[x:2]", table)
	}
}
