package normalizer

import "testing"

func TestParseName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{name: "First and last", input: "Ann Lee", wantFirst: "Ann", wantLast: "Lee"},
		{name: "Title kept", input: "Dr. Jane Smith", wantFirst: "Dr. Jane", wantLast: "Smith"},
		{name: "Title without space", input: "Mrs.Jane Smith", wantFirst: "Mrs. Jane", wantLast: "Smith"},
		{name: "Single word", input: "Madonna", wantFirst: "Madonna", wantLast: ""},
		{name: "Empty", input: "", wantFirst: "", wantLast: ""},
		{name: "Whitespace only", input: "   \t ", wantFirst: "", wantLast: ""},
		{name: "Title only", input: "Dr.", wantFirst: "", wantLast: ""},
		{name: "Title and space only", input: "Dr. ", wantFirst: "", wantLast: ""},
		{name: "Multi-word last name", input: "Anna van der Berg", wantFirst: "Anna", wantLast: "van der Berg"},
		{name: "Surrounding whitespace", input: "  Ann   Lee  ", wantFirst: "Ann", wantLast: "Lee"},
		{name: "Accented letters", input: "José Álvarez", wantFirst: "José", wantLast: "Álvarez"},
		{name: "Decomposed accent", input: "Jose\u0301 Alvarez", wantFirst: "Jos\u00e9", wantLast: "Alvarez"},
		{name: "Cyrillic", input: "Иван Петров", wantFirst: "Иван", wantLast: "Петров"},
		{name: "CJK", input: "王 小明", wantFirst: "王", wantLast: "小明"},
		{name: "Leading digit", input: "3 Stooges", wantFirst: "", wantLast: ""},
		{name: "Hyphenated first name", input: "Jean-Luc Picard", wantFirst: "", wantLast: ""},
		{name: "Suffix kept in last name", input: "Martin Luther King Jr.", wantFirst: "Martin", wantLast: "Luther King Jr."},
		{name: "No-break space separator", input: "Ann\u00a0Lee", wantFirst: "Ann", wantLast: "Lee"},
		{name: "Decomposed last name kept as written", input: "Jose Alvare\u0301z", wantFirst: "Jose", wantLast: "Alvare\u0301z"},
		{name: "Decomposed title", input: "Se\u0301n. Ana Ruiz", wantFirst: "S\u00e9n. Ana", wantLast: "Ruiz"},
		{name: "Byte order mark trimmed", input: "\uFEFFAnn Lee\uFEFF", wantFirst: "Ann", wantLast: "Lee"},
		{name: "Carriage return in last name", input: "Ann Lee\rSmith", wantFirst: "", wantLast: ""},
		{name: "Line separator in last name", input: "Ann Lee\u2028Smith", wantFirst: "", wantLast: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseName(tt.input)
			if got.FirstName != tt.wantFirst || got.LastName != tt.wantLast {
				t.Errorf("ParseName(%q) = {%q, %q}, want {%q, %q}",
					tt.input, got.FirstName, got.LastName, tt.wantFirst, tt.wantLast)
			}
		})
	}
}
