package formatter

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "Basic table formatting",
			header: []string{"Header 1", "Header 2"},
			rows:   [][]string{{"val 1", "val 2"}},
			expected: `
| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |
`,
		},
		{
			name:   "Short cells keep minimum width",
			header: []string{"H1", "H2"},
			rows:   [][]string{{"v1", "v2"}},
			expected: `
| H1  | H2  |
| --- | --- |
| v1  | v2  |
`,
		},
		{
			name:   "Trim spaces in cells",
			header: []string{"  Col A ", "Col B"},
			rows:   [][]string{{"   val A   ", " val B"}},
			expected: `
| Col A | Col B |
| ----- | ----- |
| val A | val B |
`,
		},
		{
			name:   "Ragged rows",
			header: []string{"City", "Count"},
			rows:   [][]string{{"Paris"}, {"Lyon", "2"}},
			expected: `
| City  | Count |
| ----- | ----- |
| Paris |       |
| Lyon  | 2     |
`,
		},
		{
			name:   "Mixed CJK and ASCII",
			header: []string{"City", "Count"},
			rows:   [][]string{{"香港", "12"}, {"Springfield", "3"}},
			expected: `
| City        | Count |
| ----------- | ----- |
| 香港        | 12    |
| Springfield | 3     |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(FormatTable(tt.header, tt.rows), "\n")

			if got != strings.TrimSpace(tt.expected) {
				t.Errorf("FormatTable() = \n%v\nwant \n%v", got, tt.expected)
			}
		})
	}
}

func TestFormatTable_Empty(t *testing.T) {
	if got := FormatTable(nil, nil); got != nil {
		t.Errorf("FormatTable(nil, nil) = %v, want nil", got)
	}
}
