package formatter

import (
	"bytes"
	"strings"
	"testing"

	"userclean/internal/models"
)

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		10000:   "10,000",
		1234567: "1,234,567",
	}

	for in, want := range tests {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	report := models.Report{
		Total:      12000,
		TopDomains: []models.RankedEntry{{Key: "example.com", Count: 7000}, {Key: "x.org", Count: 5}},
		TopCities:  nil,
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, report); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	got := buf.String()

	wantParts := []string{
		"SUMMARY REPORT",
		"Total valid users: 12,000",
		"Top Email Domains:",
		"| Domain      | Count |",
		"| ----------- | ----- |",
		"| example.com | 7,000 |",
		"| x.org       | 5     |",
		"Top Cities:\n(none)",
	}

	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("report missing %q\n%s", part, got)
		}
	}
}

func TestWriteReportJSON(t *testing.T) {
	report := models.Report{
		Total:      3,
		TopDomains: []models.RankedEntry{{Key: "example.com", Count: 2}, {Key: "a&b.org", Count: 1}},
	}

	var buf bytes.Buffer
	if err := WriteReportJSON(&buf, report); err != nil {
		t.Fatalf("WriteReportJSON failed: %v", err)
	}

	want := `{
  "total": 3,
  "topDomains": [
    [
      "example.com",
      2
    ],
    [
      "a&b.org",
      1
    ]
  ],
  "topCities": []
}
`
	if buf.String() != want {
		t.Errorf("WriteReportJSON() =\n%s\nwant\n%s", buf.String(), want)
	}
}
