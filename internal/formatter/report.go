package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"userclean/internal/models"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators ("10,000").
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatReport renders the summary report.
func FormatReport(report models.Report) string {
	var sb strings.Builder

	sb.WriteString("\nSUMMARY REPORT\n")
	sb.WriteString(fmt.Sprintf("Total valid users: %s\n", FormatCount(report.Total)))

	sb.WriteString("\nTop Email Domains:\n")
	writeRanked(&sb, "Domain", report.TopDomains)

	sb.WriteString("\nTop Cities:\n")
	writeRanked(&sb, "City", report.TopCities)

	sb.WriteString("\n")

	return sb.String()
}

// WriteReport writes the summary report to w.
func WriteReport(w io.Writer, report models.Report) error {
	_, err := io.WriteString(w, FormatReport(report))
	return err
}

// WriteReportJSON writes the report as indented JSON. Ranked entries are
// encoded as [key, count] pairs.
func WriteReportJSON(w io.Writer, report models.Report) error {
	if report.TopDomains == nil {
		report.TopDomains = []models.RankedEntry{}
	}

	if report.TopCities == nil {
		report.TopCities = []models.RankedEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

func writeRanked(sb *strings.Builder, keyHeader string, entries []models.RankedEntry) {
	if len(entries) == 0 {
		sb.WriteString("(none)\n")
		return
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Key, FormatCount(e.Count)}
	}

	for _, line := range FormatTable([]string{keyHeader, "Count"}, rows) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
