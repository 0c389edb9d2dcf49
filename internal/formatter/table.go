// Package formatter renders the stats report as aligned markdown tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps the separator row at least "---".
const minColumnWidth = 3

// FormatTable lays out header and rows as a markdown table whose columns are
// padded to the widest cell. Widths are measured in terminal cells, so wide
// CJK characters count as two.
func FormatTable(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return nil
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColumnWidth
	}

	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(strings.TrimSpace(cell)); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	result := make([]string, 0, len(rows)+2)
	result = append(result, formatRow(header, colWidths, false))
	result = append(result, formatRow(nil, colWidths, true))

	for _, row := range rows {
		result = append(result, formatRow(row, colWidths, false))
	}

	return result
}

func formatRow(row []string, colWidths []int, separator bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if separator {
			sb.WriteString(strings.Repeat("-", width))
		} else {
			content := ""
			if j < len(row) {
				content = strings.TrimSpace(row[j])
			}

			sb.WriteString(content)

			if padding := width - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
