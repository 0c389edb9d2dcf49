// Package stats aggregates email domains and cities over normalized records.
package stats

import (
	"cmp"
	"slices"
	"strings"

	"userclean/internal/models"
)

// DefaultTopN is the number of entries shown per table in the summary report.
const DefaultTopN = 10

// Stats holds the frequency tables built from one collection.
type Stats struct {
	DomainCount models.FrequencyTable
	CityCount   models.FrequencyTable
}

// GenerateStats counts email domains and address-derived cities.
func GenerateStats(records []models.NormalizedRecord) Stats {
	s := Stats{
		DomainCount: models.FrequencyTable{},
		CityCount:   models.FrequencyTable{},
	}

	for _, rec := range records {
		s.DomainCount.Add(Domain(rec.Email))
		s.CityCount.Add(City(rec.Address))
	}

	return s
}

// Domain returns the trimmed text after the first '@', or "" when there is none.
func Domain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}

	return strings.TrimSpace(domain)
}

// City returns the last non-empty comma-separated segment of address, trimmed.
// An address without commas is treated as the city itself.
func City(address string) string {
	parts := strings.Split(address, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		if city := strings.TrimSpace(parts[i]); city != "" {
			return city
		}
	}

	return ""
}

// TopN returns the n entries with the highest counts, descending. Equal counts
// are ordered by key so the result is deterministic. The table is not modified.
func TopN(table models.FrequencyTable, n int) []models.RankedEntry {
	if n <= 0 {
		return []models.RankedEntry{}
	}

	entries := make([]models.RankedEntry, 0, len(table))
	for key, count := range table {
		entries = append(entries, models.RankedEntry{Key: key, Count: count})
	}

	slices.SortFunc(entries, func(a, b models.RankedEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return strings.Compare(a.Key, b.Key)
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

// BuildReport aggregates records and keeps the top n domains and cities.
func BuildReport(records []models.NormalizedRecord, n int) models.Report {
	s := GenerateStats(records)

	return models.Report{
		Total:      len(records),
		TopDomains: TopN(s.DomainCount, n),
		TopCities:  TopN(s.CityCount, n),
	}
}
