package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidRankedEntry is returned when a ranked entry is not a [key, count] pair.
var ErrInvalidRankedEntry = errors.New("ranked entry must be a [key, count] pair")

// FrequencyTable maps a non-empty key (domain or city) to its count.
type FrequencyTable map[string]int

// Add increments key by one. Empty keys are ignored.
func (t FrequencyTable) Add(key string) {
	if key == "" {
		return
	}

	t[key]++
}

// RankedEntry is a single key with its count.
type RankedEntry struct {
	Key   string
	Count int
}

// MarshalJSON encodes the entry as a [key, count] pair.
func (e RankedEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Key, e.Count})
}

// UnmarshalJSON decodes a [key, count] pair.
func (e *RankedEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankedEntry, err)
	}

	if len(pair) != 2 {
		return ErrInvalidRankedEntry
	}

	if err := json.Unmarshal(pair[0], &e.Key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankedEntry, err)
	}

	if err := json.Unmarshal(pair[1], &e.Count); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankedEntry, err)
	}

	return nil
}

// Report holds the summary printed in stats mode.
type Report struct {
	Total      int           `json:"total"`
	TopDomains []RankedEntry `json:"topDomains"`
	TopCities  []RankedEntry `json:"topCities"`
}
