// Package normalizer validates raw user records and turns them into normalized records.
package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"userclean/internal/models"
)

// DefaultChunkSize is used when a non-positive chunk size is requested.
const DefaultChunkSize = 1000

// ErrUnknownStrategy is returned when a strategy name is not recognized.
var ErrUnknownStrategy = errors.New("unknown cleaning strategy: expected 'chunked' or 'whole'")

// Strategy selects how a batch is cleaned.
type Strategy int

// Cleaning strategies. Both produce identical output.
const (
	StrategyChunked Strategy = iota
	StrategyWhole
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyWhole:
		return "whole"
	default:
		return "chunked"
	}
}

// ParseStrategy parses a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chunked", "chunk":
		return StrategyChunked, nil
	case "whole", "array":
		return StrategyWhole, nil
	default:
		return StrategyChunked, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Processor cleans batches of raw records.
type Processor struct {
	strategy  Strategy
	chunkSize int
}

// NewProcessor creates a new processor instance.
func NewProcessor(strategy Strategy, chunkSize int) *Processor {
	return &Processor{
		strategy:  strategy,
		chunkSize: chunkSize,
	}
}

// Strategy returns the configured strategy.
func (p *Processor) Strategy() Strategy {
	return p.strategy
}

// Clean normalizes raw and keeps accepted records in input order.
func (p *Processor) Clean(raw []models.RawRecord) []models.NormalizedRecord {
	if p.strategy == StrategyWhole {
		return CleanAll(raw)
	}

	return CleanChunked(raw, p.chunkSize)
}

// CleanAll normalizes the whole collection, then filters it.
func CleanAll(raw []models.RawRecord) []models.NormalizedRecord {
	normalized := make([]models.NormalizedRecord, len(raw))
	for i, r := range raw {
		normalized[i] = NormalizeUser(r)
	}

	out := normalized[:0]
	for _, rec := range normalized {
		if Accept(rec) {
			out = append(out, rec)
		}
	}

	return out
}

// CleanChunked walks raw in contiguous slices of chunkSize, appending accepted
// records to a single output. Chunking bounds the working set only; the result
// equals CleanAll(raw).
func CleanChunked(raw []models.RawRecord, chunkSize int) []models.NormalizedRecord {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	out := make([]models.NormalizedRecord, 0)

	for start := 0; start < len(raw); start += chunkSize {
		end := min(start+chunkSize, len(raw))
		for _, r := range raw[start:end] {
			rec := NormalizeUser(r)
			if Accept(rec) {
				out = append(out, rec)
			}
		}
	}

	return out
}
