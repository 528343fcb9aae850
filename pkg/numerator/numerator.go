// Package numerator formats and parses human-facing document numbers.
//
// Numbers look like PREFIX-00000001: a series prefix, a dash and a
// zero-padded sequence. Where the sequence comes from is up to the caller.
package numerator

import (
	"fmt"
	"strings"
)

// DefaultPadWidth is the sequence width used by printed receipts and invoices.
const DefaultPadWidth = 8

// Config describes one numbering series.
type Config struct {
	// Prefix identifies the series (e.g., "B001", "F001")
	Prefix string

	// PadWidth is the minimum sequence width (default 8)
	PadWidth int
}

// DefaultConfig returns a series with the default pad width.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:   prefix,
		PadWidth: DefaultPadWidth,
	}
}

// Format creates the final number string for sequence seq.
func Format(cfg Config, seq int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = DefaultPadWidth
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, seq)
}

// Next returns the number following existing documents of the series.
func Next(cfg Config, existing int) string {
	return Format(cfg, int64(existing)+1)
}

// ParseNumber extracts the prefix and numeric part from a formatted number.
// Returns -1 if parsing fails.
func ParseNumber(formatted string) (prefix string, seq int64) {
	i := strings.LastIndex(formatted, "-")
	if i <= 0 || i == len(formatted)-1 {
		return "", -1
	}

	digits := formatted[i+1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", -1
		}
	}
	if _, err := fmt.Sscanf(digits, "%d", &seq); err != nil {
		return "", -1
	}
	return formatted[:i], seq
}
