package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SplitMultiValueSep separates tokens in multi-valued fields such as Genre.
const SplitMultiValueSep = ","

var durationPattern = regexp.MustCompile(`^\s*(\d+)\s*[A-Za-z]+\.?\s*$`)

// ParseDuration parses a leading integer followed by a unit token ("142 min").
// The number is returned as written; the unit is not converted.
func ParseDuration(text string) (float64, bool) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseGroupedNumber parses numbers that may carry digit-group separators
// ("28,341,469", "1 000"). Empty or non-numeric input is absent.
func ParseGroupedNumber(text string) (float64, bool) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return 0, false
	}
	raw = strings.NewReplacer(",", "", "_", "", " ", "", "\u00A0", "").Replace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// SplitMultiValue splits a delimiter-separated field and drops empty tokens.
// Order and duplicates are kept.
func SplitMultiValue(text string) []string {
	parts := strings.Split(text, SplitMultiValueSep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseFlag reads a derived boolean flag cell.
func ParseFlag(text string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "1.0", "true", "t", "yes", "y":
		return true, true
	case "0", "0.0", "false", "f", "no", "n":
		return false, true
	}
	return false, false
}
