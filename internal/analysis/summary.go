// Package analysis is the aggregation engine: pure functions from typed
// movie rows to chart-ready structures.
//
// Missing or malformed values were already turned into absent values at the
// load boundary. Every function here drops rows whose required values are
// absent and never returns an error; an empty input yields an empty result.
package analysis

import (
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/stats"
)

// SampleLimit bounds the distinct-value sample kept for categorical columns.
const SampleLimit = 8

// FlagSetName names the synthetic summary entry that groups all flag columns.
const FlagSetName = "flags"

// ColumnSummary captures the inferred type and statistics of a column.
type ColumnSummary struct {
	Name       string       `json:"name"`
	Kind       dataset.Kind `json:"kind"`
	NonMissing int          `json:"non_missing"`
	Missing    int          `json:"missing"`
	// Numeric stats (continuous and temporal columns).
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	// Categorical columns: distinct count and first distinct values in
	// encounter order.
	Unique int      `json:"unique,omitempty"`
	Sample []string `json:"sample,omitempty"`
	// Flag set entry only.
	Flags []FlagCount `json:"flags,omitempty"`
}

// FlagCount is the true-count of one derived flag column.
type FlagCount struct {
	Column     string `json:"column"`
	True       int    `json:"true"`
	NonMissing int    `json:"non_missing"`
}

// ColumnSummaries computes one summary per column in order. Flag columns are
// folded into a single FlagSetName entry placed where the first flag column
// appears. A column with no present values reports NonMissing 0 and zeroed
// stats.
func ColumnSummaries(movies []*dataset.Movie, columns []dataset.Column) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(columns))
	flagIdx := -1
	for _, c := range columns {
		switch {
		case c.Kind == dataset.KindFlag:
			if flagIdx < 0 {
				flagIdx = len(out)
				out = append(out, ColumnSummary{Name: FlagSetName, Kind: dataset.KindFlag})
			}
			fc := flagCount(movies, c.Name)
			s := &out[flagIdx]
			s.Flags = append(s.Flags, fc)
			if fc.NonMissing > s.NonMissing {
				s.NonMissing = fc.NonMissing
			}
			s.Missing = len(movies) - s.NonMissing
		case c.Kind.Numeric():
			out = append(out, numericSummary(movies, c))
		default:
			out = append(out, categoricalSummary(movies, c))
		}
	}
	return out
}

func numericSummary(movies []*dataset.Movie, c dataset.Column) ColumnSummary {
	vals := numbers(movies, c.Name)
	s := ColumnSummary{Name: c.Name, Kind: c.Kind, NonMissing: len(vals), Missing: len(movies) - len(vals)}
	if len(vals) == 0 {
		return s
	}
	s.Min, s.Max = stats.Bounds(vals)
	s.Mean = stats.Mean(vals)
	s.Median = stats.Median(vals)
	s.Std = stats.StdDev(vals)
	return s
}

func categoricalSummary(movies []*dataset.Movie, c dataset.Column) ColumnSummary {
	s := ColumnSummary{Name: c.Name, Kind: c.Kind}
	seen := map[string]bool{}
	for _, m := range movies {
		v := m.Text(c.Name)
		if v == "" {
			s.Missing++
			continue
		}
		s.NonMissing++
		if seen[v] {
			continue
		}
		seen[v] = true
		if len(s.Sample) < SampleLimit {
			s.Sample = append(s.Sample, v)
		}
	}
	s.Unique = len(seen)
	return s
}

func flagCount(movies []*dataset.Movie, col string) FlagCount {
	fc := FlagCount{Column: col}
	for _, m := range movies {
		v, ok := m.Flag(col)
		if !ok {
			continue
		}
		fc.NonMissing++
		if v {
			fc.True++
		}
	}
	return fc
}

// numbers collects the present values of a numeric column.
func numbers(movies []*dataset.Movie, col string) []float64 {
	vals := make([]float64, 0, len(movies))
	for _, m := range movies {
		if v, ok := m.Number(col); ok {
			vals = append(vals, v)
		}
	}
	return vals
}
