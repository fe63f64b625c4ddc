package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

// Options controls report contents.
type Options struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// Correlations computes the correlation matrix across numeric columns.
	Correlations bool
	// TopPairs limits the listed correlation pairs.
	TopPairs int
}

// DefaultOptions returns reasonable defaults for a dataset report.
func DefaultOptions() Options {
	return Options{SampleRows: 5, Correlations: true, TopPairs: 10}
}

// Report is a markdown-friendly summary of a movie table.
type Report struct {
	Name     string
	Rows     int
	Cols     []ColumnSummary
	Corr     *CorrMatrix
	Samples  []*dataset.Movie
	Warnings []string
	opt      Options
}

// BuildReport summarizes a loaded table.
func BuildReport(name string, t *dataset.Table, opt Options) *Report {
	r := &Report{Name: name, Rows: len(t.Movies), opt: opt}
	r.Cols = ColumnSummaries(t.Movies, t.Columns)
	if opt.Correlations {
		m := CorrelationMatrix(t.Movies, t.Columns)
		if len(m.Columns) >= 2 {
			r.Corr = &m
		}
	}
	n := opt.SampleRows
	if n > len(t.Movies) {
		n = len(t.Movies)
	}
	if n > 0 {
		r.Samples = t.Movies[:n]
	}
	for _, c := range r.Cols {
		if c.Kind != dataset.KindFlag && c.NonMissing == 0 && r.Rows > 0 {
			r.Warnings = append(r.Warnings, fmt.Sprintf("column %s has no usable values", safeName(c.Name)))
		}
	}
	return r
}

// Markdown renders a compact report suitable for assignment write-ups.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonMissing + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-missing %d, missing %.1f%%)", safeName(c.Name), c.Kind, c.NonMissing, missPct))
		switch {
		case c.Kind == dataset.KindFlag:
			b.WriteString(fmt.Sprintf(" — %d flags", len(c.Flags)))
		case c.Kind.Numeric() && c.NonMissing > 0:
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Median, c.Std))
		case c.Kind == dataset.KindCategorical && len(c.Sample) > 0:
			b.WriteString(" — e.g., ")
			for i, v := range c.Sample {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(safeVal(truncate(v, 40)))
			}
			if c.Unique > len(c.Sample) {
				b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
			}
		}
		b.WriteString("\n")
	}

	for _, c := range r.Cols {
		if c.Kind != dataset.KindFlag || len(c.Flags) == 0 {
			continue
		}
		b.WriteString("\n[FLAGS]\n")
		for _, f := range c.Flags {
			b.WriteString(fmt.Sprintf("- %s: %d/%d\n", f.Column, f.True, f.NonMissing))
		}
	}

	if r.Corr != nil {
		b.WriteString("\n[CORRELATIONS]\n")
		for _, p := range r.Corr.TopPairs(r.opt.TopPairs) {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R))
		}
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| Title | Year | Genres | Rating | Meta |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, m := range r.Samples {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				safeVal(truncate(m.Title, 80)), fmtFloat(m.Year, "%.0f"),
				safeVal(strings.Join(m.Genres, ", ")), fmtFloat(m.Rating, "%.1f"), fmtFloat(m.MetaScore, "%.0f")))
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func fmtFloat(f dataset.Float, format string) string {
	if !f.Valid {
		return "–"
	}
	return fmt.Sprintf(format, f.V)
}

// truncate shortens s to at most n runes, never splitting a character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
