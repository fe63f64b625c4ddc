package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

var summaryHeader = []string{"Series_Title", "Released_Year", "Runtime", "Genre", "IMDB_Rating", "Gross", "Director"}

func summaryTable(t *testing.T) *dataset.Table {
	return table(t, summaryHeader,
		[]string{"M1", "1990", "100 min", "Drama", "7.0", "", "Nolan"},
		[]string{"M2", "1995", "120 min", "Drama, Crime", "8.0", "", "Nolan"},
		[]string{"M3", "2000", "bad", "Comedy", "9.0", "", "Scott"},
		[]string{"M4", "2005", "90 min", "Drama", "6.0", "", ""},
	)
}

func TestColumnSummaries(t *testing.T) {
	tbl := summaryTable(t)
	sums := ColumnSummaries(tbl.Movies, tbl.Columns)
	byName := map[string]ColumnSummary{}
	for _, s := range sums {
		byName[s.Name] = s
	}

	rt := byName["Runtime"]
	if rt.Kind != dataset.KindContinuous || rt.NonMissing != 3 || rt.Missing != 1 {
		t.Fatalf("runtime = %+v", rt)
	}
	if rt.Min != 90 || rt.Max != 120 || rt.Median != 100 {
		t.Fatalf("runtime stats = %+v", rt)
	}
	if y := byName["Released_Year"]; y.Kind != dataset.KindTemporal || y.Mean != 1997.5 {
		t.Fatalf("year = %+v", y)
	}
	if g := byName["Gross"]; g.NonMissing != 0 || g.Missing != 4 || g.Mean != 0 {
		t.Fatalf("all-missing gross = %+v", g)
	}
	d := byName["Director"]
	if d.Kind != dataset.KindCategorical || d.Unique != 2 || len(d.Sample) != 2 || d.Sample[0] != "Nolan" || d.Missing != 1 {
		t.Fatalf("director = %+v", d)
	}

	fl, ok := byName[FlagSetName]
	if !ok {
		t.Fatalf("missing flag set entry: %+v", sums)
	}
	if len(fl.Flags) != 3 || fl.Flags[0].Column != "Genre_Drama" || fl.Flags[0].True != 3 {
		t.Fatalf("flags = %+v", fl.Flags)
	}
	for _, s := range sums {
		if strings.HasPrefix(s.Name, "Genre_") {
			t.Fatalf("flag columns must be folded into the flag set entry")
		}
	}
}

func TestReportMarkdown(t *testing.T) {
	tbl := summaryTable(t)
	md := BuildReport("movies.csv", tbl, DefaultOptions()).Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"File: movies.csv",
		"Rows: 4",
		"- Runtime: continuous (non-missing 3, missing 25.0%)",
		"[FLAGS]",
		"- Genre_Drama: 3/4",
		"[CORRELATIONS]",
		"[SAMPLE ROWS]",
		"[NOTES]",
		"column Gross has no usable values",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestReportMarkdown_MultiByteTruncation(t *testing.T) {
	long := strings.Repeat("a", 36) + strings.Repeat("é", 8)
	title := strings.Repeat("ü", 90)
	tbl := table(t, []string{"Series_Title", "Overview"}, []string{title, long})
	md := BuildReport("", tbl, DefaultOptions()).Markdown()
	if !utf8.ValidString(md) {
		t.Fatalf("report is not valid UTF-8:\n%q", md)
	}
	if !strings.Contains(md, strings.Repeat("a", 36)+"é...") {
		t.Fatalf("overview sample not truncated to 40 runes:\n%s", md)
	}
	if !strings.Contains(md, strings.Repeat("ü", 77)+"...") {
		t.Fatalf("title not truncated to 80 runes:\n%s", md)
	}
	if got := truncate("héllo", 10); got != "héllo" {
		t.Fatalf("short value changed: %q", got)
	}
}
