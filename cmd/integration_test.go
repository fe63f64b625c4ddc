package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const fixtureCSV = `Series_Title,Released_Year,Certificate,Runtime,Genre,IMDB_Rating,Meta_score,Star1,Star2,Star3
Heat,1995,A,170 min,"Action, Crime, Drama",8.2,76,Al Pacino,Robert De Niro,Val Kilmer
The Irishman,2019,A,209 min,"Biography, Crime, Drama",7.9,94,Robert De Niro,Al Pacino,Joe Pesci
Casino,1995,A,178 min,"Crime, Drama",8.2,73,Robert De Niro,Joe Pesci,Sharon Stone
Top Gun,1986,U,110 min,"Action, Drama",6.9,50,Tom Cruise,Kelly McGillis,Val Kilmer
`

// resetFlags puts every flag of c and its subcommands back to its default so
// that one invocation does not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// setup isolates HOME and writes the fixture dataset.
func setup(t *testing.T) (home, data string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	data = filepath.Join(home, "movies.csv")
	if err := os.WriteFile(data, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return home, data
}

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(args ...string) (string, string, error) {
	resetFlags(rootCmd)
	cfg = nil
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	stdout, stderr, err := execute(args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, stderr)
	}
	return stdout, stderr
}

func TestCLI_SummaryMarkdownAndJSON(t *testing.T) {
	_, data := setup(t)
	out, _ := runCmd(t, "summary", data)
	if !strings.Contains(out, "[DATASET SUMMARY]") || !strings.Contains(out, "Rows: 4") {
		t.Fatalf("summary output:\n%s", out)
	}
	out, _ = runCmd(t, "summary", data, "--json", "--from", "1990", "--to", "2000")
	var rep struct {
		Rows int `json:"rows"`
	}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if rep.Rows != 2 {
		t.Fatalf("filtered rows = %d, want 2", rep.Rows)
	}
	for _, key := range []string{`"non_missing"`, `"kind"`, `"columns"`} {
		if !strings.Contains(out, key) {
			t.Fatalf("summary json missing key %s:\n%s", key, out)
		}
	}
	if strings.Contains(out, `"NonMissing"`) || strings.Contains(out, `"Name"`) {
		t.Fatalf("summary json mixes key styles:\n%s", out)
	}
}

func TestCLI_ChartsWriteSVG(t *testing.T) {
	home, data := setup(t)
	for _, args := range [][]string{
		{"corr", data},
		{"trend", data, "--group", "Genre_Action,Certificate"},
		{"scatter", data, "--select-record", "Heat"},
		{"gap", data},
		{"gap", data, "--by-year"},
		{"chord", data, "--select-edge", "Robert De Niro,Al Pacino"},
	} {
		path := filepath.Join(home, args[0]+".svg")
		_, stderr := runCmd(t, append(args, "-o", path)...)
		if !strings.Contains(stderr, "✓ Wrote") {
			t.Fatalf("%v: missing confirmation in %q", args, stderr)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%v: read output: %v", args, err)
		}
		if !bytes.HasPrefix(bytes.TrimSpace(b), []byte("<?xml")) || !bytes.Contains(b, []byte("</svg>")) {
			t.Fatalf("%v: not an SVG document:\n%s", args, b)
		}
	}
}

func TestCLI_ScatterReportsFit(t *testing.T) {
	_, data := setup(t)
	out, stderr := runCmd(t, "scatter", data, "--x", "IMDB_Rating", "--y", "Meta_score")
	if !strings.Contains(stderr, "n=4 r=") {
		t.Fatalf("scatter stderr = %q", stderr)
	}
	if !strings.Contains(out, "<circle") {
		t.Fatalf("scatter drew no points")
	}
}

func TestCLI_ChordJSONSelection(t *testing.T) {
	_, data := setup(t)
	out, _ := runCmd(t, "chord", data, "--json", "--select-edge", "Robert De Niro, Al Pacino")
	var rep chordReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if rep.State != "edge(Al Pacino, Robert De Niro)" || len(rep.Active) != 2 {
		t.Fatalf("edge selection = %+v", rep)
	}
	if !strings.Contains(out, `"weight"`) || !strings.Contains(out, `"records"`) || strings.Contains(out, `"Weight"`) || strings.Contains(out, `"A"`) {
		t.Fatalf("chord json mixes key styles:\n%s", out)
	}

	out, _ = runCmd(t, "chord", data, "--json", "--select-record", "Casino")
	rep = chordReport{}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rep.Active) != 1 || len(rep.Edges) != 3 {
		t.Fatalf("record re-scope = %+v", rep)
	}
	for _, e := range rep.Edges {
		if e.A == "Al Pacino" || e.B == "Al Pacino" {
			t.Fatalf("re-scoped graph kept %s-%s", e.A, e.B)
		}
	}

	out, _ = runCmd(t, "chord", data, "--json", "--min-weight", "2")
	rep = chordReport{}
	_ = json.Unmarshal([]byte(out), &rep)
	if len(rep.Edges) != 2 {
		t.Fatalf("min weight 2 edges = %+v", rep.Edges)
	}
}

func TestCLI_Errors(t *testing.T) {
	_, data := setup(t)
	if _, _, err := execute("chord", data, "--select-edge", "A,B", "--select-record", "Heat"); err == nil {
		t.Fatalf("expected mutually exclusive selection error")
	}
	if _, _, err := execute("chord", data, "--select-edge", "only-one"); err == nil {
		t.Fatalf("expected malformed edge error")
	}
	if _, _, err := execute("scatter", data, "--x", "Certificate"); err == nil {
		t.Fatalf("expected non-numeric column error")
	}
	if _, _, err := execute("trend", data, "--group", "Nope"); err == nil {
		t.Fatalf("expected missing column error")
	}
	if _, _, err := execute("summary"); err == nil {
		t.Fatalf("expected error without a dataset")
	}
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home, data := setup(t)
	runCmd(t, "config", "set", "dataset", data)
	runCmd(t, "config", "set", "min_edge_weight", "2")
	runCmd(t, "config", "set", "star_columns", "Star1, Star2")
	if _, err := os.Stat(filepath.Join(home, ".reelviz", "config.yaml")); err != nil {
		t.Fatalf("config not saved: %v", err)
	}
	out, _ := runCmd(t, "config", "show")
	if !strings.Contains(out, "min_edge_weight: 2") || !strings.Contains(out, "star_columns: Star1,Star2") {
		t.Fatalf("config show:\n%s", out)
	}
	if _, _, err := execute("config", "set", "width", "wide"); err == nil {
		t.Fatalf("expected invalid int error")
	}
	if _, _, err := execute("config", "set", "nope", "1"); err == nil {
		t.Fatalf("expected unknown key error")
	}

	// The configured dataset and weight apply when none is given.
	out, _ = runCmd(t, "chord", "--json")
	var rep chordReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Filtered != 4 || len(rep.Edges) != 1 {
		t.Fatalf("config-driven chord = %+v", rep)
	}
}
