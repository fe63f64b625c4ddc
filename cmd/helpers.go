package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/logger"
	"github.com/KaramelBytes/reelviz-cli/internal/selection"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
	"github.com/spf13/cobra"
)

// loadTable reads the dataset named on the command line, or the configured
// default when args is empty.
func loadTable(args []string) (*dataset.Table, error) {
	c, err := currentConfig()
	if err != nil {
		return nil, err
	}
	path := c.Dataset
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no dataset given (pass a file or set 'dataset' in config)")
	}
	t, err := dataset.LoadCSV(path, c.Schema)
	if err != nil {
		return nil, err
	}
	if len(t.Movies) == 0 {
		logger.Warn("dataset has no rows", "path", path)
	}
	logger.Debug("loaded dataset", "path", path, "rows", len(t.Movies), "columns", len(t.Columns))
	return t, nil
}

// filterYears keeps rows released within [from, to]. Zero bounds are open.
func filterYears(movies []*dataset.Movie, from, to int) []*dataset.Movie {
	if from == 0 && to == 0 {
		return movies
	}
	if to == 0 {
		to = 1<<31 - 1
	}
	keep := analysis.YearRange(from, to)
	var out []*dataset.Movie
	for _, m := range movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// emit writes a rendered artifact to path atomically, or to the command's
// stdout when path is empty.
func emit(cmd *cobra.Command, path string, render func(io.Writer), what string) error {
	var buf bytes.Buffer
	render(&buf)
	if path == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s to %s\n", what, path)
	return nil
}

// applySelection drives a fresh controller from the --select-edge and
// --select-record flags. An edge is given as "A,B".
func applySelection(edge, record string) (*selection.Controller, error) {
	c := selection.New()
	if edge != "" && record != "" {
		return nil, errors.New("--select-edge and --select-record are mutually exclusive")
	}
	if edge != "" {
		parts := dataset.SplitMultiValue(edge)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --select-edge %q (want \"A,B\")", edge)
		}
		c.SelectEdge(parts[0], parts[1])
	}
	if record != "" {
		c.SelectRecord(strings.TrimSpace(record))
	}
	return c, nil
}

// columnsByName resolves comma-separated column names against the table.
func columnsByName(t *dataset.Table, names string) ([]dataset.Column, error) {
	var cols []dataset.Column
	for _, n := range dataset.SplitMultiValue(names) {
		c, ok := t.Column(n)
		if !ok {
			return nil, &dataset.ColumnError{Role: "group", Column: n}
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// numericColumn checks that name exists and is numeric.
func numericColumn(t *dataset.Table, role, name string) error {
	c, ok := t.Column(name)
	if !ok {
		return &dataset.ColumnError{Role: role, Column: name}
	}
	if !c.Kind.Numeric() {
		return fmt.Errorf("column %s is %s, not numeric", name, c.Kind)
	}
	return nil
}
