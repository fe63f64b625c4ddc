package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	corrOutputPath string
	corrColumns    string
	corrValues     bool
	corrTop        int
	corrFrom       int
	corrTo         int
)

var corrCmd = &cobra.Command{
	Use:   "corr [file]",
	Short: "Draw the Pearson correlation heatmap of numeric columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args)
		if err != nil {
			return err
		}
		c, err := currentConfig()
		if err != nil {
			return err
		}
		cols := t.Columns
		if corrColumns != "" {
			if cols, err = columnsByName(t, corrColumns); err != nil {
				return err
			}
		}
		m := analysis.CorrelationMatrix(filterYears(t.Movies, corrFrom, corrTo), cols)
		if len(m.Columns) < 2 {
			fmt.Fprintln(cmd.ErrOrStderr(), "⚠ Warning: fewer than two numeric columns; the heatmap will be empty")
		}
		for _, p := range m.TopPairs(corrTop) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s ~ %s: r=%.3f\n", p.A, p.B, p.R)
		}
		return emit(cmd, corrOutputPath, func(w io.Writer) {
			render.Heatmap(w, m, c.Size(), c.Theme(), render.HeatmapOptions{Title: "Correlation", Values: corrValues})
		}, "heatmap")
	},
}

func init() {
	rootCmd.AddCommand(corrCmd)
	corrCmd.Flags().StringVarP(&corrOutputPath, "output", "o", "", "path to write the SVG (default stdout)")
	corrCmd.Flags().StringVar(&corrColumns, "columns", "", "comma-separated columns to correlate (default all numeric)")
	corrCmd.Flags().BoolVar(&corrValues, "values", true, "print r inside each cell")
	corrCmd.Flags().IntVar(&corrTop, "top", 5, "number of strongest pairs to list on stderr")
	corrCmd.Flags().IntVar(&corrFrom, "from", 0, "first release year to include (0 = open)")
	corrCmd.Flags().IntVar(&corrTo, "to", 0, "last release year to include (0 = open)")
}
