package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/KaramelBytes/reelviz-cli/internal/stats"
	"github.com/spf13/cobra"
)

var (
	scatOutputPath string
	scatX          string
	scatY          string
	scatTrend      bool
	scatRecord     string
	scatFrom       int
	scatTo         int
)

var scatterCmd = &cobra.Command{
	Use:   "scatter [file]",
	Short: "Plot two numeric columns against each other",
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
		x, y := scatX, scatY
		if x == "" {
			x = c.Schema.Rating
		}
		if y == "" {
			y = c.Schema.MetaScore
		}
		if err := numericColumn(t, "x", x); err != nil {
			return err
		}
		if err := numericColumn(t, "y", y); err != nil {
			return err
		}
		sel, err := applySelection("", scatRecord)
		if err != nil {
			return err
		}
		movies := filterYears(t.Movies, scatFrom, scatTo)
		pts := render.ScatterPoints(movies, x, y)
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = p.X, p.Y
		}
		if len(pts) < 2 {
			fmt.Fprintln(cmd.ErrOrStderr(), "⚠ Warning: fewer than two complete rows; no correlation to report")
		} else {
			line := stats.LinearRegression(xs, ys)
			fmt.Fprintf(cmd.ErrOrStderr(), "n=%d r=%.3f fit: %s = %.4f*%s + %.4f\n",
				len(pts), stats.Pearson(xs, ys), y, line.Slope, x, line.Intercept)
		}
		v := sel.View(movies, analysis.Graph{}, nil)
		return emit(cmd, scatOutputPath, func(w io.Writer) {
			render.Scatter(w, pts, c.Size(), c.Theme(), v.Props, render.ScatterOptions{
				Title:  y + " vs " + x,
				XLabel: x,
				YLabel: y,
				Trend:  scatTrend,
			})
		}, "scatter plot")
	},
}

func init() {
	rootCmd.AddCommand(scatterCmd)
	scatterCmd.Flags().StringVarP(&scatOutputPath, "output", "o", "", "path to write the SVG (default stdout)")
	scatterCmd.Flags().StringVar(&scatX, "x", "", "x column (default rating column)")
	scatterCmd.Flags().StringVar(&scatY, "y", "", "y column (default meta score column)")
	scatterCmd.Flags().BoolVar(&scatTrend, "trend", true, "overlay the least-squares line")
	scatterCmd.Flags().StringVar(&scatRecord, "select-record", "", "record id to highlight; others are dimmed")
	scatterCmd.Flags().IntVar(&scatFrom, "from", 0, "first release year to include (0 = open)")
	scatterCmd.Flags().IntVar(&scatTo, "to", 0, "last release year to include (0 = open)")
}
