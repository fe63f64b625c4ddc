package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	trendOutputPath string
	trendMetric     string
	trendX          string
	trendGroups     string
	trendFrom       int
	trendTo         int
)

var trendCmd = &cobra.Command{
	Use:   "trend [file]",
	Short: "Draw the mean of a metric over time, one line per group",
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
		metric, x := trendMetric, trendX
		if metric == "" {
			metric = c.Schema.Rating
		}
		if x == "" {
			x = c.Schema.Year
		}
		if err := numericColumn(t, "metric", metric); err != nil {
			return err
		}
		if err := numericColumn(t, "x", x); err != nil {
			return err
		}
		groups, err := columnsByName(t, trendGroups)
		if err != nil {
			return err
		}
		series := analysis.GroupedSeries(filterYears(t.Movies, trendFrom, trendTo), groups, metric, x)
		for _, s := range series {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d points\n", s.Key, len(s.Points))
		}
		return emit(cmd, trendOutputPath, func(w io.Writer) {
			render.Lines(w, series, c.Size(), c.Theme(), render.LinesOptions{
				Title:  "Mean " + metric + " by " + x,
				XLabel: x,
				YLabel: metric,
			})
		}, "trend chart")
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().StringVarP(&trendOutputPath, "output", "o", "", "path to write the SVG (default stdout)")
	trendCmd.Flags().StringVar(&trendMetric, "metric", "", "numeric column to average (default rating column)")
	trendCmd.Flags().StringVar(&trendX, "x", "", "numeric column on the x axis (default year column)")
	trendCmd.Flags().StringVar(&trendGroups, "group", "", "comma-separated grouping columns, e.g. Genre_Drama,Certificate")
	trendCmd.Flags().IntVar(&trendFrom, "from", 0, "first release year to include (0 = open)")
	trendCmd.Flags().IntVar(&trendTo, "to", 0, "last release year to include (0 = open)")
}
