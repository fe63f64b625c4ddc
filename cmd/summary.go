package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	sumOutputPath string
	sumSampleRows int
	sumTopPairs   int
	sumCorr       bool
	sumJSON       bool
	sumFrom       int
	sumTo         int
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Summarize every column of the dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args)
		if err != nil {
			return err
		}
		opt := analysis.DefaultOptions()
		opt.SampleRows = sumSampleRows
		opt.TopPairs = sumTopPairs
		opt.Correlations = sumCorr
		t.Movies = filterYears(t.Movies, sumFrom, sumTo)

		name := ""
		if len(args) > 0 {
			name = filepath.Base(args[0])
		}
		rep := analysis.BuildReport(name, t, opt)
		if sumJSON {
			s, err := utils.PrettyJSON(struct {
				Rows     int                      `json:"rows"`
				Columns  []analysis.ColumnSummary `json:"columns"`
				Corr     *analysis.CorrMatrix     `json:"correlations,omitempty"`
				Warnings []string                 `json:"warnings,omitempty"`
			}{rep.Rows, rep.Cols, rep.Corr, rep.Warnings})
			if err != nil {
				return err
			}
			return emit(cmd, sumOutputPath, func(w io.Writer) { fmt.Fprintln(w, string(s)) }, "summary")
		}
		return emit(cmd, sumOutputPath, func(w io.Writer) { fmt.Fprintln(w, rep.Markdown()) }, "summary")
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the summary")
	summaryCmd.Flags().IntVar(&sumSampleRows, "sample-rows", 5, "number of sample rows to include")
	summaryCmd.Flags().IntVar(&sumTopPairs, "top-pairs", 10, "number of correlation pairs to list")
	summaryCmd.Flags().BoolVar(&sumCorr, "correlations", true, "compute Pearson correlations among numeric columns")
	summaryCmd.Flags().BoolVar(&sumJSON, "json", false, "print JSON instead of Markdown")
	summaryCmd.Flags().IntVar(&sumFrom, "from", 0, "first release year to include (0 = open)")
	summaryCmd.Flags().IntVar(&sumTo, "to", 0, "last release year to include (0 = open)")
}
