package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/chord"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/KaramelBytes/reelviz-cli/internal/selection"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	chordOutputPath string
	chordMinWeight  int
	chordFrom       int
	chordTo         int
	chordEdge       string
	chordRecord     string
	chordLabels     bool
	chordJSON       bool
)

// chordReport is the --json form of a derived chord view.
type chordReport struct {
	State    string          `json:"state"`
	Filtered int             `json:"filtered"`
	Active   []string        `json:"active"`
	Nodes    []chordNode     `json:"nodes"`
	Edges    []analysis.Edge `json:"edges"`
}

type chordNode struct {
	Label  string  `json:"label"`
	Weight int     `json:"weight"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Color  string  `json:"color"`
}

var chordCmd = &cobra.Command{
	Use:   "chord [file]",
	Short: "Draw the co-star chord diagram",
	Long: `chord counts how often each pair of stars shares a film among the
filtered rows and lays the result out as a chord diagram. --select-edge
highlights the films of one pair; --select-record re-scopes the diagram to
one film's cast.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args)
		if err != nil {
			return err
		}
		c, err := currentConfig()
		if err != nil {
			return err
		}
		sel, err := applySelection(chordEdge, chordRecord)
		if err != nil {
			return err
		}
		minWeight := c.MinEdgeWeight
		if cmd.Flags().Changed("min-weight") {
			minWeight = chordMinWeight
		}
		movies := filterYears(t.Movies, chordFrom, chordTo)
		participants := analysis.Stars
		g := analysis.CoOccurrence(movies, analysis.CoOccurrenceOptions{MinWeight: minWeight, Participants: participants})
		v := sel.View(movies, g, participants)
		d := chord.Layout(v.Graph, c.ChordOptions())
		if v.State.Kind != selection.Idle && len(v.Active) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s matches nothing under the current filters\n", v.State)
		}

		if chordJSON {
			rep := chordReport{State: v.State.String(), Filtered: len(movies), Active: []string{}, Edges: v.Graph.Edges}
			for _, m := range v.Active {
				rep.Active = append(rep.Active, m.ID)
			}
			for _, a := range d.Arcs {
				rep.Nodes = append(rep.Nodes, chordNode{Label: a.Label, Weight: a.Weight, Start: a.Start, End: a.End, Color: a.Color})
			}
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			return emit(cmd, chordOutputPath, func(w io.Writer) { fmt.Fprintln(w, string(b)) }, "chord view")
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%d stars, %d pairs over %d films (%s)\n", len(v.Graph.Nodes), len(v.Graph.Edges), len(movies), v.State)
		return emit(cmd, chordOutputPath, func(w io.Writer) {
			render.Chord(w, d, c.Size(), c.Theme(), v.Props, render.ChordOptions{Title: "Co-stars", Labels: chordLabels})
		}, "chord diagram")
	},
}

func init() {
	rootCmd.AddCommand(chordCmd)
	chordCmd.Flags().StringVarP(&chordOutputPath, "output", "o", "", "path to write the SVG (default stdout)")
	chordCmd.Flags().IntVar(&chordMinWeight, "min-weight", 1, "drop pairs sharing fewer films (overrides config)")
	chordCmd.Flags().IntVar(&chordFrom, "from", 0, "first release year to include (0 = open)")
	chordCmd.Flags().IntVar(&chordTo, "to", 0, "last release year to include (0 = open)")
	chordCmd.Flags().StringVar(&chordEdge, "select-edge", "", "highlight the pair \"A,B\"")
	chordCmd.Flags().StringVar(&chordRecord, "select-record", "", "re-scope to one record id")
	chordCmd.Flags().BoolVar(&chordLabels, "labels", true, "draw star names outside the arcs")
	chordCmd.Flags().BoolVar(&chordJSON, "json", false, "print the derived graph and layout as JSON")
}
