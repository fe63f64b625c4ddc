package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/reelviz-cli/internal/config"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set reelviz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if c.Dataset != "" {
			fmt.Fprintf(out, "dataset: %s\n", c.Dataset)
		}
		fmt.Fprintf(out, "width: %d\n", c.Width)
		fmt.Fprintf(out, "height: %d\n", c.Height)
		fmt.Fprintf(out, "palette: %s\n", strings.Join(c.Palette, ","))
		fmt.Fprintf(out, "opacity_cap: %d\n", c.OpacityCap)
		fmt.Fprintf(out, "chord_padding: %.3f\n", c.ChordPadding)
		fmt.Fprintf(out, "min_edge_weight: %d\n", c.MinEdgeWeight)
		fmt.Fprintf(out, "rating_scale: %g\n", c.RatingScale)
		fmt.Fprintf(out, "rating_offset: %g\n", c.RatingOffset)
		fmt.Fprintf(out, "listen_addr: %s\n", c.ListenAddr)
		s := c.Schema
		fmt.Fprintf(out, "title_column: %s\n", s.Title)
		fmt.Fprintf(out, "year_column: %s\n", s.Year)
		fmt.Fprintf(out, "genre_column: %s\n", s.Genre)
		fmt.Fprintf(out, "rating_column: %s\n", s.Rating)
		fmt.Fprintf(out, "meta_column: %s\n", s.MetaScore)
		fmt.Fprintf(out, "star_columns: %s\n", strings.Join(s.Stars, ","))
		fmt.Fprintf(out, "poster_column: %s\n", s.Poster)
		fmt.Fprintf(out, "flag_prefix: %s\n", s.FlagPrefix)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := currentConfig()
		if err != nil {
			return err
		}
		if err := setKey(c, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func setKey(c *cfgpkg.Global, key, val string) error {
	atoi := func(min int) (int, error) {
		i, err := strconv.Atoi(val)
		if err != nil || i < min {
			return 0, fmt.Errorf("invalid int for %s: %v", key, val)
		}
		return i, nil
	}
	atof := func() (float64, error) {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float for %s: %w", key, err)
		}
		return f, nil
	}
	var err error
	s := &c.Schema
	switch key {
	case "dataset":
		c.Dataset = val
	case "width":
		c.Width, err = atoi(1)
	case "height":
		c.Height, err = atoi(1)
	case "palette":
		c.Palette = dataset.SplitMultiValue(val)
	case "opacity_cap":
		c.OpacityCap, err = atoi(0)
	case "chord_padding":
		c.ChordPadding, err = atof()
		if err == nil && c.ChordPadding < 0 {
			err = fmt.Errorf("chord_padding must not be negative: %v", val)
		}
	case "min_edge_weight":
		c.MinEdgeWeight, err = atoi(1)
	case "rating_scale":
		c.RatingScale, err = atof()
	case "rating_offset":
		c.RatingOffset, err = atof()
	case "listen_addr":
		c.ListenAddr = val
	case "title_column":
		s.Title = val
	case "year_column":
		s.Year = val
	case "certificate_column":
		s.Certificate = val
	case "runtime_column":
		s.Runtime = val
	case "genre_column":
		s.Genre = val
	case "rating_column":
		s.Rating = val
	case "meta_column":
		s.MetaScore = val
	case "director_column":
		s.Director = val
	case "star_columns":
		s.Stars = dataset.SplitMultiValue(val)
	case "votes_column":
		s.Votes = val
	case "gross_column":
		s.Gross = val
	case "overview_column":
		s.Overview = val
	case "poster_column":
		s.Poster = val
	case "flag_prefix":
		s.FlagPrefix = val
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
