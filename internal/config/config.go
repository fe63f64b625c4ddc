package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/chord"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Default dataset path used when a command is given none.
	Dataset string `mapstructure:"dataset" yaml:"dataset"`

	// Chart canvas and look
	Width      int      `mapstructure:"width" yaml:"width"`
	Height     int      `mapstructure:"height" yaml:"height"`
	Palette    []string `mapstructure:"palette" yaml:"palette"`
	OpacityCap int      `mapstructure:"opacity_cap" yaml:"opacity_cap"`

	// Chord diagram
	ChordPadding  float64 `mapstructure:"chord_padding" yaml:"chord_padding"`
	MinEdgeWeight int     `mapstructure:"min_edge_weight" yaml:"min_edge_weight"`

	// Rescale applied to the rating column before it is compared with the
	// meta score (1-10 onto 0-100 by default).
	RatingScale  float64 `mapstructure:"rating_scale" yaml:"rating_scale"`
	RatingOffset float64 `mapstructure:"rating_offset" yaml:"rating_offset"`

	// Local linked view
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`

	// Dataset column mapping
	Schema dataset.Schema `mapstructure:",squash" yaml:",inline"`
}

// Dir returns ~/.reelviz.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".reelviz"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.reelviz/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("REELVIZ")
	v.AutomaticEnv()
	setDefaults(v)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing file only means "use defaults"; a broken one is an error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	s := dataset.DefaultSchema()
	v.SetDefault("dataset", "")
	v.SetDefault("width", 960)
	v.SetDefault("height", 600)
	v.SetDefault("palette", chord.DefaultPalette)
	v.SetDefault("opacity_cap", 0)
	v.SetDefault("chord_padding", chord.DefaultOptions().Padding)
	v.SetDefault("min_edge_weight", 1)
	v.SetDefault("rating_scale", 10.0)
	v.SetDefault("rating_offset", 0.0)
	v.SetDefault("listen_addr", "127.0.0.1:8080")
	// Column mapping
	v.SetDefault("title_column", s.Title)
	v.SetDefault("year_column", s.Year)
	v.SetDefault("certificate_column", s.Certificate)
	v.SetDefault("runtime_column", s.Runtime)
	v.SetDefault("genre_column", s.Genre)
	v.SetDefault("rating_column", s.Rating)
	v.SetDefault("meta_column", s.MetaScore)
	v.SetDefault("director_column", s.Director)
	v.SetDefault("star_columns", s.Stars)
	v.SetDefault("votes_column", s.Votes)
	v.SetDefault("gross_column", s.Gross)
	v.SetDefault("overview_column", s.Overview)
	v.SetDefault("poster_column", s.Poster)
	v.SetDefault("flag_prefix", s.FlagPrefix)
}

// Theme builds the chart theme from the configured palette and opacity cap.
func (c *Global) Theme() render.Theme {
	t := render.DefaultTheme()
	if len(c.Palette) > 0 {
		t.Palette = c.Palette
	}
	t.OpacityCap = c.OpacityCap
	return t
}

// Size is the configured canvas.
func (c *Global) Size() render.Size {
	return render.Size{Width: c.Width, Height: c.Height}
}

// ChordOptions is the layout configuration.
func (c *Global) ChordOptions() chord.Options {
	return chord.Options{Padding: c.ChordPadding, Palette: c.Palette}
}

// RatingRescale maps the rating column onto the meta score's scale.
func (c *Global) RatingRescale() analysis.Affine {
	return analysis.Affine{Scale: c.RatingScale, Offset: c.RatingOffset}
}
