// Package render draws the linked charts as SVG and answers pointer
// queries against what it drew.
//
// Every chart function takes its data fully materialized, a fixed canvas
// Size and an explicit Theme, writes one SVG document and returns a Chart
// holding the hit regions of its interactive marks. Charts never change
// selection state themselves: hover and click are reported through
// Handlers.
package render

import "github.com/KaramelBytes/reelviz-cli/internal/chord"

// Margin is the space reserved around the plot area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left int
}

// Theme carries every visual constant a chart needs.
type Theme struct {
	Palette    []string
	Background string
	Axis       string
	Grid       string
	Text       string
	Positive   string
	Negative   string
	Neutral    string
	Highlight  string
	Font       string
	FontSize   int
	Margin     Margin
	// DimOpacity applies to marks outside the current selection.
	DimOpacity float64
	// OpacityCap is the sample count at which bar opacity saturates.
	// Zero means the largest count in the data.
	OpacityCap int
	// MinOpacity is the opacity of a bar with a single sample.
	MinOpacity float64
}

// DefaultTheme returns the light theme used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Palette:    chord.DefaultPalette,
		Background: "#ffffff",
		Axis:       "#888888",
		Grid:       "#eeeeee",
		Text:       "#333333",
		Positive:   "#2b8cbe",
		Negative:   "#e34a33",
		Neutral:    "#f7f7f7",
		Highlight:  "#111111",
		Font:       "Helvetica,Arial,sans-serif",
		FontSize:   12,
		Margin:     Margin{Top: 40, Right: 24, Bottom: 48, Left: 64},
		DimOpacity: 0.15,
		MinOpacity: 0.25,
	}
}

func (t Theme) color(i int) string {
	if len(t.Palette) == 0 {
		return chord.DefaultPalette[i%len(chord.DefaultPalette)]
	}
	return t.Palette[i%len(t.Palette)]
}

// Size is the pixel canvas of a chart.
type Size struct {
	Width, Height int
}

// rect is a pixel rectangle.
type rect struct {
	X, Y, W, H float64
}

func (r rect) right() float64  { return r.X + r.W }
func (r rect) bottom() float64 { return r.Y + r.H }

// plot is the area inside the margins. It never has negative extent.
func (s Size) plot(m Margin) rect {
	r := rect{
		X: float64(m.Left),
		Y: float64(m.Top),
		W: float64(s.Width - m.Left - m.Right),
		H: float64(s.Height - m.Top - m.Bottom),
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// opacityFor maps a sample count onto [MinOpacity, 1]. Counts at or above
// the cap are fully opaque.
func (t Theme) opacityFor(count, maxCount int) float64 {
	limit := t.OpacityCap
	if limit <= 0 {
		limit = maxCount
	}
	if limit <= 0 {
		return 1
	}
	c := count
	if c > limit {
		c = limit
	}
	if c < 0 {
		c = 0
	}
	return t.MinOpacity + (1-t.MinOpacity)*float64(c)/float64(limit)
}
