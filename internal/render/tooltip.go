package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Datum is what a tooltip shows for one hovered mark. X and Y anchor the
// tooltip in canvas pixels.
type Datum struct {
	Title string
	Lines []string
	X, Y  float64
}

// Box is a pixel rectangle on the canvas.
type Box struct {
	X, Y, W, H int
}

// tooltipOffset separates the pointer from the tooltip corner.
const tooltipOffset = 12

// PlaceTooltip positions a w x h box next to the anchor. It prefers below
// and to the right, flips left or up when that would cross the canvas edge,
// and finally clamps so the box stays inside the canvas. A box larger than
// the canvas is pinned to the top-left corner.
func PlaceTooltip(anchorX, anchorY float64, w, h int, canvas Size) Box {
	ax, ay := int(math.Round(anchorX)), int(math.Round(anchorY))
	x := ax + tooltipOffset
	if x+w > canvas.Width {
		x = ax - tooltipOffset - w
	}
	y := ay + tooltipOffset
	if y+h > canvas.Height {
		y = ay - tooltipOffset - h
	}
	x = clampInt(x, 0, canvas.Width-w)
	y = clampInt(y, 0, canvas.Height-h)
	return Box{X: x, Y: y, W: w, H: h}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlay is the tooltip layer derived from the hovered datum. The zero
// value is hidden.
type Overlay struct {
	Visible bool
	Box     Box
	Title   string
	Lines   []string
}

// NewOverlay derives the overlay for a hovered datum; nil hides it.
func NewOverlay(d *Datum, canvas Size, t Theme) Overlay {
	if d == nil {
		return Overlay{}
	}
	longest := len([]rune(d.Title))
	for _, l := range d.Lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	fs := t.FontSize
	if fs <= 0 {
		fs = 12
	}
	pad := fs / 2
	w := longest*fs*6/10 + 2*pad
	h := (len(d.Lines)+1)*(fs+4) + 2*pad
	return Overlay{
		Visible: true,
		Box:     PlaceTooltip(d.X, d.Y, w, h, canvas),
		Title:   d.Title,
		Lines:   d.Lines,
	}
}

// Draw writes the overlay as an SVG group. A hidden overlay writes nothing.
func (o Overlay) Draw(c *svg.SVG, t Theme) {
	if !o.Visible {
		return
	}
	fs := t.FontSize
	if fs <= 0 {
		fs = 12
	}
	pad := fs / 2
	c.Group(`class="tooltip"`, `pointer-events="none"`)
	c.Rect(o.Box.X, o.Box.Y, o.Box.W, o.Box.H, fmt.Sprintf(`fill="%s" fill-opacity="0.95" stroke="%s" rx="3"`, t.Background, t.Axis))
	y := o.Box.Y + pad + fs
	c.Text(o.Box.X+pad, y, o.Title, fmt.Sprintf(`font-weight="bold" fill="%s"`, t.Text))
	for _, l := range o.Lines {
		y += fs + 4
		c.Text(o.Box.X+pad, y, l, fmt.Sprintf(`fill="%s"`, t.Text))
	}
	c.Gend()
}

// WriteOverlay renders the overlay as a standalone SVG document of the
// canvas size, for layering over a chart.
func WriteOverlay(w io.Writer, o Overlay, canvas Size, t Theme) {
	c := svg.New(w)
	c.Start(canvas.Width, canvas.Height)
	o.Draw(c, t)
	c.End()
}
