package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// px rounds a float coordinate for svgo's integer API.
func px(f float64) int { return int(math.Round(f)) }

// begin opens the document, paints the background and the title.
func begin(w io.Writer, size Size, t Theme, title string) *svg.SVG {
	c := svg.New(w)
	c.Start(size.Width, size.Height,
		fmt.Sprintf(`font-family="%s" font-size="%d"`, t.Font, t.FontSize))
	if title != "" {
		c.Title(title)
	}
	c.Rect(0, 0, size.Width, size.Height, fmt.Sprintf(`fill="%s"`, t.Background))
	if title != "" {
		c.Text(size.Width/2, t.Margin.Top/2+t.FontSize/2, title,
			fmt.Sprintf(`text-anchor="middle" font-weight="bold" fill="%s"`, t.Text))
	}
	return c
}

// emptyMessage is drawn in place of marks when there is nothing to show.
func emptyMessage(c *svg.SVG, size Size, t Theme, msg string) {
	c.Text(size.Width/2, size.Height/2, msg, fmt.Sprintf(`text-anchor="middle" fill="%s"`, t.Axis))
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// xAxis draws a bottom axis with grid lines across the plot.
func xAxis(c *svg.SVG, t Theme, sx Linear, plot rect, label string) {
	y := px(plot.bottom())
	c.Group(fmt.Sprintf(`class="x-axis" fill="%s"`, t.Text))
	for _, v := range sx.Ticks(8) {
		x := px(sx.Map(v))
		c.Line(x, px(plot.Y), x, y, fmt.Sprintf(`stroke="%s"`, t.Grid))
		c.Line(x, y, x, y+5, fmt.Sprintf(`stroke="%s"`, t.Axis))
		c.Text(x, y+5+t.FontSize, tickLabel(v), `text-anchor="middle"`)
	}
	c.Line(px(plot.X), y, px(plot.right()), y, fmt.Sprintf(`stroke="%s"`, t.Axis))
	if label != "" {
		c.Text(px(plot.X+plot.W/2), y+2*t.FontSize+12, label, `text-anchor="middle"`)
	}
	c.Gend()
}

// yAxis draws a left axis with grid lines across the plot.
func yAxis(c *svg.SVG, t Theme, sy Linear, plot rect, label string) {
	x := px(plot.X)
	c.Group(fmt.Sprintf(`class="y-axis" fill="%s"`, t.Text))
	for _, v := range sy.Ticks(6) {
		y := px(sy.Map(v))
		c.Line(x, y, px(plot.right()), y, fmt.Sprintf(`stroke="%s"`, t.Grid))
		c.Line(x-5, y, x, y, fmt.Sprintf(`stroke="%s"`, t.Axis))
		c.Text(x-8, y+t.FontSize/3, tickLabel(v), `text-anchor="end"`)
	}
	c.Line(x, px(plot.Y), x, px(plot.bottom()), fmt.Sprintf(`stroke="%s"`, t.Axis))
	if label != "" {
		cy := px(plot.Y + plot.H/2)
		c.Text(12, cy, label, fmt.Sprintf(`text-anchor="middle" transform="rotate(-90 12 %d)"`, cy))
	}
	c.Gend()
}

// bandAxis labels each band to the left of the plot.
func bandAxis(c *svg.SVG, t Theme, b Band, plot rect) {
	c.Group(fmt.Sprintf(`class="band-axis" fill="%s"`, t.Text))
	for _, k := range b.Keys() {
		y, _ := b.Pos(k)
		c.Text(px(plot.X)-8, px(y+b.Width()/2)+t.FontSize/3, k, `text-anchor="end"`)
	}
	c.Gend()
}

// legend lists series names with their colors along the top-right corner.
func legend(c *svg.SVG, t Theme, plot rect, names []string, colors []string) {
	c.Group(`class="legend"`)
	for i, n := range names {
		y := px(plot.Y) + 4 + i*(t.FontSize+4)
		x := px(plot.right()) - 140
		c.Rect(x, y, 10, 10, fmt.Sprintf(`fill="%s"`, colors[i]))
		c.Text(x+14, y+9, n, fmt.Sprintf(`fill="%s"`, t.Text))
	}
	c.Gend()
}
