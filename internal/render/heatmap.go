package render

import (
	"fmt"
	"io"
	"math"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HeatmapOptions labels a correlation heatmap.
type HeatmapOptions struct {
	Title string
	// Values prints r inside each cell.
	Values bool
}

// Heatmap draws the correlation matrix as a grid of cells colored on a
// diverging ramp: Theme.Negative at -1, Theme.Neutral at 0 and
// Theme.Positive at +1.
func Heatmap(w io.Writer, m analysis.CorrMatrix, size Size, t Theme, opt HeatmapOptions) *Chart {
	ch := &Chart{Size: size}
	c := begin(w, size, t, opt.Title)
	defer c.End()
	n := len(m.Columns)
	if n == 0 {
		emptyMessage(c, size, t, "no numeric columns")
		return ch
	}
	mg := t.Margin
	mg.Left += 80
	mg.Bottom += 60
	plot := size.plot(mg)
	cols := NewBand(m.Columns, plot.X, plot.right(), 0.04)
	rows := NewBand(m.Columns, plot.Y, plot.bottom(), 0.04)
	bandAxis(c, t, rows, plot)

	c.Group(fmt.Sprintf(`class="col-labels" fill="%s"`, t.Text))
	for _, name := range m.Columns {
		x, _ := cols.Pos(name)
		lx, ly := px(x+cols.Width()/2), px(plot.bottom())+8
		c.Text(lx, ly, name, fmt.Sprintf(`text-anchor="end" transform="rotate(-45 %d %d)"`, lx, ly))
	}
	c.Gend()

	c.Group(`class="cells"`)
	for i, a := range m.Columns {
		y, _ := rows.Pos(a)
		for j, b := range m.Columns {
			x, _ := cols.Pos(b)
			r := m.Values[i][j]
			c.Rect(px(x), px(y), px(cols.Width()), px(rows.Width()),
				fmt.Sprintf(`id="%s" fill="%s"`, utils.ElementID("cell", a, b), Diverging(t, r)))
			if opt.Values {
				c.Text(px(x+cols.Width()/2), px(y+rows.Width()/2)+t.FontSize/3, fmt.Sprintf("%.2f", r),
					fmt.Sprintf(`text-anchor="middle" fill="%s"`, t.Text))
			}
			ch.add(box{x, y, cols.Width(), rows.Width()}, Datum{
				Title: fmt.Sprintf("%s ~ %s", a, b),
				Lines: []string{fmt.Sprintf("r = %.3f", r)},
				X:     x + cols.Width()/2, Y: y + rows.Width()/2,
			}, nil)
		}
	}
	c.Gend()
	return ch
}

// Diverging maps r in [-1, 1] onto the theme's diverging ramp, blending in
// CIE L*a*b* so equal steps in r look like equal steps in color.
func Diverging(t Theme, r float64) string {
	if math.IsNaN(r) {
		return t.Neutral
	}
	r = math.Max(-1, math.Min(1, r))
	mid, err := colorful.Hex(t.Neutral)
	if err != nil {
		mid = colorful.Color{R: 1, G: 1, B: 1}
	}
	endHex := t.Positive
	if r < 0 {
		endHex = t.Negative
	}
	end, err := colorful.Hex(endHex)
	if err != nil {
		return t.Neutral
	}
	return mid.BlendLab(end, math.Abs(r)).Clamped().Hex()
}
