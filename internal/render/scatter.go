package render

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/selection"
	"github.com/KaramelBytes/reelviz-cli/internal/stats"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
	svg "github.com/ajstarks/svgo"
)

// ScatterPoint is one record placed by two numeric columns.
type ScatterPoint struct {
	ID   string
	X, Y float64
}

// ScatterPoints extracts the rows where both columns are present. Others
// are dropped.
func ScatterPoints(movies []*dataset.Movie, x, y string) []ScatterPoint {
	var out []ScatterPoint
	for _, m := range movies {
		xv, okx := m.Number(x)
		yv, oky := m.Number(y)
		if okx && oky {
			out = append(out, ScatterPoint{ID: m.ID, X: xv, Y: yv})
		}
	}
	return out
}

// ScatterOptions labels the chart. Trend adds the least-squares line.
type ScatterOptions struct {
	Title, XLabel, YLabel string
	Trend                 bool
	Radius                int
}

// Scatter draws one circle per point. Clicking a circle targets its record.
func Scatter(w io.Writer, pts []ScatterPoint, size Size, t Theme, props selection.Props, opt ScatterOptions) *Chart {
	ch := &Chart{Size: size}
	c := begin(w, size, t, opt.Title)
	defer c.End()
	if len(pts) == 0 {
		emptyMessage(c, size, t, "no data")
		return ch
	}
	plot := size.plot(t.Margin)
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	xmin, xmax := stats.Bounds(xs)
	ymin, ymax := stats.Bounds(ys)
	sx := NewLinear(xmin, xmax, plot.X, plot.right())
	sy := NewLinear(ymin, ymax, plot.bottom(), plot.Y)
	xAxis(c, t, sx, plot, opt.XLabel)
	yAxis(c, t, sy, plot, opt.YLabel)

	r := opt.Radius
	if r <= 0 {
		r = 4
	}
	c.Group(`class="points"`)
	for _, p := range pts {
		cx, cy := sx.Map(p.X), sy.Map(p.Y)
		style := fmt.Sprintf(`id="%s" fill="%s" fill-opacity="%.2f"`, utils.ElementID("pt", p.ID), t.color(0), markOpacity(t, props.RecordDimmed(p.ID)))
		if props.RecordHighlighted(p.ID) {
			style += fmt.Sprintf(` stroke="%s" stroke-width="2"`, t.Highlight)
		}
		c.Circle(px(cx), px(cy), r, style)
		ch.add(circle{cx, cy, float64(r) + 2},
			Datum{Title: p.ID, Lines: []string{
				fmt.Sprintf("%s: %s", axisName(opt.XLabel, "x"), tickLabel(p.X)),
				fmt.Sprintf("%s: %s", axisName(opt.YLabel, "y"), tickLabel(p.Y)),
			}, X: cx, Y: cy},
			&Target{Kind: TargetRecord, Record: p.ID})
	}
	c.Gend()

	if opt.Trend && len(pts) >= 2 {
		line := stats.LinearRegression(xs, ys)
		lo, hi := sx.Domain()
		c.Line(px(sx.Map(lo)), px(sy.Map(line.At(lo))), px(sx.Map(hi)), px(sy.Map(line.At(hi))),
			fmt.Sprintf(`class="trend" stroke="%s" stroke-width="2" stroke-dasharray="6,4" clip-path="url(#plot)"`, t.Highlight))
		clip(c, plot)
	}
	return ch
}

// clip defines the plot clip rectangle referenced by url(#plot).
func clip(c *svg.SVG, plot rect) {
	c.ClipPath(`id="plot"`)
	c.Rect(px(plot.X), px(plot.Y), px(plot.W), px(plot.H))
	c.ClipEnd()
}

func markOpacity(t Theme, dimmed bool) float64 {
	if dimmed {
		return t.DimOpacity
	}
	return 0.75
}

func axisName(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
