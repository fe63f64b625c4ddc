package render

import (
	"fmt"
	"io"
	"math"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
)

// LinesOptions labels a multi-series line chart.
type LinesOptions struct {
	Title, XLabel, YLabel string
}

// Lines draws one polyline per series, colored by series order, with a
// hoverable marker per point. Points are joined as given; missing x values
// are not interpolated, the line simply spans the gap.
func Lines(w io.Writer, series []analysis.Series, size Size, t Theme, opt LinesOptions) *Chart {
	ch := &Chart{Size: size}
	c := begin(w, size, t, opt.Title)
	defer c.End()

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	if math.IsInf(xmin, 1) {
		emptyMessage(c, size, t, "no data")
		return ch
	}
	plot := size.plot(t.Margin)
	sx := NewLinear(xmin, xmax, plot.X, plot.right())
	sy := NewLinear(ymin, ymax, plot.bottom(), plot.Y)
	xAxis(c, t, sx, plot, opt.XLabel)
	yAxis(c, t, sy, plot, opt.YLabel)

	names := make([]string, len(series))
	colors := make([]string, len(series))
	for i, s := range series {
		color := t.color(i)
		names[i], colors[i] = s.Key, color
		xs := make([]int, len(s.Points))
		ys := make([]int, len(s.Points))
		for j, p := range s.Points {
			xs[j], ys[j] = px(sx.Map(p.X)), px(sy.Map(p.Y))
		}
		c.Group(fmt.Sprintf(`id="%s" class="series"`, utils.ElementID("series", s.Key)))
		c.Polyline(xs, ys, fmt.Sprintf(`fill="none" stroke="%s" stroke-width="2"`, color))
		for j, p := range s.Points {
			c.Circle(xs[j], ys[j], 3, fmt.Sprintf(`fill="%s"`, color))
			ch.add(circle{sx.Map(p.X), sy.Map(p.Y), 6}, Datum{
				Title: s.Key,
				Lines: []string{
					fmt.Sprintf("%s: %s", axisName(opt.XLabel, "x"), tickLabel(p.X)),
					fmt.Sprintf("mean %s: %.2f (n=%d)", axisName(opt.YLabel, "y"), p.Y, p.N),
				},
				X: sx.Map(p.X), Y: sy.Map(p.Y),
			}, nil)
		}
		c.Gend()
	}
	if len(series) > 1 {
		legend(c, t, plot, names, colors)
	}
	return ch
}
