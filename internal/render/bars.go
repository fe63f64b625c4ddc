package render

import (
	"fmt"
	"io"
	"math"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
)

// BarOptions labels a diverging bar chart.
type BarOptions struct {
	Title, XLabel string
}

// DivergingBars draws one horizontal bar per gap, growing right from zero
// for positive gaps and left for negative ones. Bar opacity encodes the
// sample count, saturating at Theme.OpacityCap (or the largest count when
// the cap is zero).
func DivergingBars(w io.Writer, gaps []analysis.Gap, size Size, t Theme, opt BarOptions) *Chart {
	ch := &Chart{Size: size}
	c := begin(w, size, t, opt.Title)
	defer c.End()
	if len(gaps) == 0 {
		emptyMessage(c, size, t, "no data")
		return ch
	}

	m := t.Margin
	m.Left += 60
	plot := size.plot(m)
	keys := make([]string, len(gaps))
	extent, maxCount := 0.0, 0
	for i, g := range gaps {
		keys[i] = g.Key
		extent = math.Max(extent, math.Abs(g.MeanGap))
		if g.Count > maxCount {
			maxCount = g.Count
		}
	}
	if extent == 0 {
		extent = 1
	}
	sx := NewLinear(-extent, extent, plot.X, plot.right())
	band := NewBand(keys, plot.Y, plot.bottom(), 0.2)
	xAxis(c, t, sx, plot, opt.XLabel)
	bandAxis(c, t, band, plot)

	zero := sx.Map(0)
	c.Group(`class="bars"`)
	for _, g := range gaps {
		y, _ := band.Pos(g.Key)
		end := sx.Map(g.MeanGap)
		x0, x1 := math.Min(zero, end), math.Max(zero, end)
		fill := t.Positive
		if g.MeanGap < 0 {
			fill = t.Negative
		}
		c.Rect(px(x0), px(y), px(x1-x0), px(band.Width()),
			fmt.Sprintf(`id="%s" fill="%s" fill-opacity="%.2f"`, utils.ElementID("bar", g.Key), fill, t.opacityFor(g.Count, maxCount)))
		// The hit box spans the whole band so short bars stay hoverable.
		ch.add(box{plot.X, y, plot.W, band.Width()}, Datum{
			Title: g.Key,
			Lines: []string{
				fmt.Sprintf("mean gap: %+.2f", g.MeanGap),
				fmt.Sprintf("n = %d", g.Count),
			},
			X: end, Y: y + band.Width()/2,
		}, nil)
	}
	c.Gend()
	c.Line(px(zero), px(plot.Y), px(zero), px(plot.bottom()), fmt.Sprintf(`stroke="%s"`, t.Axis))
	return ch
}

// YearBandOptions labels a year band chart.
type YearBandOptions struct {
	Title, YLabel string
	// NameA and NameB label the two means in tooltips.
	NameA, NameB string
}

// YearBand draws, per year, a band spanning the two means, which is
// symmetric around their midpoint, plus the midpoint line. Hovering a year
// shows both means and the gap.
func YearBand(w io.Writer, years []analysis.YearGap, size Size, t Theme, opt YearBandOptions) *Chart {
	ch := &Chart{Size: size}
	c := begin(w, size, t, opt.Title)
	defer c.End()
	if len(years) == 0 {
		emptyMessage(c, size, t, "no data")
		return ch
	}
	plot := size.plot(t.Margin)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range years {
		lo = math.Min(lo, math.Min(y.MeanA, y.MeanB))
		hi = math.Max(hi, math.Max(y.MeanA, y.MeanB))
	}
	sx := NewLinear(float64(years[0].Year), float64(years[len(years)-1].Year), plot.X, plot.right())
	sy := NewLinear(lo, hi, plot.bottom(), plot.Y)
	xAxis(c, t, sx, plot, "year")
	yAxis(c, t, sy, plot, opt.YLabel)

	n := len(years)
	bx := make([]int, 0, 2*n)
	by := make([]int, 0, 2*n)
	mx := make([]int, n)
	my := make([]int, n)
	for i, y := range years {
		half := math.Abs(y.MeanGap) / 2
		bx = append(bx, px(sx.Map(float64(y.Year))))
		by = append(by, px(sy.Map(y.Midpoint()+half)))
		mx[i], my[i] = px(sx.Map(float64(y.Year))), px(sy.Map(y.Midpoint()))
	}
	for i := n - 1; i >= 0; i-- {
		y := years[i]
		bx = append(bx, px(sx.Map(float64(y.Year))))
		by = append(by, px(sy.Map(y.Midpoint()-math.Abs(y.MeanGap)/2)))
	}
	c.Polygon(bx, by, fmt.Sprintf(`class="band" fill="%s" fill-opacity="0.35" stroke="none"`, t.Positive))
	c.Polyline(mx, my, fmt.Sprintf(`class="midpoint" fill="none" stroke="%s" stroke-width="2"`, t.Highlight))

	nameA, nameB := axisName(opt.NameA, "a"), axisName(opt.NameB, "b")
	for i, y := range years {
		x := sx.Map(float64(y.Year))
		c.Circle(mx[i], my[i], 3, fmt.Sprintf(`fill="%s"`, t.Highlight))
		ch.add(box{x - 4, plot.Y, 8, plot.H}, Datum{
			Title: fmt.Sprintf("%d", y.Year),
			Lines: []string{
				fmt.Sprintf("%s: %.2f", nameA, y.MeanA),
				fmt.Sprintf("%s: %.2f", nameB, y.MeanB),
				fmt.Sprintf("gap: %+.2f (n=%d)", y.MeanGap, y.Count),
			},
			X: x, Y: sy.Map(y.Midpoint()),
		}, nil)
	}
	return ch
}
