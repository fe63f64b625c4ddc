package render

import (
	"fmt"
	"io"
	"math"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/chord"
	"github.com/KaramelBytes/reelviz-cli/internal/selection"
	"github.com/KaramelBytes/reelviz-cli/internal/utils"
)

// ChordOptions labels a chord chart.
type ChordOptions struct {
	Title string
	// ArcWidth is the thickness of node arcs in pixels.
	ArcWidth int
	// Labels draws node labels outside the arcs.
	Labels bool
}

// ribbonSteps is the number of segments used to approximate each curve of
// a ribbon for hit testing.
const ribbonSteps = 16

// Chord draws a laid-out diagram centered on the canvas. Clicking a ribbon
// targets its edge. An empty diagram is drawn as an empty canvas with a
// note, not as an error.
func Chord(w io.Writer, d chord.Diagram, size Size, t Theme, props selection.Props, opt ChordOptions) *Chart {
	ch := &Chart{Size: size}
	c := begin(w, size, t, opt.Title)
	defer c.End()
	if len(d.Arcs) == 0 {
		emptyMessage(c, size, t, "no co-occurrences for the current filters")
		return ch
	}
	arcWidth := float64(opt.ArcWidth)
	if arcWidth <= 0 {
		arcWidth = 12
	}
	labelRoom := 0.0
	if opt.Labels {
		labelRoom = 90
	}
	plot := size.plot(t.Margin)
	outer := math.Min(plot.W, plot.H)/2 - labelRoom
	if outer < arcWidth+10 {
		outer = arcWidth + 10
	}
	inner := outer - arcWidth
	cx, cy := plot.X+plot.W/2, plot.Y+plot.H/2

	c.Translate(px(cx), px(cy))
	c.Group(`class="ribbons"`)
	for _, rb := range d.Ribbons {
		e := analysis.Edge{A: rb.A, B: rb.B, Weight: rb.Weight, Records: rb.Records}
		opacity := 0.7
		style := ""
		switch {
		case props.EdgeHighlighted(e):
			opacity = 0.95
			style = fmt.Sprintf(` stroke="%s" stroke-width="1.5"`, t.Highlight)
		case props.EdgeDimmed(e):
			opacity = t.DimOpacity
		}
		c.Path(rb.Path(inner), fmt.Sprintf(`id="%s" fill="%s" fill-opacity="%.2f"%s`,
			utils.ElementID("ribbon", rb.A, rb.B), rb.Color, opacity, style))
		mid := rb.Source.Mid()
		ax, ay := chord.Point(inner/2, mid)
		ch.add(ribbonShape(rb, inner, cx, cy), Datum{
			Title: fmt.Sprintf("%s & %s", rb.A, rb.B),
			Lines: []string{fmt.Sprintf("%d shared films", rb.Weight)},
			X:     cx + ax, Y: cy + ay,
		}, &Target{Kind: TargetEdge, Edge: selection.NewPair(rb.A, rb.B)})
	}
	c.Gend()

	c.Group(`class="arcs"`)
	for _, a := range d.Arcs {
		opacity := 1.0
		if props.NodeDimmed(a.Label) {
			opacity = t.DimOpacity
		}
		c.Path(a.Path(inner, outer), fmt.Sprintf(`id="%s" fill="%s" fill-opacity="%.2f"`,
			utils.ElementID("arc", a.Label), a.Color, opacity))
		if opt.Labels {
			lx, ly := chord.Point(outer+6, a.Mid())
			anchor := "start"
			if a.Mid() > math.Pi {
				anchor = "end"
			}
			c.Text(px(lx), px(ly), a.Label, fmt.Sprintf(`text-anchor="%s" dominant-baseline="middle" fill="%s"`, anchor, t.Text))
		}
		ax, ay := chord.Point(outer, a.Mid())
		ch.add(sector{cx: cx, cy: cy, inner: inner, outer: outer, start: a.Start, end: a.End}, Datum{
			Title: a.Label,
			Lines: []string{fmt.Sprintf("total weight %d", a.Weight)},
			X:     cx + ax, Y: cy + ay,
		}, nil)
	}
	c.Gend()
	c.Gend()
	return ch
}

// ribbonShape approximates a ribbon outline as a polygon in canvas
// coordinates.
func ribbonShape(rb chord.Ribbon, r, cx, cy float64) polygon {
	var p polygon
	addArc := func(s chord.Span) {
		for i := 0; i <= ribbonSteps; i++ {
			x, y := chord.Point(r, s.Start+s.Width()*float64(i)/ribbonSteps)
			p.xs = append(p.xs, cx+x)
			p.ys = append(p.ys, cy+y)
		}
	}
	// Quadratic Bezier from (x0, y0) to (x1, y1) with the control point at
	// the center.
	addCurve := func(from, to float64) {
		x0, y0 := chord.Point(r, from)
		x1, y1 := chord.Point(r, to)
		for i := 1; i < ribbonSteps; i++ {
			u := float64(i) / ribbonSteps
			k := (1 - u) * (1 - u)
			m := u * u
			p.xs = append(p.xs, cx+k*x0+m*x1)
			p.ys = append(p.ys, cy+k*y0+m*y1)
		}
	}
	addArc(rb.Source)
	addCurve(rb.Source.End, rb.Target.Start)
	addArc(rb.Target)
	addCurve(rb.Target.End, rb.Source.Start)
	return p
}
