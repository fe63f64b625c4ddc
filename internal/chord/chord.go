// Package chord lays out a weighted co-occurrence graph on a circle: one arc
// per node, one ribbon per edge.
//
// Angles are radians measured clockwise from 12 o'clock. Layout keeps no
// state and is re-run from scratch whenever the graph changes.
package chord

import (
	"math"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
)

// DefaultPalette is used when Options.Palette is empty.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Options controls the layout.
type Options struct {
	// Padding is the gap between adjacent arcs in radians. It shrinks to
	// π/n when n arcs would otherwise spend more than half the circle on gaps.
	Padding float64
	// Palette colors nodes by index, cycling.
	Palette []string
}

// DefaultOptions returns the standard layout settings.
func DefaultOptions() Options {
	return Options{Padding: 0.04, Palette: DefaultPalette}
}

// Span is an angular interval.
type Span struct {
	Start, End float64
}

// Width is End - Start.
func (s Span) Width() float64 { return s.End - s.Start }

// Mid is the center angle.
func (s Span) Mid() float64 { return (s.Start + s.End) / 2 }

// Arc is the angular extent of one node.
type Arc struct {
	Span
	Label  string
	Weight int
	Color  string
}

// Ribbon connects the sub-interval of edge A-B on A's arc (Source) with the
// one on B's arc (Target). Both have the same width.
type Ribbon struct {
	A, B    string
	Weight  int
	Records []string
	Source  Span
	Target  Span
	Color   string
}

// Diagram is the full layout.
type Diagram struct {
	Arcs    []Arc
	Ribbons []Ribbon
	// Padding is the gap actually used.
	Padding float64
}

// Arc finds the arc of a node.
func (d Diagram) Arc(label string) (Arc, bool) {
	for _, a := range d.Arcs {
		if a.Label == label {
			return a, true
		}
	}
	return Arc{}, false
}

// Layout allocates the circle. Arc spans are proportional to node weight
// after reserving one padding per node. Each node's span is then split among
// its incident edges, in edge order, proportionally to edge weight; both ends
// of an edge use the same scale factor so a ribbon has equal width at each
// end. Node weights must equal the sum of incident edge weights, which holds
// for graphs built by analysis.CoOccurrence.
func Layout(g analysis.Graph, opt Options) Diagram {
	n := len(g.Nodes)
	if n == 0 {
		return Diagram{}
	}
	palette := opt.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	pad := math.Max(0, opt.Padding)
	if float64(n)*pad > math.Pi {
		pad = math.Pi / float64(n)
	}
	var total float64
	for _, nd := range g.Nodes {
		total += float64(nd.Weight)
	}
	if total <= 0 {
		return Diagram{}
	}
	k := (2*math.Pi - float64(n)*pad) / total

	d := Diagram{Arcs: make([]Arc, n), Padding: pad}
	idx := make(map[string]int, n)
	cursor := make([]float64, n)
	angle := 0.0
	for i, nd := range g.Nodes {
		end := angle + float64(nd.Weight)*k
		d.Arcs[i] = Arc{Span: Span{angle, end}, Label: nd.Label, Weight: nd.Weight, Color: palette[i%len(palette)]}
		idx[nd.Label] = i
		cursor[i] = angle
		angle = end + pad
	}

	for _, e := range g.Edges {
		ia, oka := idx[e.A]
		ib, okb := idx[e.B]
		if !oka || !okb {
			continue
		}
		w := float64(e.Weight) * k
		src := Span{cursor[ia], cursor[ia] + w}
		cursor[ia] += w
		dst := Span{cursor[ib], cursor[ib] + w}
		cursor[ib] += w
		d.Ribbons = append(d.Ribbons, Ribbon{
			A: e.A, B: e.B, Weight: e.Weight, Records: e.Records,
			Source: src, Target: dst,
			Color: Blend(d.Arcs[ia].Color, d.Arcs[ib].Color),
		})
	}
	return d
}
