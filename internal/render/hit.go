package render

import (
	"math"

	"github.com/KaramelBytes/reelviz-cli/internal/selection"
)

// TargetKind says what a click selected.
type TargetKind int

const (
	TargetEdge TargetKind = iota + 1
	TargetRecord
)

// Target is the payload of a click: an edge or a record.
type Target struct {
	Kind   TargetKind
	Edge   selection.Pair
	Record string
}

// Apply forwards the target to the controller's matching transition.
func (t Target) Apply(c *selection.Controller) selection.State {
	switch t.Kind {
	case TargetEdge:
		return c.SelectEdge(t.Edge.A, t.Edge.B)
	case TargetRecord:
		return c.SelectRecord(t.Record)
	}
	return c.State()
}

// Handlers receive interaction callbacks. Either may be nil.
type Handlers struct {
	OnHover func(*Datum)
	OnClick func(Target)
}

type shape interface {
	contains(x, y float64) bool
}

type circle struct{ cx, cy, r float64 }

func (c circle) contains(x, y float64) bool {
	return math.Hypot(x-c.cx, y-c.cy) <= c.r
}

type box struct{ x, y, w, h float64 }

func (b box) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// polygon is tested with the even-odd rule.
type polygon struct{ xs, ys []float64 }

func (p polygon) contains(x, y float64) bool {
	in := false
	n := len(p.xs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if (p.ys[i] > y) != (p.ys[j] > y) &&
			x < (p.xs[j]-p.xs[i])*(y-p.ys[i])/(p.ys[j]-p.ys[i])+p.xs[i] {
			in = !in
		}
	}
	return in
}

// sector is an annular sector around (cx, cy) with chord-style angles.
type sector struct {
	cx, cy, inner, outer float64
	start, end           float64
}

func (s sector) contains(x, y float64) bool {
	dx, dy := x-s.cx, y-s.cy
	r := math.Hypot(dx, dy)
	if r < s.inner || r > s.outer {
		return false
	}
	a := math.Atan2(dx, -dy)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a >= s.start && a <= s.end
}

type region struct {
	shape  shape
	datum  Datum
	target *Target
}

// Chart is the result of drawing: the canvas size and the interactive
// regions, topmost last.
type Chart struct {
	Size    Size
	regions []region
}

func (c *Chart) add(s shape, d Datum, t *Target) {
	c.regions = append(c.regions, region{shape: s, datum: d, target: t})
}

// Hit returns the topmost region under (x, y).
func (c *Chart) hit(x, y float64) (region, bool) {
	for i := len(c.regions) - 1; i >= 0; i-- {
		if c.regions[i].shape.contains(x, y) {
			return c.regions[i], true
		}
	}
	return region{}, false
}

// Regions is the number of interactive marks.
func (c *Chart) Regions() int { return len(c.regions) }

// PointerMove reports the datum under the pointer, or nil when there is
// none. It is idempotent and may be called at any rate.
func (c *Chart) PointerMove(x, y float64, h Handlers) {
	if h.OnHover == nil {
		return
	}
	r, ok := c.hit(x, y)
	if !ok {
		h.OnHover(nil)
		return
	}
	d := r.datum
	h.OnHover(&d)
}

// PointerLeave always clears the hover.
func (c *Chart) PointerLeave(h Handlers) {
	if h.OnHover != nil {
		h.OnHover(nil)
	}
}

// Click reports the target under the pointer. Clicks on marks without a
// target, or on empty space, report nothing.
func (c *Chart) Click(x, y float64, h Handlers) {
	if h.OnClick == nil {
		return
	}
	r, ok := c.hit(x, y)
	if !ok || r.target == nil {
		return
	}
	h.OnClick(*r.target)
}
