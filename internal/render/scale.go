package render

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps a numeric domain onto a pixel range. The pixel range may be
// inverted (lo > hi) for vertical axes.
type Linear struct {
	s      scale.Linear
	lo, hi float64
}

// NewLinear builds a scale over [min, max], widened to nice tick values.
// A degenerate domain is widened by one unit on each side so Map stays
// finite.
func NewLinear(min, max, lo, hi float64) Linear {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		min, max = 0, 1
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		min, max = min-1, max+1
	}
	s := scale.Linear{Min: min, Max: max, Base: 10}
	s.Nice(scale.TickOptions{Max: 8})
	return Linear{s: s, lo: lo, hi: hi}
}

// Map converts a domain value to a pixel coordinate.
func (l Linear) Map(v float64) float64 {
	return l.lo + l.s.Map(v)*(l.hi-l.lo)
}

// Domain returns the (widened) domain.
func (l Linear) Domain() (min, max float64) { return l.s.Min, l.s.Max }

// Ticks returns at most max major tick values inside the domain.
func (l Linear) Ticks(max int) []float64 {
	if max < 2 {
		max = 2
	}
	major, _ := l.s.Ticks(scale.TickOptions{Max: max})
	return major
}

// Band splits a pixel range into equal bands, one per key, with a fraction
// of each band left as padding.
type Band struct {
	keys    []string
	index   map[string]int
	lo, hi  float64
	padding float64
}

// NewBand lays keys out from lo to hi in order.
func NewBand(keys []string, lo, hi, padding float64) Band {
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	if padding < 0 || padding >= 1 {
		padding = 0
	}
	return Band{keys: keys, index: idx, lo: lo, hi: hi, padding: padding}
}

func (b Band) step() float64 {
	if len(b.keys) == 0 {
		return 0
	}
	return (b.hi - b.lo) / float64(len(b.keys))
}

// Pos returns the start of the key's band, after padding.
func (b Band) Pos(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}
	st := b.step()
	return b.lo + float64(i)*st + st*b.padding/2, true
}

// Width is the drawable width of one band.
func (b Band) Width() float64 { return math.Abs(b.step()) * (1 - b.padding) }

// Keys returns the keys in layout order.
func (b Band) Keys() []string { return b.keys }
