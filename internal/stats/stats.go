// Package stats holds the statistical primitives shared by the aggregation
// engine and the chart trend lines.
//
// Every function is total. Degenerate input (fewer than two pairs, zero
// variance) returns 0 rather than an error, because missing data is the
// common case in the movie table. Callers that need to tell "no correlation"
// from "not computable" must check the input size or variance themselves.
package stats

import (
	"math"
	"sort"

	mstats "github.com/aclements/go-moremath/stats"
)

// eps is the variance below which a series is treated as constant.
const eps = 1e-12

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return mstats.Mean(xs)
}

// Bounds returns the minimum and maximum, or 0, 0 for an empty slice.
func Bounds(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	return mstats.Bounds(xs)
}

// StdDev returns the sample standard deviation, or 0 for fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return math.Sqrt(mstats.Variance(xs))
}

// Covariance is the sample covariance of matched-index pairs. Only the first
// min(len(xs), len(ys)) pairs are used; fewer than 2 pairs gives 0.
func Covariance(xs, ys []float64) float64 {
	xs, ys = matched(xs, ys)
	n := len(xs)
	if n < 2 {
		return 0
	}
	mx, my := mstats.Mean(xs), mstats.Mean(ys)
	var s float64
	for i := range xs {
		s += (xs[i] - mx) * (ys[i] - my)
	}
	return s / float64(n-1)
}

// Pearson is the correlation coefficient of matched-index pairs, clamped to
// [-1, 1]. It returns 0 when either series has (numerically) zero variance.
func Pearson(xs, ys []float64) float64 {
	xs, ys = matched(xs, ys)
	if len(xs) < 2 {
		return 0
	}
	vx, vy := Covariance(xs, xs), Covariance(ys, ys)
	if vx <= eps || vy <= eps {
		return 0
	}
	r := Covariance(xs, ys) / math.Sqrt(vx*vy)
	if math.IsNaN(r) {
		return 0
	}
	return math.Max(-1, math.Min(1, r))
}

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// LinearRegression fits ordinary least squares on matched-index pairs. It
// returns the zero Line for fewer than 2 pairs or zero-variance x.
func LinearRegression(xs, ys []float64) Line {
	xs, ys = matched(xs, ys)
	if len(xs) < 2 {
		return Line{}
	}
	vx := Covariance(xs, xs)
	if vx <= eps {
		return Line{}
	}
	slope := Covariance(xs, ys) / vx
	return Line{Slope: slope, Intercept: mstats.Mean(ys) - slope*mstats.Mean(xs)}
}

// Median sorts a copy of vals and returns the middle value (mean of the two
// middle values for even counts). Empty input gives 0.
func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return Quantile(cp, 0.5)
}

// Quantile interpolates linearly between closest ranks of an already sorted
// slice.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

func matched(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	return xs[:n], ys[:n]
}
