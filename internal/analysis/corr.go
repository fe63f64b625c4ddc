package analysis

import (
	"math"
	"sort"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/stats"
)

// CorrMatrix holds a symmetric Pearson correlation matrix.
type CorrMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"` // row-major, Values[i][j]
}

// PairCorr is one off-diagonal entry.
type PairCorr struct {
	A, B string
	R    float64
}

// CorrelationMatrix correlates the numeric and flag columns of columns, in
// order. Each entry uses pairwise-complete rows only. A zero-variance column
// correlates 1 with itself and 0 with everything else.
func CorrelationMatrix(movies []*dataset.Movie, columns []dataset.Column) CorrMatrix {
	var names []string
	for _, c := range columns {
		if c.Kind.Numeric() {
			names = append(names, c.Name)
		}
	}
	n := len(names)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			xs, ys := pairwise(movies, names[a], names[b])
			r := stats.Pearson(xs, ys)
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return CorrMatrix{Columns: names, Values: mat}
}

// At returns the correlation between two named columns.
func (c CorrMatrix) At(a, b string) (float64, bool) {
	i, j := index(c.Columns, a), index(c.Columns, b)
	if i < 0 || j < 0 {
		return 0, false
	}
	return c.Values[i][j], true
}

// TopPairs lists up to n off-diagonal pairs by descending |r|.
func (c CorrMatrix) TopPairs(n int) []PairCorr {
	var pairs []PairCorr
	for i := range c.Columns {
		for j := i + 1; j < len(c.Columns); j++ {
			pairs = append(pairs, PairCorr{A: c.Columns[i], B: c.Columns[j], R: c.Values[i][j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].R), math.Abs(pairs[j].R)
		if ai == aj {
			return pairs[i].A+pairs[i].B < pairs[j].A+pairs[j].B
		}
		return ai > aj
	})
	if n >= 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// pairwise returns matched values of two columns over rows where both are
// present.
func pairwise(movies []*dataset.Movie, a, b string) (xs, ys []float64) {
	for _, m := range movies {
		x, okx := m.Number(a)
		y, oky := m.Number(b)
		if okx && oky {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

func index(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}
