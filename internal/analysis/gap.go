package analysis

import (
	"sort"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

// Affine is x -> Scale*x + Offset. It puts two rating scales on common
// footing before they are differenced.
type Affine struct {
	Scale  float64 `mapstructure:"scale" yaml:"scale"`
	Offset float64 `mapstructure:"offset" yaml:"offset"`
}

// Identity leaves values unchanged.
var Identity = Affine{Scale: 1}

// Apply maps x.
func (a Affine) Apply(x float64) float64 { return a.Scale*x + a.Offset }

// Gap is the mean signed difference rescaleA(a) - b within one category.
type Gap struct {
	Key     string
	MeanGap float64
	Count   int
	MeanA   float64 // mean of rescaled a
	MeanB   float64
}

// YearGap is Gap keyed by release year.
type YearGap struct {
	Year    int
	MeanGap float64
	Count   int
	MeanA   float64
	MeanB   float64
}

// Midpoint is the center of the band drawn between the two means.
func (y YearGap) Midpoint() float64 { return (y.MeanA + y.MeanB) / 2 }

// PrimaryGenre keys a movie by the first token of its genre list.
func PrimaryGenre(m *dataset.Movie) (string, bool) { return m.PrimaryGenre() }

type gapAcc struct {
	gap, a, b float64
	n         int
}

func (g *gapAcc) add(a, b float64) {
	g.gap += a - b
	g.a += a
	g.b += b
	g.n++
}

// DisagreementByCategory averages rescaleA(a) - b per category. Rows without
// a category or missing either value are dropped. A nil rescaleA is the
// identity. Results are sorted by MeanGap descending, then by key.
func DisagreementByCategory(movies []*dataset.Movie, category func(*dataset.Movie) (string, bool), a, b string, rescaleA func(float64) float64) []Gap {
	if rescaleA == nil {
		rescaleA = Identity.Apply
	}
	accs := map[string]*gapAcc{}
	for _, m := range movies {
		key, ok := category(m)
		if !ok || key == "" {
			continue
		}
		av, oka := m.Number(a)
		bv, okb := m.Number(b)
		if !oka || !okb {
			continue
		}
		acc := accs[key]
		if acc == nil {
			acc = &gapAcc{}
			accs[key] = acc
		}
		acc.add(rescaleA(av), bv)
	}
	out := make([]Gap, 0, len(accs))
	for k, acc := range accs {
		n := float64(acc.n)
		out = append(out, Gap{Key: k, MeanGap: acc.gap / n, Count: acc.n, MeanA: acc.a / n, MeanB: acc.b / n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanGap == out[j].MeanGap {
			return out[i].Key < out[j].Key
		}
		return out[i].MeanGap > out[j].MeanGap
	})
	return out
}

// DisagreementByYear is DisagreementByCategory keyed by release year and
// sorted by year. It also reports the per-year means of rescaled a and b.
func DisagreementByYear(movies []*dataset.Movie, a, b string, rescaleA func(float64) float64) []YearGap {
	if rescaleA == nil {
		rescaleA = Identity.Apply
	}
	accs := map[int]*gapAcc{}
	for _, m := range movies {
		y, ok := m.YearInt()
		if !ok {
			continue
		}
		av, oka := m.Number(a)
		bv, okb := m.Number(b)
		if !oka || !okb {
			continue
		}
		acc := accs[y]
		if acc == nil {
			acc = &gapAcc{}
			accs[y] = acc
		}
		acc.add(rescaleA(av), bv)
	}
	out := make([]YearGap, 0, len(accs))
	for y, acc := range accs {
		n := float64(acc.n)
		out = append(out, YearGap{Year: y, MeanGap: acc.gap / n, Count: acc.n, MeanA: acc.a / n, MeanB: acc.b / n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
