package analysis

import (
	"sort"

	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

// AllSeries is the key of the implicit series over every row.
const AllSeries = "all"

// Point is the mean metric at one x value.
type Point struct {
	X float64
	Y float64
	N int
}

// Series is one line of a grouped chart.
type Series struct {
	Key    string
	Points []Point
}

// GroupedSeries averages metric per distinct x for the AllSeries group and
// for each grouping column. A flag column forms one group of the rows where
// the flag is true, keyed by the column name; any other column forms one group
// per distinct value, keyed "column=value" in encounter order. Rows missing x
// or metric are dropped, points are sorted by x, and groups left without rows
// are omitted.
func GroupedSeries(movies []*dataset.Movie, groupingColumns []dataset.Column, metric, x string) []Series {
	var out []Series
	add := func(key string, members []*dataset.Movie) {
		if pts := bucketMeans(members, metric, x); len(pts) > 0 {
			out = append(out, Series{Key: key, Points: pts})
		}
	}
	add(AllSeries, movies)
	for _, c := range groupingColumns {
		if c.Kind == dataset.KindFlag {
			var members []*dataset.Movie
			for _, m := range movies {
				if v, _ := m.Flag(c.Name); v {
					members = append(members, m)
				}
			}
			add(c.Name, members)
			continue
		}
		var order []string
		groups := map[string][]*dataset.Movie{}
		for _, m := range movies {
			v := m.Text(c.Name)
			if v == "" {
				continue
			}
			if _, ok := groups[v]; !ok {
				order = append(order, v)
			}
			groups[v] = append(groups[v], m)
		}
		for _, v := range order {
			add(c.Name+"="+v, groups[v])
		}
	}
	return out
}

func bucketMeans(movies []*dataset.Movie, metric, x string) []Point {
	type acc struct {
		sum float64
		n   int
	}
	buckets := map[float64]*acc{}
	for _, m := range movies {
		xv, okx := m.Number(x)
		yv, oky := m.Number(metric)
		if !okx || !oky {
			continue
		}
		a := buckets[xv]
		if a == nil {
			a = &acc{}
			buckets[xv] = a
		}
		a.sum += yv
		a.n++
	}
	pts := make([]Point, 0, len(buckets))
	for xv, a := range buckets {
		pts = append(pts, Point{X: xv, Y: a.sum / float64(a.n), N: a.n})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	return pts
}
