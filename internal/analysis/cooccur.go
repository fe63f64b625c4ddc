package analysis

import "github.com/KaramelBytes/reelviz-cli/internal/dataset"

// Node is one participant with the summed weight of its surviving edges.
type Node struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// Edge is an unordered participant pair. A < B lexicographically. Records
// lists the ids of the rows that contributed to Weight, in input order.
type Edge struct {
	A       string   `json:"a"`
	B       string   `json:"b"`
	Weight  int      `json:"weight"`
	Records []string `json:"records"`
}

// Connects reports whether the edge joins a and b in either order.
func (e Edge) Connects(a, b string) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Touches reports whether label is one of the endpoints.
func (e Edge) Touches(label string) bool { return e.A == label || e.B == label }

// Graph is the weighted co-occurrence structure consumed by the chord layout.
type Graph struct {
	Nodes []Node
	Edges []Edge
	// Filtered lists the ids of rows that passed the filter predicate.
	Filtered []string
}

// Edge finds the edge joining a and b.
func (g Graph) Edge(a, b string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.Connects(a, b) {
			return e, true
		}
	}
	return Edge{}, false
}

// Empty reports whether the graph has nothing to draw.
func (g Graph) Empty() bool { return len(g.Nodes) == 0 }

// CoOccurrenceOptions parameterizes CoOccurrence.
type CoOccurrenceOptions struct {
	// Filter selects the active rows; nil keeps all rows.
	Filter func(*dataset.Movie) bool
	// Participants extracts the entities of a row; nil uses Stars.
	Participants func(*dataset.Movie) []string
	// MinWeight drops lighter edges entirely. Values below 1 mean 1.
	MinWeight int
}

// Stars is the default participant extractor.
func Stars(m *dataset.Movie) []string { return m.Stars }

// YearRange keeps rows released within [from, to]. Rows without a year are
// dropped.
func YearRange(from, to int) func(*dataset.Movie) bool {
	return func(m *dataset.Movie) bool {
		y, ok := m.YearInt()
		return ok && y >= from && y <= to
	}
}

// CoOccurrence counts, over the filtered rows, how often each pair of
// participants appears in the same row. Participants are deduplicated per
// row. Edges lighter than MinWeight are removed before node weights are
// summed, so a participant with only light edges does not appear. Nodes are
// ordered by first appearance among the filtered rows and edges by first
// contribution, so identical input always gives identical output.
func CoOccurrence(movies []*dataset.Movie, opt CoOccurrenceOptions) Graph {
	participants := opt.Participants
	if participants == nil {
		participants = Stars
	}
	minWeight := opt.MinWeight
	if minWeight < 1 {
		minWeight = 1
	}

	g := Graph{}
	var firstSeen []string
	seen := map[string]bool{}
	edgeIdx := map[[2]string]int{}
	var edges []Edge
	for _, m := range movies {
		if opt.Filter != nil && !opt.Filter(m) {
			continue
		}
		g.Filtered = append(g.Filtered, m.ID)
		ps := dedupe(participants(m))
		for _, p := range ps {
			if !seen[p] {
				seen[p] = true
				firstSeen = append(firstSeen, p)
			}
		}
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				a, b := ps[i], ps[j]
				if b < a {
					a, b = b, a
				}
				key := [2]string{a, b}
				k, ok := edgeIdx[key]
				if !ok {
					k = len(edges)
					edgeIdx[key] = k
					edges = append(edges, Edge{A: a, B: b})
				}
				edges[k].Weight++
				edges[k].Records = append(edges[k].Records, m.ID)
			}
		}
	}

	for _, e := range edges {
		if e.Weight >= minWeight {
			g.Edges = append(g.Edges, e)
		}
	}
	g.Nodes = nodeTotals(firstSeen, g.Edges)
	return g
}

// Restrict keeps only edges whose endpoints are both in labels and
// recomputes node weights. Node order is preserved.
func (g Graph) Restrict(labels []string) Graph {
	keep := map[string]bool{}
	for _, l := range labels {
		keep[l] = true
	}
	out := Graph{Filtered: g.Filtered}
	for _, e := range g.Edges {
		if keep[e.A] && keep[e.B] {
			out.Edges = append(out.Edges, e)
		}
	}
	order := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		order[i] = n.Label
	}
	out.Nodes = nodeTotals(order, out.Edges)
	return out
}

func nodeTotals(order []string, edges []Edge) []Node {
	totals := map[string]int{}
	for _, e := range edges {
		totals[e.A] += e.Weight
		totals[e.B] += e.Weight
	}
	var nodes []Node
	for _, label := range order {
		if w := totals[label]; w > 0 {
			nodes = append(nodes, Node{Label: label, Weight: w})
		}
	}
	return nodes
}

func dedupe(xs []string) []string {
	out := make([]string, 0, len(xs))
	seen := map[string]bool{}
	for _, x := range xs {
		if x == "" || seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out
}
