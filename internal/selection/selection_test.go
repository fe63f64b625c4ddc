package selection

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

const sample = `Series_Title,Released_Year,Star1,Star2,Star3
Heat,1995,Al Pacino,Robert De Niro,Val Kilmer
The Irishman,2019,Robert De Niro,Al Pacino,Joe Pesci
Casino,1995,Robert De Niro,Joe Pesci,Sharon Stone
Top Gun,1986,Tom Cruise,Val Kilmer,
`

func load(t *testing.T) ([]*dataset.Movie, analysis.Graph) {
	t.Helper()
	tbl, err := dataset.ReadCSV(strings.NewReader(sample), ',', dataset.DefaultSchema())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return tbl.Movies, analysis.CoOccurrence(tbl.Movies, analysis.CoOccurrenceOptions{})
}

func TestController_EdgeToggle(t *testing.T) {
	c := New()
	if c.State().Kind != Idle {
		t.Fatalf("new controller should be idle")
	}
	if s := c.SelectEdge("Al Pacino", "Robert De Niro"); s.Kind != EdgeSelected {
		t.Fatalf("want EdgeSelected, got %v", s)
	}
	if s := c.SelectEdge("Al Pacino", "Robert De Niro"); s.Kind != Idle {
		t.Fatalf("same edge twice should toggle off, got %v", s)
	}
	c.SelectEdge("Al Pacino", "Robert De Niro")
	if s := c.SelectEdge("Robert De Niro", "Al Pacino"); s.Kind != Idle {
		t.Fatalf("reversed pair should toggle off, got %v", s)
	}
	c.SelectEdge("Al Pacino", "Robert De Niro")
	if s := c.SelectEdge("Joe Pesci", "Robert De Niro"); s.Kind != EdgeSelected || s.Edge != NewPair("Robert De Niro", "Joe Pesci") {
		t.Fatalf("different edge should replace selection, got %v", s)
	}
}

func TestController_RecordToggleAndExclusion(t *testing.T) {
	c := New()
	c.SelectEdge("A", "B")
	s := c.SelectRecord("Heat")
	if s.Kind != RecordSelected || s.Record != "Heat" || s.Edge != (Pair{}) {
		t.Fatalf("record should replace edge, got %+v", s)
	}
	s = c.SelectEdge("A", "B")
	if s.Kind != EdgeSelected || s.Record != "" {
		t.Fatalf("edge should replace record, got %+v", s)
	}
	c.SelectRecord("Heat")
	if s := c.SelectRecord("Heat"); s.Kind != Idle {
		t.Fatalf("same record twice should toggle off, got %v", s)
	}
	c.SelectRecord("Heat")
	if s := c.SelectRecord("Casino"); s.Kind != RecordSelected || s.Record != "Casino" {
		t.Fatalf("another record should replace selection, got %v", s)
	}
	if s := c.Clear(); s.Kind != Idle {
		t.Fatalf("clear should give idle")
	}
	if s := c.Clear(); s.Kind != Idle {
		t.Fatalf("clear from idle should stay idle")
	}
}

func TestView_Idle(t *testing.T) {
	movies, g := load(t)
	v := New().View(movies, g, nil)
	if len(v.Active) != 4 || len(v.Graph.Edges) != len(g.Edges) {
		t.Fatalf("idle view should show everything: %d records, %d edges", len(v.Active), len(v.Graph.Edges))
	}
	if v.Props.Selecting() || v.Props.RecordDimmed("Heat") || v.Props.EdgeHighlighted(g.Edges[0]) {
		t.Fatalf("idle props should be neutral")
	}
}

func TestView_EdgeSelected(t *testing.T) {
	movies, g := load(t)
	c := New()
	c.SelectEdge("Robert De Niro", "Al Pacino")
	v := c.View(movies, g, nil)
	if len(v.Active) != 2 || v.Active[0].ID != "Heat" || v.Active[1].ID != "The Irishman" {
		t.Fatalf("active = %v", ids(v.Active))
	}
	e, _ := g.Edge("Al Pacino", "Robert De Niro")
	if !v.Props.EdgeHighlighted(e) || v.Props.EdgeDimmed(e) {
		t.Fatalf("selected edge should be highlighted")
	}
	other, _ := g.Edge("Joe Pesci", "Robert De Niro")
	if v.Props.EdgeHighlighted(other) || !v.Props.EdgeDimmed(other) {
		t.Fatalf("other edges should be dimmed")
	}
	if !v.Props.RecordHighlighted("Heat") || !v.Props.RecordDimmed("Casino") {
		t.Fatalf("record props wrong")
	}
	if !v.Props.NodeHighlighted("Al Pacino") || !v.Props.NodeDimmed("Tom Cruise") {
		t.Fatalf("node props wrong")
	}

	c.SelectEdge("Nobody", "Somebody")
	if v := c.View(movies, g, nil); len(v.Active) != 0 {
		t.Fatalf("unknown edge should give empty subset, got %v", ids(v.Active))
	}
}

func TestView_RecordSelectedRescopesGraph(t *testing.T) {
	movies, g := load(t)
	c := New()
	c.SelectRecord("Casino")
	v := c.View(movies, g, nil)
	if len(v.Active) != 1 || v.Active[0].ID != "Casino" {
		t.Fatalf("active = %v", ids(v.Active))
	}
	stars := map[string]bool{"Robert De Niro": true, "Joe Pesci": true, "Sharon Stone": true}
	if len(v.Graph.Edges) == 0 {
		t.Fatalf("re-scoped graph should keep Casino's edges")
	}
	for _, e := range v.Graph.Edges {
		if !stars[e.A] || !stars[e.B] {
			t.Fatalf("edge %s-%s outside the record's participants", e.A, e.B)
		}
	}
	for _, n := range v.Graph.Nodes {
		if !stars[n.Label] {
			t.Fatalf("node %s outside the record's participants", n.Label)
		}
	}
	// De Niro and Pesci also share The Irishman; that edge keeps its weight.
	if e, ok := v.Graph.Edge("Joe Pesci", "Robert De Niro"); !ok || e.Weight != 2 || !v.Props.EdgeHighlighted(e) {
		t.Fatalf("De Niro-Pesci edge = %+v, %v", e, ok)
	}
	if !v.Props.RecordDimmed("Heat") || v.Props.RecordDimmed("Casino") {
		t.Fatalf("record props wrong")
	}

	c.SelectRecord("Missing")
	if v := c.View(movies, g, nil); len(v.Active) != 0 || !v.Graph.Empty() {
		t.Fatalf("unknown record should give empty view")
	}
}

func TestView_RecordSelectedUsesGraphParticipants(t *testing.T) {
	movies, _ := load(t)
	upper := func(m *dataset.Movie) []string {
		out := make([]string, len(m.Stars))
		for i, s := range m.Stars {
			out[i] = strings.ToUpper(s)
		}
		return out
	}
	g := analysis.CoOccurrence(movies, analysis.CoOccurrenceOptions{Participants: upper})
	c := New()
	c.SelectRecord("Casino")

	v := c.View(movies, g, upper)
	if len(v.Graph.Edges) != 3 {
		t.Fatalf("re-scoped edges = %+v", v.Graph.Edges)
	}
	if e, ok := v.Graph.Edge("JOE PESCI", "ROBERT DE NIRO"); !ok || e.Weight != 2 {
		t.Fatalf("Pesci-De Niro edge = %+v, %v", e, ok)
	}
	if !v.Props.NodeHighlighted("SHARON STONE") || v.Props.NodeHighlighted("Sharon Stone") {
		t.Fatalf("node highlighting should use the graph's labels")
	}

	// The default extractor does not match these labels.
	if v := c.View(movies, g, nil); !v.Graph.Empty() {
		t.Fatalf("stars should not match upper-cased labels: %+v", v.Graph)
	}
}

func ids(ms []*dataset.Movie) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}
