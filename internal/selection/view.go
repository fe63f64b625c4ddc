package selection

import (
	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
)

// View is everything the linked charts need for one render pass.
type View struct {
	State State
	// Active is the record subset shown by record-level views, in the
	// order of the filtered input.
	Active []*dataset.Movie
	// Graph is the chord graph to draw. With a record selected it only
	// holds edges between that record's participants.
	Graph analysis.Graph
	Props Props
}

// View derives the current view from the filtered records and the
// co-occurrence graph computed over them. participants must be the
// extractor the graph was built with; nil means analysis.Stars.
func (c *Controller) View(filtered []*dataset.Movie, g analysis.Graph, participants func(*dataset.Movie) []string) View {
	return Derive(c.state, filtered, g, participants)
}

// Derive is View for an explicit state.
//
//   - Idle: every filtered record, the full graph.
//   - EdgeSelected: the records contributing to that edge. A pair that is
//     no longer an edge of g gives an empty subset.
//   - RecordSelected: that record alone, and the graph restricted to its
//     participants.
func Derive(s State, filtered []*dataset.Movie, g analysis.Graph, participants func(*dataset.Movie) []string) View {
	if participants == nil {
		participants = analysis.Stars
	}
	v := View{State: s, Graph: g}
	p := Props{state: s, records: map[string]bool{}, nodes: map[string]bool{}}
	switch s.Kind {
	case EdgeSelected:
		e, ok := g.Edge(s.Edge.A, s.Edge.B)
		if ok {
			for _, id := range e.Records {
				p.records[id] = true
			}
		}
		p.nodes[s.Edge.A] = true
		p.nodes[s.Edge.B] = true
		for _, m := range filtered {
			if p.records[m.ID] {
				v.Active = append(v.Active, m)
			}
		}
	case RecordSelected:
		p.records[s.Record] = true
		for _, m := range filtered {
			if m.ID == s.Record {
				v.Active = append(v.Active, m)
				labels := participants(m)
				v.Graph = g.Restrict(labels)
				for _, l := range labels {
					p.nodes[l] = true
				}
				break
			}
		}
		if len(v.Active) == 0 {
			v.Graph = g.Restrict(nil)
		}
	default:
		v.Active = filtered
	}
	v.Props = p
	return v
}

// Props tells a chart how to emphasize marks for the current selection.
// With nothing selected no mark is highlighted or dimmed.
type Props struct {
	state   State
	records map[string]bool
	nodes   map[string]bool
}

// Selecting reports whether any selection is active.
func (p Props) Selecting() bool { return p.state.Kind != Idle }

// EdgeHighlighted reports whether the a-b ribbon is the selected edge, or
// carries the selected record.
func (p Props) EdgeHighlighted(e analysis.Edge) bool {
	switch p.state.Kind {
	case EdgeSelected:
		return NewPair(e.A, e.B) == p.state.Edge
	case RecordSelected:
		for _, id := range e.Records {
			if id == p.state.Record {
				return true
			}
		}
	}
	return false
}

// EdgeDimmed is true for every non-highlighted edge while selecting.
func (p Props) EdgeDimmed(e analysis.Edge) bool {
	return p.Selecting() && !p.EdgeHighlighted(e)
}

// NodeHighlighted reports whether a participant is part of the selection.
func (p Props) NodeHighlighted(label string) bool { return p.nodes[label] }

// NodeDimmed is true for every non-highlighted node while selecting.
func (p Props) NodeDimmed(label string) bool {
	return p.Selecting() && !p.nodes[label]
}

// RecordHighlighted reports whether a record is in the selection.
func (p Props) RecordHighlighted(id string) bool { return p.records[id] }

// RecordDimmed is true for every non-highlighted record while selecting.
func (p Props) RecordDimmed(id string) bool {
	return p.Selecting() && !p.records[id]
}
