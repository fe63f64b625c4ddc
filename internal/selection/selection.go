// Package selection holds the single cross-view selection and derives what
// every view shows from it.
//
// The state is one of Idle, EdgeSelected or RecordSelected. Selecting an
// edge replaces a selected record and the other way around. Selecting the
// current edge or record again goes back to Idle.
package selection

import "fmt"

// Kind enumerates the selection states.
type Kind int

const (
	Idle Kind = iota
	EdgeSelected
	RecordSelected
)

func (k Kind) String() string {
	switch k {
	case EdgeSelected:
		return "edge"
	case RecordSelected:
		return "record"
	default:
		return "idle"
	}
}

// Pair is an unordered pair of participants, stored with A <= B.
type Pair struct {
	A, B string
}

// NewPair normalizes the order of a and b.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// State is a snapshot of the selection. Edge is set only for EdgeSelected
// and Record only for RecordSelected.
type State struct {
	Kind   Kind
	Edge   Pair
	Record string
}

func (s State) String() string {
	switch s.Kind {
	case EdgeSelected:
		return fmt.Sprintf("edge(%s, %s)", s.Edge.A, s.Edge.B)
	case RecordSelected:
		return fmt.Sprintf("record(%s)", s.Record)
	default:
		return "idle"
	}
}

// Controller owns the selection. It is not safe for concurrent use;
// callers that share one across goroutines must serialize access.
type Controller struct {
	state State
}

// New returns an idle controller.
func New() *Controller { return &Controller{} }

// State returns the current selection.
func (c *Controller) State() State { return c.state }

// SelectEdge selects the a-b edge, or clears the selection if that edge (in
// either order) is already selected.
func (c *Controller) SelectEdge(a, b string) State {
	p := NewPair(a, b)
	if c.state.Kind == EdgeSelected && c.state.Edge == p {
		c.state = State{}
	} else {
		c.state = State{Kind: EdgeSelected, Edge: p}
	}
	return c.state
}

// SelectRecord selects a record, or clears the selection if it is already
// selected.
func (c *Controller) SelectRecord(id string) State {
	if c.state.Kind == RecordSelected && c.state.Record == id {
		c.state = State{}
	} else {
		c.state = State{Kind: RecordSelected, Record: id}
	}
	return c.state
}

// Clear returns to Idle.
func (c *Controller) Clear() State {
	c.state = State{}
	return c.state
}
