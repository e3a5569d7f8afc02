package network

import "fmt"

// EdgeCondition computes a routing key from the current state. For edges
// registered through AddRoutedEdge the key is itself a node id; for edges
// registered through AddConditionalEdge the key is looked up in the target
// map supplied at creation time.
type EdgeCondition func(state *State) string

// Edge is a routing rule attached to a source node. A static edge always
// routes to Target; a conditional edge carries a Condition and ignores
// Target entirely.
type Edge struct {
	Source      string
	Target      string
	Description string

	// Condition makes the edge conditional. The mapping from condition
	// results to node ids is resolved by the condition itself; it is
	// supplied when the edge is created, not stored here.
	Condition     EdgeCondition
	ConditionName string
}

// EdgeOption configures an edge at creation time.
type EdgeOption func(*Edge)

// WithEdgeDescription sets a human-readable description on the edge.
func WithEdgeDescription(desc string) EdgeOption {
	return func(e *Edge) { e.Description = desc }
}

// IsConditional reports whether the edge routes through a condition.
func (e *Edge) IsConditional() bool {
	return e.Condition != nil
}

// Route resolves the next node id for the given state.
func (e *Edge) Route(state *State) (string, error) {
	switch {
	case e.Condition != nil:
		return e.Condition(state), nil
	case e.Target != "":
		return e.Target, nil
	default:
		return "", fmt.Errorf("edge from %s has no routing target", e.Source)
	}
}

// EdgeSet is the ordered collection of edges in a network. Insertion order
// is significant: routing evaluates conditional edges first-registered
// first, so at most one conditional edge per source is ever live.
type EdgeSet struct {
	edges []*Edge
}

// NewEdgeSet creates an empty edge set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{}
}

// Add appends an edge to the set.
func (s *EdgeSet) Add(e *Edge) {
	s.edges = append(s.edges, e)
}

// From returns all edges originating from source, in insertion order.
func (s *EdgeSet) From(source string) []*Edge {
	var out []*Edge
	for _, e := range s.edges {
		if e.Source == source {
			out = append(out, e)
		}
	}
	return out
}

// All returns the edges in insertion order. The slice is shared; callers
// must not modify it.
func (s *EdgeSet) All() []*Edge {
	return s.edges
}

// Len returns the number of edges in the set.
func (s *EdgeSet) Len() int {
	return len(s.edges)
}

// NextNode resolves the routing decision for source under the given state.
// The first conditional edge wins; conditional edges registered after it
// are dead and never evaluated. With no conditional edge, the first static
// edge with a target wins. ok is false when no edge routes anywhere, which
// the engine treats as "halt, execution incomplete".
func (s *EdgeSet) NextNode(source string, state *State) (next string, ok bool) {
	edges := s.From(source)
	if len(edges) == 0 {
		return "", false
	}

	for _, e := range edges {
		if e.IsConditional() {
			return e.Condition(state), true
		}
	}

	for _, e := range edges {
		if e.Target != "" {
			return e.Target, true
		}
	}

	return "", false
}

// clone returns a copy of the set sharing the Edge values. Compiled
// workflows snapshot the edge list so later builder mutation is invisible
// to them.
func (s *EdgeSet) clone() *EdgeSet {
	c := &EdgeSet{edges: make([]*Edge, len(s.edges))}
	copy(c.edges, s.edges)
	return c
}
