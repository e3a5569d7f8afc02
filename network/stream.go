package network

import (
	"context"

	"go.uber.org/zap"
)

// StreamItem is one step of a streamed traversal: the routed node id and
// the update it produced. Routing off the Start sentinel yields
// {"next_node": id}; a failed node yields {"error": message} and traversal
// continues; reaching the End sentinel yields the full final state.
type StreamItem struct {
	NodeID string
	Update map[string]any
}

// Stream is a lazy, single-traversal cursor over a workflow execution,
// driven entirely by the consumer:
//
//	cur := engine.Stream(ctx, initial, 100)
//	for cur.Next() {
//		item := cur.Item()
//		...
//	}
//
// A Stream owns a private working state and iteration counter, is not
// restartable, and must not be driven from more than one goroutine.
// Abandoning it early performs no cleanup; no resources are held beyond
// the in-memory state clone.
//
// Unlike Execute, a node failure does not end the stream: it is reported
// as an {"error": ...} item and traversal continues to the next routed
// node. The two failure policies are deliberately distinct: Execute is
// fail-fast-and-report, Stream is continue-and-annotate.
type Stream struct {
	engine     *ExecutionEngine
	ctx        context.Context
	state      *State
	current    string
	iterations int
	max        int
	done       bool
	item       StreamItem
}

// Stream begins a lazy traversal. No node runs until Next is called. The
// context is retained for the lifetime of the cursor; cancelling it ends
// the stream at the next Next call.
func (e *ExecutionEngine) Stream(ctx context.Context, initial *State, maxIterations int) *Stream {
	if initial == nil {
		initial = NewState()
	}
	if maxIterations < 0 {
		maxIterations = EngineMaxIterations
	}
	return &Stream{
		engine:  e,
		ctx:     ctx,
		state:   initial.Clone(),
		current: e.network.entry,
		max:     maxIterations,
	}
}

// Next advances the traversal until it produces the next item, returning
// false once the stream is exhausted. After false, Next keeps returning
// false and Item is unchanged.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}
	net := s.engine.network

	for s.current != net.exit && s.iterations < s.max {
		if s.ctx.Err() != nil {
			s.done = true
			return false
		}
		s.iterations++

		if s.current == Start {
			next, ok := net.edges.NextNode(Start, s.state)
			if !ok {
				s.done = true
				return false
			}
			s.current = next
			s.item = StreamItem{NodeID: Start, Update: map[string]any{"next_node": next}}
			return true
		}

		produced := false
		if node, ok := net.nodes[s.current]; ok {
			updates, err := node.Execute(s.ctx, s.state)
			switch {
			case err != nil:
				// Error-as-data: report and keep walking.
				s.engine.logger.Warn("node failed during stream",
					zap.String("node_id", s.current),
					zap.Error(err),
				)
				s.item = StreamItem{NodeID: s.current, Update: map[string]any{"error": err.Error()}}
			case len(updates) > 0:
				s.state.Merge(updates)
				s.item = StreamItem{NodeID: s.current, Update: updates}
			default:
				s.item = StreamItem{NodeID: s.current, Update: map[string]any{}}
			}
			produced = true
		}

		next, ok := net.edges.NextNode(s.current, s.state)
		if !ok {
			s.done = true
			return produced
		}
		s.current = next
		if produced {
			return true
		}
	}

	s.done = true
	if s.current == net.exit {
		s.item = StreamItem{NodeID: s.current, Update: s.state.ToMap()}
		return true
	}
	return false
}

// Item returns the item produced by the last successful Next call.
func (s *Stream) Item() StreamItem {
	return s.item
}

// State exposes the stream's private working state. Reading it while the
// stream is still being driven observes partial progress; it is primarily
// useful after exhaustion.
func (s *Stream) State() *State {
	return s.state
}
