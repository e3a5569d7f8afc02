package network

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *Stream) []StreamItem {
	var items []StreamItem
	for s.Next() {
		items = append(items, s.Item())
	}
	return items
}

// ---- traversal ----

func TestStreamYieldsStartNodesAndFinalState(t *testing.T) {
	t.Parallel()

	wf := compileLinear(t)
	items := collect(wf.Stream(context.Background(), NewState().Set("seed", 1)))

	require.Len(t, items, 4)

	// Routing off Start announces the first node.
	assert.Equal(t, Start, items[0].NodeID)
	assert.Equal(t, map[string]any{"next_node": "a"}, items[0].Update)

	assert.Equal(t, "a", items[1].NodeID)
	assert.Equal(t, map[string]any{"a_done": true}, items[1].Update)
	assert.Equal(t, "b", items[2].NodeID)

	// Reaching the exit yields the accumulated state.
	last := items[3]
	assert.Equal(t, End, last.NodeID)
	assert.Equal(t, 1, last.Update["seed"])
	assert.Equal(t, true, last.Update["a_done"])
	assert.Equal(t, true, last.Update["b_done"])
}

func TestStreamIsLazy(t *testing.T) {
	t.Parallel()

	ran := false
	n := newTestNetwork("lazy")
	n.AddNode("a", func(ctx context.Context, state *State) (map[string]any, error) {
		ran = true
		return nil, nil
	})
	n.AddEdge(Start, "a")
	n.AddEdge("a", End)

	wf, err := n.Compile()
	require.NoError(t, err)

	cur := wf.Stream(context.Background(), NewState())
	assert.False(t, ran)

	cur.Next() // Start item, still no node execution
	assert.False(t, ran)

	cur.Next()
	assert.True(t, ran)
}

func TestStreamIsExhaustedAfterCompletion(t *testing.T) {
	t.Parallel()

	wf := compileLinear(t)
	cur := wf.Stream(context.Background(), NewState())
	for cur.Next() {
	}

	final := cur.Item()
	assert.False(t, cur.Next())
	assert.False(t, cur.Next())
	assert.Equal(t, final, cur.Item())
}

func TestStreamEmptyUpdateYieldsEmptyMap(t *testing.T) {
	t.Parallel()

	n := newTestNetwork("quiet")
	n.AddNode("silent", func(ctx context.Context, state *State) (map[string]any, error) {
		return nil, nil
	})
	n.AddEdge(Start, "silent")
	n.AddEdge("silent", End)

	wf, err := n.Compile()
	require.NoError(t, err)

	items := collect(wf.Stream(context.Background(), NewState()))
	require.Len(t, items, 3)
	assert.Equal(t, "silent", items[1].NodeID)
	assert.Equal(t, map[string]any{}, items[1].Update)
}

// ---- failure policy ----

func TestStreamContinuesPastNodeFailure(t *testing.T) {
	t.Parallel()

	n := newTestNetwork("resilient")
	n.AddNode("boom", func(ctx context.Context, state *State) (map[string]any, error) {
		return nil, errors.New("exploded")
	})
	n.AddNode("after", func(ctx context.Context, state *State) (map[string]any, error) {
		return map[string]any{"after_ran": true}, nil
	})
	n.AddEdge(Start, "boom")
	n.AddEdge("boom", "after")
	n.AddEdge("after", End)

	wf, err := n.Compile()
	require.NoError(t, err)

	items := collect(wf.Stream(context.Background(), NewState()))
	require.Len(t, items, 4)

	// The failure becomes data and traversal keeps going.
	assert.Equal(t, "boom", items[1].NodeID)
	assert.Equal(t, map[string]any{"error": "exploded"}, items[1].Update)
	assert.Equal(t, "after", items[2].NodeID)
	assert.Equal(t, true, items[3].Update["after_ran"])

	// The failed node contributed nothing to the state.
	_, hasError := items[3].Update["error"]
	assert.False(t, hasError)
}

// ---- halting ----

func TestStreamHaltsOnRoutingExhaustion(t *testing.T) {
	t.Parallel()

	n := newTestNetwork("dead_end")
	n.AddNode("a", func(ctx context.Context, state *State) (map[string]any, error) {
		return map[string]any{"ran": true}, nil
	})
	n.AddEdge(Start, "a")

	wf, err := n.Compile()
	require.NoError(t, err)

	items := collect(wf.Stream(context.Background(), NewState()))

	// The last produced item is the dead-end node; no End item appears.
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[1].NodeID)
}

func TestStreamHaltsOnIterationBudget(t *testing.T) {
	t.Parallel()

	n := newTestNetwork("infinite")
	n.AddNode("loop", func(ctx context.Context, state *State) (map[string]any, error) {
		return map[string]any{"spins": state.GetInt("spins") + 1}, nil
	})
	n.AddEdge(Start, "loop")
	n.AddEdge("loop", "loop")

	wf, err := n.Compile()
	require.NoError(t, err)

	items := collect(wf.StreamWithLimit(context.Background(), NewState(), 10))

	// Start item + 9 node items, no End item.
	require.Len(t, items, 10)
	for _, item := range items[1:] {
		assert.Equal(t, "loop", item.NodeID)
	}
}

func TestStreamZeroIterationBudget(t *testing.T) {
	t.Parallel()

	wf := compileLinear(t)
	initial := NewState().Set("seed", 1)

	cur := wf.StreamWithLimit(context.Background(), initial, 0)

	// A zero budget exhausts the cursor before the Start item.
	assert.False(t, cur.Next())
	assert.Empty(t, collect(cur))
	assert.Equal(t, map[string]any{"seed": 1}, cur.State().ToMap())
}

func TestStreamStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wf := compileLinear(t)
	cur := wf.Stream(ctx, NewState())
	assert.False(t, cur.Next())
}

// ---- working state ----

func TestStreamStateIsPrivateCopy(t *testing.T) {
	t.Parallel()

	wf := compileLinear(t)
	initial := NewState().Set("seed", 1)

	cur := wf.Stream(context.Background(), initial)
	for cur.Next() {
	}

	assert.Equal(t, 1, initial.Len())
	assert.True(t, cur.State().GetBool("a_done"))
}
