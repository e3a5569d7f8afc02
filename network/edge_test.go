package network

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- edge basics ----

func TestEdgeRouteStatic(t *testing.T) {
	t.Parallel()

	e := &Edge{Source: "a", Target: "b"}
	assert.False(t, e.IsConditional())

	next, err := e.Route(NewState())
	require.NoError(t, err)
	assert.Equal(t, "b", next)
}

func TestEdgeRouteConditional(t *testing.T) {
	t.Parallel()

	e := &Edge{
		Source:    "a",
		Condition: func(state *State) string { return state.GetString("goto") },
	}
	assert.True(t, e.IsConditional())

	next, err := e.Route(NewState().Set("goto", "c"))
	require.NoError(t, err)
	assert.Equal(t, "c", next)
}

func TestEdgeRouteWithoutTarget(t *testing.T) {
	t.Parallel()

	e := &Edge{Source: "a"}
	_, err := e.Route(NewState())
	assert.Error(t, err)
}

// ---- edge set ----

func TestEdgeSetFromPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewEdgeSet()
	s.Add(&Edge{Source: "a", Target: "b"})
	s.Add(&Edge{Source: "x", Target: "y"})
	s.Add(&Edge{Source: "a", Target: "c"})

	from := s.From("a")
	require.Len(t, from, 2)
	assert.Equal(t, "b", from[0].Target)
	assert.Equal(t, "c", from[1].Target)

	assert.Empty(t, s.From("unknown"))
	assert.Equal(t, 3, s.Len())
}

func TestNextNodeFirstConditionalWins(t *testing.T) {
	t.Parallel()

	s := NewEdgeSet()
	s.Add(&Edge{Source: "a", Target: "static_target"})
	s.Add(&Edge{Source: "a", Condition: func(*State) string { return "first" }})
	s.Add(&Edge{Source: "a", Condition: func(*State) string { return "second" }})

	// The first conditional edge decides, even registered after a static one.
	next, ok := s.NextNode("a", NewState())
	require.True(t, ok)
	assert.Equal(t, "first", next)
}

func TestNextNodeFallsBackToFirstStaticWithTarget(t *testing.T) {
	t.Parallel()

	s := NewEdgeSet()
	s.Add(&Edge{Source: "a"}) // no target, skipped
	s.Add(&Edge{Source: "a", Target: "b"})
	s.Add(&Edge{Source: "a", Target: "c"})

	next, ok := s.NextNode("a", NewState())
	require.True(t, ok)
	assert.Equal(t, "b", next)
}

func TestNextNodeNoEdges(t *testing.T) {
	t.Parallel()

	s := NewEdgeSet()
	_, ok := s.NextNode("a", NewState())
	assert.False(t, ok)

	s.Add(&Edge{Source: "a"})
	_, ok = s.NextNode("a", NewState())
	assert.False(t, ok)
}

func TestEdgeSetCloneIsShallowCopy(t *testing.T) {
	t.Parallel()

	s := NewEdgeSet()
	s.Add(&Edge{Source: "a", Target: "b"})

	c := s.clone()
	s.Add(&Edge{Source: "b", Target: "c"})

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, s.Len())
}

// ---- routing properties ----

// Routing is a pure function of (source, state): evaluating it repeatedly
// over any interleaving of registered edges always yields the same decision.
func TestNextNodeDeterministic(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	targetGen := gen.RegexMatch(`[a-z]{1,6}`)

	properties.Property("static routing is stable across calls", prop.ForAll(
		func(targets []string) bool {
			s := NewEdgeSet()
			for _, target := range targets {
				s.Add(&Edge{Source: "src", Target: target})
			}
			first, ok1 := s.NextNode("src", NewState())
			second, ok2 := s.NextNode("src", NewState())
			if len(targets) == 0 {
				return !ok1 && !ok2
			}
			return ok1 && ok2 && first == second && first == targets[0]
		},
		gen.SliceOf(targetGen),
	))

	properties.Property("a conditional edge shadows every static edge", prop.ForAll(
		func(conditionResult string, staticTargets []string) bool {
			s := NewEdgeSet()
			for _, target := range staticTargets {
				s.Add(&Edge{Source: "src", Target: target})
			}
			s.Add(&Edge{Source: "src", Condition: func(*State) string { return conditionResult }})
			next, ok := s.NextNode("src", NewState())
			return ok && next == conditionResult
		},
		targetGen,
		gen.SliceOf(targetGen),
	))

	properties.TestingRun(t)
}
