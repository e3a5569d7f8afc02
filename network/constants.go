package network

import "time"

// Sentinel node identifiers. They mark the entry and exit of a workflow
// network, participate in routing, and are never executed.
const (
	// Start is the pseudo-node every traversal begins at.
	Start = "__start__"
	// End is the pseudo-node that terminates a successful traversal.
	End = "__end__"
)

const (
	// EngineMaxIterations is the hard ceiling on traversal iterations used
	// when no explicit budget is supplied to the engine.
	EngineMaxIterations = 1000

	// DefaultMaxIterations is the iteration budget applied by
	// CompiledWorkflow.Invoke and CompiledWorkflow.Stream.
	DefaultMaxIterations = 100

	// DefaultTimeout is the fallback node timeout for configurations that
	// enable timeouts without picking a value.
	DefaultTimeout = 300 * time.Second
)
