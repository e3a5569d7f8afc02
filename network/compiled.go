package network

import (
	"context"
	"errors"
)

// CompiledWorkflow is the validated, immutable pairing of a network
// snapshot with an execution engine. It is the only object client code
// invokes; one is created per Compile call and is cheap beyond holding
// references.
type CompiledWorkflow struct {
	network *WorkflowNetwork
	engine  *ExecutionEngine
}

// Network returns the validated network snapshot.
func (w *CompiledWorkflow) Network() *WorkflowNetwork {
	return w.network
}

// Engine returns the underlying execution engine, for callers that need
// the full ExecutionResult audit trail instead of just the final state.
func (w *CompiledWorkflow) Engine() *ExecutionEngine {
	return w.engine
}

// Invoke runs the workflow to completion with the default iteration budget
// and returns the final state. A node failure is returned as an error
// alongside the state reached so far; halting without reaching the exit
// sentinel (routing exhaustion, budget exhaustion) is not an error. Use
// Engine().Execute for the Completed flag and the full audit trail.
func (w *CompiledWorkflow) Invoke(ctx context.Context, initial *State) (*State, error) {
	return w.InvokeWithLimit(ctx, initial, DefaultMaxIterations)
}

// InvokeWithLimit is Invoke with an explicit iteration budget.
func (w *CompiledWorkflow) InvokeWithLimit(ctx context.Context, initial *State, maxIterations int) (*State, error) {
	result := w.engine.Execute(ctx, initial, maxIterations)
	if result.Error != "" {
		return result.FinalState, errors.New(result.Error)
	}
	return result.FinalState, nil
}

// Stream begins a lazy step-by-step traversal with the default iteration
// budget.
func (w *CompiledWorkflow) Stream(ctx context.Context, initial *State) *Stream {
	return w.engine.Stream(ctx, initial, DefaultMaxIterations)
}

// StreamWithLimit is Stream with an explicit iteration budget.
func (w *CompiledWorkflow) StreamWithLimit(ctx context.Context, initial *State, maxIterations int) *Stream {
	return w.engine.Stream(ctx, initial, maxIterations)
}
