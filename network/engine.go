package network

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MetricsRecorder receives engine instrumentation events. The canonical
// implementation is internal/metrics.Collector; a nil recorder disables
// instrumentation.
type MetricsRecorder interface {
	// ObserveNodeExecution records one node invocation.
	ObserveNodeExecution(networkID, nodeID string, failed bool, duration time.Duration)
	// ObserveWorkflowExecution records one completed Execute call.
	ObserveWorkflowExecution(networkID string, completed bool, duration time.Duration, iterations int)
}

// ExecutionStep is one record of the audit trail kept by Execute: a single
// node invocation with shallow before/after state snapshots.
type ExecutionStep struct {
	NodeID      string        `json:"node_id"`
	Timestamp   time.Time     `json:"timestamp"`
	StateBefore *State        `json:"state_before,omitempty"`
	StateAfter  *State        `json:"state_after,omitempty"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// ExecutionResult is the outcome of one Execute call.
//
// Completed is true only when traversal reached the exit sentinel. A run
// that halts on routing exhaustion or on the iteration budget reports
// Completed=false with an empty Error; the two halting reasons are
// distinguished by Iterations reaching the budget. A run aborted by a node
// failure reports Completed=false with Error set.
type ExecutionResult struct {
	ExecutionID   string          `json:"execution_id"`
	NetworkID     string          `json:"network_id"`
	FinalState    *State          `json:"final_state"`
	Steps         []ExecutionStep `json:"steps"`
	StartedAt     time.Time       `json:"started_at"`
	TotalDuration time.Duration   `json:"total_duration"`
	Iterations    int             `json:"iterations"`
	Error         string          `json:"error,omitempty"`
	Completed     bool            `json:"completed"`
}

// ExecutionEngine walks a validated network from its entry point toward its
// exit point, folding node output into a shared state until termination.
// Traversal is single-threaded: routing yields at most one next node, so
// each superstep degenerates to exactly one node execution.
type ExecutionEngine struct {
	network *WorkflowNetwork
	logger  *zap.Logger
	metrics MetricsRecorder
	tracer  trace.Tracer
	history *HistoryStore
}

// EngineOption configures an ExecutionEngine at compile time.
type EngineOption func(*ExecutionEngine)

// WithEngineLogger sets the engine's logger.
func WithEngineLogger(logger *zap.Logger) EngineOption {
	return func(e *ExecutionEngine) {
		e.logger = logger.With(zap.String("component", "execution_engine"))
	}
}

// WithMetrics wires a metrics recorder into the engine.
func WithMetrics(m MetricsRecorder) EngineOption {
	return func(e *ExecutionEngine) { e.metrics = m }
}

// WithTracer makes the engine open one span per node invocation.
func WithTracer(tracer trace.Tracer) EngineOption {
	return func(e *ExecutionEngine) { e.tracer = tracer }
}

// WithHistory makes the engine save every ExecutionResult to store.
func WithHistory(store *HistoryStore) EngineOption {
	return func(e *ExecutionEngine) { e.history = store }
}

func newExecutionEngine(network *WorkflowNetwork, opts ...EngineOption) *ExecutionEngine {
	e := &ExecutionEngine{
		network: network,
		logger:  network.logger.With(zap.String("component", "execution_engine")),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Network returns the engine's validated, read-only network snapshot.
func (e *ExecutionEngine) Network() *WorkflowNetwork {
	return e.network
}

// Execute runs the workflow to completion and reports the outcome. It is a
// non-throwing API: node failures abort the traversal and surface through
// ExecutionResult.Error with Completed=false, never as a returned error.
// The failed invocation is still recorded as a step.
//
// The caller's state is shallow-cloned before the first node runs; nested
// values remain aliased with the caller's structures, and mutating those
// during a run is undefined behavior.
func (e *ExecutionEngine) Execute(ctx context.Context, initial *State, maxIterations int) *ExecutionResult {
	start := time.Now()
	if initial == nil {
		initial = NewState()
	}
	if maxIterations < 0 {
		maxIterations = EngineMaxIterations
	}

	state := initial.Clone()
	steps := make([]ExecutionStep, 0)
	current := e.network.entry
	iterations := 0
	var failure error

	executionID := uuid.NewString()
	e.logger.Debug("starting execution",
		zap.String("execution_id", executionID),
		zap.String("network_id", e.network.ID),
		zap.String("entry", current),
		zap.Int("max_iterations", maxIterations),
	)

	for current != e.network.exit && iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			failure = err
			break
		}
		iterations++

		// The Start sentinel has no callable; it only routes.
		if current == Start {
			next, ok := e.network.edges.NextNode(Start, state)
			if !ok {
				break
			}
			current = next
			continue
		}

		if node, ok := e.network.nodes[current]; ok {
			step, err := e.runNode(ctx, node, state)
			steps = append(steps, step)
			if err != nil {
				failure = err
				break
			}
		}

		next, ok := e.network.edges.NextNode(current, state)
		if !ok {
			break
		}
		current = next
	}

	result := &ExecutionResult{
		ExecutionID:   executionID,
		NetworkID:     e.network.ID,
		FinalState:    state,
		Steps:         steps,
		StartedAt:     start,
		TotalDuration: time.Since(start),
		Iterations:    iterations,
		Completed:     failure == nil && current == e.network.exit,
	}
	if failure != nil {
		result.Error = failure.Error()
	}

	if e.metrics != nil {
		e.metrics.ObserveWorkflowExecution(e.network.ID, result.Completed, result.TotalDuration, iterations)
	}
	if e.history != nil {
		e.history.Save(result)
	}

	e.logger.Debug("execution finished",
		zap.String("execution_id", executionID),
		zap.Bool("completed", result.Completed),
		zap.Int("iterations", iterations),
		zap.Duration("duration", result.TotalDuration),
		zap.String("error", result.Error),
	)

	return result
}

// runNode invokes one node and builds its audit step. The returned error is
// already wrapped as a *NodeExecutionError.
func (e *ExecutionEngine) runNode(ctx context.Context, node *Node, state *State) (ExecutionStep, error) {
	step := ExecutionStep{
		NodeID:      node.ID,
		Timestamp:   time.Now(),
		StateBefore: state.Clone(),
	}

	runCtx := ctx
	var span trace.Span
	if e.tracer != nil {
		runCtx, span = e.tracer.Start(ctx, "network.node",
			trace.WithAttributes(
				attribute.String("network.id", e.network.ID),
				attribute.String("node.id", node.ID),
			),
		)
		defer span.End()
	}

	stepStart := time.Now()
	updates, err := node.Execute(runCtx, state)
	step.Duration = time.Since(stepStart)

	if e.metrics != nil {
		e.metrics.ObserveNodeExecution(e.network.ID, node.ID, err != nil, step.Duration)
	}

	if err != nil {
		nodeErr := &NodeExecutionError{NodeID: node.ID, Err: err}
		step.Error = nodeErr.Error()
		if span != nil {
			span.RecordError(nodeErr)
			span.SetStatus(codes.Error, nodeErr.Error())
		}
		e.logger.Warn("node execution failed",
			zap.String("node_id", node.ID),
			zap.Duration("duration", step.Duration),
			zap.Error(err),
		)
		return step, nodeErr
	}

	if len(updates) > 0 {
		state.Merge(updates)
	}
	step.StateAfter = state.Clone()

	e.logger.Debug("node executed",
		zap.String("node_id", node.ID),
		zap.Duration("duration", step.Duration),
		zap.Int("updates", len(updates)),
	)

	return step, nil
}
