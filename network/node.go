package network

import (
	"context"
	"fmt"
	"time"
)

// NodeFunc is the callable a node wraps. It receives the current state and
// returns a partial update to merge into it; a nil map means "no change".
// Callables must not mutate the state they receive; the engine holds
// snapshots of it for the audit trail. Long-running callables should honor
// ctx, which carries the node's deadline when a timeout is configured.
type NodeFunc func(ctx context.Context, state *State) (map[string]any, error)

// Node is a named unit of computation in a workflow network. Identity is
// the ID; adding a node with an existing id replaces it.
//
// Timeout and retry settings are enforced by Execute: each attempt runs
// under a deadline when Timeout > 0, and failed attempts are repeated up to
// RetryCount times with RetryDelay between them.
type Node struct {
	ID          string
	Func        NodeFunc
	FuncName    string
	Description string
	Timeout     time.Duration
	RetryCount  int
	RetryDelay  time.Duration
	IsAgent     bool
}

// NodeOption configures a node at creation time.
type NodeOption func(*Node)

// WithDescription sets a human-readable description.
func WithDescription(desc string) NodeOption {
	return func(n *Node) { n.Description = desc }
}

// WithTimeout bounds each execution attempt of the node's callable.
func WithTimeout(d time.Duration) NodeOption {
	return func(n *Node) { n.Timeout = d }
}

// WithRetry repeats failed attempts up to count times, waiting delay
// between attempts. Context cancellation is never retried.
func WithRetry(count int, delay time.Duration) NodeOption {
	return func(n *Node) {
		n.RetryCount = count
		n.RetryDelay = delay
	}
}

// AsAgent marks the node as wrapping an agent/LLM call. The marker is
// carried through serialization; the engine does not treat agent nodes
// specially.
func AsAgent() NodeOption {
	return func(n *Node) { n.IsAgent = true }
}

// Execute runs the node's callable against state, applying the node's
// timeout and retry policy. A nil callable is a no-op returning no updates.
// Panics inside the callable are recovered and returned as errors.
func (n *Node) Execute(ctx context.Context, state *State) (map[string]any, error) {
	if n.Func == nil {
		return nil, nil
	}

	var updates map[string]any
	var err error
	for attempt := 0; attempt <= n.RetryCount; attempt++ {
		if attempt > 0 && n.RetryDelay > 0 {
			select {
			case <-time.After(n.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		updates, err = n.invoke(ctx, state)
		if err == nil {
			return updates, nil
		}
		// The caller going away ends the retry loop immediately.
		if ctx.Err() != nil {
			break
		}
	}
	return nil, err
}

type nodeOutcome struct {
	updates map[string]any
	err     error
}

// invoke runs one attempt of the callable. The callable runs in its own
// goroutine so that a configured timeout fires even when the callable
// ignores ctx; in that case the goroutine is abandoned, which is why
// callables are expected to be ctx-aware.
func (n *Node) invoke(ctx context.Context, state *State) (map[string]any, error) {
	runCtx := ctx
	if n.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	ch := make(chan nodeOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- nodeOutcome{err: fmt.Errorf("callable panicked: %v", r)}
			}
		}()
		updates, err := n.Func(runCtx, state)
		ch <- nodeOutcome{updates: updates, err: err}
	}()

	select {
	case out := <-ch:
		return out.updates, out.err
	case <-runCtx.Done():
		return nil, runCtx.Err()
	}
}
