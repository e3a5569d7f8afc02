// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

// Package fixtures provides ready-made workflow networks for tests.
package fixtures

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/flownet/network"
)

// SetNode returns a node function that sets key to value.
func SetNode(key string, value any) network.NodeFunc {
	return func(ctx context.Context, state *network.State) (map[string]any, error) {
		return map[string]any{key: value}, nil
	}
}

// AppendNode returns a node function that appends its id to the "trace" key.
func AppendNode(id string) network.NodeFunc {
	return func(ctx context.Context, state *network.State) (map[string]any, error) {
		trace, _ := state.Get("trace")
		seen, _ := trace.([]string)
		return map[string]any{"trace": append(seen, id)}, nil
	}
}

// FailingNode returns a node function that always fails with msg.
func FailingNode(msg string) network.NodeFunc {
	return func(ctx context.Context, state *network.State) (map[string]any, error) {
		return nil, errors.New(msg)
	}
}

// CountingNode returns a node function that increments counter on every call
// and emits the running count under the "count" key.
func CountingNode(counter *atomic.Int32) network.NodeFunc {
	return func(ctx context.Context, state *network.State) (map[string]any, error) {
		n := counter.Add(1)
		return map[string]any{"count": int(n)}, nil
	}
}

// SleepNode returns a node function that sleeps for d, honoring cancellation.
func SleepNode(d time.Duration) network.NodeFunc {
	return func(ctx context.Context, state *network.State) (map[string]any, error) {
		select {
		case <-time.After(d):
			return map[string]any{"slept": d.String()}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// NewLinearNetwork builds a three stage pipeline: entry -> a -> b -> c -> exit.
// Each stage appends its id to the "trace" key.
func NewLinearNetwork() *network.WorkflowNetwork {
	n := network.NewNetwork("linear").WithLogger(zap.NewNop())
	for _, id := range []string{"a", "b", "c"} {
		n.AddNode(id, AppendNode(id))
	}
	n.AddEdge(network.Start, "a")
	n.AddEdge("a", "b")
	n.AddEdge("b", "c")
	n.AddEdge("c", network.End)
	return n
}

// NewConditionalNetwork builds a router that dispatches on the "route" key.
// Unknown routes fall through to the "default" branch.
func NewConditionalNetwork() *network.WorkflowNetwork {
	n := network.NewNetwork("conditional").WithLogger(zap.NewNop())
	n.AddNode("router", SetNode("routed", true))
	n.AddNode("left", AppendNode("left"))
	n.AddNode("right", AppendNode("right"))
	n.AddNode("fallback", AppendNode("fallback"))
	n.AddEdge(network.Start, "router")
	n.AddConditionalEdge("router", func(state *network.State) string {
		return state.GetString("route")
	}, map[string]string{
		"left":    "left",
		"right":   "right",
		"default": "fallback",
	})
	n.AddEdge("left", network.End)
	n.AddEdge("right", network.End)
	n.AddEdge("fallback", network.End)
	return n
}

// NewCyclicNetwork builds a loop that increments "count" until it reaches
// limit, then routes to the exit.
func NewCyclicNetwork(limit int) *network.WorkflowNetwork {
	n := network.NewNetwork("cyclic").WithLogger(zap.NewNop())
	n.AddNode("step", func(ctx context.Context, state *network.State) (map[string]any, error) {
		return map[string]any{"count": state.GetInt("count") + 1}, nil
	})
	n.AddEdge(network.Start, "step")
	n.AddRoutedEdge("step", func(state *network.State) string {
		if state.GetInt("count") >= limit {
			return network.End
		}
		return "step"
	})
	return n
}

// NewFailingNetwork builds a pipeline whose middle stage always fails.
func NewFailingNetwork() *network.WorkflowNetwork {
	n := network.NewNetwork("failing").WithLogger(zap.NewNop())
	n.AddNode("ok", AppendNode("ok"))
	n.AddNode("boom", FailingNode("boom"))
	n.AddNode("unreached", AppendNode("unreached"))
	n.AddEdge(network.Start, "ok")
	n.AddEdge("ok", "boom")
	n.AddEdge("boom", "unreached")
	n.AddEdge("unreached", network.End)
	return n
}
