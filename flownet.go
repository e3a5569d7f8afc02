// Package flownet provides a top-level convenience entry point for building
// and running workflow networks with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/flownet"
//
//	n := flownet.New("pipeline")
//	n.AddNode("greet", greet)
//	n.AddEdge(flownet.Start, "greet")
//	n.AddEdge("greet", flownet.End)
//	wf, err := n.Compile()
//	final, err := wf.Invoke(ctx, flownet.StateFrom(map[string]any{"name": "flownet"}))
//
// This is a thin wrapper around the network package; both produce identical
// results. Use this package when you prefer the shorter import path.
package flownet

import (
	"github.com/BaSui01/flownet/network"
)

// Sentinel node ids. Start marks where traversal enters the graph, End marks
// where it halts. Neither is an executable node.
const (
	Start = network.Start
	End   = network.End
)

// Iteration budgets.
const (
	DefaultMaxIterations = network.DefaultMaxIterations
	EngineMaxIterations  = network.EngineMaxIterations
)

// Core type aliases so callers never need to import network/.
type (
	Network          = network.WorkflowNetwork
	Node             = network.Node
	NodeFunc         = network.NodeFunc
	Edge             = network.Edge
	EdgeCondition    = network.EdgeCondition
	State            = network.State
	CompiledWorkflow = network.CompiledWorkflow
	ExecutionResult  = network.ExecutionResult
	ExecutionStep    = network.ExecutionStep
	Stream           = network.Stream
	StreamItem       = network.StreamItem
	FuncRegistry     = network.FuncRegistry
)

// New creates an empty workflow network with the given id.
func New(id string) *Network {
	return network.NewNetwork(id)
}

// NewState creates an empty state.
func NewState() *State {
	return network.NewState()
}

// StateFrom creates a state from a plain map.
func StateFrom(values map[string]any) *State {
	return network.StateFrom(values)
}

// NewRegistry creates an empty function registry for rebuilding networks
// from serialized definitions.
func NewRegistry() *FuncRegistry {
	return network.NewFuncRegistry()
}

// Re-export node and edge options so callers never need to import network/.

// WithDescription sets a node description.
var WithDescription = network.WithDescription

// WithTimeout bounds a single node invocation.
var WithTimeout = network.WithTimeout

// WithRetry retries a failed node invocation.
var WithRetry = network.WithRetry

// AsAgent marks a node as agent-backed.
var AsAgent = network.AsAgent

// WithEdgeDescription sets an edge description.
var WithEdgeDescription = network.WithEdgeDescription
