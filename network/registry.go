package network

import (
	"fmt"
	"sync"
)

// FuncRegistry maps the function names stored in a NetworkDefinition back
// to runnable callables. Conditions registered here must return node ids
// directly, since the serialized form does not carry target maps.
type FuncRegistry struct {
	mu         sync.RWMutex
	nodes      map[string]NodeFunc
	conditions map[string]EdgeCondition
}

// NewFuncRegistry creates an empty registry.
func NewFuncRegistry() *FuncRegistry {
	return &FuncRegistry{
		nodes:      make(map[string]NodeFunc),
		conditions: make(map[string]EdgeCondition),
	}
}

// RegisterNode binds a node callable to a name.
func (r *FuncRegistry) RegisterNode(name string, fn NodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[name] = fn
}

// RegisterCondition binds an edge condition to a name. The condition must
// return node ids.
func (r *FuncRegistry) RegisterCondition(name string, fn EdgeCondition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conditions[name] = fn
}

// NodeFunc looks up a node callable by name.
func (r *FuncRegistry) NodeFunc(name string) (NodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.nodes[name]
	return fn, ok
}

// Condition looks up an edge condition by name.
func (r *FuncRegistry) Condition(name string) (EdgeCondition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.conditions[name]
	return fn, ok
}

// BuildNetwork reconstructs a runnable WorkflowNetwork from a definition,
// resolving function names through the registry. Every node func and every
// conditional edge's condition must be registered; static edges need no
// resolution.
func BuildNetwork(def *NetworkDefinition, registry *FuncRegistry) (*WorkflowNetwork, error) {
	if err := ValidateDefinition(def); err != nil {
		return nil, err
	}

	n := NewNetwork(def.ID)
	n.Description = def.Description

	for _, nd := range def.Nodes {
		var fn NodeFunc
		if nd.Func != "" {
			resolved, ok := registry.NodeFunc(nd.Func)
			if !ok {
				return nil, fmt.Errorf("node %s: function %q not registered", nd.ID, nd.Func)
			}
			fn = resolved
		}
		node := n.AddNode(nd.ID, fn,
			WithDescription(nd.Description),
			WithTimeout(nd.Timeout),
			WithRetry(nd.RetryCount, nd.RetryDelay),
		)
		node.FuncName = nd.Func
		node.IsAgent = nd.IsAgent
	}

	for _, ed := range def.Edges {
		if !ed.Conditional {
			n.AddEdge(ed.Source, ed.Target, WithEdgeDescription(ed.Description))
			continue
		}
		cond, ok := registry.Condition(ed.Condition)
		if !ok {
			return nil, fmt.Errorf("edge from %s: condition %q not registered", ed.Source, ed.Condition)
		}
		edge := n.AddRoutedEdge(ed.Source, cond, WithEdgeDescription(ed.Description))
		edge.ConditionName = ed.Condition
	}

	if def.Entry != "" {
		n.SetEntryPoint(def.Entry)
	}
	if def.Exit != "" {
		n.SetFinishPoint(def.Exit)
	}

	return n, nil
}
