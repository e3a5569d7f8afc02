package network

import (
	"reflect"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// WorkflowNetwork owns the node table and edge set of a directed workflow
// graph and exposes the builder API. It is mutable during construction;
// Compile validates it and hands a read-only snapshot to an execution
// engine, so building can continue afterwards without affecting workflows
// that were already compiled.
type WorkflowNetwork struct {
	ID          string
	Description string

	nodes  map[string]*Node
	edges  *EdgeSet
	entry  string
	exit   string
	logger *zap.Logger
}

// NewNetwork creates an empty network. Entry defaults to the Start sentinel
// and exit to the End sentinel.
func NewNetwork(id string) *WorkflowNetwork {
	logger, _ := zap.NewProduction()
	return &WorkflowNetwork{
		ID:     id,
		nodes:  make(map[string]*Node),
		edges:  NewEdgeSet(),
		entry:  Start,
		exit:   End,
		logger: logger.With(zap.String("component", "workflow_network")),
	}
}

// WithLogger sets a custom logger.
func (n *WorkflowNetwork) WithLogger(logger *zap.Logger) *WorkflowNetwork {
	n.logger = logger.With(zap.String("component", "workflow_network"))
	return n
}

// AddNode registers a node. A node with the same id is replaced: last
// write wins, no duplicate-id error.
func (n *WorkflowNetwork) AddNode(id string, fn NodeFunc, opts ...NodeOption) *Node {
	node := &Node{
		ID:       id,
		Func:     fn,
		FuncName: funcName(fn),
	}
	for _, opt := range opts {
		opt(node)
	}
	n.nodes[id] = node
	return node
}

// AddEdge registers a static edge from source to target.
func (n *WorkflowNetwork) AddEdge(source, target string, opts ...EdgeOption) *Edge {
	edge := &Edge{Source: source, Target: target}
	for _, opt := range opts {
		opt(edge)
	}
	n.edges.Add(edge)
	return edge
}

// AddConditionalEdge registers a conditional edge. At routing time the
// condition's result is looked up in targetMap; a missing key falls back to
// targetMap["default"], and with no default the edge routes to End. The
// mapping lives inside the wrapped condition, not on the Edge.
func (n *WorkflowNetwork) AddConditionalEdge(source string, condition EdgeCondition, targetMap map[string]string, opts ...EdgeOption) *Edge {
	routed := func(state *State) string {
		key := condition(state)
		if target, ok := targetMap[key]; ok {
			return target
		}
		if target, ok := targetMap["default"]; ok {
			return target
		}
		return End
	}
	edge := &Edge{
		Source:        source,
		Condition:     routed,
		ConditionName: funcName(condition),
	}
	for _, opt := range opts {
		opt(edge)
	}
	n.edges.Add(edge)
	return edge
}

// AddRoutedEdge registers a conditional edge whose condition returns node
// ids directly, with no target-map indirection. BuildNetwork uses it to
// reconstruct conditional edges from serialized definitions.
func (n *WorkflowNetwork) AddRoutedEdge(source string, condition EdgeCondition, opts ...EdgeOption) *Edge {
	edge := &Edge{
		Source:        source,
		Condition:     condition,
		ConditionName: funcName(condition),
	}
	for _, opt := range opts {
		opt(edge)
	}
	n.edges.Add(edge)
	return edge
}

// SetEntryPoint sets the node traversal starts from. The value is not
// checked until Validate or Compile runs.
func (n *WorkflowNetwork) SetEntryPoint(id string) {
	n.entry = id
}

// SetFinishPoint sets the node traversal halts at. The finish node itself
// is never executed; reaching it ends the run. The value is not checked
// until Validate or Compile runs.
func (n *WorkflowNetwork) SetFinishPoint(id string) {
	n.exit = id
}

// EntryPoint returns the configured entry node id.
func (n *WorkflowNetwork) EntryPoint() string { return n.entry }

// FinishPoint returns the configured exit node id.
func (n *WorkflowNetwork) FinishPoint() string { return n.exit }

// Node returns the node registered under id.
func (n *WorkflowNetwork) Node(id string) (*Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// Nodes returns a copy of the node table.
func (n *WorkflowNetwork) Nodes() map[string]*Node {
	out := make(map[string]*Node, len(n.nodes))
	for id, node := range n.nodes {
		out[id] = node
	}
	return out
}

// Edges returns the network's edge set.
func (n *WorkflowNetwork) Edges() *EdgeSet {
	return n.edges
}

// Validate checks the referential invariants: entry and exit must each be a
// sentinel or an existing node id, and every edge endpoint must reference
// an existing node or the relevant sentinel. It fails on the first
// violation found with a *GraphValidationError naming the offending id.
func (n *WorkflowNetwork) Validate() error {
	if n.entry != Start {
		if _, ok := n.nodes[n.entry]; !ok {
			return &GraphValidationError{Kind: "entry point", Ref: n.entry}
		}
	}

	if n.exit != End {
		if _, ok := n.nodes[n.exit]; !ok {
			return &GraphValidationError{Kind: "exit point", Ref: n.exit}
		}
	}

	for _, edge := range n.edges.All() {
		if edge.Source != Start {
			if _, ok := n.nodes[edge.Source]; !ok {
				return &GraphValidationError{Kind: "edge source", Ref: edge.Source}
			}
		}
		if edge.Target != "" && edge.Target != End {
			if _, ok := n.nodes[edge.Target]; !ok {
				return &GraphValidationError{Kind: "edge target", Ref: edge.Target}
			}
		}
	}

	return nil
}

// Compile validates the network and pairs a read-only snapshot of it with
// an execution engine. Compilation is repeatable and leaves the network
// untouched; builder mutations after Compile are not observed by the
// returned workflow.
func (n *WorkflowNetwork) Compile(opts ...EngineOption) (*CompiledWorkflow, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	snapshot := n.snapshot()
	engine := newExecutionEngine(snapshot, opts...)

	n.logger.Info("workflow network compiled",
		zap.String("network_id", n.ID),
		zap.Int("nodes", len(n.nodes)),
		zap.Int("edges", n.edges.Len()),
		zap.String("entry", n.entry),
		zap.String("exit", n.exit),
	)

	return &CompiledWorkflow{network: snapshot, engine: engine}, nil
}

// snapshot copies the node table and edge list. Node and Edge values are
// shared; they are immutable once added except by replacement.
func (n *WorkflowNetwork) snapshot() *WorkflowNetwork {
	return &WorkflowNetwork{
		ID:          n.ID,
		Description: n.Description,
		nodes:       n.Nodes(),
		edges:       n.edges.clone(),
		entry:       n.entry,
		exit:        n.exit,
		logger:      n.logger,
	}
}

// funcName derives a short name for a function value, used for
// serialization and registry lookup. Anonymous functions yield names like
// "funcN".
func funcName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
