package network

import "fmt"

// GraphValidationError reports a dangling reference found by
// WorkflowNetwork.Validate. Validation stops at the first violation, so a
// single error names exactly one offending id.
type GraphValidationError struct {
	// Kind identifies the reference that failed: "entry point",
	// "exit point", "edge source" or "edge target".
	Kind string
	// Ref is the offending node id.
	Ref string
}

func (e *GraphValidationError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

// NodeExecutionError wraps a failure raised inside a node callable.
// ExecutionEngine.Execute surfaces it through ExecutionResult.Error rather
// than returning it; Stream surfaces it as an inline {"error": ...} update.
type NodeExecutionError struct {
	NodeID string
	Err    error
}

func (e *NodeExecutionError) Error() string {
	return fmt.Sprintf("node %s failed: %v", e.NodeID, e.Err)
}

// Unwrap returns the underlying callable error.
func (e *NodeExecutionError) Unwrap() error {
	return e.Err
}
