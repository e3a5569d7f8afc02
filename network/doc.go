// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

/*
Package network implements a directed-graph workflow abstraction: named
nodes connected by static or state-dependent edges, walked by a compiled
engine from a fixed entry point to a fixed exit point while folding node
output into a shared state.

# Core types

  - State             — ordered key-value mapping threaded through nodes
  - Node / NodeFunc   — named unit wrapping a callable, with enforced
    timeout and retry settings
  - Edge / EdgeSet    — static and conditional routing rules
  - WorkflowNetwork   — builder owning the node table and edge set
  - CompiledWorkflow  — validated, immutable view paired with an engine
  - ExecutionEngine   — traversal loop with two execution modes
  - Stream            — lazy single-owner cursor for step-by-step runs

# Execution model

Traversal is single-threaded and borrows loosely from Pregel: bounded
iterations, state flowing through the graph, with each superstep
degenerating to one node execution because routing always yields zero or
one next node. Two sentinel identities, Start and End, participate in
routing but are never executed.

The two entry points handle node failure differently, and deliberately so:

  - ExecutionEngine.Execute is fail-fast-and-report. It never returns an
    error; a node failure aborts the run and is reported through
    ExecutionResult.Error with Completed=false, the failed invocation still
    recorded as a step.
  - ExecutionEngine.Stream is continue-and-annotate. A node failure becomes
    an {"error": ...} item and traversal continues to the next routed node.

Halting without reaching the exit sentinel (routing exhaustion or an
exhausted iteration budget) is a normal outcome, not an error; the two
reasons are told apart by the iteration counter reaching the budget.

# State aliasing

State cloning is shallow. Nested reference values inside the state stay
aliased across snapshots and with the caller's original structures; node
callables must treat them as immutable, and external mutation of nested
values during a run is undefined behavior.

# Serialization

NetworkDefinition captures a network's shape as JSON or YAML. Callables are
referenced by name; BuildNetwork reconstructs a runnable network from a
definition plus a FuncRegistry binding those names.
*/
package network
