package network

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// NetworkDefinition is the serializable shape of a workflow network.
// Callables cannot be serialized; nodes and conditions are referenced by
// the names captured when they were registered, and BuildNetwork resolves
// those names through a FuncRegistry.
type NetworkDefinition struct {
	ID          string           `json:"graph_id" yaml:"graph_id"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Entry       string           `json:"entry_node" yaml:"entry_node"`
	Exit        string           `json:"exit_node" yaml:"exit_node"`
	Nodes       []NodeDefinition `json:"nodes" yaml:"nodes"`
	Edges       []EdgeDefinition `json:"edges" yaml:"edges"`
}

// NodeDefinition is the serializable shape of a node.
type NodeDefinition struct {
	ID          string        `json:"id" yaml:"id"`
	Func        string        `json:"func_name,omitempty" yaml:"func_name,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RetryCount  int           `json:"retry_count,omitempty" yaml:"retry_count,omitempty"`
	RetryDelay  time.Duration `json:"retry_delay,omitempty" yaml:"retry_delay,omitempty"`
	IsAgent     bool          `json:"is_agent,omitempty" yaml:"is_agent,omitempty"`
}

// EdgeDefinition is the serializable shape of an edge.
type EdgeDefinition struct {
	Source      string `json:"source" yaml:"source"`
	Target      string `json:"target,omitempty" yaml:"target,omitempty"`
	Conditional bool   `json:"conditional" yaml:"conditional"`
	Condition   string `json:"condition,omitempty" yaml:"condition,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ToDefinition converts the network to its serializable form. Node order
// follows the edge-independent sorted id order; edge order is insertion
// order.
func (n *WorkflowNetwork) ToDefinition() *NetworkDefinition {
	def := &NetworkDefinition{
		ID:          n.ID,
		Description: n.Description,
		Entry:       n.entry,
		Exit:        n.exit,
	}

	ids := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		node := n.nodes[id]
		def.Nodes = append(def.Nodes, NodeDefinition{
			ID:          node.ID,
			Func:        node.FuncName,
			Description: node.Description,
			Timeout:     node.Timeout,
			RetryCount:  node.RetryCount,
			RetryDelay:  node.RetryDelay,
			IsAgent:     node.IsAgent,
		})
	}

	for _, edge := range n.edges.All() {
		def.Edges = append(def.Edges, EdgeDefinition{
			Source:      edge.Source,
			Target:      edge.Target,
			Conditional: edge.IsConditional(),
			Condition:   edge.ConditionName,
			Description: edge.Description,
		})
	}

	return def
}

// ValidateDefinition checks structural invariants of a loaded definition:
// node ids must be unique and edge endpoints must reference declared nodes
// or the sentinels.
func ValidateDefinition(def *NetworkDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("definition has no graph_id")
	}

	seen := make(map[string]bool, len(def.Nodes))
	for _, node := range def.Nodes {
		if node.ID == "" {
			return fmt.Errorf("definition contains a node without an id")
		}
		if seen[node.ID] {
			return fmt.Errorf("duplicate node id: %s", node.ID)
		}
		seen[node.ID] = true
	}

	for _, edge := range def.Edges {
		if edge.Source != Start && !seen[edge.Source] {
			return fmt.Errorf("edge references unknown source node: %s", edge.Source)
		}
		if edge.Target != "" && edge.Target != End && !seen[edge.Target] {
			return fmt.Errorf("edge references unknown target node: %s", edge.Target)
		}
		if edge.Conditional && edge.Condition == "" {
			return fmt.Errorf("conditional edge from %s has no condition name", edge.Source)
		}
	}

	return nil
}

// ToJSON renders the definition as indented JSON.
func (d *NetworkDefinition) ToJSON() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal definition to JSON: %w", err)
	}
	return string(data), nil
}

// ToYAML renders the definition as YAML.
func (d *NetworkDefinition) ToYAML() (string, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal definition to YAML: %w", err)
	}
	return string(data), nil
}

// DefinitionFromJSON parses and validates a JSON definition.
func DefinitionFromJSON(data []byte) (*NetworkDefinition, error) {
	var def NetworkDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unmarshal definition from JSON: %w", err)
	}
	if err := ValidateDefinition(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// DefinitionFromYAML parses and validates a YAML definition.
func DefinitionFromYAML(data []byte) (*NetworkDefinition, error) {
	var def NetworkDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unmarshal definition from YAML: %w", err)
	}
	if err := ValidateDefinition(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadDefinition reads a definition from a .json, .yaml or .yml file.
func LoadDefinition(path string) (*NetworkDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition file: %w", err)
	}
	if isYAMLPath(path) {
		return DefinitionFromYAML(data)
	}
	return DefinitionFromJSON(data)
}

// SaveDefinition writes a definition to a .json, .yaml or .yml file.
func SaveDefinition(def *NetworkDefinition, path string) error {
	var out string
	var err error
	if isYAMLPath(path) {
		out, err = def.ToYAML()
	} else {
		out, err = def.ToJSON()
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write definition file: %w", err)
	}
	return nil
}

func isYAMLPath(path string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
