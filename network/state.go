package network

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// State is the mutable key-value mapping threaded through node invocations.
// Keys preserve insertion order, so snapshots and serialized output are
// stable across runs.
//
// Cloning and merging are shallow: nested reference values (slices, maps,
// pointers) stay aliased between a clone and its origin. Node callables must
// treat nested values as immutable; mutating them in place corrupts the
// before/after snapshots the engine records.
type State struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewState creates an empty state.
func NewState() *State {
	return &State{values: orderedmap.New[string, any]()}
}

// StateFrom creates a state from a plain map. Map iteration order is not
// deterministic in Go, so keys are inserted in sorted order.
func StateFrom(values map[string]any) *State {
	s := NewState()
	s.Merge(values)
	return s
}

// Get returns the value stored under key.
func (s *State) Get(key string) (any, bool) {
	return s.values.Get(key)
}

// GetString returns the value under key when it is a string, "" otherwise.
func (s *State) GetString(key string) string {
	if v, ok := s.values.Get(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// GetInt returns the value under key when it is an int, 0 otherwise.
func (s *State) GetInt(key string) int {
	if v, ok := s.values.Get(key); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}

// GetBool returns the value under key when it is a bool, false otherwise.
func (s *State) GetBool(key string) bool {
	if v, ok := s.values.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Set stores value under key, overwriting any previous value while keeping
// the key's original position. Returns the state for chaining.
func (s *State) Set(key string, value any) *State {
	s.values.Set(key, value)
	return s
}

// Len returns the number of top-level keys.
func (s *State) Len() int {
	return s.values.Len()
}

// Keys returns all keys in insertion order.
func (s *State) Keys() []string {
	keys := make([]string, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Merge applies a shallow top-level merge: existing keys are overwritten in
// place, new keys are appended. Because Go map iteration order is random,
// new keys from a single update are appended in sorted order so merge
// results stay deterministic. There is no key deletion.
func (s *State) Merge(updates map[string]any) {
	if len(updates) == 0 {
		return
	}
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.values.Set(k, updates[k])
	}
}

// Clone returns a shallow copy: top-level keys are independent, nested
// values remain aliased with the original.
func (s *State) Clone() *State {
	c := NewState()
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		c.values.Set(pair.Key, pair.Value)
	}
	return c
}

// ToMap returns a shallow plain-map copy of the state.
func (s *State) ToMap() map[string]any {
	m := make(map[string]any, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

// MarshalJSON serializes the state with keys in insertion order.
func (s *State) MarshalJSON() ([]byte, error) {
	return s.values.MarshalJSON()
}

// UnmarshalJSON deserializes a JSON object into the state, preserving the
// document's key order.
func (s *State) UnmarshalJSON(data []byte) error {
	if s.values == nil {
		s.values = orderedmap.New[string, any]()
	}
	return s.values.UnmarshalJSON(data)
}
