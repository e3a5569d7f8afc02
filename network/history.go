package network

import (
	"sync"
	"time"
)

// HistoryStore keeps ExecutionResult records in memory for later
// inspection. Wire it into an engine with WithHistory; every Execute call
// then saves its result here. The store holds results only for the current
// process; there is no persistence between runs.
type HistoryStore struct {
	mu      sync.RWMutex
	results map[string]*ExecutionResult
	order   []string
}

// NewHistoryStore creates an empty store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		results: make(map[string]*ExecutionResult),
	}
}

// Save records a result, keyed by its ExecutionID.
func (s *HistoryStore) Save(result *ExecutionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[result.ExecutionID]; !exists {
		s.order = append(s.order, result.ExecutionID)
	}
	s.results[result.ExecutionID] = result
}

// Get retrieves a result by execution id.
func (s *HistoryStore) Get(executionID string) (*ExecutionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[executionID]
	return r, ok
}

// Len returns the number of stored results.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// ListByNetwork returns all results for a network id, in save order.
func (s *HistoryStore) ListByNetwork(networkID string) []*ExecutionResult {
	return s.list(func(r *ExecutionResult) bool {
		return r.NetworkID == networkID
	})
}

// ListByCompletion returns all results with the given Completed flag, in
// save order.
func (s *HistoryStore) ListByCompletion(completed bool) []*ExecutionResult {
	return s.list(func(r *ExecutionResult) bool {
		return r.Completed == completed
	})
}

// ListByTimeRange returns all results started within [from, to], in save
// order.
func (s *HistoryStore) ListByTimeRange(from, to time.Time) []*ExecutionResult {
	return s.list(func(r *ExecutionResult) bool {
		return !r.StartedAt.Before(from) && !r.StartedAt.After(to)
	})
}

func (s *HistoryStore) list(keep func(*ExecutionResult) bool) []*ExecutionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*ExecutionResult
	for _, id := range s.order {
		if r := s.results[id]; keep(r) {
			out = append(out, r)
		}
	}
	return out
}
