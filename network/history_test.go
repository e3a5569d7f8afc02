package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyResult(id, networkID string, completed bool, started time.Time) *ExecutionResult {
	return &ExecutionResult{
		ExecutionID: id,
		NetworkID:   networkID,
		Completed:   completed,
		StartedAt:   started,
	}
}

func TestHistoryStoreSaveAndGet(t *testing.T) {
	t.Parallel()

	store := NewHistoryStore()
	assert.Equal(t, 0, store.Len())

	r := historyResult("exec-1", "wf", true, time.Now())
	store.Save(r)

	got, ok := store.Get("exec-1")
	require.True(t, ok)
	assert.Same(t, r, got)

	_, ok = store.Get("exec-404")
	assert.False(t, ok)
}

func TestHistoryStoreSaveOverwritesSameID(t *testing.T) {
	t.Parallel()

	store := NewHistoryStore()
	store.Save(historyResult("exec-1", "wf", false, time.Now()))
	store.Save(historyResult("exec-1", "wf", true, time.Now()))

	assert.Equal(t, 1, store.Len())
	got, _ := store.Get("exec-1")
	assert.True(t, got.Completed)
}

func TestHistoryStoreListByNetwork(t *testing.T) {
	t.Parallel()

	store := NewHistoryStore()
	store.Save(historyResult("e1", "alpha", true, time.Now()))
	store.Save(historyResult("e2", "beta", true, time.Now()))
	store.Save(historyResult("e3", "alpha", false, time.Now()))

	alpha := store.ListByNetwork("alpha")
	require.Len(t, alpha, 2)
	// Save order is preserved.
	assert.Equal(t, "e1", alpha[0].ExecutionID)
	assert.Equal(t, "e3", alpha[1].ExecutionID)

	assert.Empty(t, store.ListByNetwork("gamma"))
}

func TestHistoryStoreListByCompletion(t *testing.T) {
	t.Parallel()

	store := NewHistoryStore()
	store.Save(historyResult("e1", "wf", true, time.Now()))
	store.Save(historyResult("e2", "wf", false, time.Now()))
	store.Save(historyResult("e3", "wf", true, time.Now()))

	completed := store.ListByCompletion(true)
	require.Len(t, completed, 2)
	assert.Equal(t, "e1", completed[0].ExecutionID)

	halted := store.ListByCompletion(false)
	require.Len(t, halted, 1)
	assert.Equal(t, "e2", halted[0].ExecutionID)
}

func TestHistoryStoreListByTimeRange(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := NewHistoryStore()
	store.Save(historyResult("early", "wf", true, base.Add(-time.Hour)))
	store.Save(historyResult("inside", "wf", true, base))
	store.Save(historyResult("edge", "wf", true, base.Add(time.Hour)))
	store.Save(historyResult("late", "wf", true, base.Add(2*time.Hour)))

	got := store.ListByTimeRange(base, base.Add(time.Hour))
	require.Len(t, got, 2)
	assert.Equal(t, "inside", got[0].ExecutionID)
	assert.Equal(t, "edge", got[1].ExecutionID)
}
