package core

import (
	"fmt"
	"sync"
)

// DefaultHistoryEntries is used when a store is created with a non-positive capacity.
const DefaultHistoryEntries = 50

// HistoryStore keeps recent analyses in memory, newest first.
// It is safe for concurrent use.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []*Analysis
	max     int
}

// NewHistoryStore creates a store holding at most max analyses.
func NewHistoryStore(max int) *HistoryStore {
	if max <= 0 {
		max = DefaultHistoryEntries
	}
	return &HistoryStore{max: max}
}

// Add stores a at the front. The oldest entry is evicted once the store is full.
func (h *HistoryStore) Add(a *Analysis) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]*Analysis, 0, min(len(h.entries)+1, h.max))
	entries = append(entries, a)
	for _, e := range h.entries {
		if len(entries) == h.max {
			break
		}
		entries = append(entries, e)
	}
	h.entries = entries
}

// Get returns the analysis with the given ID.
func (h *HistoryStore) Get(id string) (*Analysis, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
}

// List returns a snapshot of stored analyses, newest first.
func (h *HistoryStore) List() []*Analysis {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*Analysis, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes every entry and reports how many were removed.
func (h *HistoryStore) Clear() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.entries)
	h.entries = nil
	return n
}

// Len returns the number of stored analyses.
func (h *HistoryStore) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Cap returns the maximum number of stored analyses.
func (h *HistoryStore) Cap() int {
	return h.max
}
