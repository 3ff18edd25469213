// Package review tracks per-field human decisions over a diff tree: the
// tri-state validation store, the decision input record, the pending-field
// collector that gates export, and the derived effective state shown for
// composite nodes.
package review

import (
	"sort"
	"sync"
)

// State is the reviewer's decision for a single field path.
type State string

const (
	// StatePending means no decision has been recorded. It is the default:
	// a path with no entry behaves identically to an explicit pending.
	StatePending State = "pending"
	// StateApproved keeps the enriched value.
	StateApproved State = "approved"
	// StateDeclined reverts a modified field to its original value, or
	// omits a new field entirely.
	StateDeclined State = "declined"
)

// Store is the per-session validation store. It is keyed by field path, not
// by diff node identity, so recorded decisions survive diff recomputation
// after edits and removals. A fresh store starts empty; Reset clears it.
type Store struct {
	mu     sync.RWMutex
	states map[string]State
}

// NewStore creates an empty validation store.
func NewStore() *Store {
	return &Store{states: make(map[string]State)}
}

// Get returns the stored state for a field path key, or StatePending when
// no entry exists.
func (s *Store) Get(path string) State {
	if s == nil {
		return StatePending
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.states[path]; ok {
		return state
	}
	return StatePending
}

// Set records state for a field path key, replacing any prior entry.
// Setting StatePending removes the entry, which is equivalent.
func (s *Store) Set(path string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == StatePending {
		delete(s.states, path)
		return
	}
	s.states[path] = state
}

// Reset clears all recorded decisions.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]State)
}

// Len returns the number of recorded decisions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Snapshot returns a copy of all recorded decisions, keyed by field path,
// sorted iteration not guaranteed. Used for session persistence.
func (s *Store) Snapshot() map[string]State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]State, len(s.states))
	for path, state := range s.states {
		snapshot[path] = state
	}
	return snapshot
}

// Paths returns the decided field path keys in sorted order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.states))
	for path := range s.states {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Restore replaces the store's contents with the given decisions.
// Pending entries are dropped rather than stored.
func (s *Store) Restore(states map[string]State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states = make(map[string]State, len(states))
	for path, state := range states {
		if state == StateApproved || state == StateDeclined {
			s.states[path] = state
		}
	}
}
