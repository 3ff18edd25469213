package curator

import (
	"sync"

	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/review"
)

// Hook function types for session events
type (
	// DecisionHook is called after a reviewer decision is applied
	DecisionHook func(path string, state review.State)

	// RecomputeHook is called after the diff tree is recomputed
	RecomputeHook func(tree *differ.Tree)
)

// hooks manages event callbacks for session changes
type hooks struct {
	mu          sync.RWMutex
	onDecision  []DecisionHook
	onRecompute []RecomputeHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnDecision registers a callback for applied decisions
func (h *hooks) OnDecision(fn DecisionHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDecision = append(h.onDecision, fn)
}

// OnRecompute registers a callback for diff recomputation
func (h *hooks) OnRecompute(fn RecomputeHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecompute = append(h.onRecompute, fn)
}

// triggerDecision notifies decision hooks
func (h *hooks) triggerDecision(path string, state review.State) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onDecision {
		hook(path, state)
	}
}

// triggerRecompute notifies recompute hooks
func (h *hooks) triggerRecompute(tree *differ.Tree) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecompute {
		hook(tree)
	}
}
