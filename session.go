package curator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/editor"
	"github.com/agentstation/curator/pkg/errors"
	"github.com/agentstation/curator/pkg/merge"
	"github.com/agentstation/curator/pkg/review"
)

// session is the internal implementation of the Session interface
type session struct {
	mu        sync.RWMutex
	original  document.Value
	enriched  document.Value
	sourceURL string

	differ differ.Differ
	tree   *differ.Tree
	store  *review.Store
	editor *editor.Editor

	logger *zerolog.Logger
	hooks  *hooks
}

// Documents returns the current document pair.
func (s *session) Documents() (document.Value, document.Value) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original, s.enriched
}

// SourceURL returns the product page the pair was fetched from, if any.
func (s *session) SourceURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourceURL
}

// Diff returns the current diff tree.
func (s *session) Diff() *differ.Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// Decide applies a reviewer decision. Decisions are keyed by path and
// survive diff recomputation.
func (s *session) Decide(d review.Decision) error {
	if err := s.store.Apply(d); err != nil {
		return err
	}

	state, _ := d.State()
	s.logger.Debug().
		Str("path", d.FieldPath).
		Str("state", string(state)).
		Msg("decision applied")

	s.hooks.triggerDecision(d.FieldPath, state)
	return nil
}

// ValidationState returns the stored decision state for a path.
func (s *session) ValidationState(path string) review.State {
	return s.store.Get(path)
}

// DiffKind looks up the diff kind recorded for a path.
func (s *session) DiffKind(path string) (differ.Kind, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.tree.Lookup(document.ParseKey(path))
	if !ok {
		return "", false
	}
	return node.Kind, true
}

// OriginalValue returns the pre-enrichment value the diff recorded for a
// path. Only NEW and MODIFIED nodes carry one.
func (s *session) OriginalValue(path string) (document.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.tree.Lookup(document.ParseKey(path))
	if !ok || node.Original == nil {
		return document.Value{}, false
	}
	return *node.Original, true
}

// PendingFields lists changed leaf paths still awaiting a decision, in
// document order.
func (s *session) PendingFields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return review.CollectPending(s.tree, s.store)
}

// ExportReady reports whether every changed field has been decided.
func (s *session) ExportReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return review.ExportReady(s.tree, s.store)
}

// StartEdit begins editing the enriched value at path. A prior unfinished
// edit is replaced.
func (s *session) StartEdit(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: field path required", errors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parsed := document.ParseKey(path)
	current, _ := document.GetAt(s.enriched, parsed)
	s.editor.Start(parsed, current)
	return nil
}

// UpdateEdit replaces the active edit's input text.
func (s *session) UpdateEdit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.Update(text)
}

// EditInput returns the active edit's current input text.
func (s *session) EditInput() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor.Input()
}

// CommitEdit writes the active edit into the enriched document and
// recomputes the diff.
func (s *session) CommitEdit() error {
	s.mu.Lock()

	path, _ := s.editor.Path()
	updated, err := s.editor.Commit(s.enriched)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.enriched = updated
	tree := s.recompute()
	s.mu.Unlock()

	s.hooks.triggerRecompute(tree)
	s.logger.Debug().Str("path", path.Key()).Msg("edit committed")
	return nil
}

// CancelEdit discards the active edit.
func (s *session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.Cancel()
}

// RemoveField deletes a field from the enriched document and recomputes
// the diff. An unresolvable path is a silent no-op, matching removal
// semantics in the document layer.
func (s *session) RemoveField(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: field path required", errors.ErrInvalidInput)
	}

	s.mu.Lock()
	s.enriched = editor.Remove(s.enriched, document.ParseKey(path))
	tree := s.recompute()
	s.mu.Unlock()

	s.hooks.triggerRecompute(tree)
	s.logger.Debug().Str("path", path).Msg("field removed")
	return nil
}

// Generate reconciles the pair into the final document. Undecided fields
// keep their enriched values; declined fields revert or drop.
func (s *session) Generate() document.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return merge.Generate(s.original, s.enriched, s.tree, s.store)
}

// Export returns the final document once every changed field has been
// decided. Otherwise it fails with the list of paths still pending.
func (s *session) Export() (document.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := review.CollectPending(s.tree, s.store)
	if len(pending) > 0 {
		return document.Value{}, &errors.NotReadyError{Pending: pending}
	}

	final := merge.Generate(s.original, s.enriched, s.tree, s.store)

	s.logger.Info().
		Int("fields", s.tree.Summary().Total()).
		Msg("final document exported")

	return final, nil
}

// Decisions returns a snapshot of all recorded decisions, keyed by field
// path. Paths in the pending default state are absent.
func (s *session) Decisions() map[string]review.State {
	return s.store.Snapshot()
}

// RestoreDecisions replays previously recorded decisions into the store,
// replacing its current contents. Used when resuming a persisted review.
func (s *session) RestoreDecisions(states map[string]review.State) {
	s.store.Restore(states)
}

// Load replaces the document pair and starts a fresh review: decisions are
// cleared, any active edit is discarded, and the diff is recomputed.
func (s *session) Load(original, enriched document.Value) {
	s.mu.Lock()
	s.original = original
	s.enriched = enriched
	s.store.Reset()
	tree := s.recompute()
	s.mu.Unlock()

	s.hooks.triggerRecompute(tree)
	s.logger.Debug().Msg("document pair loaded")
}

// Reset clears all decisions, keeping the documents and diff intact.
func (s *session) Reset() {
	s.store.Reset()
	s.logger.Debug().Msg("decisions reset")
}

// OnDecision registers a callback for applied decisions.
func (s *session) OnDecision(fn DecisionHook) {
	s.hooks.OnDecision(fn)
}

// OnRecompute registers a callback for diff recomputation.
func (s *session) OnRecompute(fn RecomputeHook) {
	s.hooks.OnRecompute(fn)
}

// recompute discards any active edit and rebuilds the diff tree from the
// current pair. Callers must hold the write lock, then release it before
// notifying recompute hooks with the returned tree so hooks can read the
// session.
func (s *session) recompute() *differ.Tree {
	s.editor.Cancel()
	s.tree = s.differ.Compare(s.original, s.enriched)
	return s.tree
}
