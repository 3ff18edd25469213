// Package curator implements human-in-the-loop review of AI-enriched JSON
// documents. A Session holds an (original, enriched) document pair, computes
// the structural diff between them, records per-field approve/decline
// decisions, supports direct edits and removals on the enriched side, and
// reconciles everything into one exportable final document.
//
// The core is synchronous and purely functional over immutable document
// snapshots: every transition (diff, decide, edit, remove, merge) runs to
// completion before the next begins, and declined changes revert to the
// original values captured at diff time.
package curator

import (
	"fmt"

	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/editor"
	"github.com/agentstation/curator/pkg/errors"
	"github.com/agentstation/curator/pkg/logging"
	"github.com/agentstation/curator/pkg/review"
)

// Session manages the review of one enriched document against its original.
type Session interface {
	// Documents returns the current document pair
	Documents() (original, enriched document.Value)

	// SourceURL returns the product page the pair was fetched from, if any
	SourceURL() string

	// Diff returns the current diff tree
	Diff() *differ.Tree

	// Decide applies a reviewer decision to a field
	Decide(d review.Decision) error

	// ValidationState returns the stored decision state for a path
	ValidationState(path string) review.State

	// DiffKind looks up the diff kind recorded for a path
	DiffKind(path string) (differ.Kind, bool)

	// OriginalValue returns the pre-enrichment value recorded for a path
	OriginalValue(path string) (document.Value, bool)

	// PendingFields lists changed leaf paths still awaiting a decision
	PendingFields() []string

	// ExportReady reports whether every changed field has been decided
	ExportReady() bool

	// StartEdit begins editing the enriched value at path
	StartEdit(path string) error

	// UpdateEdit replaces the active edit's input text
	UpdateEdit(text string)

	// EditInput returns the active edit's current input text
	EditInput() (string, bool)

	// CommitEdit writes the active edit into the enriched document
	CommitEdit() error

	// CancelEdit discards the active edit
	CancelEdit()

	// RemoveField deletes a field from the enriched document
	RemoveField(path string) error

	// Generate reconciles the pair into the final document
	Generate() document.Value

	// Export returns the final document once every field is decided
	Export() (document.Value, error)

	// Decisions returns a snapshot of all recorded decisions
	Decisions() map[string]review.State

	// RestoreDecisions replays previously recorded decisions into the store
	RestoreDecisions(states map[string]review.State)

	// Load replaces the document pair and starts a fresh review
	Load(original, enriched document.Value)

	// Reset clears all decisions, keeping the documents and diff
	Reset()

	// OnDecision registers a callback for applied decisions
	OnDecision(DecisionHook)

	// OnRecompute registers a callback for diff recomputation
	OnRecompute(RecomputeHook)
}

// New creates a review Session from the given options. A document pair is
// required; supply one with WithDocuments or WithPair.
func New(opts ...Option) (Session, error) {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if c.original == nil || c.enriched == nil {
		return nil, errors.ErrNoDocuments
	}

	logger := c.logger
	if logger == nil {
		logger = logging.Default()
	}

	s := &session{
		original:  *c.original,
		enriched:  *c.enriched,
		sourceURL: c.sourceURL,
		differ:    differ.New(differ.WithIgnoreKeys(c.ignoreKeys...)),
		store:     review.NewStore(),
		editor:    editor.New(),
		logger:    logger,
		hooks:     newHooks(),
	}
	s.tree = s.differ.Compare(s.original, s.enriched)

	summary := s.tree.Summary()
	logger.Debug().
		Int("new", summary.New).
		Int("modified", summary.Modified).
		Int("unchanged", summary.Unchanged).
		Msg("review session created")

	return s, nil
}
