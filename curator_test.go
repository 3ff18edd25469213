package curator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	curator "github.com/agentstation/curator"
	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
	"github.com/agentstation/curator/pkg/review"
)

func newTestSession(t *testing.T) curator.Session {
	t.Helper()

	original := document.MustParse(`{
		"@type": "Product",
		"name": "Wool Sweater",
		"price": 10,
		"offers": {"price": 10, "currency": "EUR"}
	}`)
	enriched := document.MustParse(`{
		"@type": "Product",
		"name": "Wool Sweater",
		"price": 12,
		"color": "red",
		"offers": {"price": 12, "currency": "EUR"}
	}`)

	s, err := curator.New(curator.WithDocuments(original, enriched))
	require.NoError(t, err)
	return s
}

func TestNewRequiresDocuments(t *testing.T) {
	_, err := curator.New()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoDocuments)
}

func TestSessionDiff(t *testing.T) {
	s := newTestSession(t)

	kind, ok := s.DiffKind("price")
	require.True(t, ok)
	assert.Equal(t, differ.KindModified, kind)

	kind, ok = s.DiffKind("color")
	require.True(t, ok)
	assert.Equal(t, differ.KindNew, kind)

	kind, ok = s.DiffKind("name")
	require.True(t, ok)
	assert.Equal(t, differ.KindUnchanged, kind)

	kind, ok = s.DiffKind("offers.price")
	require.True(t, ok)
	assert.Equal(t, differ.KindModified, kind)

	_, ok = s.DiffKind("no.such.path")
	assert.False(t, ok)
}

func TestSessionOriginalValue(t *testing.T) {
	s := newTestSession(t)

	v, ok := s.OriginalValue("price")
	require.True(t, ok)
	assert.Equal(t, "10", v.NumberValue().String())

	// NEW fields have no recorded original
	_, ok = s.OriginalValue("color")
	assert.False(t, ok)
}

func TestSessionReviewFlow(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, []string{"price", "color", "offers.price"}, s.PendingFields())
	assert.False(t, s.ExportReady())

	_, err := s.Export()
	require.Error(t, err)
	assert.True(t, errors.IsNotReady(err))

	var notReady *errors.NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.Equal(t, []string{"price", "color", "offers.price"}, notReady.Pending)

	require.NoError(t, s.Decide(review.Decision{Type: review.DecisionApprove, FieldPath: "price"}))
	require.NoError(t, s.Decide(review.Decision{Type: review.DecisionDecline, FieldPath: "color"}))
	require.NoError(t, s.Decide(review.Decision{Type: review.DecisionDecline, FieldPath: "offers.price"}))

	assert.Empty(t, s.PendingFields())
	assert.True(t, s.ExportReady())

	final, err := s.Export()
	require.NoError(t, err)

	price, ok := document.GetAt(final, document.Path{"price"})
	require.True(t, ok)
	assert.Equal(t, "12", price.NumberValue().String())

	// declined NEW field is omitted
	_, ok = document.GetAt(final, document.Path{"color"})
	assert.False(t, ok)

	// declined nested MODIFIED field reverts
	offerPrice, ok := document.GetAt(final, document.Path{"offers", "price"})
	require.True(t, ok)
	assert.Equal(t, "10", offerPrice.NumberValue().String())
}

func TestSessionDecideValidation(t *testing.T) {
	s := newTestSession(t)

	err := s.Decide(review.Decision{Type: review.DecisionApprove})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	err = s.Decide(review.Decision{Type: "shrug", FieldPath: "price"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	assert.Equal(t, review.StatePending, s.ValidationState("price"))
}

func TestSessionEditing(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.StartEdit("color"))

	input, ok := s.EditInput()
	require.True(t, ok)
	assert.Equal(t, "red", input)

	s.UpdateEdit("crimson")
	require.NoError(t, s.CommitEdit())

	_, enriched := s.Documents()
	color, ok := document.GetAt(enriched, document.Path{"color"})
	require.True(t, ok)
	assert.Equal(t, "crimson", color.StringValue())

	// edited field still diffs as NEW against the original
	kind, ok := s.DiffKind("color")
	require.True(t, ok)
	assert.Equal(t, differ.KindNew, kind)

	t.Run("commit without active edit", func(t *testing.T) {
		err := s.CommitEdit()
		assert.ErrorIs(t, err, errors.ErrNoActiveEdit)
	})

	t.Run("cancel discards edit", func(t *testing.T) {
		require.NoError(t, s.StartEdit("name"))
		s.UpdateEdit("Cashmere Sweater")
		s.CancelEdit()

		_, enriched := s.Documents()
		name, ok := document.GetAt(enriched, document.Path{"name"})
		require.True(t, ok)
		assert.Equal(t, "Wool Sweater", name.StringValue())
	})

	t.Run("empty path rejected", func(t *testing.T) {
		err := s.StartEdit("  ")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidInput(err))
	})

	t.Run("number edit keeps number type", func(t *testing.T) {
		require.NoError(t, s.StartEdit("price"))
		s.UpdateEdit("15.5")
		require.NoError(t, s.CommitEdit())

		_, enriched := s.Documents()
		price, ok := document.GetAt(enriched, document.Path{"price"})
		require.True(t, ok)
		assert.Equal(t, document.KindNumber, price.Kind())
		assert.Equal(t, "15.5", price.NumberValue().String())
	})
}

func TestSessionRemoveField(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.RemoveField("color"))

	_, enriched := s.Documents()
	_, ok := document.GetAt(enriched, document.Path{"color"})
	assert.False(t, ok)

	// the diff no longer reports the removed field
	_, ok = s.DiffKind("color")
	assert.False(t, ok)
	assert.Equal(t, []string{"price", "offers.price"}, s.PendingFields())

	// unresolvable paths are silent no-ops
	require.NoError(t, s.RemoveField("no.such.field"))

	err := s.RemoveField("")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestSessionEditDiscardedByRemoval(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.StartEdit("color"))
	s.UpdateEdit("crimson")
	require.NoError(t, s.RemoveField("color"))

	// the removal invalidated the edit
	_, active := s.EditInput()
	assert.False(t, active)

	err := s.CommitEdit()
	assert.ErrorIs(t, err, errors.ErrNoActiveEdit)

	_, enriched := s.Documents()
	_, ok := document.GetAt(enriched, document.Path{"color"})
	assert.False(t, ok)
}

func TestSessionRecomputeHookReadsSession(t *testing.T) {
	s := newTestSession(t)

	var pending [][]string
	s.OnRecompute(func(*differ.Tree) {
		pending = append(pending, s.PendingFields())
	})

	require.NoError(t, s.RemoveField("color"))
	require.NoError(t, s.StartEdit("price"))
	s.UpdateEdit("14")
	require.NoError(t, s.CommitEdit())

	require.Len(t, pending, 2)
	assert.Equal(t, []string{"price", "offers.price"}, pending[0])
	assert.Equal(t, []string{"price", "offers.price"}, pending[1])
}

func TestSessionGenerateUndecided(t *testing.T) {
	// Generate is not gated: undecided fields keep their enriched values.
	s := newTestSession(t)

	final := s.Generate()
	color, ok := document.GetAt(final, document.Path{"color"})
	require.True(t, ok)
	assert.Equal(t, "red", color.StringValue())
}

func TestSessionLoadAndReset(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Decide(review.Decision{Type: review.DecisionApprove, FieldPath: "price"}))

	t.Run("reset clears decisions only", func(t *testing.T) {
		s.Reset()
		assert.Equal(t, review.StatePending, s.ValidationState("price"))

		kind, ok := s.DiffKind("price")
		require.True(t, ok)
		assert.Equal(t, differ.KindModified, kind)
	})

	t.Run("load starts a fresh review", func(t *testing.T) {
		require.NoError(t, s.Decide(review.Decision{Type: review.DecisionApprove, FieldPath: "price"}))
		require.NoError(t, s.StartEdit("name"))

		original := document.MustParse(`{"sku": "A-1"}`)
		enriched := document.MustParse(`{"sku": "A-1", "brand": "Acme"}`)
		s.Load(original, enriched)

		assert.Equal(t, review.StatePending, s.ValidationState("price"))
		assert.Equal(t, []string{"brand"}, s.PendingFields())

		_, active := s.EditInput()
		assert.False(t, active)
	})
}

func TestSessionHooks(t *testing.T) {
	s := newTestSession(t)

	var decided []string
	s.OnDecision(func(path string, state review.State) {
		decided = append(decided, path+"="+string(state))
	})

	var recomputes int
	s.OnRecompute(func(tree *differ.Tree) {
		recomputes++
		assert.NotNil(t, tree)
	})

	require.NoError(t, s.Decide(review.Decision{Type: review.DecisionApprove, FieldPath: "price"}))
	require.NoError(t, s.Decide(review.Decision{Type: review.DecisionDecline, FieldPath: "color"}))
	assert.Equal(t, []string{"price=approved", "color=declined"}, decided)

	require.NoError(t, s.RemoveField("color"))
	require.NoError(t, s.StartEdit("name"))
	require.NoError(t, s.CommitEdit())
	assert.Equal(t, 2, recomputes)
}

func TestSessionIgnoreKeys(t *testing.T) {
	original := document.MustParse(`{"internal": {"a": 1}, "name": "X"}`)
	enriched := document.MustParse(`{"internal": {"a": 2}, "name": "Y"}`)

	s, err := curator.New(
		curator.WithDocuments(original, enriched),
		curator.WithIgnoreKeys("internal"),
	)
	require.NoError(t, err)

	_, ok := s.DiffKind("internal")
	assert.False(t, ok)
	assert.Equal(t, []string{"name"}, s.PendingFields())
}
