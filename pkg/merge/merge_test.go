package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/merge"
	"github.com/agentstation/curator/pkg/review"
)

func TestGenerateFlat(t *testing.T) {
	original := document.MustParse(`{"name":"A","price":10}`)
	enriched := document.MustParse(`{"name":"A","price":12,"color":"red"}`)
	tree := differ.New().Compare(original, enriched)

	t.Run("approve price, decline color", func(t *testing.T) {
		store := review.NewStore()
		store.Set("price", review.StateApproved)
		store.Set("color", review.StateDeclined)

		out := merge.Generate(original, enriched, tree, store)
		assert.Equal(t, `{"name":"A","price":12}`, out.JSON())
	})

	t.Run("decline price reverts it", func(t *testing.T) {
		store := review.NewStore()
		store.Set("price", review.StateDeclined)
		store.Set("color", review.StateApproved)

		out := merge.Generate(original, enriched, tree, store)
		assert.Equal(t, `{"name":"A","price":10,"color":"red"}`, out.JSON())
	})

	t.Run("pending behaves like approved in merge", func(t *testing.T) {
		out := merge.Generate(original, enriched, tree, review.NewStore())
		assert.Equal(t, `{"name":"A","price":12,"color":"red"}`, out.JSON())
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		store := review.NewStore()
		store.Set("color", review.StateDeclined)
		merge.Generate(original, enriched, tree, store)
		assert.Equal(t, `{"name":"A","price":12,"color":"red"}`, enriched.JSON())
		assert.Equal(t, `{"name":"A","price":10}`, original.JSON())
	})
}

func TestGenerateNestedDecline(t *testing.T) {
	original := document.MustParse(`{"offers":{"price":10,"currency":"USD"}}`)
	enriched := document.MustParse(`{"offers":{"price":12,"currency":"USD"}}`)
	tree := differ.New().Compare(original, enriched)

	t.Run("declining a nested leaf leaves siblings untouched", func(t *testing.T) {
		store := review.NewStore()
		store.Set("offers.price", review.StateDeclined)

		out := merge.Generate(original, enriched, tree, store)
		assert.Equal(t, `{"offers":{"price":10,"currency":"USD"}}`, out.JSON())
	})

	t.Run("composite decline has no merge effect", func(t *testing.T) {
		store := review.NewStore()
		store.Set("offers", review.StateDeclined)

		// offers has children, so only leaf decisions matter: the child
		// tree is recursed and the pending price keeps its enriched value.
		out := merge.Generate(original, enriched, tree, store)
		assert.Equal(t, `{"offers":{"price":12,"currency":"USD"}}`, out.JSON())
	})
}

func TestGenerateWholeSubtreeRevert(t *testing.T) {
	// A modified leaf whose value is an array reverts as a whole.
	original := document.MustParse(`{"images":["a.jpg","b.jpg"],"name":"A"}`)
	enriched := document.MustParse(`{"images":["a.jpg","c.jpg","d.jpg"],"name":"A"}`)
	tree := differ.New().Compare(original, enriched)

	store := review.NewStore()
	store.Set("images", review.StateDeclined)

	out := merge.Generate(original, enriched, tree, store)
	assert.Equal(t, `{"images":["a.jpg","b.jpg"],"name":"A"}`, out.JSON())
}

func TestGenerateDeclinedNewObjectOmitted(t *testing.T) {
	original := document.MustParse(`{"name":"A"}`)
	enriched := document.MustParse(`{"name":"A","brand":{"@type":"Brand","name":"Lumio"}}`)
	tree := differ.New().Compare(original, enriched)

	store := review.NewStore()
	store.Set("brand", review.StateDeclined)

	out := merge.Generate(original, enriched, tree, store)
	assert.Equal(t, `{"name":"A"}`, out.JSON())
}

func TestGenerateNoDiffNodeCopiesVerbatim(t *testing.T) {
	// A key introduced after the diff snapshot (e.g. by an edit) has no
	// node and is copied through unchanged.
	original := document.MustParse(`{"name":"A"}`)
	enriched := document.MustParse(`{"name":"A"}`)
	tree := differ.New().Compare(original, enriched)

	edited := document.SetAt(enriched, document.ParseKey("sku"), document.String("X-100"))
	out := merge.Generate(original, edited, tree, review.NewStore())
	assert.Equal(t, `{"name":"A","sku":"X-100"}`, out.JSON())
}

func TestGenerateNonObjectPassthrough(t *testing.T) {
	v := document.MustParse(`[1,2,3]`)
	out := merge.Generate(document.Null(), v, nil, review.NewStore())
	assert.Equal(t, `[1,2,3]`, out.JSON())
}

func TestGenerateRoundTrip(t *testing.T) {
	original := document.MustParse(`{"@type":"Product","name":"Desk Lamp","offers":{"price":49.90,"priceCurrency":"EUR"},"images":["a.jpg"]}`)
	tree := differ.New().Compare(original, original)

	out := merge.Generate(original, original, tree, review.NewStore())
	assert.True(t, document.Equal(out, original))
	assert.Equal(t, original.JSON(), out.JSON(), "key order preserved")
}

func TestGenerateIdempotence(t *testing.T) {
	original := document.MustParse(`{"name":"A","price":10,"offers":{"price":10}}`)
	enriched := document.MustParse(`{"name":"A","price":12,"color":"red","offers":{"price":11,"availability":"InStock"}}`)

	d := differ.New()
	tree := d.Compare(original, enriched)
	store := review.NewStore()
	for _, path := range review.CollectPending(tree, store) {
		store.Set(path, review.StateApproved)
	}

	out := merge.Generate(original, enriched, tree, store)

	// Re-diffing the approved output against the enriched document shows
	// nothing left to review.
	rediff := d.Compare(enriched, out)
	require.True(t, review.ExportReady(rediff, review.NewStore()))
	assert.False(t, rediff.Summary().Changed())
}
