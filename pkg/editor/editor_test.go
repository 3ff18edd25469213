package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/editor"
	"github.com/agentstation/curator/pkg/errors"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		before string
		input  string
		want   string
	}{
		{"number stays number", `10`, "12.5", `12.5`},
		{"number with spaces", `10`, " 42 ", `42`},
		{"number parse failure falls back to string", `10`, "twelve", `"twelve"`},
		{"bool true", `false`, "true", `true`},
		{"bool mixed case", `true`, "FALSE", `false`},
		{"bool parse failure falls back to string", `true`, "yes", `"yes"`},
		{"null literal", `null`, "null", `null`},
		{"null mixed case", `null`, "NULL", `null`},
		{"null other input is string", `null`, "something", `"something"`},
		{"string stays string", `"red"`, "blue", `"blue"`},
		{"string keeps numeric text", `"red"`, "42", `"42"`},
		{"array pre-edit coerces to string", `[1,2]`, "new text", `"new text"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := document.MustParse(tt.before)
			got := editor.Coerce(before, tt.input)
			assert.Equal(t, tt.want, got.JSON())
		})
	}
}

func TestEditorLifecycle(t *testing.T) {
	doc := document.MustParse(`{"name":"A","price":10}`)

	t.Run("commit writes coerced value", func(t *testing.T) {
		e := editor.New()
		current, _ := document.GetAt(doc, document.ParseKey("price"))
		e.Start(document.ParseKey("price"), current)
		e.Update("12")

		out, err := e.Commit(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"A","price":12}`, out.JSON())
		assert.Equal(t, `{"name":"A","price":10}`, doc.JSON(), "input snapshot untouched")
		assert.False(t, e.Active(), "cursor cleared on commit")
	})

	t.Run("commit without edit", func(t *testing.T) {
		e := editor.New()
		_, err := e.Commit(doc)
		assert.ErrorIs(t, err, errors.ErrNoActiveEdit)
	})

	t.Run("starting a new edit replaces the prior one", func(t *testing.T) {
		e := editor.New()
		e.Start(document.ParseKey("price"), document.MustParse(`10`))
		e.Update("99")
		e.Start(document.ParseKey("name"), document.String("A"))
		e.Update("B")

		out, err := e.Commit(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"B","price":10}`, out.JSON())
	})

	t.Run("cancel discards the edit", func(t *testing.T) {
		e := editor.New()
		e.Start(document.ParseKey("price"), document.MustParse(`10`))
		e.Cancel()
		assert.False(t, e.Active())
		_, err := e.Commit(doc)
		assert.ErrorIs(t, err, errors.ErrNoActiveEdit)
	})

	t.Run("initial input mirrors current value", func(t *testing.T) {
		e := editor.New()
		e.Start(document.ParseKey("price"), document.MustParse(`10`))
		input, ok := e.Input()
		require.True(t, ok)
		assert.Equal(t, "10", input)
	})

	t.Run("commit creates missing containers", func(t *testing.T) {
		e := editor.New()
		e.Start(document.ParseKey("brand.name"), document.Null())
		e.Update("Lumio")

		out, err := e.Commit(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"A","price":10,"brand":{"name":"Lumio"}}`, out.JSON())
	})
}

func TestRemove(t *testing.T) {
	t.Run("object key", func(t *testing.T) {
		doc := document.MustParse(`{"name":"A","color":"red"}`)
		out := editor.Remove(doc, document.ParseKey("color"))
		assert.Equal(t, `{"name":"A"}`, out.JSON())
	})

	t.Run("array element", func(t *testing.T) {
		doc := document.MustParse(`{"images":["a.jpg","b.jpg"]}`)
		out := editor.Remove(doc, document.ParseKey("images.[0]"))
		assert.Equal(t, `{"images":["b.jpg"]}`, out.JSON())
	})

	t.Run("missing parent no-op", func(t *testing.T) {
		doc := document.MustParse(`{"name":"A"}`)
		out := editor.Remove(doc, document.ParseKey("offers.price"))
		assert.Equal(t, doc.JSON(), out.JSON())
	})
}
