package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/curator/pkg/document"
)

func TestParseRoundTrip(t *testing.T) {
	t.Run("preserves key order", func(t *testing.T) {
		src := `{"name":"Desk Lamp","price":49.90,"inStock":true,"tags":["led","dimmable"],"brand":{"@type":"Brand","name":"Lumio"}}`
		v, err := document.Parse([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, src, v.JSON())
	})

	t.Run("preserves number literals", func(t *testing.T) {
		v, err := document.Parse([]byte(`{"price":10.50,"gtin":"4006381333931","count":1e3}`))
		require.NoError(t, err)
		assert.Equal(t, `{"price":10.50,"gtin":"4006381333931","count":1e3}`, v.JSON())
	})

	t.Run("scalars", func(t *testing.T) {
		for _, src := range []string{`null`, `true`, `false`, `42`, `"hello"`, `[]`, `{}`} {
			v, err := document.Parse([]byte(src))
			require.NoError(t, err, src)
			assert.Equal(t, src, v.JSON())
		}
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		_, err := document.Parse([]byte(`{"a":1} {"b":2}`))
		assert.Error(t, err)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := document.Parse([]byte(`{"a":`))
		assert.Error(t, err)
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"identical objects", `{"a":1,"b":2}`, `{"a":1,"b":2}`, true},
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"number spellings", `10`, `10.0`, true},
		{"exponent spelling", `1000`, `1e3`, true},
		{"different numbers", `10`, `12`, false},
		{"string vs number", `"10"`, `10`, false},
		{"nested difference", `{"offers":{"price":10}}`, `{"offers":{"price":12}}`, false},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"array length", `[1,2]`, `[1,2,3]`, false},
		{"null vs false", `null`, `false`, false},
		{"missing key", `{"a":1}`, `{"a":1,"b":null}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := document.MustParse(tt.a)
			b := document.MustParse(tt.b)
			assert.Equal(t, tt.equal, document.Equal(a, b))
			assert.Equal(t, tt.equal, document.Equal(b, a))
		})
	}
}

func TestPath(t *testing.T) {
	t.Run("key join", func(t *testing.T) {
		p := document.Path{"images", "[0]"}
		assert.Equal(t, "images.[0]", p.Key())
	})

	t.Run("parse key", func(t *testing.T) {
		p := document.ParseKey("offers.price")
		assert.Equal(t, document.Path{"offers", "price"}, p)
		assert.Nil(t, document.ParseKey(""))
	})

	t.Run("child does not alias parent", func(t *testing.T) {
		base := document.Path{"a"}
		c1 := base.Child("b")
		c2 := base.Child("c")
		assert.Equal(t, "a.b", c1.Key())
		assert.Equal(t, "a.c", c2.Key())
	})

	t.Run("index segments", func(t *testing.T) {
		assert.Equal(t, "[3]", document.IndexSegment(3))

		i, ok := document.ParseIndexSegment("[7]")
		require.True(t, ok)
		assert.Equal(t, 7, i)

		for _, seg := range []string{"name", "[]", "[x]", "[-1]", "7]"} {
			_, ok := document.ParseIndexSegment(seg)
			assert.False(t, ok, seg)
		}
	})
}

func TestGetAt(t *testing.T) {
	doc := document.MustParse(`{"offers":{"price":12},"images":["a.jpg","b.jpg"]}`)

	v, ok := document.GetAt(doc, document.ParseKey("offers.price"))
	require.True(t, ok)
	assert.True(t, document.Equal(v, document.MustParse(`12`)))

	v, ok = document.GetAt(doc, document.ParseKey("images.[1]"))
	require.True(t, ok)
	assert.Equal(t, "b.jpg", v.StringValue())

	_, ok = document.GetAt(doc, document.ParseKey("offers.currency"))
	assert.False(t, ok)

	_, ok = document.GetAt(doc, document.ParseKey("images.[9]"))
	assert.False(t, ok)
}

func TestSetAt(t *testing.T) {
	t.Run("replaces leaf without mutating input", func(t *testing.T) {
		doc := document.MustParse(`{"offers":{"price":10,"currency":"USD"}}`)
		out := document.SetAt(doc, document.ParseKey("offers.price"), document.MustParse(`12`))

		assert.Equal(t, `{"offers":{"price":12,"currency":"USD"}}`, out.JSON())
		assert.Equal(t, `{"offers":{"price":10,"currency":"USD"}}`, doc.JSON())
	})

	t.Run("creates intermediate objects", func(t *testing.T) {
		doc := document.MustParse(`{"name":"A"}`)
		out := document.SetAt(doc, document.ParseKey("brand.name"), document.String("Lumio"))
		assert.Equal(t, `{"name":"A","brand":{"name":"Lumio"}}`, out.JSON())
	})

	t.Run("sets array element", func(t *testing.T) {
		doc := document.MustParse(`{"images":["a.jpg","b.jpg"]}`)
		out := document.SetAt(doc, document.ParseKey("images.[1]"), document.String("c.jpg"))
		assert.Equal(t, `{"images":["a.jpg","c.jpg"]}`, out.JSON())
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		doc := document.MustParse(`{"images":["a.jpg"]}`)
		out := document.SetAt(doc, document.ParseKey("images.[5]"), document.String("x"))
		assert.Equal(t, doc.JSON(), out.JSON())
	})
}

func TestRemoveAt(t *testing.T) {
	t.Run("deletes object key", func(t *testing.T) {
		doc := document.MustParse(`{"name":"A","color":"red"}`)
		out := document.RemoveAt(doc, document.ParseKey("color"))
		assert.Equal(t, `{"name":"A"}`, out.JSON())
		assert.Equal(t, `{"name":"A","color":"red"}`, doc.JSON())
	})

	t.Run("removes array element", func(t *testing.T) {
		doc := document.MustParse(`{"images":["a.jpg","b.jpg","c.jpg"]}`)
		out := document.RemoveAt(doc, document.ParseKey("images.[1]"))
		assert.Equal(t, `{"images":["a.jpg","c.jpg"]}`, out.JSON())
	})

	t.Run("missing parent is a no-op", func(t *testing.T) {
		doc := document.MustParse(`{"name":"A"}`)
		out := document.RemoveAt(doc, document.ParseKey("offers.price"))
		assert.Equal(t, doc.JSON(), out.JSON())
	})

	t.Run("unparseable index is a no-op", func(t *testing.T) {
		doc := document.MustParse(`{"images":["a.jpg"]}`)
		out := document.RemoveAt(doc, document.ParseKey("images.first"))
		assert.Equal(t, doc.JSON(), out.JSON())
	})

	t.Run("nested removal", func(t *testing.T) {
		doc := document.MustParse(`{"offers":{"price":10,"currency":"USD"}}`)
		out := document.RemoveAt(doc, document.ParseKey("offers.currency"))
		assert.Equal(t, `{"offers":{"price":10}}`, out.JSON())
	})
}
