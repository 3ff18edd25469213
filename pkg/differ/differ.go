package differ

import (
	"github.com/agentstation/curator/pkg/document"
)

// Differ computes diff trees between document versions.
type Differ interface {
	// Compare walks the enriched document's object keys and classifies
	// each against the original document.
	Compare(original, enriched document.Value) *Tree
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreKeys map[string]bool
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreKeys: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Compare is deterministic and side-effect free: the same document pair
// always yields the same tree, and neither input is mutated.
//
// Either side may be any JSON value. A side that is not an object is
// treated as an empty object, so the comparison never fails; it just
// reports every enriched key as new.
func (d *differ) Compare(original, enriched document.Value) *Tree {
	return d.compare(original.ObjectRef(), enriched.ObjectRef())
}

func (d *differ) compare(original, enriched *document.Object) *Tree {
	tree := newTree()

	// Deletions are invisible: keys present only in the original emit no
	// node, so iterating the enriched keys covers the whole tree.
	for _, key := range enriched.Keys() {
		if d.ignoreKeys[key] {
			continue
		}
		enrichedVal, _ := enriched.Get(key)

		originalVal, exists := original.Get(key)
		if !exists {
			tree.add(key, &Node{Kind: KindNew, Enriched: enrichedVal})
			continue
		}

		origCopy := originalVal
		node := &Node{Enriched: enrichedVal, Original: &origCopy}

		if enrichedVal.Kind() == document.KindObject && originalVal.Kind() == document.KindObject {
			// Structural recursion applies to object pairs only; arrays
			// and mixed-kind pairs fall through to whole-value equality.
			node.Children = d.compare(originalVal.ObjectRef(), enrichedVal.ObjectRef())
			node.Kind = KindUnchanged
			if childrenChanged(node.Children) {
				node.Kind = KindModified
			}
		} else if document.Equal(originalVal, enrichedVal) {
			node.Kind = KindUnchanged
		} else {
			node.Kind = KindModified
		}

		tree.add(key, node)
	}

	return tree
}

func childrenChanged(children *Tree) bool {
	for _, key := range children.keys {
		if children.nodes[key].Kind != KindUnchanged {
			return true
		}
	}
	return false
}
