// Package merge reconciles an enriched document with the reviewer's
// decisions into the final exportable document.
package merge

import (
	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/review"
)

// Generate produces the final document from the enriched document, the diff
// tree, and the recorded decisions. It is pure: neither input document is
// mutated, and the result preserves the enriched document's key ordering.
//
// Per-key semantics:
//   - no diff node: the key appeared after the diff snapshot (an edit), so
//     the enriched value is copied verbatim
//   - new: included unless declined; declined keys are omitted entirely
//   - modified: declined reverts the whole subtree to the original value;
//     otherwise the enriched value wins, recursing into object children so
//     sibling decisions stay independent
//   - unchanged: copied through, recursing into object children
//
// A declined decision stored against a composite path has no merge effect;
// only leaf decisions steer reconciliation.
// Reverts use the original values the diff tree recorded at comparison
// time; the original argument itself is not consulted.
func Generate(original, enriched document.Value, tree *differ.Tree, store *review.Store) document.Value {
	return generate(enriched, tree, store, nil)
}

func generate(enriched document.Value, tree *differ.Tree, store *review.Store, prefix document.Path) document.Value {
	obj := enriched.ObjectRef()
	if obj == nil {
		return enriched
	}

	out := document.NewObject()
	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)
		path := prefix.Child(key)

		node, ok := tree.Get(key)
		if !ok {
			out.Set(key, value)
			continue
		}

		switch node.Kind {
		case differ.KindNew:
			if store.Get(path.Key()) == review.StateDeclined {
				continue
			}
			if node.Children != nil {
				out.Set(key, generate(value, node.Children, store, path))
			} else {
				out.Set(key, value)
			}

		case differ.KindModified:
			if node.Children != nil {
				// Composites always recurse; a declined stored against a
				// composite path carries no merge weight.
				out.Set(key, generate(value, node.Children, store, path))
				continue
			}
			if store.Get(path.Key()) == review.StateDeclined {
				if node.Original != nil {
					out.Set(key, *node.Original)
				}
				continue
			}
			out.Set(key, value)

		case differ.KindUnchanged:
			if node.Children != nil {
				out.Set(key, generate(value, node.Children, store, path))
			} else {
				out.Set(key, value)
			}
		}
	}

	return document.ObjectValue(out)
}
