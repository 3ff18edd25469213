package review

import (
	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
)

// TypeKey is the schema.org type discriminator. It is machine-managed, so
// it is never surfaced for review regardless of its diff kind or state.
const TypeKey = "@type"

// CollectPending walks the diff tree and returns the field path keys of
// every changed leaf still awaiting a decision, in enriched-document order.
func CollectPending(tree *differ.Tree, store *Store) []string {
	return collectPending(tree, store, nil, []string{})
}

func collectPending(tree *differ.Tree, store *Store, prefix document.Path, acc []string) []string {
	for _, key := range tree.Keys() {
		if key == TypeKey {
			continue
		}
		node, _ := tree.Get(key)
		path := prefix.Child(key)

		// Composite nodes contribute nothing themselves; only their leaf
		// descendants carry decisions.
		if !node.Leaf() {
			acc = collectPending(node.Children, store, path, acc)
			continue
		}

		if node.Kind == differ.KindUnchanged {
			continue
		}
		if store.Get(path.Key()) == StatePending {
			acc = append(acc, path.Key())
		}
	}
	return acc
}

// ExportReady reports whether every changed leaf has been decided.
// It is true precisely when CollectPending returns nothing.
func ExportReady(tree *differ.Tree, store *Store) bool {
	return len(CollectPending(tree, store)) == 0
}
