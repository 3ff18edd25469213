package review

import (
	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
)

// Effective is the derived review status of a diff node, used by the
// presentation layer to color composite nodes. It is a read-only view:
// deriving it never writes to the store, and it has no merge semantics.
type Effective string

const (
	// EffectiveApproved means every leaf descendant is stored approved.
	EffectiveApproved Effective = "approved"
	// EffectiveDeclined means the node's own stored state is declined and
	// it is not fully approved.
	EffectiveDeclined Effective = "declined"
	// EffectiveMixed covers everything else: pending leaves or a mix of
	// decisions.
	EffectiveMixed Effective = "mixed"
)

// EffectiveState derives the review status of the node at path.
// For a leaf, the stored state maps directly (pending reads as mixed).
func EffectiveState(node *differ.Node, path document.Path, store *Store) Effective {
	if node.Leaf() {
		switch store.Get(path.Key()) {
		case StateApproved:
			return EffectiveApproved
		case StateDeclined:
			return EffectiveDeclined
		}
		return EffectiveMixed
	}

	leaves := 0
	approved := 0
	node.Children.WalkLeaves(func(leafPath document.Path, _ *differ.Node) {
		leaves++
		full := append(append(document.Path{}, path...), leafPath...)
		if store.Get(full.Key()) == StateApproved {
			approved++
		}
	})

	if leaves > 0 && approved == leaves {
		return EffectiveApproved
	}
	if store.Get(path.Key()) == StateDeclined {
		return EffectiveDeclined
	}
	return EffectiveMixed
}
