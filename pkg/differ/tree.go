// Package differ compares an original JSON document against its AI-enriched
// version and produces a diff tree classifying every object key as new,
// modified, or unchanged.
package differ

import (
	"fmt"
	"strings"

	"github.com/agentstation/curator/pkg/document"
)

// Kind classifies a diff node.
type Kind string

const (
	// KindNew indicates the key exists only in the enriched document.
	KindNew Kind = "new"
	// KindModified indicates the key exists in both documents with
	// differing values, directly or in a descendant.
	KindModified Kind = "modified"
	// KindUnchanged indicates the key holds equal values in both documents.
	KindUnchanged Kind = "unchanged"
)

// Node is the comparison result for a single object key.
type Node struct {
	// Kind classifies the change.
	Kind Kind

	// Enriched is the full value on the enriched side.
	Enriched document.Value

	// Original is the full value on the original side, or nil for KindNew.
	Original *document.Value

	// Children holds nested results. It is non-nil only when the enriched
	// value is a non-array object compared structurally against an object
	// on the original side.
	Children *Tree
}

// Leaf reports whether the node has no nested results. Only leaves carry
// reviewable decisions; composite nodes aggregate their descendants.
func (n *Node) Leaf() bool {
	return n.Children == nil
}

// Tree maps object keys to diff nodes, preserving the enriched document's
// key order. Keys present only in the original document have no node:
// the diff is additive, deletions are invisible.
type Tree struct {
	keys  []string
	nodes map[string]*Node
}

func newTree() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

func (t *Tree) add(key string, node *Node) {
	if _, ok := t.nodes[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.nodes[key] = node
}

// Get returns the node for key.
func (t *Tree) Get(key string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.nodes[key]
	return n, ok
}

// Keys returns the keys in enriched-document order. The slice is a copy.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Lookup resolves a field path against the tree, descending child trees.
// Array segments never resolve: array elements are not tree nodes.
func (t *Tree) Lookup(path document.Path) (*Node, bool) {
	if t == nil || len(path) == 0 {
		return nil, false
	}
	node, ok := t.Get(path[0])
	if !ok {
		return nil, false
	}
	for _, seg := range path[1:] {
		node, ok = node.Children.Get(seg)
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Summary holds leaf counts per change kind.
type Summary struct {
	New       int
	Modified  int
	Unchanged int
}

// Total returns the number of leaves counted.
func (s Summary) Total() int {
	return s.New + s.Modified + s.Unchanged
}

// Changed reports whether any leaf is new or modified.
func (s Summary) Changed() bool {
	return s.New+s.Modified > 0
}

// Summary counts the tree's leaves by kind.
func (t *Tree) Summary() Summary {
	var s Summary
	t.walkLeaves(nil, func(_ document.Path, node *Node) {
		switch node.Kind {
		case KindNew:
			s.New++
		case KindModified:
			s.Modified++
		case KindUnchanged:
			s.Unchanged++
		}
	})
	return s
}

// WalkLeaves visits every leaf node in enriched-document order, passing the
// leaf's full path.
func (t *Tree) WalkLeaves(fn func(path document.Path, node *Node)) {
	t.walkLeaves(nil, fn)
}

func (t *Tree) walkLeaves(prefix document.Path, fn func(document.Path, *Node)) {
	if t == nil {
		return
	}
	for _, key := range t.keys {
		node := t.nodes[key]
		path := prefix.Child(key)
		if node.Leaf() {
			fn(path, node)
			continue
		}
		node.Children.walkLeaves(path, fn)
	}
}

// String returns a one-line human-readable summary of the diff.
func (t *Tree) String() string {
	s := t.Summary()
	if !s.Changed() {
		return "No changes detected"
	}

	var parts []string
	if s.New > 0 {
		parts = append(parts, fmt.Sprintf("%d new", s.New))
	}
	if s.Modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", s.Modified))
	}
	if s.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.Unchanged))
	}
	return fmt.Sprintf("Diff: %s (%d fields)", strings.Join(parts, ", "), s.Total())
}

// Print outputs a detailed, human-readable view of every changed leaf.
func (t *Tree) Print() {
	fmt.Println(t.String())

	t.walkLeaves(nil, func(path document.Path, node *Node) {
		switch node.Kind {
		case KindNew:
			fmt.Printf("  + %s: %s\n", path.Key(), node.Enriched.JSON())
		case KindModified:
			fmt.Printf("  ~ %s: %s → %s\n", path.Key(), node.Original.JSON(), node.Enriched.JSON())
		}
	})
}
