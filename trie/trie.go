// Package trie implements a plain, uncompressed prefix tree.
//
// Every edge carries exactly one symbol, so a key of n symbols occupies n
// nodes regardless of sharing. The type is the degenerate simplification of
// the radix tree in package radix, with prefix compression disabled: no
// edge ever splits or merges. It trades memory for very simple structure
// and is mostly useful as a reference and for small alphabets.
package trie

import (
	"fmt"

	"github.com/martinberoiz/patrix"
	"github.com/martinberoiz/patrix/radix"
)

// Node is one node of an uncompressed trie, reached by a single-symbol
// edge from its parent.
type Node[V any] struct {
	sym      byte
	value    V
	hasValue bool
	children map[byte]*Node[V]
	parent   *Node[V]
}

// Trie stores key/value pairs in an uncompressed prefix tree.
type Trie[V any] struct {
	root *Node[V]
}

// New creates a trie from key/value pairs, inserted eagerly in order.
// Construction fails on the first invalid (empty) key.
func New[V any](pairs ...patrix.Pair[V]) (*Trie[V], error) {
	t := &Trie[V]{root: newNode[V](0, nil)}
	for _, p := range pairs {
		if err := t.Insert(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func newNode[V any](sym byte, parent *Node[V]) *Node[V] {
	return &Node[V]{
		sym:      sym,
		children: make(map[byte]*Node[V]),
		parent:   parent,
	}
}

// Insert adds or overwrites a key, creating one node per symbol along the
// path.
func (t *Trie[V]) Insert(key string, value V) error {
	if key == "" {
		return fmt.Errorf("%w: key must not be empty", radix.ErrInvalidKey)
	}
	node := t.root
	for i := 0; i < len(key); i++ {
		sym := key[i]
		child, ok := node.children[sym]
		if !ok {
			child = newNode(sym, node)
			node.children[sym] = child
		}
		node = child
	}
	node.value = value
	node.hasValue = true
	return nil
}

// Search returns the node at which word ends, or nil if the word leaves the
// trie. The node does not necessarily terminate a key; check Value.
func (t *Trie[V]) Search(word string) (*Node[V], error) {
	if word == "" {
		return nil, fmt.Errorf("%w: word must not be empty", radix.ErrInvalidKey)
	}
	node := t.root
	for i := 0; i < len(word); i++ {
		child, ok := node.children[word[i]]
		if !ok {
			return nil, nil
		}
		node = child
	}
	return node, nil
}

// Contains reports whether some inserted key equals key exactly.
func (t *Trie[V]) Contains(key string) bool {
	node, err := t.Search(key)
	return err == nil && node != nil && node.hasValue
}

// AsDict converts the trie into a nested-map snapshot of its structure,
// one level per symbol. Values are not part of the snapshot.
func (t *Trie[V]) AsDict() map[string]any {
	return t.root.asDict()
}

// Value returns the value terminating at this node, if any.
func (n *Node[V]) Value() (V, bool) {
	return n.value, n.hasValue
}

// Children returns the children mapping, keyed by edge symbol. The map is
// owned by the node and must not be mutated by callers.
func (n *Node[V]) Children() map[byte]*Node[V] {
	return n.children
}

// Key returns the full key from the root down to this node.
func (n *Node[V]) Key() string {
	if n.parent == nil {
		return ""
	}
	return n.parent.Key() + string(n.sym)
}

func (n *Node[V]) asDict() map[string]any {
	d := make(map[string]any, len(n.children))
	for sym, child := range n.children {
		d[string(sym)] = child.asDict()
	}
	return d
}
