package radix

// Node is one node of a radix tree.
//
// Every node contributes a prefix fragment; the full key of a node is the
// concatenation of all prefixes on the path from the root. Children are
// stored under their full prefix text and are mutually prefix-free: no two
// distinct children of a node share a leading symbol.
//
// The parent link is a non-owning back-reference used for upward queries
// (key reconstruction, sibling lookup, merge propagation on delete). A node
// is owned exclusively by its parent's children map.
type Node[V any] struct {
	prefix   string
	value    V
	hasValue bool
	children map[string]*Node[V]
	parent   *Node[V]
}

// NewRoot creates an empty tree root. The root carries an empty prefix and
// never holds a value.
func NewRoot[V any]() *Node[V] {
	return &Node[V]{children: make(map[string]*Node[V])}
}

func newLeaf[V any](prefix string, value V, parent *Node[V]) *Node[V] {
	return &Node[V]{
		prefix:   prefix,
		value:    value,
		hasValue: true,
		children: make(map[string]*Node[V]),
		parent:   parent,
	}
}

// Prefix returns the prefix fragment this node contributes.
func (n *Node[V]) Prefix() string {
	return n.prefix
}

// Parent returns the owning node, or nil for the root.
func (n *Node[V]) Parent() *Node[V] {
	return n.parent
}

// Value returns the value terminating at this node, if any.
//
// Value inspects this node only; see TerminalValue for the lookup that
// callers usually want after a Search.
func (n *Node[V]) Value() (V, bool) {
	return n.value, n.hasValue
}

// TerminalValue returns the value of the key ending at this node's position.
//
// For leaf nodes this is the node value. For internal nodes the value, if
// present, lives in an empty-prefix leaf child.
func (n *Node[V]) TerminalValue() (V, bool) {
	if n.hasValue {
		return n.value, true
	}
	if t, ok := n.children[""]; ok && t.hasValue {
		return t.value, true
	}
	var none V
	return none, false
}

// Children returns the children mapping, keyed by each child's full prefix.
// The map is owned by the node and must not be mutated by callers.
func (n *Node[V]) Children() map[string]*Node[V] {
	return n.children
}

// Siblings returns the parent's children mapping, including this node.
func (n *Node[V]) Siblings() map[string]*Node[V] {
	assert(n.parent != nil, "root node has no siblings")
	return n.parent.children
}

// IsRoot reports whether this node is the tree root.
func (n *Node[V]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether this node has no children.
func (n *Node[V]) IsLeaf() bool {
	return len(n.children) == 0
}

// Key returns the full key from the root down to this node, i.e. the
// concatenation of all prefixes on the path.
func (n *Node[V]) Key() string {
	if n.parent == nil {
		return n.prefix
	}
	return n.parent.Key() + n.prefix
}
