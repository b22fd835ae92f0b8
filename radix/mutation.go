package radix

import "fmt"

// Insert adds key with value to the subtree rooted at n, splitting an
// existing edge if the key diverges in the middle of it. Re-inserting an
// existing key overwrites its value and leaves the structure unchanged.
func (n *Node[V]) Insert(key string, value V) error {
	if key == "" {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	n.insert(key, value)
	return nil
}

// insert dispatches on the relation between key and the (single) child
// sharing a prefix with it. Recursion consumes the matched prefix, so the
// suffix handed down may become empty; an empty suffix is represented by an
// empty-prefix terminal leaf created during split.
func (n *Node[V]) insert(key string, value V) {
	common, existing, child := n.findCommonPrefixChild(key)

	// No child shares a leading symbol: key becomes a fresh leaf.
	if child == nil {
		n.children[key] = newLeaf(key, value, n)
		return
	}

	// Exact match: overwrite, structure unchanged.
	if common == existing && common == key {
		child.setTerminal(value)
		return
	}

	// Key extends beyond the fully matched child prefix: descend.
	if common == existing {
		if child.hasValue && len(child.children) == 0 {
			child.demoteValue()
		}
		child.insert(key[len(common):], value)
		return
	}

	// Key and child prefix share a strict common run: split the edge. The
	// intermediate node holds the shared run and no value; the old child is
	// re-parented with its prefix truncated. When the key is fully consumed
	// by the shared run, its leaf gets an empty prefix.
	mid := &Node[V]{
		prefix:   common,
		children: make(map[string]*Node[V], 2),
		parent:   n,
	}
	n.children[common] = mid

	rest := existing[len(common):]
	child.prefix = rest
	child.parent = mid
	mid.children[rest] = child

	suffix := key[len(common):]
	mid.children[suffix] = newLeaf(suffix, value, mid)

	delete(n.children, existing)
}

// setTerminal stores value for the key ending exactly at this node. Values
// never reside on internal nodes; a branching node stores its terminal value
// in an empty-prefix leaf child.
func (n *Node[V]) setTerminal(value V) {
	if len(n.children) == 0 {
		n.value = value
		n.hasValue = true
		return
	}
	if t, ok := n.children[""]; ok {
		t.value = value
		t.hasValue = true
		return
	}
	n.children[""] = newLeaf("", value, n)
}

// demoteValue moves a leaf's value into an empty-prefix child, in
// preparation for the leaf gaining regular children.
func (n *Node[V]) demoteValue() {
	assert(n.hasValue && len(n.children) == 0, "demoteValue requires a valued leaf")
	n.children[""] = newLeaf("", n.value, n)
	var none V
	n.value = none
	n.hasValue = false
}

// Delete removes key from the subtree rooted at n and returns its value.
// Redundant structure left behind is collapsed: empty leaves are unlinked
// and value-less single-child nodes are merged with their child, the
// child's prefix folded into the node's.
func (n *Node[V]) Delete(key string) (V, error) {
	var none V
	if key == "" {
		return none, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	node := n.Search(key)
	if node == nil {
		return none, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	terminal := node
	if !terminal.hasValue {
		t, ok := node.children[""]
		if !ok || !t.hasValue {
			return none, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		terminal = t
	}
	removed := terminal.value
	terminal.value = none
	terminal.hasValue = false
	terminal.collapse()
	return removed, nil
}

// collapse removes redundant structure after a value has been cleared,
// walking upward. A value-less leaf is unlinked from its parent and the
// check repeats there; a value-less node with a single child is merged with
// that child. Propagation stops at the root or at any node that still holds
// a value or at least two children.
func (n *Node[V]) collapse() {
	node := n
	for node.parent != nil && !node.hasValue {
		if len(node.children) == 0 {
			parent := node.parent
			delete(parent.children, node.prefix)
			node.parent = nil
			node = parent
			continue
		}
		if len(node.children) == 1 {
			node.mergeWithOnlyChild()
		}
		return
	}
}

// mergeWithOnlyChild folds this node's sole child into the node itself:
// prefixes concatenate, the child's value and children replace the node's,
// and the parent's children entry is re-keyed to the combined prefix.
// Split and merge are shape-inverse operations.
func (n *Node[V]) mergeWithOnlyChild() {
	assert(len(n.children) == 1, "merge requires exactly one child")
	assert(n.parent != nil, "root node is never merged")
	var child *Node[V]
	for _, c := range n.children {
		child = c
	}
	delete(n.parent.children, n.prefix)
	n.prefix += child.prefix
	n.value = child.value
	n.hasValue = child.hasValue
	n.children = child.children
	for _, grandchild := range n.children {
		grandchild.parent = n
	}
	child.parent = nil
	n.parent.children[n.prefix] = n
}
