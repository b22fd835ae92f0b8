package radix

import "fmt"

// Check validates structural invariants of the subtree rooted at n.
//
// The checker is intentionally strict and meant for tests: it verifies the
// compression invariant (sibling prefixes are mutually prefix-free), the
// agreement of parent links with children-map entries, and value residency
// (values sit on leaves only, and every non-root leaf terminates a key).
func (n *Node[V]) Check() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if n.parent == nil {
		if n.prefix != "" {
			return fmt.Errorf("%w: root must have empty prefix, has %q", ErrInvariant, n.prefix)
		}
		if n.hasValue {
			return fmt.Errorf("%w: root must not hold a value", ErrInvariant)
		}
	}
	return n.checkNode(n.parent == nil)
}

func (n *Node[V]) checkNode(isRoot bool) error {
	if !isRoot {
		if n.prefix == "" && len(n.children) > 0 {
			return fmt.Errorf("%w: empty-prefix node %p must be a terminal leaf", ErrInvariant, n)
		}
		if n.hasValue && len(n.children) > 0 {
			return fmt.Errorf("%w: internal node %q holds a value", ErrInvariant, n.Key())
		}
		if !n.hasValue && len(n.children) == 0 {
			return fmt.Errorf("%w: leaf %q terminates no key", ErrInvariant, n.Key())
		}
		if !n.hasValue && len(n.children) == 1 {
			return fmt.Errorf("%w: value-less node %q has a single child and should be merged", ErrInvariant, n.Key())
		}
	}
	seen := make([]string, 0, len(n.children))
	for prefix, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: nil child under %q", ErrInvariant, prefix)
		}
		if child.prefix != prefix {
			return fmt.Errorf("%w: child keyed %q stores prefix %q", ErrInvariant, prefix, child.prefix)
		}
		if child.parent != n {
			return fmt.Errorf("%w: child %q has dangling parent link", ErrInvariant, prefix)
		}
		for _, other := range seen {
			if commonPrefix(prefix, other) != "" {
				return fmt.Errorf("%w: children %q and %q share a leading run", ErrInvariant, prefix, other)
			}
		}
		seen = append(seen, prefix)
		if err := child.checkNode(false); err != nil {
			return err
		}
	}
	return nil
}
