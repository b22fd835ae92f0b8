package radix

import "slices"

// Search walks the subtree rooted at n, consuming word prefix by prefix,
// and returns the node at which the word ends. A word that ends in the
// middle of an edge, or leaves the tree entirely, yields nil. The returned
// node does not necessarily terminate a key; see TerminalValue.
func (n *Node[V]) Search(word string) *Node[V] {
	node, remaining := n, word
	for len(remaining) > 0 {
		common, existing, child := node.findCommonPrefixChild(remaining)
		if child == nil || common != existing {
			return nil
		}
		remaining = remaining[len(common):]
		node = child
	}
	return node
}

// Completions returns the set of immediate next completions for query,
// sorted lexically.
//
// The walk descends as far as shared prefixes allow. A query that stops
// short of the reached node's key completes deterministically to that one
// key. A query consumed exactly at a node completes to the full keys of the
// node's immediate children, each representing one divergent continuation.
// A query sharing nothing with the tree has no completions.
func (n *Node[V]) Completions(query string) []string {
	remaining := query
	common, _, child := n.findCommonPrefixChild(remaining)
	if child == nil {
		if len(query) == 0 {
			return n.childKeys()
		}
		return []string{}
	}
	last := child
	for child != nil {
		remaining = remaining[len(common):]
		last = child
		common, _, child = last.findCommonPrefixChild(remaining)
	}
	if len(query) < len(last.Key()) {
		return []string{last.Key()}
	}
	return last.childKeys()
}

// findCommonPrefixChild scans the children for the one sharing a non-empty
// leading symbol run with key. The compression invariant guarantees at most
// one child can match, so map iteration order does not matter.
func (n *Node[V]) findCommonPrefixChild(key string) (common, existing string, child *Node[V]) {
	for prefix, c := range n.children {
		run := commonPrefix(key, prefix)
		if run != "" {
			return run, prefix, c
		}
	}
	return "", "", nil
}

// childKeys returns the full keys of all immediate children, sorted.
func (n *Node[V]) childKeys() []string {
	keys := make([]string, 0, len(n.children))
	for _, c := range n.children {
		keys = append(keys, c.Key())
	}
	slices.Sort(keys)
	return keys
}

// commonPrefix returns the longest common leading symbol run of a and b.
func commonPrefix(a, b string) string {
	limit := min(len(a), len(b))
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}
	return a[:i]
}
