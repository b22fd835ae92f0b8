package radix

// ValueKey is the reserved key under which AsDict stores a node's value.
// It must not collide with a real prefix fragment; a symbol alphabet that
// can legally produce this literal string is a caller constraint.
const ValueKey = "__value__"

// Height returns the longest path from this node to a leaf, counting both
// endpoints. A leaf has height 1.
func (n *Node[V]) Height() int {
	if len(n.children) == 0 {
		return 1
	}
	deepest := 0
	for _, c := range n.children {
		if h := c.Height(); h > deepest {
			deepest = h
		}
	}
	return 1 + deepest
}

// Size returns the number of nodes in the subtree, including this node.
func (n *Node[V]) Size() int {
	total := 1
	for _, c := range n.children {
		total += c.Size()
	}
	return total
}

// TotalChars returns the sum of prefix lengths over the subtree. Compared
// with the summed length of all inserted keys this measures the compression
// gained by shared prefixes.
func (n *Node[V]) TotalChars() int {
	total := len(n.prefix)
	for _, c := range n.children {
		total += c.TotalChars()
	}
	return total
}

// AsDict converts the subtree below this node into a nested map snapshot.
// Each child contributes one entry keyed by its prefix; with includeValues
// set, nodes terminating a key additionally carry a ValueKey entry.
func (n *Node[V]) AsDict(includeValues bool) map[string]any {
	d := make(map[string]any, len(n.children))
	for prefix, child := range n.children {
		cd := child.AsDict(includeValues)
		if includeValues && child.hasValue {
			cd[ValueKey] = child.value
		}
		d[prefix] = cd
	}
	return d
}
