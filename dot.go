package patrix

/*
BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"slices"

	"github.com/martinberoiz/patrix/radix"
)

type nodeids[V any] struct {
	idTable map[*radix.Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*radix.Node[V]]int),
		max:     1,
	}
}

func (ids *nodeids[V]) alloc(node *radix.Node[V]) int {
	if id, ok := ids.idTable[node]; ok {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the physical structure of the tree in Graphviz DOT format
// (for debugging purposes). Nodes terminating a key are drawn as boxes,
// internal nodes as circles; edge order follows the sorted child prefixes.
func (t *Tree[V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[V]()
	nodelist, edgelist := "", ""
	var walk func(node *radix.Node[V])
	walk = func(node *radix.Node[V]) {
		id := ids.alloc(node)
		label := node.Prefix()
		if node.IsRoot() {
			label = "·"
		}
		if v, ok := node.Value(); ok {
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\\n%v\",shape=box,style=filled];\n", id, label, v)
		} else {
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",shape=circle,style=filled,fillcolor=\"#a3d7e4\"];\n", id, label)
		}
		for _, key := range sortedPrefixes(node) {
			child := node.Children()[key]
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(child))
			walk(child)
		}
	}
	walk(t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func sortedPrefixes[V any](node *radix.Node[V]) []string {
	keys := make([]string, 0, len(node.Children()))
	for k := range node.Children() {
		keys = append(keys, k)
	}
	// Stable output makes DOT dumps diffable.
	slices.Sort(keys)
	return keys
}
