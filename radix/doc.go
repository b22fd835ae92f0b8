/*
Package radix implements the node engine for a compressed prefix tree
(radix tree, sometimes called a PATRICIA trie or compact prefix tree).

A radix tree stores string keys by sharing common prefixes among tree
edges. Unlike a plain character-trie, chains of single-child nodes are
compressed into one node carrying a multi-symbol prefix, so lookups and
insertions run in time proportional to the key length, not to the number
of stored keys.

The package deals with the structural algorithms only: edge splitting on
insert, merging of redundant nodes on delete, exact-match search and
prefix completion. Container semantics (insertion-order iteration,
mapping contract, set-like union, dict interchange) live in the parent
package.

Value residency

A node holds a value exactly when some inserted key ends at it. Keys that
terminate where other keys continue are represented by an empty-prefix
leaf child of the branching node; internal nodes never carry values. This
convention keeps the physical tree shape independent of insertion order.
*/
package radix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
