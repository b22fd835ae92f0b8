/*
Package patrix offers an autocomplete-oriented mapping container backed by a
radix tree.

Radix trees

A radix tree (compressed trie, compact prefix tree) stores string keys by
sharing common prefixes along tree edges, compressing single-child chains
into one node. This keeps memory proportional to the distinct text stored
rather than to the number of keys, and keeps lookup, insertion and deletion
proportional to key length.

From Wikipedia:
In computer science, a radix tree is a data structure that represents a
space-optimized trie (prefix tree) in which each node that is the only child
is merged with its parent. […] Unlike regular trees, edges can be labeled
with sequences of elements as well as single elements. This makes radix
trees much more efficient for small sets (especially if the strings are long)
and for sets of strings that share long prefixes.

The container behaves like an ordered map: keys iterate in first-insertion
order, independent of the compressed physical shape of the tree. On top of
the mapping contract it answers completion queries — given a partial word,
the set of immediate next completions:

	t, _ := patrix.FromKeys("computer", "computing", "compute", "screen")
	t.Completions("comput")   // [compute computing]
	t.Completions("s")        // [screen]

Trees convert to and from a nested-map interchange format (AsDict/FromDict)
and merge with each other or with plain Go maps (Union/Merge). The
structural algorithms live in the radix subpackage; an uncompressed trie
variant is available in the trie subpackage.

Keys are opaque byte sequences; the package performs no Unicode-aware
segmentation. The container is not safe for concurrent mutation: callers
embedding it in a concurrent host must serialize mutating operations with
respect to each other and to any traversal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/
package patrix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/martinberoiz/patrix/radix"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the patrix module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrMalformedDict signals that a nested-map representation handed to
// FromDict does not describe a valid tree.
const ErrMalformedDict = TreeError("malformed dict representation of tree")

// ErrInvalidKey is flagged whenever an empty key is passed to an operation
// requiring a key.
var ErrInvalidKey = radix.ErrInvalidKey

// ErrKeyNotFound is flagged by strict lookups and Pop when no inserted key
// matches.
var ErrKeyNotFound = radix.ErrKeyNotFound

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
