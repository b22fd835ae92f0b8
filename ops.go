package patrix

/*
BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/

import (
	"slices"

	"github.com/martinberoiz/patrix/radix"
)

// Clone returns a deep copy of the tree, with identical content and ledger
// order. Values are copied by assignment.
func (t *Tree[V]) Clone() *Tree[V] {
	out := &Tree[V]{root: radix.NewRoot[V]()}
	for k, v := range t.Items() {
		err := out.Insert(k, v)
		assert(err == nil, "clone re-insert of a valid key cannot fail")
	}
	return out
}

// Union returns a new tree holding the key/value pairs of both operands.
// On collision the value of other wins. The result ledger lists t's keys
// first, then other's new keys in other's order.
func (t *Tree[V]) Union(other *Tree[V]) *Tree[V] {
	out := t.Clone()
	out.Merge(other)
	return out
}

// Merge inserts all of other's pairs into t, in other's ledger order. On
// collision the value of other wins.
func (t *Tree[V]) Merge(other *Tree[V]) {
	for k, v := range other.Items() {
		err := t.Insert(k, v)
		assert(err == nil, "merge re-insert of a valid key cannot fail")
	}
}

// UnionMap returns a new tree holding the union of t and a plain map. On
// collision the map value wins. New map keys are appended to the ledger in
// lexical order, maps being unordered.
func (t *Tree[V]) UnionMap(m map[string]V) *Tree[V] {
	out := t.Clone()
	out.MergeMap(m)
	return out
}

// MergeMap inserts all pairs of a plain map into t, new keys appended to
// the ledger in lexical order. On collision the map value wins.
func (t *Tree[V]) MergeMap(m map[string]V) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		err := t.Insert(k, m[k])
		assert(err == nil, "merge of a valid map key cannot fail")
	}
}

// AsMap returns the tree content as a plain Go map. For the map-on-the-left
// union forms, combine with AddToMap.
func (t *Tree[V]) AsMap() map[string]V {
	m := make(map[string]V, t.Len())
	t.AddToMap(m)
	return m
}

// AddToMap inserts all tree pairs into a plain map, overwriting colliding
// keys. This is the in-place union with the map as the mutated operand.
func (t *Tree[V]) AddToMap(m map[string]V) {
	for k, v := range t.Items() {
		m[k] = v
	}
}
