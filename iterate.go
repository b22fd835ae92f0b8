package patrix

/*
BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/

import "iter"

// Keys returns an iterator over all keys in first-insertion order.
//
// Note that insertion order is a property of the ledger, not of the tree
// shape: the physical node layout depends only on the key set, while
// iteration reflects the history of inserts.
func (t *Tree[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range t.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in first-insertion key order.
func (t *Tree[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range t.order {
			v, err := t.Value(k)
			assert(err == nil, "ledger key missing from tree")
			if !yield(v) {
				return
			}
		}
	}
}

// Items returns an iterator over all key/value pairs in first-insertion
// order.
func (t *Tree[V]) Items() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range t.order {
			v, err := t.Value(k)
			assert(err == nil, "ledger key missing from tree")
			if !yield(k, v) {
				return
			}
		}
	}
}
