package patrix

/*
BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/martinberoiz/patrix/radix"
)

// Pair is one key/value element for tree construction.
type Pair[V any] struct {
	Key   string
	Value V
}

// Tree is a mapping container from string keys to values, backed by a radix
// tree and augmented with an insertion-order ledger.
//
// The ledger records first-insertion order of live keys and drives all
// iteration; it is deliberately independent of the compressed tree shape,
// which reorganizes itself under mutation. Re-inserting an existing key
// keeps its ledger position, deleting a key removes it.
//
// A tree created by
//
//	patrix.New[int]()
//
// is valid and behaves like an empty map. Operations run in time
// proportional to the key length, except ledger removal on Pop/Delete,
// which is linear in the number of keys.
type Tree[V any] struct {
	root  *radix.Node[V]
	order []string // first-insertion order of live keys
}

// New creates a tree from key/value pairs, inserted eagerly in order.
// Construction fails on the first invalid (empty) key.
func New[V any](pairs ...Pair[V]) (*Tree[V], error) {
	t := &Tree[V]{root: radix.NewRoot[V]()}
	for _, p := range pairs {
		if err := t.Insert(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromKeys creates a tree from bare keys, each mapped to a true presence
// marker.
func FromKeys(keys ...string) (*Tree[bool], error) {
	t := &Tree[bool]{root: radix.NewRoot[bool]()}
	for _, key := range keys {
		if err := t.Insert(key, true); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert adds or overwrites a key. New keys are appended to the insertion
// ledger; re-inserted keys keep their original position (last write wins
// for the value).
func (t *Tree[V]) Insert(key string, value V) error {
	isNew := !t.Contains(key)
	if err := t.root.Insert(key, value); err != nil {
		return err
	}
	if isNew {
		t.order = append(t.order, key)
	}
	return nil
}

// Value returns the value stored under key, or ErrKeyNotFound.
func (t *Tree[V]) Value(key string) (V, error) {
	var none V
	if key == "" {
		return none, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	node := t.root.Search(key)
	if node == nil {
		return none, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	v, ok := node.TerminalValue()
	if !ok {
		return none, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Get returns the value stored under key, or fallback if the key is absent.
func (t *Tree[V]) Get(key string, fallback V) V {
	v, err := t.Value(key)
	if err != nil {
		return fallback
	}
	return v
}

// Contains reports whether some inserted key equals key exactly. Prefixes
// of inserted keys do not count.
func (t *Tree[V]) Contains(key string) bool {
	_, err := t.Value(key)
	return err == nil
}

// Pop removes key and returns its value, or ErrKeyNotFound.
func (t *Tree[V]) Pop(key string) (V, error) {
	var none V
	v, err := t.root.Delete(key)
	if err != nil {
		return none, err
	}
	t.forget(key)
	return v, nil
}

// PopOr removes key and returns its value, or fallback if the key is
// absent.
func (t *Tree[V]) PopOr(key string, fallback V) V {
	v, err := t.Pop(key)
	if err != nil {
		return fallback
	}
	return v
}

// Delete removes key, or returns ErrKeyNotFound.
func (t *Tree[V]) Delete(key string) error {
	_, err := t.Pop(key)
	return err
}

// Len returns the number of keys in the tree.
func (t *Tree[V]) Len() int {
	return len(t.order)
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[V]) IsEmpty() bool {
	return len(t.order) == 0
}

// Completions returns the immediate next completions for query, sorted
// lexically. See radix.Node.Completions for the exact contract.
func (t *Tree[V]) Completions(query string) []string {
	return t.root.Completions(query)
}

// Height returns the height of the tree, excluding the root node. The empty
// tree has height 0.
func (t *Tree[V]) Height() int {
	return t.root.Height() - 1
}

// Size returns the number of nodes in the tree, including the root.
func (t *Tree[V]) Size() int {
	return t.root.Size()
}

// TotalChars returns the total number of symbols stored in all node
// prefixes. Compare with the summed length of all keys for the compression
// rate.
func (t *Tree[V]) TotalChars() int {
	return t.root.TotalChars()
}

// Root exposes the root node of the underlying radix tree, for structural
// inspection and invariant checking. Mutating the node graph directly
// leaves the ledger behind; use the tree operations instead.
func (t *Tree[V]) Root() *radix.Node[V] {
	return t.root
}

// forget drops key from the insertion ledger.
func (t *Tree[V]) forget(key string) {
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
	assert(false, "deleted key missing from insertion ledger")
}
