package patrix

/*
BSD 3-Clause License

Copyright (c) 2026, Martin Beroiz

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"slices"

	"github.com/martinberoiz/patrix/radix"
)

// ValueKey is the reserved key carrying node values in the nested-map
// interchange format of AsDict and FromDict.
const ValueKey = radix.ValueKey

// AsDict converts the tree into a nested-map snapshot of its physical
// shape. Every node contributes one level keyed by its prefix; when
// includeValues is set, nodes terminating a key carry an extra ValueKey
// entry. With includeValues unset the snapshot is purely structural.
//
// The snapshot is order-agnostic: it captures the key set and values but
// not the insertion ledger.
func (t *Tree[V]) AsDict(includeValues bool) map[string]any {
	return t.root.AsDict(includeValues)
}

// FromDict reconstructs a tree from a nested-map snapshot, the inverse of
// AsDict. Full keys are recovered by concatenating nested prefixes;
// ValueKey entries become the stored values. A leaf level without a
// ValueKey entry is taken as a bare key and receives the zero value of V
// as presence marker, so structural snapshots round-trip too.
//
// Since the snapshot carries no ledger, insertion order is re-derived by a
// fixed convention: depth-first over the nesting with siblings visited in
// lexical prefix order.
func FromDict[V any](d map[string]any) (*Tree[V], error) {
	t := &Tree[V]{root: radix.NewRoot[V]()}
	if err := insertDictLevel(t, "", d); err != nil {
		return nil, err
	}
	return t, nil
}

func insertDictLevel[V any](t *Tree[V], base string, d map[string]any) error {
	prefixes := make([]string, 0, len(d))
	for k := range d {
		if k == ValueKey {
			continue
		}
		prefixes = append(prefixes, k)
	}
	slices.Sort(prefixes)
	for _, prefix := range prefixes {
		child, ok := d[prefix].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: entry %q is not a nested map", ErrMalformedDict, base+prefix)
		}
		full := base + prefix
		if raw, hasValue := child[ValueKey]; hasValue {
			v, ok := raw.(V)
			if !ok {
				return fmt.Errorf("%w: value under %q has unexpected type %T", ErrMalformedDict, full, raw)
			}
			if err := t.Insert(full, v); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedDict, err)
			}
		} else if len(child) == 0 {
			var marker V
			if err := t.Insert(full, marker); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedDict, err)
			}
		}
		if err := insertDictLevel(t, full, child); err != nil {
			return err
		}
	}
	return nil
}
