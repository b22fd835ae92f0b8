package patrix

import (
	"reflect"
	"slices"
	"testing"
)

func TestClone(t *testing.T) {
	tree := vocabulary(t)
	clone := tree.Clone()
	if !reflect.DeepEqual(clone.AsDict(true), tree.AsDict(true)) {
		t.Fatalf("clone content differs: %v", clone.AsDict(true))
	}
	if !slices.Equal(slices.Collect(clone.Keys()), slices.Collect(tree.Keys())) {
		t.Fatalf("clone ledger differs")
	}
	// Mutating the clone must not leak into the original.
	if err := clone.Insert("screen", 9); err != nil {
		t.Fatal(err)
	}
	if tree.Contains("screen") {
		t.Errorf("clone mutation visible in the original")
	}
}

func TestUnionPrecedence(t *testing.T) {
	a, err := New(Pair[int]{"alpha", 1}, Pair[int]{"beta", 2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Pair[int]{"beta", 20}, Pair[int]{"gamma", 30})
	if err != nil {
		t.Fatal(err)
	}
	u := a.Union(b)
	want := map[string]int{"alpha": 1, "beta": 20, "gamma": 30}
	if !reflect.DeepEqual(u.AsMap(), want) {
		t.Errorf("Union = %v, want %v", u.AsMap(), want)
	}
	// Left operand's keys first, then the right operand's new keys.
	if keys := slices.Collect(u.Keys()); !slices.Equal(keys, []string{"alpha", "beta", "gamma"}) {
		t.Errorf("Union ledger = %v", keys)
	}
	// Union is non-destructive.
	if v, _ := a.Value("beta"); v != 2 {
		t.Errorf("left operand mutated by Union")
	}
	if b.Len() != 2 {
		t.Errorf("right operand mutated by Union")
	}
}

func TestMergeInPlace(t *testing.T) {
	a, _ := New(Pair[int]{"alpha", 1}, Pair[int]{"beta", 2})
	b, _ := New(Pair[int]{"beta", 20}, Pair[int]{"gamma", 30})
	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len() = %d after merge, want 3", a.Len())
	}
	if v, _ := a.Value("beta"); v != 20 {
		t.Errorf("merge precedence: beta = %d, want 20", v)
	}
}

func TestUnionMap(t *testing.T) {
	a, _ := New(Pair[int]{"alpha", 1}, Pair[int]{"beta", 2})
	u := a.UnionMap(map[string]int{"delta": 40, "beta": 20, "gamma": 30})
	want := map[string]int{"alpha": 1, "beta": 20, "gamma": 30, "delta": 40}
	if !reflect.DeepEqual(u.AsMap(), want) {
		t.Errorf("UnionMap = %v, want %v", u.AsMap(), want)
	}
	// Map keys are unordered, so new ones land in lexical order.
	if keys := slices.Collect(u.Keys()); !slices.Equal(keys, []string{"alpha", "beta", "delta", "gamma"}) {
		t.Errorf("UnionMap ledger = %v", keys)
	}
	if a.Len() != 2 {
		t.Errorf("left operand mutated by UnionMap")
	}
}

func TestAddToMap(t *testing.T) {
	tree, _ := New(Pair[int]{"beta", 2}, Pair[int]{"gamma", 3})
	m := map[string]int{"alpha": 1, "beta": -1}
	tree.AddToMap(m)
	want := map[string]int{"alpha": 1, "beta": 2, "gamma": 3}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("AddToMap = %v, want %v", m, want)
	}
}
