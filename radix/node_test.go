package radix

import (
	"errors"
	"testing"
)

func TestKeyConcatenatesPrefixes(t *testing.T) {
	root := buildNodes(t, "computer", "computing", "compute")
	e := root.Children()["comput"].Children()["e"]
	if e.Key() != "compute" {
		t.Fatalf("Key() = %q, want %q", e.Key(), "compute")
	}
	if term := e.Children()[""]; term.Key() != "compute" {
		t.Fatalf("empty-prefix leaf Key() = %q, want %q", term.Key(), "compute")
	}
	if root.Key() != "" {
		t.Fatalf("root Key() = %q, want empty", root.Key())
	}
}

func TestNodePredicatesAndLinks(t *testing.T) {
	root := buildNodes(t, "computer", "computing")
	if !root.IsRoot() || root.Parent() != nil {
		t.Fatalf("root not recognized as root")
	}
	mid := root.Children()["comput"]
	if mid.IsRoot() || mid.IsLeaf() {
		t.Fatalf("branch node misclassified")
	}
	leaf := mid.Children()["er"]
	if !leaf.IsLeaf() || leaf.Parent() != mid {
		t.Fatalf("leaf node misclassified or mislinked")
	}
	sibs := leaf.Siblings()
	if len(sibs) != 2 || sibs["er"] != leaf || sibs["ing"] == nil {
		t.Fatalf("unexpected siblings: %v", sibs)
	}
}

func TestHeightSizeTotalChars(t *testing.T) {
	root := buildNodes(t, "computer", "computing", "compute")
	// root -> comput -> {e -> {"", r}, ing}
	if h := root.Height(); h != 4 {
		t.Fatalf("Height() = %d, want 4", h)
	}
	if s := root.Size(); s != 6 {
		t.Fatalf("Size() = %d, want 6", s)
	}
	if c := root.TotalChars(); c != 11 {
		t.Fatalf("TotalChars() = %d, want 11", c)
	}
	empty := NewRoot[int]()
	if empty.Height() != 1 || empty.Size() != 1 || empty.TotalChars() != 0 {
		t.Fatalf("empty root: height=%d size=%d chars=%d",
			empty.Height(), empty.Size(), empty.TotalChars())
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	root := buildNodes(t, "computer", "computing", "compute")

	// A valueless leaf violates the residency invariant.
	leaf := root.Children()["comput"].Children()["ing"]
	leaf.hasValue = false
	if err := root.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant for valueless leaf, got %v", err)
	}
	leaf.hasValue = true

	// A valued branch node violates it too.
	mid := root.Children()["comput"]
	mid.hasValue = true
	if err := root.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant for valued branch, got %v", err)
	}
	mid.hasValue = false

	// Children sharing a leading symbol violate compression.
	root.children["c"] = newLeaf("c", 9, root)
	if err := root.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant for prefix-sharing siblings, got %v", err)
	}
	delete(root.children, "c")

	if err := root.Check(); err != nil {
		t.Fatalf("restored tree should pass: %v", err)
	}
}
