package radix

import (
	"slices"
	"testing"
)

func TestSearchFindsTerminals(t *testing.T) {
	root := buildNodes(t, "computer", "computing", "compute", "screen")
	for key, want := range map[string]int{
		"computer":  1,
		"computing": 2,
		"compute":   3,
		"screen":    4,
	} {
		node := root.Search(key)
		if node == nil {
			t.Fatalf("Search(%q) = nil", key)
		}
		if v, ok := node.TerminalValue(); !ok || v != want {
			t.Fatalf("Search(%q) terminal value = %v/%v, want %d/true", key, v, ok, want)
		}
	}
}

func TestSearchStopsOnNodeBoundariesOnly(t *testing.T) {
	root := buildNodes(t, "computer", "computing", "compute")
	if node := root.Search("comput"); node == nil {
		t.Fatalf("Search(comput) = nil, want the shared branch node")
	} else if _, ok := node.TerminalValue(); ok {
		t.Fatalf("branch node must not terminate a key")
	}
	// "compu" ends mid-edge and therefore finds no node.
	if node := root.Search("compu"); node != nil {
		t.Fatalf("Search(compu) = %v, want nil", node.Key())
	}
	if node := root.Search("computers"); node != nil {
		t.Fatalf("Search(computers) = %v, want nil", node.Key())
	}
	if node := root.Search("zebra"); node != nil {
		t.Fatalf("Search(zebra) = %v, want nil", node.Key())
	}
}

func TestCompletions(t *testing.T) {
	root := buildNodes(t, "computer", "computing", "compute", "screen")
	cases := []struct {
		query string
		want  []string
	}{
		{"comp", []string{"comput"}},
		{"comput", []string{"compute", "computing"}},
		{"compute", []string{"compute", "computer"}},
		{"computer", []string{}},
		{"computing", []string{}},
		{"s", []string{"screen"}},
		{"screen", []string{}},
		{"a", []string{}},
		{"computerized", []string{}},
		{"", []string{"comput", "screen"}},
	}
	for _, c := range cases {
		if have := root.Completions(c.query); !slices.Equal(have, c.want) {
			t.Errorf("Completions(%q) = %v, want %v", c.query, have, c.want)
		}
	}
}

func TestCompletionsOnEmptyTree(t *testing.T) {
	root := NewRoot[int]()
	if have := root.Completions(""); len(have) != 0 {
		t.Fatalf("Completions on empty tree = %v, want none", have)
	}
	if have := root.Completions("x"); len(have) != 0 {
		t.Fatalf("Completions on empty tree = %v, want none", have)
	}
}

func TestCommonPrefix(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"computer", "computing", "comput"},
		{"computer", "computer", "computer"},
		{"computer", "com", "com"},
		{"computer", "zebra", ""},
		{"", "computer", ""},
	}
	for _, c := range cases {
		if have := commonPrefix(c.a, c.b); have != c.want {
			t.Errorf("commonPrefix(%q, %q) = %q, want %q", c.a, c.b, have, c.want)
		}
	}
}
