package ordtree

import (
	"fmt"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderMatchesSetNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	var nodes []*Node[string]
	for i := 0; i < 200; i++ {
		parent := RootID
		if i > 0 {
			parent = fmt.Sprintf("n%03d", (i-1)/3)
		}
		id := fmt.Sprintf("n%03d", i)
		nodes = append(nodes, node(id, parent, id))
	}
	sequential := Empty[string]()
	b := NewBuilder(Empty[string]())
	for _, n := range nodes {
		sequential = sequential.SetNode(n)
		b.Set(n)
	}
	built := b.Tree()
	if built.Len() != 200 || b.Len() != 200 {
		t.Fatalf("expected 200 nodes, have %d", built.Len())
	}
	want := sequential.DescendantIDs(RootID, Unlimited)
	if got := built.DescendantIDs(RootID, Unlimited); !slices.Equal(got, want) {
		t.Errorf("builder and SetNode disagree on tree structure")
	}
	if err := built.Check(); err != nil {
		t.Errorf("built tree does not validate: %v", err)
	}
}

func TestBuilderKeepsBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	base := chain()
	b := NewBuilder(base)
	if !b.Tree().Same(base) {
		t.Errorf("expected builder without updates to return its base")
	}
	b.Set(node("D", "C", "d")).Remove("B")
	result := b.Tree()
	if result.Has("B") || result.Has("D") {
		t.Errorf("expected B and its subtree to be removed, have %v",
			result.DescendantIDs(RootID, Unlimited))
	}
	if base.Len() != 3 || base.Has("D") {
		t.Errorf("base tree has been modified")
	}
	// builder continues from result
	b.Set(node("E", "A", "e"))
	next := b.Tree()
	if result.Has("E") || !next.Has("E") {
		t.Errorf("expected builder to start over from its last result")
	}
}
