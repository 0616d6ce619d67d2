package ordtree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAncestorIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	tree := chain()
	if ids := tree.AncestorIDs("C"); !slices.Equal(ids, []string{"A", "B"}) {
		t.Errorf("expected ancestors of C to be [A B], are %v", ids)
	}
	if ids := tree.AncestorIDs("A"); len(ids) != 0 {
		t.Errorf("expected top-level node to have no ancestors, has %v", ids)
	}
	if ids := tree.AncestorIDs("missing"); len(ids) != 0 {
		t.Errorf("expected unknown node to have no ancestors, has %v", ids)
	}
	nodes := tree.Ancestors("C")
	if len(nodes) != 2 || nodes[0].Value != "a" || nodes[1].Value != "b" {
		t.Errorf("unexpected ancestor nodes of C: %v", nodes)
	}
}

func TestDescendantsDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	// root -> A -> (B, C)
	tree := Empty[string]().
		SetNode(node("A", RootID, "a")).
		SetNode(node("B", "A", "b")).
		SetNode(node("C", "A", "c"))
	if ids := tree.ChildrenIDs(RootID); !slices.Equal(ids, []string{"A"}) {
		t.Errorf("expected children of root to be [A], are %v", ids)
	}
	if ids := tree.DescendantIDs(RootID, 1); !slices.Equal(ids, []string{"A", "B", "C"}) {
		t.Errorf("expected descendants of root to be [A B C], are %v", ids)
	}
	if ids := tree.DescendantIDs(RootID, -1); !slices.Equal(ids, []string{"A", "B", "C"}) {
		t.Errorf("expected negative limit to be unlimited, have %v", ids)
	}
	if ids := tree.ChildrenIDs("missing"); len(ids) != 0 {
		t.Errorf("expected unknown node to have no children, has %v", ids)
	}
}

func TestDescendantsLevelOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	// A -> (B -> D -> F, C -> E)
	tree := Empty[string]().
		SetNode(node("A", RootID, "")).
		SetNode(node("B", "A", "")).
		SetNode(node("C", "A", "")).
		SetNode(node("D", "B", "")).
		SetNode(node("E", "C", "")).
		SetNode(node("F", "D", ""))
	want := []string{"B", "C", "D", "E", "F"}
	if ids := tree.DescendantIDs("A", Unlimited); !slices.Equal(ids, want) {
		t.Errorf("expected descendants of A to be %v, are %v", want, ids)
	}
	nodes := tree.Descendants("A", 1)
	if len(nodes) != 4 || nodes[3].ID != "E" {
		t.Errorf("unexpected descendants of A with limit 1: %v", nodes)
	}
	var walk []string
	var depths []int
	for depth, n := range tree.Walk() {
		walk = append(walk, n.ID)
		depths = append(depths, depth)
	}
	if !slices.Equal(walk, []string{"A", "B", "D", "F", "C", "E"}) {
		t.Errorf("unexpected pre-order walk: %v", walk)
	}
	if !slices.Equal(depths, []int{0, 1, 2, 3, 1, 2}) {
		t.Errorf("unexpected depths of walk: %v", depths)
	}
}

func TestScenarioChildrenListedBeforeInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	tree := Empty[string]().
		SetNode(node("root", RootID, "", "p1")).
		SetNode(node("p1", "root", ""))
	if ids := tree.DescendantIDs(RootID, Unlimited); !slices.Equal(ids, []string{"root", "p1"}) {
		t.Errorf("expected descendants [root p1], have %v", ids)
	}
	if ids := tree.AncestorIDs("p1"); !slices.Equal(ids, []string{"root"}) {
		t.Errorf("expected ancestors [root], have %v", ids)
	}
	r, _ := tree.Node("root")
	if !slices.Equal(r.Children, []string{"p1"}) {
		t.Errorf("expected p1 to be listed once, children are %v", r.Children)
	}
}

func TestUnresolvedIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	// a lists child x, which is never stored
	tree := Empty[string]().SetNode(node("a", RootID, "", "x", "b")).SetNode(node("b", "a", ""))
	if ids := tree.ChildrenIDs("a"); !slices.Equal(ids, []string{"x", "b"}) {
		t.Errorf("expected child ids [x b] as listed, have %v", ids)
	}
	if nodes := tree.Children("a"); len(nodes) != 1 || nodes[0].ID != "b" {
		t.Errorf("expected child nodes to skip unresolved x, have %v", nodes)
	}
	if ids := tree.DescendantIDs("x", Unlimited); len(ids) != 0 {
		t.Errorf("expected unresolved id to have no descendants, have %v", ids)
	}
	if nodes := tree.NodesOf([]string{"x", "b", "a"}); len(nodes) != 2 {
		t.Errorf("expected NodesOf to drop unknown ids, have %v", nodes)
	}
	// parent listed before the child is inserted
	tree = Empty[string]().SetNode(node("root", RootID, "", "p1"))
	if ids := tree.DescendantIDs(RootID, Unlimited); !slices.Equal(ids, []string{"root", "p1"}) {
		t.Errorf("expected descendants [root p1], have %v", ids)
	}
	if nodes := tree.Descendants(RootID, Unlimited); len(nodes) != 1 {
		t.Errorf("expected descendant nodes [root], have %v", nodes)
	}
}

func TestOrphanAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	// c's parent p is missing
	tree := Empty[string]().SetNode(node("c", "p", ""))
	if ids := tree.AncestorIDs("c"); !slices.Equal(ids, []string{"p"}) {
		t.Errorf("expected missing parent p to end the ancestors, have %v", ids)
	}
	if nodes := tree.Ancestors("c"); len(nodes) != 0 {
		t.Errorf("expected no ancestor nodes for orphan, have %v", nodes)
	}
	tree = tree.SetNode(node("d", "c", ""))
	if ids := tree.AncestorIDs("d"); !slices.Equal(ids, []string{"p", "c"}) {
		t.Errorf("expected ancestors [p c], have %v", ids)
	}
}

func TestWalksTerminateOnCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree")
	defer teardown()
	//
	// a and b are each other's parent; neither is reachable from the root
	tree := Empty[string]().SetNode(node("a", "b", "")).SetNode(node("b", "a", ""))
	tree = tree.SetNode(node("a", "b", "", "b"))
	if ids := tree.AncestorIDs("a"); !slices.Equal(ids, []string{"b"}) {
		t.Errorf("expected cyclic ancestors to stop, have %v", ids)
	}
	if ids := tree.DescendantIDs("a", Unlimited); !slices.Equal(ids, []string{"b"}) {
		t.Errorf("expected cyclic descendants to stop, have %v", ids)
	}
	if ids := tree.DescendantIDs(RootID, Unlimited); len(ids) != 0 {
		t.Errorf("expected cycle to be unreachable, have %v", ids)
	}
}
