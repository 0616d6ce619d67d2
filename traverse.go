package ordtree

import (
	"iter"
	"math"
)

// Unlimited is a depth limit for descendant queries which does not restrict
// the depth of the walk.
const Unlimited = math.MaxInt

// AncestorIDs returns the ids of all ancestors of node id, starting with the
// top-level ancestor and ending with the immediate parent. RootID is never
// part of the result.
//
// The walk follows parent links upwards. A parent which is not stored in t is
// still listed, but ends the walk. Unknown ids have no ancestors.
func (t Tree[T]) AncestorIDs(id string) []string {
	node, ok := t.Node(id)
	if !ok {
		return []string{}
	}
	var chain []string
	seen := map[string]bool{id: true}
	for node != nil && node.Parent != RootID {
		if seen[node.Parent] {
			tracer().Errorf("ordtree: cycle in ancestors of %q at %q", id, node.Parent)
			break
		}
		seen[node.Parent] = true
		chain = append(chain, node.Parent)
		node, _ = t.Node(node.Parent)
	}
	ids := make([]string, len(chain))
	for i, a := range chain {
		ids[len(chain)-1-i] = a
	}
	return ids
}

// Ancestors returns the ancestor nodes of node id, ordered as by AncestorIDs.
// Ancestors which are not stored in t are left out.
func (t Tree[T]) Ancestors(id string) []*Node[T] {
	return t.NodesOf(t.AncestorIDs(id))
}

// DescendantIDs returns the ids of the descendants of node id, level by
// level: first the children of id, then the grandchildren, and so on.
// Siblings appear in the order of their parent's children.
//
// Parameter limit restricts the depth of the walk: a limit of 0 yields the
// immediate children only, 1 adds the grandchildren, etc. Use Unlimited for
// an unrestricted walk; negative limits are treated as Unlimited.
//
// Passing RootID walks the whole tree, starting with the top-level nodes in
// id order. Child ids are listed as given, even if they are not (yet) stored
// in t; such ids have no children.
func (t Tree[T]) DescendantIDs(id string, limit int) []string {
	if limit < 0 {
		limit = Unlimited
	}
	ids := []string{}
	seen := map[string]bool{id: true}
	level := t.childIDs(id)
	for depth := 0; len(level) > 0 && depth <= limit; depth++ {
		var next []string
		for _, c := range level {
			if seen[c] {
				tracer().Errorf("ordtree: node %q met twice below %q", c, id)
				continue
			}
			seen[c] = true
			ids = append(ids, c)
			next = append(next, t.childIDs(c)...)
		}
		level = next
	}
	return ids
}

// Descendants returns the descendant nodes of node id, ordered as by
// DescendantIDs. Child ids which are not stored in t are left out.
func (t Tree[T]) Descendants(id string, limit int) []*Node[T] {
	return t.NodesOf(t.DescendantIDs(id, limit))
}

// ChildrenIDs returns the ids of the immediate children of node id. It is the
// same as DescendantIDs(id, 0).
func (t Tree[T]) ChildrenIDs(id string) []string {
	return t.DescendantIDs(id, 0)
}

// Children returns the immediate children of node id.
func (t Tree[T]) Children(id string) []*Node[T] {
	return t.Descendants(id, 0)
}

// NodesOf maps ids to the nodes stored in t, dropping ids which are unknown.
func (t Tree[T]) NodesOf(ids []string) []*Node[T] {
	nodes := make([]*Node[T], 0, len(ids))
	for _, id := range ids {
		if node, ok := t.Node(id); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// childIDs returns the child ids of id. For RootID these are the ids of the
// top-level nodes.
func (t Tree[T]) childIDs(id string) []string {
	if node, ok := t.Node(id); ok {
		return node.Children
	}
	if id != RootID {
		return nil
	}
	return t.RootIDs()
}

// childNodes resolves the children of id, dropping ids which are not stored.
func (t Tree[T]) childNodes(id string) []*Node[T] {
	return t.NodesOf(t.childIDs(id))
}

// Walk returns an iterator over all nodes reachable from the root, in
// depth-first pre-order, together with their depth (top-level nodes have
// depth 0).
func (t Tree[T]) Walk() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		type entry struct {
			node  *Node[T]
			depth int
		}
		var stack []entry
		push := func(nodes []*Node[T], depth int) {
			for i := len(nodes) - 1; i >= 0; i-- {
				stack = append(stack, entry{nodes[i], depth})
			}
		}
		push(t.childNodes(RootID), 0)
		seen := map[string]bool{}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[e.node.ID] {
				tracer().Errorf("ordtree: node %q met twice during walk", e.node.ID)
				continue
			}
			seen[e.node.ID] = true
			if !yield(e.depth, e.node) {
				return
			}
			push(t.childNodes(e.node.ID), e.depth+1)
		}
	}
}
