package ordtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
)

// RootID is the root sentinel. It denotes "no parent" for top-level nodes and
// is never stored as a node itself.
const RootID = ""

// Node is an entry of a tree.
//
// Nodes retrieved from a tree are shared with that tree (and possibly with
// other snapshots) and must be treated as read-only.
type Node[T any] struct {
	ID       string   // unique identifier within the tree
	Parent   string   // identifier of the parent node, or RootID
	Children []string // ordered identifiers of child nodes
	Value    T        // payload, opaque to the tree
}

// withValue returns a copy of node carrying value v.
func withValue[T, R any](node *Node[T], v R) *Node[R] {
	return &Node[R]{
		ID:       node.ID,
		Parent:   node.Parent,
		Children: node.Children,
		Value:    v,
	}
}

// withChild returns a copy of node with id appended to its children.
func (node *Node[T]) withChild(id string) *Node[T] {
	n := *node
	n.Children = append(slices.Clip(node.Children), id)
	return &n
}

// withoutChild returns a copy of node with id removed from its children.
func (node *Node[T]) withoutChild(id string) *Node[T] {
	n := *node
	n.Children = slices.DeleteFunc(slices.Clone(node.Children), func(c string) bool {
		return c == id
	})
	return &n
}

func (node *Node[T]) hasChild(id string) bool {
	return slices.Contains(node.Children, id)
}

// Tree is an immutable, ordered multi-way tree of nodes keyed by id.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid object and behaves like the empty tree.
//
// Trees are values: all operations changing a tree return a new tree and
// leave the receiver untouched.
type Tree[T any] struct {
	index *nodeIndex[T]
}

// Empty creates a tree without nodes.
func Empty[T any]() Tree[T] {
	return Tree[T]{}
}

// Len returns the number of nodes stored in t, including orphans.
func (t Tree[T]) Len() int {
	return t.index.len()
}

// IsEmpty reports whether t holds no nodes.
func (t Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Same reports whether t and other are the same snapshot. An update which
// does not change anything returns a tree for which Same reports true, which
// lets clients detect changes cheaply.
//
// Two distinct snapshots with equal content are not the same.
func (t Tree[T]) Same(other Tree[T]) bool {
	if t.IsEmpty() && other.IsEmpty() {
		return true
	}
	return t.index == other.index
}

// Node looks up a node by id. For unknown ids, including RootID, it returns
// false.
func (t Tree[T]) Node(id string) (*Node[T], bool) {
	if id == RootID {
		return nil, false
	}
	return t.index.get(id)
}

// Has reports whether a node with the given id is stored in t.
func (t Tree[T]) Has(id string) bool {
	_, ok := t.Node(id)
	return ok
}

// Value returns the payload of node id.
func (t Tree[T]) Value(id string) (T, bool) {
	if node, ok := t.Node(id); ok {
		return node.Value, true
	}
	var zero T
	return zero, false
}

// All returns an iterator over every stored node in id order. Different from
// the walking operations, All includes nodes which are not reachable from the
// root.
func (t Tree[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		t.index.ascend(yield)
	}
}

// RootIDs returns the ids of all top-level nodes, i.e. nodes whose parent is
// RootID, in id order.
func (t Tree[T]) RootIDs() []string {
	var ids []string
	t.index.ascend(func(node *Node[T]) bool {
		if node.Parent == RootID {
			ids = append(ids, node.ID)
		}
		return true
	})
	return ids
}

// --- Updates ---------------------------------------------------------------

// SetNode inserts node, or replaces a node with the same id, and links it
// into the children of its parent (appending it, if not yet present).
//
// If the parent is not stored in t, the link is recorded on the child's side
// only, until the parent is inserted; re-inserting the child then will
// complete the link. If node replaces an existing node with a different
// parent, node's id is removed from the children of the previous parent.
//
// If the identical node is already stored and linked, t is returned
// unchanged. Nil nodes and nodes with id RootID are ignored.
func (t Tree[T]) SetNode(node *Node[T]) Tree[T] {
	if node == nil {
		return t
	} else if node.ID == RootID {
		tracer().Errorf("ordtree: refusing to store node with root id")
		return t
	}
	if !t.needsUpdate(node) {
		return t
	}
	ix := t.index.clone()
	ix.setNode(node)
	return Tree[T]{index: ix}
}

// needsUpdate checks if storing node will change t.
func (t Tree[T]) needsUpdate(node *Node[T]) bool {
	if old, ok := t.index.get(node.ID); !ok || old != node {
		return true
	}
	if parent, ok := t.Node(node.Parent); ok && !parent.hasChild(node.ID) {
		return true
	}
	return false
}

// setNode stores node in a writable index.
func (ix *nodeIndex[T]) setNode(node *Node[T]) {
	old, found := ix.get(node.ID)
	if found && old.Parent != node.Parent {
		if prev, ok := ix.get(old.Parent); ok && prev.hasChild(node.ID) {
			ix.put(prev.withoutChild(node.ID))
		}
	}
	if !found || old != node {
		ix.put(node)
	}
	if node.Parent == RootID {
		return
	}
	if parent, ok := ix.get(node.Parent); ok && !parent.hasChild(node.ID) {
		ix.put(parent.withChild(node.ID))
	}
}

// SetValue replaces the payload of node id. If id is unknown, t is returned
// unchanged.
func (t Tree[T]) SetValue(id string, value T) Tree[T] {
	node, ok := t.Node(id)
	if !ok {
		return t
	}
	return t.SetNode(withValue(node, value))
}

// SetValueWith replaces the payload of node id with the result of calling
// update on the current payload. If id is unknown, t is returned unchanged.
func (t Tree[T]) SetValueWith(id string, update func(T) T) Tree[T] {
	node, ok := t.Node(id)
	if !ok || update == nil {
		return t
	}
	return t.SetNode(withValue(node, update(node.Value)))
}

// RemoveNode removes node id together with all of its descendants and unlinks
// it from its parent. If id is unknown, t is returned unchanged.
func (t Tree[T]) RemoveNode(id string) Tree[T] {
	if !t.Has(id) {
		return t
	}
	ix := t.index.clone()
	ix.removeSubtree(id)
	return Tree[T]{index: ix}
}

// removeSubtree removes node id and its descendants from a writable index.
func (ix *nodeIndex[T]) removeSubtree(id string) {
	node, ok := ix.get(id)
	if !ok {
		return
	}
	if parent, ok := ix.get(node.Parent); ok && parent.hasChild(id) {
		ix.put(parent.withoutChild(id))
	}
	doomed := []string{id}
	seen := map[string]bool{id: true}
	for i := 0; i < len(doomed); i++ {
		n, ok := ix.get(doomed[i])
		if !ok {
			continue
		}
		for _, c := range n.Children {
			if !seen[c] {
				seen[c] = true
				doomed = append(doomed, c)
			}
		}
	}
	for _, d := range doomed {
		ix.remove(d)
	}
}
