package ordtree

// Builder collects a series of updates and finalizes them into a tree.
//
// Each update of a Tree creates a new snapshot. When many nodes are inserted
// at once, e.g. when loading a tree from external data, a Builder avoids the
// intermediate snapshots: it works on a single private copy of its base tree.
// The result is the same as applying the updates with Tree.SetNode and
// Tree.RemoveNode in turn.
//
// A Builder must not be used concurrently. After Tree has been called, the
// builder starts over with the returned tree as its base.
type Builder[T any] struct {
	base  Tree[T]
	ix    *nodeIndex[T] // private copy of base.index, allocated on first write
	dirty bool
}

// NewBuilder creates a builder starting from tree base.
func NewBuilder[T any](base Tree[T]) *Builder[T] {
	return &Builder[T]{base: base}
}

func (b *Builder[T]) writable() *nodeIndex[T] {
	if b.ix == nil {
		b.ix = b.base.index.clone()
	}
	b.dirty = true
	return b.ix
}

func (b *Builder[T]) current() Tree[T] {
	if b.ix == nil {
		return b.base
	}
	return Tree[T]{index: b.ix}
}

// Set stages node, with the semantics of Tree.SetNode.
func (b *Builder[T]) Set(node *Node[T]) *Builder[T] {
	if node == nil {
		return b
	} else if node.ID == RootID {
		tracer().Errorf("ordtree: builder refusing to store node with root id")
		return b
	}
	if !b.current().needsUpdate(node) {
		return b
	}
	b.writable().setNode(node)
	return b
}

// Remove stages the removal of node id and its descendants, with the
// semantics of Tree.RemoveNode.
func (b *Builder[T]) Remove(id string) *Builder[T] {
	if !b.current().Has(id) {
		return b
	}
	b.writable().removeSubtree(id)
	return b
}

// Len returns the number of nodes staged so far.
func (b *Builder[T]) Len() int {
	return b.current().Len()
}

// Tree returns the tree built from all staged updates. If nothing has been
// staged, the base tree is returned.
func (b *Builder[T]) Tree() Tree[T] {
	if !b.dirty {
		return b.base
	}
	t := Tree[T]{index: b.ix}
	b.base, b.ix, b.dirty = t, nil, false
	return t
}
