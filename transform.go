package ordtree

// MapValues creates a new tree with every node's value replaced by the result
// of calling f on it. Ids and structure are kept.
//
// The result is rebuilt from the nodes reachable from the root: nodes of t
// which are not reachable (orphans) are not part of the result.
func MapValues[T, R any](t Tree[T], f func(T) R) Tree[R] {
	if f == nil {
		return Tree[R]{}
	}
	return Map(t, func(node *Node[T]) *Node[R] {
		return withValue(node, f(node.Value))
	})
}

// Map creates a new tree from the results of calling f on every node of t.
// f may change a node's value as well as its id, parent or children. Nodes
// for which f returns nil are left out.
//
// As with MapValues, only nodes reachable from the root take part in the
// rebuild; the nodes are inserted top-down, level by level.
func Map[T, R any](t Tree[T], f func(*Node[T]) *Node[R]) Tree[R] {
	b := NewBuilder(Tree[R]{})
	if f == nil {
		return b.Tree()
	}
	nodes := t.Descendants(RootID, Unlimited)
	if len(nodes) < t.Len() {
		tracer().Debugf("ordtree: map drops %d unreachable nodes", t.Len()-len(nodes))
	}
	for _, node := range nodes {
		b.Set(f(node))
	}
	return b.Tree()
}
