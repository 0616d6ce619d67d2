package ordtree

import "fmt"

// Check validates the structural invariants of t:
//
//   - every child id resolves to a stored node,
//   - no child id occurs twice within the children of a node,
//   - every child links back to the node listing it,
//   - every node whose parent is stored is listed by that parent,
//   - parent links do not form a cycle.
//
// Orphans, i.e. nodes whose parent is not stored, are legal.
// Check returns the first violation found, nil if there is none.
func (t Tree[T]) Check() error {
	var err error
	t.index.ascend(func(node *Node[T]) bool {
		err = t.checkNode(node)
		return err == nil
	})
	if err != nil {
		return err
	}
	return t.checkAcyclic()
}

func (t Tree[T]) checkNode(node *Node[T]) error {
	if node.ID == RootID {
		return fmt.Errorf("%w: node stored with root id", ErrIllegalArguments)
	}
	seen := make(map[string]bool, len(node.Children))
	for _, c := range node.Children {
		if seen[c] {
			return fmt.Errorf("%w: %q in children of %q", ErrDuplicateChild, c, node.ID)
		}
		seen[c] = true
		child, ok := t.Node(c)
		if !ok {
			return fmt.Errorf("%w: %q in children of %q", ErrDanglingChild, c, node.ID)
		}
		if child.Parent != node.ID {
			return fmt.Errorf("%w: %q listed by %q, parent is %q", ErrParentMismatch,
				c, node.ID, child.Parent)
		}
	}
	if parent, ok := t.Node(node.Parent); ok && !parent.hasChild(node.ID) {
		return fmt.Errorf("%w: %q not listed by %q", ErrMissingLink, node.ID, node.Parent)
	}
	return nil
}

// checkAcyclic follows the parent links of every node. Nodes already known to
// lead to the root (or to a missing parent) are not walked twice.
func (t Tree[T]) checkAcyclic() error {
	done := make(map[string]bool, t.Len())
	var err error
	t.index.ascend(func(node *Node[T]) bool {
		path := map[string]bool{}
		n, ok := node, true
		for ok && !done[n.ID] {
			if path[n.ID] {
				err = fmt.Errorf("%w: through %q", ErrCycle, n.ID)
				return false
			}
			path[n.ID] = true
			n, ok = t.Node(n.Parent)
		}
		for id := range path {
			done[id] = true
		}
		return true
	})
	return err
}
