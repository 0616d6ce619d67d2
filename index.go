package ordtree

import (
	"sync"

	"github.com/google/btree"
)

// indexDegree is the degree of the B-tree holding the nodes of a tree.
const indexDegree = 16

// nodeIndex maps node ids to nodes. An index is never changed after it has
// been handed out as part of a Tree; updates operate on a clone.
type nodeIndex[T any] struct {
	mu sync.Mutex // guards Clone, which writes the copy-on-write context of the source
	bt *btree.BTreeG[*Node[T]]
}

func lessByID[T any](a, b *Node[T]) bool {
	return a.ID < b.ID
}

func newIndex[T any]() *nodeIndex[T] {
	return &nodeIndex[T]{bt: btree.NewG[*Node[T]](indexDegree, lessByID[T])}
}

// clone returns a writable copy of ix. Pages are shared until either side
// writes to them. A nil index clones to a fresh one.
func (ix *nodeIndex[T]) clone() *nodeIndex[T] {
	if ix == nil {
		return newIndex[T]()
	}
	ix.mu.Lock()
	bt := ix.bt.Clone()
	ix.mu.Unlock()
	return &nodeIndex[T]{bt: bt}
}

func (ix *nodeIndex[T]) get(id string) (*Node[T], bool) {
	if ix == nil {
		return nil, false
	}
	return ix.bt.Get(&Node[T]{ID: id})
}

func (ix *nodeIndex[T]) len() int {
	if ix == nil {
		return 0
	}
	return ix.bt.Len()
}

func (ix *nodeIndex[T]) put(node *Node[T]) {
	assert(node != nil, "index.put called with nil node")
	ix.bt.ReplaceOrInsert(node)
}

func (ix *nodeIndex[T]) remove(id string) {
	ix.bt.Delete(&Node[T]{ID: id})
}

// ascend visits all nodes in id order until fn returns false.
func (ix *nodeIndex[T]) ascend(fn func(*Node[T]) bool) {
	if ix == nil {
		return
	}
	ix.bt.Ascend(btree.ItemIteratorG[*Node[T]](fn))
}
