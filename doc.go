/*
Package ordtree implements an immutable, ordered multi-way tree of identified
values.

Trees

A tree maps string identifiers to nodes. Every node knows its parent and keeps
an ordered list of the identifiers of its children. The empty identifier
(RootID) is reserved: it denotes "no parent" and groups all top-level nodes,
but it is never stored as a node itself.

Trees are values. Operations which change a tree never modify it, but return a
new tree, leaving the original intact:

	t1 := ordtree.Empty[string]()
	t2 := t1.SetNode(&ordtree.Node[string]{ID: "a", Value: "A"})
	t3 := t2.SetNode(&ordtree.Node[string]{ID: "b", Parent: "a", Value: "B"})
	t3.AncestorIDs("b")        // => [a]
	t2.ChildrenIDs("a")        // => []   (t2 is unaffected by the update)

Internally nodes are indexed by a copy-on-write B-tree. A new tree shares
all untouched parts of the index with its predecessor, so updates are cheap and
holding on to old snapshots costs little. This makes trees a good fit for
application state that is replaced on every change (as with reducers), where
clients detect changes by comparing snapshots with Tree.Same.

Concurrency

Snapshots may be read from any number of goroutines. Deriving new trees from a
common snapshot concurrently is safe as well. Nodes returned from a tree are
shared with it and must not be modified; create a fresh node and store it with
SetNode instead.

Preconditions

Parent links must not form cycles. Trees do not reject such links on insertion,
but every walk keeps track of visited nodes and stops when it meets a node a
second time, tracing an error. Tree.Check reports cycles and any other
structural inconsistency.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// TreeError is an error type for the ordtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrCycle is flagged if parent links of nodes form a cycle.
const ErrCycle = TreeError("cycle in parent links")

// ErrDanglingChild is flagged if a node lists a child id which is not stored
// in the tree.
const ErrDanglingChild = TreeError("child id does not resolve to a node")

// ErrDuplicateChild is flagged if a child id occurs more than once in the
// children of a node.
const ErrDuplicateChild = TreeError("duplicate child id")

// ErrParentMismatch is flagged if a node lists a child whose parent link
// points elsewhere.
const ErrParentMismatch = TreeError("child does not link back to parent")

// ErrMissingLink is flagged if a node's parent exists but does not list the
// node as one of its children.
const ErrMissingLink = TreeError("node missing from parent's children")
