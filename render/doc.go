/*
Package render outputs trees as nested lists, either to a terminal or as HTML.

Clients decide how a node is presented by supplying a Labeler, which turns a
node into a Label: the text to show, an optional note (shown in a column to
the right in console output), a style, and whether the node's subtree is
collapsed and should not be shown.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package render

import (
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// Style is a presentation style for labels.
type Style int8

// Styles for labels
const (
	PlainStyle    Style = iota
	BranchStyle         // nodes with children, e.g. directories
	LeafStyle           // nodes without children, e.g. files
	SelectedStyle       // highlighted nodes
	NoteStyle           // notes to the right of labels
)

var styleNames = [...]string{"plain", "branch", "leaf", "selected", "note"}

func (s Style) String() string {
	if int(s) < 0 || int(s) >= len(styleNames) {
		return "plain"
	}
	return styleNames[s]
}

// Label is the presentation of a tree node.
type Label struct {
	Text      string
	Note      string
	Style     Style
	Collapsed bool // do not show the descendants of the node
}

// Labeler computes the label of a node.
type Labeler[T any] func(*ordtree.Node[T]) Label

func (label Labeler[T]) orDefault() Labeler[T] {
	if label != nil {
		return label
	}
	return func(node *ordtree.Node[T]) Label {
		return Label{Text: node.ID}
	}
}

// visible walks the nodes of t which are not hidden by a collapsed ancestor,
// depth-first. enter is called for each node, with the node's label and
// whether it is the last of its siblings; it returns a callback to be called
// when the node's children are done, which may be nil.
func visible[T any](t ordtree.Tree[T], label Labeler[T],
	enter func(node *ordtree.Node[T], l Label, depth int, last bool) func()) {
	//
	seen := map[string]bool{}
	var descend func(id string, depth int)
	descend = func(id string, depth int) {
		var children []*ordtree.Node[T]
		for _, child := range t.Children(id) {
			if seen[child.ID] {
				tracer().Errorf("render: node %q met twice", child.ID)
				continue
			}
			seen[child.ID] = true
			children = append(children, child)
		}
		for i, child := range children {
			l := label(child)
			leave := enter(child, l, depth, i == len(children)-1)
			if !l.Collapsed {
				descend(child.ID, depth+1)
			}
			if leave != nil {
				leave()
			}
		}
	}
	descend(ordtree.RootID, 0)
}
