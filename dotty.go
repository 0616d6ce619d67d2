package ordtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// label computes the text shown for a node; if it is nil, node ids are shown.
// Nodes which are not reachable from the root are drawn with a dashed border,
// with a dotted edge to their (missing) parent.
func Tree2Dot[T any](t Tree[T], w io.Writer, label func(*Node[T]) string) error {
	if w == nil {
		return ErrIllegalArguments
	}
	if label == nil {
		label = func(node *Node[T]) string { return node.ID }
	}
	var nodelist, edgelist strings.Builder
	nodelist.WriteString("\"\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.2];\n")
	reachable := make(map[string]bool, t.Len())
	for _, node := range t.Walk() {
		reachable[node.ID] = true
		fmt.Fprintf(&nodelist, "%q [label=%q %s];\n", node.ID, label(node), nodeDotStyles(node, true))
		fmt.Fprintf(&edgelist, "%q -> %q;\n", node.Parent, node.ID)
	}
	for node := range t.All() {
		if reachable[node.ID] {
			continue
		}
		fmt.Fprintf(&nodelist, "%q [label=%q %s];\n", node.ID, label(node), nodeDotStyles(node, false))
		fmt.Fprintf(&edgelist, "%q -> %q [style=dotted];\n", node.Parent, node.ID)
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err := io.WriteString(w, "}\n")
	return err
}

func nodeDotStyles[T any](node *Node[T], reachable bool) string {
	s := ",style=filled"
	if !reachable {
		s = ",style=\"filled,dashed\""
	}
	if len(node.Children) == 0 {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
