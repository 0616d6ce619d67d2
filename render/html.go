package render

import (
	"io"

	"github.com/npillmayer/ordtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs a tree as nested unordered lists:
//
//	<ul class="ordtree">
//	  <li data-id="/data"><span class="branch">data/</span>
//	    <ul>
//	      <li data-id="/data/README"><span class="leaf">README</span> <span class="note">412B</span></li>
//	    </ul>
//	  </li>
//	</ul>
//
// Labels are rendered as spans with the label's style as class. Collapsed
// nodes get class "collapsed" and are rendered without their descendants.
func HTML[T any](w io.Writer, t ordtree.Tree[T], label Labeler[T]) error {
	if w == nil {
		return ordtree.ErrIllegalArguments
	}
	root := element(atom.Ul, html.Attribute{Key: "class", Val: "ordtree"})
	lists := []*html.Node{root} // stack of open lists
	visible(t, label.orDefault(), func(node *ordtree.Node[T], l Label, depth int, last bool) func() {
		li := element(atom.Li, html.Attribute{Key: "data-id", Val: node.ID})
		if l.Collapsed {
			li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "collapsed"})
		}
		li.AppendChild(span(l.Style.String(), l.Text))
		if l.Note != "" {
			li.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
			li.AppendChild(span("note", l.Note))
		}
		lists[len(lists)-1].AppendChild(li)
		if l.Collapsed || len(t.Children(node.ID)) == 0 {
			return nil
		}
		ul := element(atom.Ul)
		li.AppendChild(ul)
		lists = append(lists, ul)
		return func() { lists = lists[:len(lists)-1] }
	})
	return html.Render(w, root)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func span(class, text string) *html.Node {
	s := element(atom.Span, html.Attribute{Key: "class", Val: class})
	s.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return s
}
