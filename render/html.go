package render

import (
	"io"

	"github.com/npillmayer/bst"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs the subtree headed by root as a nested list:
//
//	<ul class="bst"><li><span class="inner">3</span><ul>…</ul></li></ul>
//
// Every node is a list item, with its children (left first) in a nested list.
// If a node has a single child only, the missing child is an empty item of
// class "empty".
func HTML[V any](w io.Writer, root *bst.Node[V]) error {
	ul := element(atom.Ul)
	ul.Attr = []html.Attribute{{Key: "class", Val: "bst"}}
	if root != nil {
		ul.AppendChild(htmlItem(root))
	}
	return html.Render(w, ul)
}

func htmlItem[V any](n *bst.Node[V]) *html.Node {
	li := element(atom.Li)
	if n == nil {
		li.Attr = []html.Attribute{{Key: "class", Val: "empty"}}
		return li
	}
	span := element(atom.Span)
	if n.IsLeaf() {
		span.Attr = []html.Attribute{{Key: "class", Val: "leaf"}}
	} else {
		span.Attr = []html.Attribute{{Key: "class", Val: "inner"}}
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.Value())})
	li.AppendChild(span)
	if !n.IsLeaf() {
		children := element(atom.Ul)
		children.AppendChild(htmlItem(n.Left()))
		children.AppendChild(htmlItem(n.Right()))
		li.AppendChild(children)
	}
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}
