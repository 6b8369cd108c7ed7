package render

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
	"github.com/npillmayer/bst"
)

type nodeids[V any] struct {
	idTable map[*bst.Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*bst.Node[V]]int),
		max:     1,
	}
}

func (ids *nodeids[V]) alloc(node *bst.Node[V]) string {
	id, ok := ids.idTable[node]
	if !ok {
		id = ids.max
		ids.idTable[node] = id
		ids.max++
	}
	return fmt.Sprintf("n%d", id)
}

// Dot outputs the structure of the subtree headed by root in Graphviz DOT
// format (for debugging purposes). If a node has a single child only, the
// missing child is drawn as an empty circle, to tell left from right.
func Dot[V any](w io.Writer, root *bst.Node[V]) error {
	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out")
	ids := newtable[V]()
	var walk func(n *bst.Node[V]) dot.Node
	walk = func(n *bst.Node[V]) dot.Node {
		gn := g.Node(ids.alloc(n)).Label(label(n.Value()))
		gn.Attr("fontname", "Arial").Attr("style", "filled")
		if n.IsLeaf() {
			gn.Attr("shape", "box")
			return gn
		}
		gn.Attr("shape", "circle").Attr("fillcolor", "#a3d7e4")
		for i, child := range []*bst.Node[V]{n.Left(), n.Right()} {
			if child == nil {
				nilid := fmt.Sprintf("%snil%d", ids.alloc(n), i)
				empty := g.Node(nilid).Label("")
				empty.Attr("shape", "circle").Attr("fixedsize", "true").Attr("width", ".3")
				g.Edge(gn, empty)
				continue
			}
			g.Edge(gn, walk(child))
		}
		return gn
	}
	if root != nil {
		walk(root)
	}
	tracer().Debugf("render: DOT graph with %d nodes", ids.max-1)
	_, err := io.WriteString(w, g.String())
	return err
}
