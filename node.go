package bst

// Node is a node of a binary search tree. A node exclusively owns its children;
// nodes are never shared between trees or between positions of one tree.
//
// A nil *Node is a valid, empty subtree.
type Node[V any] struct {
	value V
	left  *Node[V] // values <= value
	right *Node[V] // values > value
}

func leaf[V any](value V) *Node[V] {
	return &Node[V]{value: value}
}

// Value returns the value of a node. Value requires a non-nil node and panics
// for an empty subtree.
func (n *Node[V]) Value() V {
	return n.value
}

// Left returns the left child of a node, or nil.
func (n *Node[V]) Left() *Node[V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of a node, or nil.
func (n *Node[V]) Right() *Node[V] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether n is a node without children.
func (n *Node[V]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Len returns the number of nodes in the subtree headed by n.
func (n *Node[V]) Len() int {
	if n == nil {
		return 0
	}
	return n.left.Len() + 1 + n.right.Len()
}

// Height returns the number of nodes on the longest path from n down to a leaf.
// An empty subtree has height 0, a single leaf has height 1.
func (n *Node[V]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// FindFunc searches the subtree headed by n for value and returns the
// first node (nearest to n) holding a value equal to it, or nil.
func (n *Node[V]) FindFunc(value V, compare CompareFunc[V]) *Node[V] {
	node, _ := n.find(value, compare)
	return node
}

// find returns the matching node and its depth relative to n. If there is no
// match, the depth is the one at which the search left the subtree.
func (n *Node[V]) find(value V, compare CompareFunc[V]) (*Node[V], int) {
	depth := 0
	for node := n; node != nil; depth++ {
		switch c := compare(value, node.value); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node, depth
		}
	}
	return nil, depth
}

// clone creates a deep copy of the subtree headed by n.
func (n *Node[V]) clone() *Node[V] {
	if n == nil {
		return nil
	}
	return &Node[V]{
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}
