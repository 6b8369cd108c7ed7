package bst

import (
	"cmp"
	"testing"
)

func TestLeaf(t *testing.T) {
	n := leaf(42)
	if n.Value() != 42 || !n.IsLeaf() {
		t.Errorf("expected leaf with value 42")
	}
	if n.Len() != 1 || n.Height() != 1 {
		t.Errorf("unexpected leaf len=%d height=%d", n.Len(), n.Height())
	}
}

func TestNilNode(t *testing.T) {
	var n *Node[int]
	if n.Left() != nil || n.Right() != nil || n.IsLeaf() {
		t.Errorf("nil node should have no children and not be a leaf")
	}
	if n.Len() != 0 || n.Height() != 0 {
		t.Errorf("nil node should be an empty subtree")
	}
	if n.FindFunc(1, cmp.Compare[int]) != nil {
		t.Errorf("found value in nil subtree")
	}
}

func TestNodeFindFunc(t *testing.T) {
	tree := buildTree(3, 5, 4, 7, 6, 1, 2)
	sub := tree.Root().Right() // subtree headed by 5
	if node := sub.FindFunc(6, cmp.Compare[int]); node == nil || node.Value() != 6 {
		t.Errorf("expected to find 6 in subtree of 5")
	}
	if node := sub.FindFunc(2, cmp.Compare[int]); node != nil {
		t.Errorf("2 is not in subtree of 5, but found")
	}
	node, depth := tree.Root().find(6, cmp.Compare[int])
	if node == nil || depth != 3 {
		t.Errorf("expected 6 at depth 3, found %v at depth %d", node, depth)
	}
}

func TestNodeClone(t *testing.T) {
	tree := buildTree(3, 5, 1)
	c := tree.Root().clone()
	if c == tree.Root() || c.Left() == tree.Root().Left() || c.Right() == tree.Root().Right() {
		t.Errorf("clone shares nodes with original")
	}
	if c.Len() != 3 || c.Left().Value() != 1 || c.Right().Value() != 5 {
		t.Errorf("clone differs from original")
	}
}

func TestNilNodeValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Value of nil node to panic")
		}
	}()
	var n *Node[int]
	_ = n.Value()
}
