package bst

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Tree is an unbalanced binary search tree of values of type V.
//
// Trees are created by New, FromValue or NewWithConfig; the zero value of Tree
// lacks a comparison and is not usable. A tree is either empty or has a root
// node; once populated, it never becomes empty again.
type Tree[V any] struct {
	cfg  Config[V]
	root *Node[V]
}

// New creates an empty tree for an ordered type.
func New[V cmp.Ordered]() *Tree[V] {
	return &Tree[V]{cfg: OrderedConfig[V]().normalized()}
}

// FromValue creates a tree for an ordered type, with a single root node holding
// value.
func FromValue[V cmp.Ordered](value V) *Tree[V] {
	t := New[V]()
	t.root = leaf(value)
	return t
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[V any](cfg Config[V]) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[V]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config[V] {
	return t.cfg
}

func (t *Tree[V]) trace() tracing.Trace {
	if t.cfg.Tracer != nil {
		return t.cfg.Tracer
	}
	return tracer()
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[V]) Root() *Node[V] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of values in the tree, counting duplicates.
// Len walks the tree and is O(n).
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.Len()
}

// Height returns the tree height, where 0 means empty and 1 means a single root.
func (t *Tree[V]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.Height()
}

// Insert adds value to the tree as a new leaf. Insert never fails and never
// replaces an existing node; a value equal to existing ones is placed to the
// left of the first of them it is compared to.
func (t *Tree[V]) Insert(value V) {
	assert(t != nil, "Insert called for nil tree")
	depth := place(&t.root, leaf(value), t.cfg.Compare)
	t.trace().Debugf("bst: inserted %v at depth %d", value, depth)
	t.cfg.Observer.Observe(Event[V]{Op: OpInsert, Value: value, Depth: depth, Found: true})
}

// place descends from slot to the first empty child slot on the search path of
// c.value and attaches c there. It returns the depth of c below slot.
func place[V any](slot **Node[V], c *Node[V], compare CompareFunc[V]) int {
	n := *slot
	if n == nil {
		*slot = c
		return 0
	}
	if compare(c.value, n.value) <= 0 {
		return 1 + place(&n.left, c, compare)
	}
	return 1 + place(&n.right, c, compare)
}

// Find returns the node holding a value equal to value, or nil if the tree
// contains no such value. If the tree holds duplicates of value, the one
// nearest to the root is returned.
func (t *Tree[V]) Find(value V) *Node[V] {
	if t == nil {
		return nil
	}
	if t.root == nil {
		t.cfg.Observer.Observe(Event[V]{Op: OpFind, Value: value})
		return nil
	}
	node, depth := t.root.find(value, t.cfg.Compare)
	if node == nil {
		t.trace().Debugf("bst: %v not found, search ended at depth %d", value, depth)
	} else {
		t.trace().Debugf("bst: found %v at depth %d", value, depth)
	}
	t.cfg.Observer.Observe(Event[V]{Op: OpFind, Value: value, Depth: depth, Found: node != nil})
	return node
}

// Contains reports whether the tree holds a value equal to value.
func (t *Tree[V]) Contains(value V) bool {
	return t.Find(value) != nil
}

// Clone returns a deep copy of the tree. The clone shares the configuration
// (including tracer and observer) with t, but no nodes.
func (t *Tree[V]) Clone() *Tree[V] {
	if t == nil {
		return nil
	}
	return &Tree[V]{cfg: t.cfg, root: t.root.clone()}
}

// String returns a textual representation of the tree structure, for
// debugging purposes. Every non-leaf node is rendered as
//
//	[left value right]
//
// with absent children shown as '.'.
func (t *Tree[V]) String() string {
	if t.IsEmpty() {
		return "[]"
	}
	var b strings.Builder
	writeNode(&b, t.root)
	return b.String()
}

func writeNode[V any](b *strings.Builder, n *Node[V]) {
	if n == nil {
		b.WriteByte('.')
		return
	}
	if n.IsLeaf() {
		fmt.Fprintf(b, "%v", n.value)
		return
	}
	b.WriteByte('[')
	writeNode(b, n.left)
	fmt.Fprintf(b, " %v ", n.value)
	writeNode(b, n.right)
	b.WriteByte(']')
}
