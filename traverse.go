package bst

import "iter"

// Traverse walks the values of a tree in-order, calling visitor for each of
// them. If visitor returns a stop signal, the traversal is aborted at once and
// the stop signal is returned. Otherwise, after all values have been visited,
// Traverse returns a continue signal. On an empty tree, visitor is never called.
//
// Traverse is a function instead of a method, as Go methods may not introduce
// the additional type parameter R.
func Traverse[V, R any](t *Tree[V], visitor func(V) Signal[R]) Signal[R] {
	if t == nil || t.root == nil {
		return Continue[R]()
	}
	return TraverseNode(t.root, visitor)
}

// TraverseNode walks the subtree headed by n in-order. It behaves like Traverse.
func TraverseNode[V, R any](n *Node[V], visitor func(V) Signal[R]) Signal[R] {
	if n == nil || visitor == nil {
		return Continue[R]()
	}
	if sig := TraverseNode(n.left, visitor); sig.stop {
		return sig
	}
	if sig := visitor(n.value); sig.stop {
		return sig
	}
	return TraverseNode(n.right, visitor)
}

// Walk visits the values of a tree in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[V]) Walk(fn func(value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	TraverseNode(t.root, func(v V) Signal[struct{}] {
		if fn(v) {
			return Continue[struct{}]()
		}
		return Stop(struct{}{})
	})
}

// All returns an iterator over all values of the tree, in ascending order.
func (t *Tree[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.Walk(yield)
	}
}

// Values returns all values of the tree in ascending order, including duplicates.
func (t *Tree[V]) Values() []V {
	values := make([]V, 0, t.Len())
	t.Walk(func(v V) bool {
		values = append(values, v)
		return true
	})
	return values
}
