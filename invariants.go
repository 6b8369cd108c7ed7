package bst

import "fmt"

// Check validates the search tree ordering: every value in a left subtree
// compares <= to its parent's value, every value in a right subtree compares
// greater.
//
// Trees built by Insert always pass; Check is intended for tests and for
// trees whose comparison function is suspect.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Compare == nil {
		return fmt.Errorf("%w: tree has no comparison function", ErrInvalidConfig)
	}
	return t.checkNode(t.root, nil, nil)
}

// checkNode validates n against the open interval (lower, upper] inherited from
// its ancestors. A nil bound is unbounded.
func (t *Tree[V]) checkNode(n *Node[V], lower, upper *V) error {
	if n == nil {
		return nil
	}
	if lower != nil && t.cfg.Compare(n.value, *lower) <= 0 {
		return fmt.Errorf("%w: %v in right subtree of %v", ErrInvariantViolated, n.value, *lower)
	}
	if upper != nil && t.cfg.Compare(n.value, *upper) > 0 {
		return fmt.Errorf("%w: %v in left subtree of %v", ErrInvariantViolated, n.value, *upper)
	}
	if err := t.checkNode(n.left, lower, &n.value); err != nil {
		return err
	}
	return t.checkNode(n.right, &n.value, upper)
}
