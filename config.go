package bst

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// CompareFunc is a three-way comparison. It returns a negative number if a < b,
// zero if a == b and a positive number if a > b, and must impose a total order.
type CompareFunc[V any] func(a, b V) int

// Config configures a tree.
type Config[V any] struct {
	// Compare orders values. It is required.
	Compare CompareFunc[V]
	// Tracer receives debug traces of insertions and lookups.
	// If nil, the tracer selected by key 'bst' is used.
	Tracer tracing.Trace
	// Observer, if non-nil, is called synchronously after every insertion
	// and lookup.
	Observer Observer[V]
}

// OrderedConfig returns a configuration ordering values by cmp.Compare.
func OrderedConfig[V cmp.Ordered]() Config[V] {
	return Config[V]{Compare: cmp.Compare[V]}
}

func (cfg Config[V]) normalized() Config[V] {
	if cfg.Observer == nil {
		cfg.Observer = nopObserver[V]{}
	}
	return cfg
}

func (cfg Config[V]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}

// --- Observers -------------------------------------------------------------

// Op identifies the tree operation an Event reports on.
type Op int8

// Operations reported to observers.
const (
	OpInsert Op = iota
	OpFind
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpFind:
		return "find"
	}
	return fmt.Sprintf("Op(%d)", int8(op))
}

// Event describes a completed operation on a tree.
//
// For OpInsert, Depth is the depth of the new leaf (the root has depth 0) and
// Found is always true. For OpFind, Depth is the depth of the matching node, or
// the depth at which the search fell off the tree if Found is false.
type Event[V any] struct {
	Op    Op
	Value V
	Depth int
	Found bool
}

// Observer is a hook to get notified about tree operations.
// Observe is called on the goroutine performing the operation and must not
// call back into the tree.
type Observer[V any] interface {
	Observe(Event[V])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[V any] func(Event[V])

// Observe calls f(e).
func (f ObserverFunc[V]) Observe(e Event[V]) {
	f(e)
}

type nopObserver[V any] struct{}

func (nopObserver[V]) Observe(Event[V]) {}
