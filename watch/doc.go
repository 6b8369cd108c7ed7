/*
Package watch broadcasts operations on binary search trees to subscribers.

A Broadcaster is a bst.Observer. Injected into a tree's configuration, it
receives every insertion and lookup synchronously from the tree and forwards
the events to any number of subscribers, each reading from its own buffered
channel. The tree itself stays single-threaded; only delivery of events is
asynchronous.

	b := watch.New[int](ctx)
	defer b.Close()
	cfg := bst.OrderedConfig[int]()
	cfg.Observer = b
	tree, _ := bst.NewWithConfig(cfg)
	events, _ := b.Subscribe(ctx, 64)

_________________________________________________________________________

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	if t := tracing.Select("bst"); t != nil {
		return t
	}
	return gtrace.CoreTracer
}
