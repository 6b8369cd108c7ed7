/*
Package render outputs binary search trees for debugging purposes.

Three renderings are available:

	Dot      Graphviz DOT, with absent children drawn as small empty circles
	Print    a sideways drawing for consoles, the right subtree on top
	HTML     a nested list outline, suitable for embedding in a web page

None of these formats is stable. They are meant for humans, not for
round-tripping trees.

_________________________________________________________________________

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"fmt"

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

func label[V any](value V) string {
	return fmt.Sprint(value)
}
