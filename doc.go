/*
Package bst implements an ordered, in-memory binary search tree.

Trees

A Tree holds values of a totally ordered type. Every value acts as its own key;
there is no separate payload. Values are kept in a plain (unbalanced) binary
search tree: for every node n, all values in n's left subtree compare
less-or-equal to n's value, and all values in n's right subtree compare greater.
Duplicates are accepted and always travel to the left of the first node they
compare equal to.

	tree := bst.FromValue(3)
	tree.Insert(5)
	tree.Insert(4)
	if node := tree.Find(5); node != nil {
	    fmt.Println(node.Value())
	}

Trees only grow. There is no deletion, and no re-balancing takes place. Inserting
values in sorted order therefore produces a degenerate tree, with height equal to
the number of nodes. Lookup and insertion are O(h) for a tree of height h.

Traversal

Traversal is in-order and may be stopped early. Visitors return a Signal, which
either tells the traversal to continue or to stop with a result:

	sig := bst.Traverse(tree, func(v int) bst.Signal[int] {
	    if v > 4 {
	        return bst.Stop(v)
	    }
	    return bst.Continue[int]()
	})
	first, found := sig.Result()

A stopped traversal cannot be resumed; clients start a new one. Alternatively,
Tree.All offers the values as an iter.Seq.

Observability

Insertions and lookups are traced to the tracer selected by key 'bst' (see
package github.com/npillmayer/schuko/tracing), or to a tracer given in a Config.
Clients may additionally inject an Observer to receive an Event for every
operation. Sub-package watch offers an Observer which broadcasts events to
asynchronous subscribers; sub-package render produces debugging output.

Concurrency

Trees are not safe for concurrent use. Insert performs a multi-step structural
mutation; clients sharing a tree between goroutines have to guard it with a
mutex (or a read-write discipline which forbids Insert concurrent to any other
operation).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bst

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst', or to the global core-tracer if no
// tracer has been configured for this key.
func tracer() tracing.Trace {
	if t := tracing.Select("bst"); t != nil {
		return t
	}
	return gtrace.CoreTracer
}

// TreeError is an error type for the bst module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged whenever a tree configuration is unusable,
// e.g. if it lacks a comparison function.
const ErrInvalidConfig = TreeError("bst: invalid configuration")

// ErrInvariantViolated is flagged by Check if a tree does not obey the
// search tree ordering.
const ErrInvariantViolated = TreeError("bst: search tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
