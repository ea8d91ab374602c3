/*
Package stack implements a mutable, singly-linked stack where every node has exactly
one owner.

Nodes are linked from the head downwards. Pushing wraps the current head as the tail
of a new node, popping detaches the head and moves its tail up. Whenever a link is
about to be re-assigned it is first set to nil and its former content handed over to
the new owner, so there is never a moment where two links refer to the same node.

Traversal comes in three flavours:

	s.IntoIter()   // consuming: owns the nodes, pops them one by one
	s.Iter()       // read-only: yields elements, leaves the stack untouched
	s.IterMut()    // mutable: yields *T, visiting each node exactly once

Go cannot check borrows at compile time, so a stack carries a runtime guard. Either
any number of read-only cursors, or a single mutable cursor, or direct mutation may be
active at a time. Starting something which conflicts with a live cursor revokes that
cursor; using a revoked cursor panics with an error wrapping ErrAccessViolation.

Stacks are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stack

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.stack'.
func tracer() tracing.Trace {
	return tracing.Select("fp.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
