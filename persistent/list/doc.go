/*
Package list implements an immutable persistent singly-linked list.

Prepending an element creates a new list whose head links to the head of the original
list. Nothing is copied, and the original list stays as it is. Lists built on a common
base share their tails:

	base := list.Of(1)
	b := base.Prepending(2)   // 2 → 1
	c := base.Prepending(3)   // 3 → 1, node 1 shared with b

Nodes keep a count of the links and list handles referring to them. Releasing a list
handle decrements the count of its head; a node whose count drops to zero is destroyed,
which in turn releases its tail. Destruction runs as a loop and stops at the first node
still in use by another list. Go's garbage collector would reclaim unused nodes
anyway; the explicit count makes ownership observable (see OnDestroy) and clears
destroyed nodes, so dangling access shows up instead of going unnoticed.

Nodes are never modified after creation, which makes sharing them safe. Reference
counting is not synchronized, however: handles sharing nodes must not be released
concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
