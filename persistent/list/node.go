package list

import "fmt"

// Node is a cell of a persistent list. Nodes are created by Prepending and are
// immutable afterwards; clients may inspect them (see List.Nodes), but not change them.
type Node[T any] struct {
	elem  T
	next  *Node[T]
	refs  int  // number of links and handles referring to this node
	alive bool // false after destruction
}

func newNode[T any](elem T, next *Node[T]) *Node[T] {
	return &Node[T]{elem: elem, next: next.retain(), refs: 1, alive: true}
}

// Value returns the element held by the node.
func (node *Node[T]) Value() T {
	assertThat(node.alive, "access to destroyed node")
	return node.elem
}

// Next returns the node's tail, or nil at the end of the list.
func (node *Node[T]) Next() *Node[T] {
	assertThat(node.alive, "access to destroyed node")
	return node.next
}

// Refs returns the number of owners sharing this node.
func (node *Node[T]) Refs() int {
	return node.refs
}

func (node *Node[T]) String() string {
	if !node.alive {
		return "(†)"
	}
	return fmt.Sprintf("(%v #%d)", node.elem, node.refs)
}

// retain registers one more owner. It is nil-safe and returns node for chaining.
func (node *Node[T]) retain() *Node[T] {
	if node != nil {
		assertThat(node.alive, "attempt to share a destroyed node")
		node.refs++
	}
	return node
}

// release unregisters an owner of node. Nodes without owners are destroyed, which
// releases their tails in turn. We do this in a loop rather than recursively, stopping
// at the first node which is still owned by somebody else.
// release returns the number of nodes destroyed.
func release[T any](node *Node[T], onDestroy func(T)) int {
	destroyed := 0
	for node != nil {
		assertThat(node.refs > 0, "inconsistency: releasing node without owners")
		node.refs--
		if node.refs > 0 {
			break
		}
		next := node.next
		elem := node.elem
		var zero T
		node.elem, node.next, node.alive = zero, nil, false
		destroyed++
		if onDestroy != nil {
			onDestroy(elem)
		}
		node = next
	}
	return destroyed
}
