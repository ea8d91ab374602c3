package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// node is a single element of a stack together with the link to the rest of the chain.
// A nil link terminates the chain.
type node[T any] struct {
	elem T
	next *node[T]
}

// take detaches the node a link points to, leaving the link empty.
func take[T any](link **node[T]) *node[T] {
	n := *link
	*link = nil
	return n
}

// Stack is a LIFO list of elements. Each node is owned by exactly one link: either the
// head of the stack or the next-link of the node above it.
//
// The zero value is an empty stack, ready to use.
type Stack[T any] struct {
	head   *node[T]
	length int
	guard  guard
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.length
}

// IsEmpty is true for a stack without elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Push puts elem on top of the stack. Ownership of the former head moves to the new node.
func (s *Stack[T]) Push(elem T) {
	s.guard.mutate()
	s.head = &node[T]{
		elem: elem,
		next: take(&s.head),
	}
	s.length++
}

// Pop removes the top element and returns it, or Nothing if the stack is empty.
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	s.guard.mutate()
	n := take(&s.head)
	if n == nil {
		return maybe.Nothing[T]()
	}
	s.head = take(&n.next)
	s.length--
	return maybe.Just(n.elem)
}

// Peek returns the top element without removing it, or Nothing if the stack is empty.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.elem)
}

// PeekMut returns a pointer to the top element, or Nothing if the stack is empty.
// Clients may overwrite the top element through it.
//
// PeekMut counts as a mutation, i.e. it revokes all live cursors.
func (s *Stack[T]) PeekMut() maybe.Maybe[*T] {
	s.guard.mutate()
	if s.head == nil {
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&s.head.elem)
}

// Clear drops all elements. Nodes are detached from the head one at a time, so the
// effort on the call stack does not depend on the length of the stack.
func (s *Stack[T]) Clear() {
	s.guard.mutate()
	n := s.length
	cur := take(&s.head)
	for cur != nil {
		cur = take(&cur.next)
	}
	s.length = 0
	tracer().Debugf("cleared stack of %d elements", n)
}

// All returns a read-only iterator over the elements, top to bottom, for use
// with range.
//
//	for x := range s.All() { … }
//
// The iterator registers a read-only cursor when the loop starts.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for {
			x, ok := it.Next().Get()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

func (s *Stack[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}

// detach moves the whole chain out of s, leaving s empty.
func (s *Stack[T]) detach() Stack[T] {
	moved := Stack[T]{head: take(&s.head), length: s.length}
	s.length = 0
	assertThat(s.head == nil, "inconsistency: head must be empty after detaching chain")
	return moved
}
