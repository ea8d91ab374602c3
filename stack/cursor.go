package stack

import (
	"iter"

	"github.com/npillmayer/lists/maybe"
)

// --- Consuming cursor ------------------------------------------------------

// IntoIter is a cursor which owns the nodes it iterates over. Every step pops the
// next element, handing ownership over to the caller.
type IntoIter[T any] struct {
	rest Stack[T]
}

// IntoIter moves all elements of s into a consuming cursor. s is empty afterwards
// and live cursors on s are revoked.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	s.guard.mutate()
	return &IntoIter[T]{rest: s.detach()}
}

// Next pops the next element. Once it has returned Nothing, it will always return Nothing.
func (it *IntoIter[T]) Next() maybe.Maybe[T] {
	return it.rest.Pop()
}

// All drains the cursor for use with range.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next().Get()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// --- Read-only cursor ------------------------------------------------------

// Iter is a read-only cursor over the elements of a stack. Any number of Iters may
// be live at the same time.
type Iter[T any] struct {
	next  *node[T]
	owner *Stack[T]
	epoch uint64
}

// Iter creates a read-only cursor, starting at the top of the stack.
// A live mutable cursor on s is revoked.
func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{
		next:  s.head,
		owner: s,
		epoch: s.guard.share(),
	}
}

// Next returns the next element or Nothing at the end of the stack.
// Next panics if the stack has been mutated since the cursor was created.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	if it.next == nil {
		return maybe.Nothing[T]()
	}
	it.owner.guard.check(it.epoch, "read-only")
	n := it.next
	it.next = n.next
	return maybe.Just(n.elem)
}

// --- Mutable cursor --------------------------------------------------------

// IterMut is a cursor yielding pointers to the elements of a stack, allowing
// clients to modify elements in place. Every node is visited at most once.
//
// At most one IterMut may be live for a stack, and no Iter alongside it.
type IterMut[T any] struct {
	next  *node[T]
	owner *Stack[T]
	epoch uint64
}

// IterMut creates a mutable cursor, starting at the top of the stack.
// All other live cursors on s are revoked.
func (s *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{
		next:  s.head,
		owner: s,
		epoch: s.guard.exclusive(),
	}
}

// Next returns a pointer to the next element or Nothing at the end of the stack.
// Next panics if the cursor has been revoked.
//
// The cursor gives up its handle on the current node before moving on to the node's
// tail; there is no way back to a node already visited.
func (it *IterMut[T]) Next() maybe.Maybe[*T] {
	if it.next == nil {
		if it.owner != nil {
			it.owner.guard.release(it.epoch)
			it.owner = nil
		}
		return maybe.Nothing[*T]()
	}
	it.owner.guard.check(it.epoch, "mutable")
	n := take(&it.next)
	it.next = n.next
	return maybe.Just(&n.elem)
}

// All drains the cursor for use with range.
func (it *IterMut[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.Next().Get()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
