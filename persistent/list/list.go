package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// List is a handle to a persistent list. Handles are cheap; each one owns one
// reference to the head node of its list.
//
// Handles must be passed around as pointers. Copying the struct itself would
// duplicate a reference without registering it; use Clone instead.
type List[T any] struct {
	head   *Node[T]
	length int
	props  *props[T]
}

type props[T any] struct {
	onDestroy func(T)
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(*props[T])

// OnDestroy is an option to set a hook which is called with the element of every
// node destroyed because its last owner went away. All lists derived from the
// new list share the hook.
//
//	l := list.New(list.OnDestroy(func(s string) { fmt.Println("gone:", s) }))
func OnDestroy[T any](f func(T)) Option[T] {
	return func(p *props[T]) {
		p.onDestroy = f
	}
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	p := &props[T]{}
	for _, option := range opts {
		option(p)
	}
	return &List[T]{props: p}
}

// Of creates a list holding items, the first item being the head of the list.
func Of[T any](items ...T) *List[T] {
	l := New[T]()
	for i := len(items) - 1; i >= 0; i-- {
		next := l.Prepending(items[i])
		l.Release()
		l = next
	}
	return l
}

// --- API -------------------------------------------------------------------

// Prepending returns a new list with elem as its head and l as its tail.
// l is not modified; the new list shares all of l's nodes.
func (l *List[T]) Prepending(elem T) *List[T] {
	if l == nil {
		return &List[T]{head: newNode[T](elem, nil), length: 1, props: &props[T]{}}
	}
	tracer().Debugf("prepending %v to list of length %d", elem, l.length)
	return &List[T]{
		head:   newNode(elem, l.head),
		length: l.length + 1,
		props:  l.properties(),
	}
}

// Head returns the first element of l, or Nothing for an empty list.
func (l *List[T]) Head() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.Value())
}

// Tail returns a new handle for the list following the head of l. The tail of an
// empty list is empty.
func (l *List[T]) Tail() *List[T] {
	if l.IsEmpty() {
		return &List[T]{props: l.properties()}
	}
	return &List[T]{
		head:   l.head.next.retain(),
		length: l.length - 1,
		props:  l.properties(),
	}
}

// Clone returns a new handle for the same list.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		return New[T]()
	}
	return &List[T]{head: l.head.retain(), length: l.length, props: l.properties()}
}

// Release gives up the handle's reference to the list's nodes. Nodes no longer owned
// by any list are destroyed. Afterwards, l is empty; releasing it again is a no-op.
func (l *List[T]) Release() {
	if l == nil || l.head == nil {
		return
	}
	head := l.head
	l.head, l.length = nil, 0
	n := release(head, l.properties().onDestroy)
	tracer().Debugf("released list handle, %d node(s) destroyed", n)
}

// IsEmpty is true for a list without elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// All returns an iterator over the elements of l, for use with range.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range l.Nodes() {
			if !yield(node.Value()) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of l, starting with the head.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l == nil {
			return
		}
		for node := l.head; node != nil; node = node.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	first := true
	for x := range l.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte(')')
	return b.String()
}

func (l *List[T]) properties() *props[T] {
	if l == nil || l.props == nil {
		return &props[T]{}
	}
	return l.props
}
