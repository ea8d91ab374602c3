package stack

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.stack")
	defer teardown()
	//
	s := New[int]()
	assert.True(t, s.Pop().IsNothing(), "pop on a fresh stack")
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Pop().WithDefault(-1))
	assert.Equal(t, 2, s.Pop().WithDefault(-1))
	s.Push(4)
	s.Push(5)
	assert.Equal(t, 5, s.Pop().WithDefault(-1))
	assert.Equal(t, 4, s.Pop().WithDefault(-1))
	assert.Equal(t, 1, s.Pop().WithDefault(-1))
	assert.True(t, s.Pop().IsNothing(), "pop after last element")
	assert.True(t, s.Pop().IsNothing(), "pop keeps returning nothing")
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
}

func TestStackZeroValue(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	if v, ok := s.Pop().Get(); !ok || v != "a" {
		t.Errorf("expected zero-value stack to pop pushed element, is (%q, %v)", v, ok)
	}
}

func TestStackPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.stack")
	defer teardown()
	//
	s := New[int]()
	assert.True(t, s.Peek().IsNothing())
	assert.True(t, s.PeekMut().IsNothing())
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Peek().WithDefault(-1))
	top, ok := s.PeekMut().Get()
	require.True(t, ok, "expected PeekMut to find top element")
	require.Equal(t, 3, *top)
	*top = 42
	assert.Equal(t, 42, s.Peek().WithDefault(-1))
	assert.Equal(t, 42, s.Pop().WithDefault(-1))
	assert.Equal(t, 2, s.Peek().WithDefault(-1))
}

func TestStackPopUnlinksNode(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	n := s.head
	s.Pop()
	if n.next != nil {
		t.Error("expected popped node to be unlinked from the chain, isn't")
	}
	if s.head == nil || s.head.elem != 1 {
		t.Errorf("expected head to be the remaining element, is %v", s)
	}
}

func TestStackClearLong(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.stack")
	defer teardown()
	//
	const n = 100000
	s := New[int]()
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	bottom := s.head
	for bottom.next != nil {
		bottom = bottom.next
	}
	second := s.head.next
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, second.next, "expected inner nodes to be unlinked by Clear")
	assert.Equal(t, 0, bottom.elem)
	s.Push(7)
	assert.Equal(t, 7, s.Pop().WithDefault(-1), "expected cleared stack to be usable")
}

func TestStackString(t *testing.T) {
	s := New[int]()
	if s.String() != "[]" {
		t.Errorf("expected empty stack to print as [], is %s", s)
	}
	s.Push(1)
	s.Push(2)
	if s.String() != "[2 1]" {
		t.Errorf("expected stack to print as [2 1], is %s", s)
	}
}
