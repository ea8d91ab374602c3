package list

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	l := New[int]()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Head().IsNothing())
	assert.True(t, l.Tail().IsEmpty())
	assert.Equal(t, "()", l.String())
}

func TestListPrepending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	a := New[int]()
	b := a.Prepending(1).Prepending(2)
	c := a.Prepending(3)
	assert.True(t, a.IsEmpty(), "expected a to remain empty")
	if diff := cmp.Diff([]int{2, 1}, slices.Collect(b.All())); diff != "" {
		t.Errorf("b mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, slices.Collect(c.All())); diff != "" {
		t.Errorf("c mismatch (-want +got):\n%s", diff)
	}
	c.Release()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "(2 1)", b.String(), "expected b to survive release of c")
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Head().WithDefault(-1))
}

func TestListPrependingLeavesReceiver(t *testing.T) {
	base := Of(1, 2)
	ext := base.Prepending(0)
	assert.Equal(t, "(1 2)", base.String())
	assert.Equal(t, "(0 1 2)", ext.String())
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 3, ext.Len())
}

func TestListStructuralSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	var destroyed []string
	base := New(OnDestroy(func(s string) {
		destroyed = append(destroyed, s)
	})).Prepending("tail")
	x := base.Prepending("x")
	y := base.Prepending("y")
	require.Same(t, x.head.next, y.head.next, "expected x and y to share their tail node")
	require.Same(t, base.head, x.head.next)
	assert.Equal(t, 3, base.head.Refs(), "tail is owned by base, x and y")

	base.Release()
	assert.Empty(t, destroyed)
	assert.Equal(t, 2, x.head.next.Refs())

	x.Release()
	if diff := cmp.Diff([]string{"x"}, destroyed); diff != "" {
		t.Errorf("destroyed mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "(y tail)", y.String(), "expected shared tail to survive for y")

	y.Release()
	if diff := cmp.Diff([]string{"x", "y", "tail"}, destroyed); diff != "" {
		t.Errorf("destroyed mismatch (-want +got):\n%s", diff)
	}
}

func TestListReleaseTwice(t *testing.T) {
	count := 0
	l := New(OnDestroy(func(int) { count++ })).Prepending(1).Prepending(2)
	l.Release()
	l.Release()
	// the intermediate handle of 1 is still alive
	assert.Equal(t, 1, count)
}

func TestListReleaseLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 100000
	count := 0
	l := New(OnDestroy(func(int) { count++ }))
	for i := 0; i < n; i++ {
		next := l.Prepending(i)
		l.Release()
		l = next
	}
	assert.Equal(t, n, l.Len())
	assert.Equal(t, 0, count)
	l.Release()
	assert.Equal(t, n, count)
}

func TestListReleaseStopsAtSharedNode(t *testing.T) {
	count := 0
	base := New(OnDestroy(func(int) { count++ })).Prepending(1).Prepending(2)
	long := base.Clone()
	for i := 3; i <= 10; i++ {
		next := long.Prepending(i)
		long.Release()
		long = next
	}
	long.Release()
	assert.Equal(t, 8, count, "expected only the nodes in front of base to be destroyed")
	assert.Equal(t, "(2 1)", base.String())
}

func TestListTail(t *testing.T) {
	l := Of(1, 2, 3)
	tl := l.Tail()
	assert.Equal(t, "(2 3)", tl.String())
	assert.Equal(t, 2, tl.Len())
	assert.Same(t, l.head.next, tl.head)
	assert.Equal(t, 2, tl.head.Refs())
	l.Release()
	assert.Equal(t, "(2 3)", tl.String())
	assert.Equal(t, 1, tl.head.Refs())
}

func TestListDestroyedNodeAccess(t *testing.T) {
	l := Of(1)
	node := l.head
	l.Release()
	assert.Panics(t, func() { node.Value() })
	assert.Equal(t, "(†)", node.String())
}

func TestListNilHandle(t *testing.T) {
	var l *List[int]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "(1)", l.Prepending(1).String())
	l.Release()
}
