package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectForward[T comparable](l *ForwardList[T]) []T {
	var out []T
	l.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestForwardList_PushPop(t *testing.T) {
	var l ForwardList[int]
	assert.True(t, l.IsEmpty())

	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)

	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	assert.Equal(t, []int{1, 2, 3}, collectForward(&l))
	assert.Equal(t, 3, l.Len())

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)
	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, l.IsEmpty())

	// Tail must be reset so PushBack still works.
	l.PushBack(7)
	back, ok = l.Back()
	require.True(t, ok)
	assert.Equal(t, 7, back)
}

func TestForwardList_Remove(t *testing.T) {
	var l ForwardList[string]
	for _, s := range []string{"a", "b", "c", "b"} {
		l.PushBack(s)
	}

	// Only the first match goes away.
	assert.True(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c", "b"}, collectForward(&l))

	assert.False(t, l.Remove("z"))
	assert.Equal(t, 3, l.Len())

	// Removing the tail keeps the tail link valid.
	assert.True(t, l.Remove("b"))
	l.PushBack("d")
	assert.Equal(t, []string{"a", "c", "d"}, collectForward(&l))

	assert.True(t, l.Contains("c"))
	assert.False(t, l.Contains("b"))
}

func TestForwardList_CloneCopyMove(t *testing.T) {
	var src ForwardList[int]
	for i := range 5 {
		src.PushBack(i)
	}

	cp := src.Clone()
	assert.Equal(t, collectForward(&src), collectForward(cp))
	cp.PushBack(99)
	assert.Equal(t, 5, src.Len())

	var dst ForwardList[int]
	dst.PushBack(-1)
	dst.CopyFrom(&src)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collectForward(&dst))
	src.Remove(0)
	assert.Equal(t, 5, dst.Len())
	dst.CopyFrom(&dst)
	assert.Equal(t, 5, dst.Len())

	var moved ForwardList[int]
	moved.MoveFrom(&dst)
	assert.Equal(t, 5, moved.Len())
	assert.True(t, dst.IsEmpty())
	dst.PushBack(1)
	assert.Equal(t, 5, moved.Len())
	moved.MoveFrom(&moved)
	assert.Equal(t, 5, moved.Len())
}
