package list

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](l *List[T]) []T {
	var out []T
	l.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestList_PushPop(t *testing.T) {
	var l List[int]

	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, collect(&l))

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 2, front)
	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, 2, back)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, l.IsEmpty())

	l.PushFront(9)
	assert.Equal(t, []int{9}, collect(&l))
}

func TestList_InsertAt(t *testing.T) {
	var l List[string]
	require.NoError(t, l.InsertAt(0, "b"))
	require.NoError(t, l.InsertAt(0, "a"))
	require.NoError(t, l.InsertAt(2, "d"))
	require.NoError(t, l.InsertAt(2, "c"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, collect(&l))

	err := l.InsertAt(5, "x")
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	err = l.InsertAt(-1, "x")
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, 4, l.Len())
}

func TestList_EachReverse(t *testing.T) {
	var l List[int]
	for i := range 4 {
		l.PushBack(i)
	}

	var rev []int
	l.EachReverse(func(v int) bool {
		rev = append(rev, v)
		return true
	})
	assert.Equal(t, []int{3, 2, 1, 0}, rev)

	// Short circuit.
	n := 0
	l.EachReverse(func(int) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}

func TestList_Remove(t *testing.T) {
	var l List[int]
	for _, v := range []int{1, 2, 3, 2} {
		l.PushBack(v)
	}

	assert.True(t, l.Remove(2))
	assert.Equal(t, []int{1, 3, 2}, collect(&l))
	assert.False(t, l.Remove(42))

	// Back links must stay consistent after an interior removal.
	var rev []int
	l.EachReverse(func(v int) bool {
		rev = append(rev, v)
		return true
	})
	assert.Equal(t, []int{2, 3, 1}, rev)

	assert.True(t, l.Remove(1))
	assert.True(t, l.Remove(2))
	assert.True(t, l.Remove(3))
	assert.True(t, l.IsEmpty())
	_, ok := l.Back()
	assert.False(t, ok)
}

func TestList_CloneCopyMove(t *testing.T) {
	var src List[int]
	for i := range 3 {
		src.PushBack(i)
	}

	cp := src.Clone()
	cp.PushBack(99)
	assert.Equal(t, []int{0, 1, 2}, collect(&src))
	assert.Equal(t, []int{0, 1, 2, 99}, collect(cp))

	var dst List[int]
	dst.CopyFrom(&src)
	src.Clear()
	assert.Equal(t, []int{0, 1, 2}, collect(&dst))
	dst.CopyFrom(&dst)
	assert.Equal(t, 3, dst.Len())

	var moved List[int]
	moved.MoveFrom(&dst)
	assert.True(t, dst.IsEmpty())
	assert.Equal(t, []int{0, 1, 2}, collect(&moved))
	moved.MoveFrom(&moved)
	assert.Equal(t, 3, moved.Len())
}
