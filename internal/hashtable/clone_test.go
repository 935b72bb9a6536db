package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Clone(t *testing.T) {
	src, err := New[string, int](Options[string]{Capacity: 4})
	require.NoError(t, err)
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		src.Insert(k, i)
	}

	dst := src.Clone()
	assert.Equal(t, src.Size(), dst.Size())
	assert.Equal(t, src.Capacity(), dst.Capacity())
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		sv, err := src.Get(k)
		require.NoError(t, err)
		dv, err := dst.Get(k)
		require.NoError(t, err)
		assert.Equal(t, *sv, *dv)
	}

	// Mutations must not leak in either direction.
	dst.Insert("a", 999)
	require.NoError(t, dst.Remove("b"))
	sv, err := src.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 0, *sv)
	assert.True(t, src.ContainsKey("b"))

	src.Insert("f", 5)
	assert.False(t, dst.ContainsKey("f"))
}

func TestTable_CopyFrom(t *testing.T) {
	src, err := New[string, int](Options[string]{})
	require.NoError(t, err)
	src.Insert("x", 1)
	src.Insert("y", 2)

	dst, err := New[string, int](Options[string]{Capacity: 4})
	require.NoError(t, err)
	dst.Insert("stale", 99)

	dst.CopyFrom(src)
	assert.Equal(t, 2, dst.Size())
	assert.False(t, dst.ContainsKey("stale"))
	v, err := dst.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 2, *v)

	// Independent of the source afterwards.
	require.NoError(t, src.Remove("x"))
	assert.True(t, dst.ContainsKey("x"))

	// Self-copy is a no-op.
	dst.CopyFrom(dst)
	assert.Equal(t, 2, dst.Size())
	assert.True(t, dst.ContainsKey("x"))
}

func TestTable_MoveFrom(t *testing.T) {
	src, err := New[string, int](Options[string]{Capacity: 4})
	require.NoError(t, err)
	src.Insert("a", 1)
	src.Insert("b", 2)

	dst, err := New[string, int](Options[string]{})
	require.NoError(t, err)
	dst.Insert("old", 0)

	dst.MoveFrom(src)
	assert.Equal(t, 2, dst.Size())
	assert.False(t, dst.ContainsKey("old"))
	v, err := dst.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, *v)

	// The source is empty but stays usable.
	assert.True(t, src.IsEmpty())
	assert.Equal(t, DefaultCapacity, src.Capacity())
	src.Insert("fresh", 7)
	assert.Equal(t, 1, src.Size())
	assert.False(t, dst.ContainsKey("fresh"))

	// Self-move is a no-op.
	dst.MoveFrom(dst)
	assert.Equal(t, 2, dst.Size())
	assert.True(t, dst.ContainsKey("b"))
}
