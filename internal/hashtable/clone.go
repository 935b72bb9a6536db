package hashtable

// Clone returns a deep copy of the table: fresh buckets, fresh block list,
// same logical contents. The copy shares no state with the original beyond
// the hash function.
func (t *Table[K, V]) Clone() *Table[K, V] {
	n := &Table[K, V]{
		buckets:       make([]uint, len(t.buckets)),
		maxLoadFactor: t.maxLoadFactor,
		hash:          t.hash,
		blockList:     newBlockList[K, V](),
	}
	for i, head := range t.buckets {
		for pos := head; pos != 0; {
			e := t.blockList.ref(pos)
			ne, npos := n.blockList.alloc()
			ne.key = e.key
			ne.value = e.value
			ne.next = n.buckets[i]
			n.buckets[i] = npos
			pos = e.next
		}
	}
	n.numentries = t.numentries
	return n
}

// CopyFrom replaces the table's contents with a deep copy of other.
// Copying a table onto itself is a no-op.
func (t *Table[K, V]) CopyFrom(other *Table[K, V]) {
	if t == other {
		return
	}
	*t = *other.Clone()
}

// MoveFrom transfers other's contents into the table and leaves other as
// an empty table with the default capacity. Moving a table onto itself is
// a no-op.
func (t *Table[K, V]) MoveFrom(other *Table[K, V]) {
	if t == other {
		return
	}
	*t = *other
	*other = Table[K, V]{
		buckets:       make([]uint, DefaultCapacity),
		maxLoadFactor: t.maxLoadFactor,
		hash:          t.hash,
		blockList:     newBlockList[K, V](),
	}
}
