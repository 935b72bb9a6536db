package hashtable

// A blockList is a growable array of entries split into fixed-size blocks.
// Growing appends a block and never moves an existing one, so entry
// pointers stay valid for the lifetime of the list. Entry positions are
// one-based; position zero is reserved so that buckets and next links can
// use zero as the empty marker.
type blockList[K comparable, V any] struct {
	mask      uint
	maskShift uint
	blockSize uint

	size   uint
	blocks [][]entry[K, V]
}

const blockSizePower = 8

func newBlockList[K comparable, V any]() blockList[K, V] {
	blockSize := uint(1) << blockSizePower
	return blockList[K, V]{
		mask:      blockSize - 1,
		maskShift: blockSizePower,
		blockSize: blockSize,
	}
}

func (b *blockList[K, V]) index(pos uint) (idx, subIdx uint) {
	subIdx = pos & b.mask
	idx = pos >> b.maskShift
	return
}

// alloc returns the next unused entry and its position.
func (b *blockList[K, V]) alloc() (*entry[K, V], uint) {
	b.size++
	idx, subIdx := b.index(b.size)
	if int(idx) == len(b.blocks) {
		b.blocks = append(b.blocks, make([]entry[K, V], b.blockSize))
	}
	return &b.blocks[idx][subIdx], b.size
}

// ref returns the entry at the given position.
func (b *blockList[K, V]) ref(pos uint) *entry[K, V] {
	idx, subIdx := b.index(pos)
	return &b.blocks[idx][subIdx]
}

// allocated returns the number of entry slots handed out so far, including
// slots currently parked on a free list.
func (b *blockList[K, V]) allocated() uint {
	return b.size
}
