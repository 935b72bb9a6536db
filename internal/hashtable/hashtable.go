package hashtable

import (
	"hash/maphash"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Errors returned by table operations. Callers check them with errors.Is.
var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	DefaultCapacity      = 16
	DefaultMaxLoadFactor = 0.75

	growthFactor = 2
)

// HashFunc computes a hash for a key. Equal keys must produce equal hashes.
type HashFunc[K comparable] func(K) uint64

// defaultHashFunc returns a maphash-based hash with a per-table random seed.
func defaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Options configures a Table. The zero value selects the defaults: capacity
// 16, max load factor 0.75 and a randomly seeded maphash hash function.
type Options[K comparable] struct {
	// Capacity is the initial number of buckets. Must not be negative.
	Capacity int
	// MaxLoadFactor is the entries-per-bucket ratio that triggers growing
	// the bucket array. Must be in (0, 1].
	MaxLoadFactor float64
	// Hash overrides the hash function. It must be deterministic and
	// consistent with == on K.
	Hash HashFunc[K]
}

// A Table is a chained hash table mapping unique keys to values.
//
// The buckets contain only entry indices, rather than inlined key-value
// pairs like the standard Go map. This way, only an integer array needs to
// be resized when the table grows, preventing memory usage spikes. Entries
// live in a block list that never moves an allocated block, so value
// pointers handed out by Get stay valid across growth.
//
// A Table is not safe for concurrent use; callers in a multi-goroutine host
// must serialize access externally.
type Table[K comparable, V any] struct {
	// The number of buckets is always at least one. Each bucket holds the
	// position of the head entry of its chain, or zero for an empty chain.
	buckets    []uint
	numentries uint

	maxLoadFactor float64
	hash          HashFunc[K]

	// Head of the free list threaded through entry.next. Remove pushes
	// entry positions here and Insert pops them before growing the block
	// list.
	free uint

	blockList blockList[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
	next  uint // Position of the next chain entry, or zero.
}

// New returns an empty table configured by opts. It fails with
// ErrInvalidArgument if the capacity is negative or the max load factor is
// outside (0, 1].
func New[K comparable, V any](opts Options[K]) (*Table[K, V], error) {
	if opts.Capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity %d", opts.Capacity)
	}
	if opts.Capacity == 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.MaxLoadFactor == 0 {
		opts.MaxLoadFactor = DefaultMaxLoadFactor
	}
	if opts.MaxLoadFactor < 0 || opts.MaxLoadFactor > 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "max load factor %v not in (0,1]", opts.MaxLoadFactor)
	}
	if opts.Hash == nil {
		opts.Hash = defaultHashFunc[K]()
	}

	return &Table[K, V]{
		buckets:       make([]uint, opts.Capacity),
		maxLoadFactor: opts.MaxLoadFactor,
		hash:          opts.Hash,
		blockList:     newBlockList[K, V](),
	}, nil
}

// slot reduces the hash of key modulo the current bucket count. The modulo
// is unsigned, so the result is never negative. It is recomputed on every
// placement, never cached, because growing changes the bucket count.
func (t *Table[K, V]) slot(key K) uint {
	return uint(t.hash(key)) % uint(len(t.buckets))
}

// Insert stores value under key. An existing entry with an equal key is
// overwritten in place; otherwise a new entry is prepended to its bucket's
// chain. The table grows afterwards if the load factor invariant would be
// violated.
func (t *Table[K, V]) Insert(key K, value V) {
	s := t.slot(key)
	for pos := t.buckets[s]; pos != 0; {
		e := t.blockList.ref(pos)
		if e.key == key {
			e.value = value
			return
		}
		pos = e.next
	}

	e, pos := t.alloc()
	e.key = key
	e.value = value
	e.next = t.buckets[s]
	t.buckets[s] = pos
	t.numentries++

	if float64(t.numentries) > float64(len(t.buckets))*t.maxLoadFactor {
		t.grow()
	}
}

// Get returns a pointer to the value stored under key. Mutations through
// the pointer are visible to later lookups. It fails with ErrKeyNotFound
// if the key is absent.
func (t *Table[K, V]) Get(key K) (*V, error) {
	s := t.slot(key)
	for pos := t.buckets[s]; pos != 0; {
		e := t.blockList.ref(pos)
		if e.key == key {
			return &e.value, nil
		}
		pos = e.next
	}
	return nil, errors.Wrapf(ErrKeyNotFound, "get %v", key)
}

// ContainsKey reports whether key is present. It never mutates the table.
func (t *Table[K, V]) ContainsKey(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Remove unlinks and releases the entry stored under key. The entry's
// position goes onto the free list for reuse. It fails with ErrKeyNotFound
// if the key is absent; the table is unchanged in that case. Removing never
// shrinks the bucket array.
func (t *Table[K, V]) Remove(key K) error {
	s := t.slot(key)
	var prev uint
	for pos := t.buckets[s]; pos != 0; {
		e := t.blockList.ref(pos)
		if e.key == key {
			if prev == 0 {
				t.buckets[s] = e.next
			} else {
				t.blockList.ref(prev).next = e.next
			}
			*e = entry[K, V]{next: t.free}
			t.free = pos
			t.numentries--
			return nil
		}
		prev = pos
		pos = e.next
	}
	return errors.Wrapf(ErrKeyNotFound, "remove %v", key)
}

// Clear releases every entry and empties all chains. The bucket count is
// retained, the block list and the free list are reset.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)
	t.numentries = 0
	t.free = 0
	t.blockList = newBlockList[K, V]()
}

// Size returns the number of live entries.
func (t *Table[K, V]) Size() int {
	return int(t.numentries)
}

// IsEmpty reports whether the table holds no entries.
func (t *Table[K, V]) IsEmpty() bool {
	return t.numentries == 0
}

// Capacity returns the current number of buckets.
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// MaxLoadFactor returns the configured resize trigger ratio.
func (t *Table[K, V]) MaxLoadFactor() float64 {
	return t.maxLoadFactor
}

// Each calls fn for every entry with its bucket index until fn returns
// false. The order is bucket by bucket, chain order within a bucket; it is
// not stable across growth.
func (t *Table[K, V]) Each(fn func(bucket int, key K, value V) bool) {
	for i, head := range t.buckets {
		for pos := head; pos != 0; {
			e := t.blockList.ref(pos)
			if !fn(i, e.key, e.value) {
				return
			}
			pos = e.next
		}
	}
}

// alloc pops an entry position off the free list, or extends the block
// list if the free list is empty.
func (t *Table[K, V]) alloc() (*entry[K, V], uint) {
	if t.free != 0 {
		pos := t.free
		e := t.blockList.ref(pos)
		t.free = e.next
		e.next = 0
		return e, pos
	}
	return t.blockList.alloc()
}

func (t *Table[K, V]) grow() {
	t.rehash(growthFactor * len(t.buckets))
}

// rehash replaces the bucket array and relinks every live entry into the
// bucket its key hashes to under the new bucket count. Entries are reused
// in place, only their next links change, so the entry count and all value
// pointers survive.
func (t *Table[K, V]) rehash(newCapacity int) {
	log.Debugf("hashtable: rehash %d -> %d buckets, %d entries", len(t.buckets), newCapacity, t.numentries)

	old := t.buckets
	t.buckets = make([]uint, newCapacity)
	for _, head := range old {
		for pos := head; pos != 0; {
			e := t.blockList.ref(pos)
			next := e.next
			s := t.slot(e.key)
			e.next = t.buckets[s]
			t.buckets[s] = pos
			pos = next
		}
	}
}
