// Package queue implements a FIFO queue over a linked node chain.
package queue

// A Queue holds elements first-in first-out. Push, Pop, Front and Back are
// O(1).
//
// The zero value is an empty queue ready for use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Push appends value at the back of the queue.
func (q *Queue[T]) Push(value T) {
	n := &node[T]{value: value}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Pop removes and returns the front element. It reports false on an empty
// queue.
func (q *Queue[T]) Pop() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.value, true
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// Back returns the back element without removing it.
func (q *Queue[T]) Back() (T, bool) {
	if q.tail == nil {
		var zero T
		return zero, false
	}
	return q.tail.value, true
}

// Swap exchanges the contents of the two queues. Swapping a queue with
// itself is a no-op.
func (q *Queue[T]) Swap(other *Queue[T]) {
	if q == other {
		return
	}
	*q, *other = *other, *q
}

// Each calls fn for every element front to back until fn returns false.
func (q *Queue[T]) Each(fn func(T) bool) {
	for n := q.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Clear drops every element.
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.size = 0
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Clone returns a deep copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	n := &Queue[T]{}
	for cur := q.head; cur != nil; cur = cur.next {
		n.Push(cur.value)
	}
	return n
}

// CopyFrom replaces the queue's contents with a deep copy of other.
// Copying a queue onto itself is a no-op.
func (q *Queue[T]) CopyFrom(other *Queue[T]) {
	if q == other {
		return
	}
	*q = *other.Clone()
}

// MoveFrom transfers other's contents into the queue and leaves other
// empty. Moving a queue onto itself is a no-op.
func (q *Queue[T]) MoveFrom(other *Queue[T]) {
	if q == other {
		return
	}
	*q = *other
	*other = Queue[T]{}
}
