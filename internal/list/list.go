package list

import (
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by InsertAt for positions outside [0, Len].
var ErrIndexOutOfRange = errors.New("index out of range")

// A List is a doubly linked list. All end operations are O(1).
//
// The zero value is an empty list ready for use.
type List[T comparable] struct {
	head *listNode[T]
	tail *listNode[T]
	size int
}

type listNode[T comparable] struct {
	value T
	prev  *listNode[T]
	next  *listNode[T]
}

// PushFront prepends value to the list.
func (l *List[T]) PushFront(value T) {
	n := &listNode[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends value to the list.
func (l *List[T]) PushBack(value T) {
	n := &listNode[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// InsertAt inserts value before position index. Index 0 prepends, index
// Len appends. It fails with ErrIndexOutOfRange for any other position
// outside the list.
func (l *List[T]) InsertAt(index int, value T) error {
	switch {
	case index < 0 || index > l.size:
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", index, l.size)
	case index == 0:
		l.PushFront(value)
		return nil
	case index == l.size:
		l.PushBack(value)
		return nil
	}

	at := l.head
	for i := 0; i < index; i++ {
		at = at.next
	}
	n := &listNode[T]{value: value, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++
	return nil
}

// PopFront removes and returns the first element. It reports false on an
// empty list.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.unlink(n)
	return n.value, true
}

// PopBack removes and returns the last element. It reports false on an
// empty list.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.value, true
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Remove unlinks the first node holding value and reports whether one was
// found.
func (l *List[T]) Remove(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			l.unlink(n)
			return true
		}
	}
	return false
}

// Contains reports whether value is in the list.
func (l *List[T]) Contains(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}
	return false
}

// Each calls fn for every element front to back until fn returns false.
func (l *List[T]) Each(fn func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// EachReverse calls fn for every element back to front until fn returns
// false.
func (l *List[T]) EachReverse(fn func(T) bool) {
	for n := l.tail; n != nil; n = n.prev {
		if !fn(n.value) {
			return
		}
	}
}

// Clear drops every element.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Clone returns a deep copy of the list.
func (l *List[T]) Clone() *List[T] {
	n := &List[T]{}
	for cur := l.head; cur != nil; cur = cur.next {
		n.PushBack(cur.value)
	}
	return n
}

// CopyFrom replaces the list's contents with a deep copy of other. Copying
// a list onto itself is a no-op.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}
	*l = *other.Clone()
}

// MoveFrom transfers other's contents into the list and leaves other
// empty. Moving a list onto itself is a no-op.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	*l = *other
	*other = List[T]{}
}

func (l *List[T]) unlink(n *listNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
}
