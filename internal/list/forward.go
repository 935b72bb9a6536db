// Package list implements singly and doubly linked lists over node chains.
package list

// A ForwardList is a singly linked list with head and tail links. Pushing
// at either end and popping at the front are O(1); popping at the back
// costs O(n) because there is no back link to the predecessor.
//
// The zero value is an empty list ready for use.
type ForwardList[T comparable] struct {
	head *forwardNode[T]
	tail *forwardNode[T]
	size int
}

type forwardNode[T comparable] struct {
	value T
	next  *forwardNode[T]
}

// PushFront prepends value to the list.
func (l *ForwardList[T]) PushFront(value T) {
	n := &forwardNode[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends value to the list.
func (l *ForwardList[T]) PushBack(value T) {
	n := &forwardNode[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element. It reports false on an
// empty list.
func (l *ForwardList[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return n.value, true
}

// PopBack removes and returns the last element. It reports false on an
// empty list. O(n).
func (l *ForwardList[T]) PopBack() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	if l.head == l.tail {
		return l.PopFront()
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	n := l.tail
	prev.next = nil
	l.tail = prev
	l.size--
	return n.value, true
}

// Front returns the first element without removing it.
func (l *ForwardList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last element without removing it.
func (l *ForwardList[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Remove unlinks the first node holding value and reports whether one was
// found.
func (l *ForwardList[T]) Remove(value T) bool {
	var prev *forwardNode[T]
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			if prev == nil {
				l.head = n.next
			} else {
				prev.next = n.next
			}
			if n == l.tail {
				l.tail = prev
			}
			l.size--
			return true
		}
		prev = n
	}
	return false
}

// Contains reports whether value is in the list.
func (l *ForwardList[T]) Contains(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}
	return false
}

// Each calls fn for every element front to back until fn returns false.
func (l *ForwardList[T]) Each(fn func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Clear drops every element.
func (l *ForwardList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Len returns the number of elements.
func (l *ForwardList[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *ForwardList[T]) IsEmpty() bool {
	return l.size == 0
}

// Clone returns a deep copy of the list.
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	n := &ForwardList[T]{}
	for cur := l.head; cur != nil; cur = cur.next {
		n.PushBack(cur.value)
	}
	return n
}

// CopyFrom replaces the list's contents with a deep copy of other. Copying
// a list onto itself is a no-op.
func (l *ForwardList[T]) CopyFrom(other *ForwardList[T]) {
	if l == other {
		return
	}
	*l = *other.Clone()
}

// MoveFrom transfers other's contents into the list and leaves other
// empty. Moving a list onto itself is a no-op.
func (l *ForwardList[T]) MoveFrom(other *ForwardList[T]) {
	if l == other {
		return
	}
	*l = *other
	*other = ForwardList[T]{}
}
