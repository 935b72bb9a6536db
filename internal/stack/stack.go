// Package stack implements a LIFO stack over a linked node chain.
package stack

// A Stack holds elements last-in first-out. Push, Pop and Top are O(1).
//
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.top = &node[T]{value: value, next: s.top}
	s.size++
}

// Pop removes and returns the top element. It reports false on an empty
// stack.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	n := s.top
	s.top = n.next
	s.size--
	return n.value, true
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	return s.top.value, true
}

// Each calls fn for every element top to bottom until fn returns false.
func (s *Stack[T]) Each(fn func(T) bool) {
	for n := s.top; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Clear drops every element.
func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Clone returns a deep copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	n := &Stack[T]{size: s.size}
	var last *node[T]
	for cur := s.top; cur != nil; cur = cur.next {
		c := &node[T]{value: cur.value}
		if last == nil {
			n.top = c
		} else {
			last.next = c
		}
		last = c
	}
	return n
}

// CopyFrom replaces the stack's contents with a deep copy of other.
// Copying a stack onto itself is a no-op.
func (s *Stack[T]) CopyFrom(other *Stack[T]) {
	if s == other {
		return
	}
	*s = *other.Clone()
}

// MoveFrom transfers other's contents into the stack and leaves other
// empty. Moving a stack onto itself is a no-op.
func (s *Stack[T]) MoveFrom(other *Stack[T]) {
	if s == other {
		return
	}
	*s = *other
	*other = Stack[T]{}
}
