// Package bstree implements an unbalanced binary search tree.
package bstree

import "cmp"

// A Tree is a binary search tree holding distinct ordered values.
// Inserting a value that is already present is a no-op. Lookups cost
// O(log n) on average and O(n) in the worst case (a degenerate chain).
//
// The zero value is an empty tree ready for use.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

type node[T cmp.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// NewFromSlice returns a tree holding the distinct values of vs, inserted
// in order.
func NewFromSlice[T cmp.Ordered](vs []T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range vs {
		t.Insert(v)
	}
	return t
}

// Insert adds value to the tree. Duplicates are ignored.
func (t *Tree[T]) Insert(value T) {
	n := &t.root
	for *n != nil {
		switch {
		case value < (*n).value:
			n = &(*n).left
		case value > (*n).value:
			n = &(*n).right
		default:
			return
		}
	}
	*n = &node[T]{value: value}
	t.size++
}

// Contains reports whether value is in the tree.
func (t *Tree[T]) Contains(value T) bool {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Remove deletes value from the tree and reports whether it was present.
func (t *Tree[T]) Remove(value T) bool {
	n := &t.root
	for *n != nil {
		switch {
		case value < (*n).value:
			n = &(*n).left
		case value > (*n).value:
			n = &(*n).right
		default:
			t.removeNode(n)
			t.size--
			return true
		}
	}
	return false
}

// removeNode unlinks the node at *n. A node with two children is replaced
// by its in-order successor, the minimum of the right subtree.
func (t *Tree[T]) removeNode(n **node[T]) {
	switch {
	case (*n).left == nil:
		*n = (*n).right
	case (*n).right == nil:
		*n = (*n).left
	default:
		succ := &(*n).right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		(*n).value = (*succ).value
		*succ = (*succ).right
	}
}

// Min returns the smallest value in the tree. It reports false on an
// empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in the tree. It reports false on an empty
// tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Depth returns the length in nodes of the longest root-to-leaf path. An
// empty tree has depth zero.
func (t *Tree[T]) Depth() int {
	return depth(t.root)
}

func depth[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

// IsBalanced reports whether, at every node, the depths of the two
// subtrees differ by at most one.
func (t *Tree[T]) IsBalanced() bool {
	balanced := true
	var walk func(n *node[T]) int
	walk = func(n *node[T]) int {
		if n == nil || !balanced {
			return 0
		}
		dl, dr := walk(n.left), walk(n.right)
		if dl-dr > 1 || dr-dl > 1 {
			balanced = false
		}
		return 1 + max(dl, dr)
	}
	walk(t.root)
	return balanced
}

// Each calls fn for every value in ascending order until fn returns false.
func (t *Tree[T]) Each(fn func(T) bool) {
	inOrder(t.root, fn)
}

func inOrder[T cmp.Ordered](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, fn) && fn(n.value) && inOrder(n.right, fn)
}

// Clear drops every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Size returns the number of values.
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Clone returns a deep copy of the tree with the same shape.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: cloneNode(t.root), size: t.size}
}

func cloneNode[T cmp.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{value: n.value, left: cloneNode(n.left), right: cloneNode(n.right)}
}

// CopyFrom replaces the tree's contents with a deep copy of other. Copying
// a tree onto itself is a no-op.
func (t *Tree[T]) CopyFrom(other *Tree[T]) {
	if t == other {
		return
	}
	*t = *other.Clone()
}

// MoveFrom transfers other's contents into the tree and leaves other
// empty. Moving a tree onto itself is a no-op.
func (t *Tree[T]) MoveFrom(other *Tree[T]) {
	if t == other {
		return
	}
	*t = *other
	*other = Tree[T]{}
}
