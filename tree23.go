package tree23

import "golang.org/x/exp/constraints"

// Element is a key/value pair stored in the tree. Ordering and equality
// are defined by Key alone.
type Element[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Map is a 2-3 tree keyed by any ordered scalar type.
//
// The zero Map is not usable; call New.
type Map[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	length int
}

// New creates an empty tree.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Len returns the number of elements currently in the tree.
func (m *Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the tree holds no elements.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Height returns the number of nodes on a path from the root to a leaf,
// or 0 for an empty tree. Every leaf is at this depth.
func (m *Map[K, V]) Height() int {
	h := 0
	for n := m.root; n != nil; n = n.child1 {
		h++
	}
	return h
}
