package tree23

import "golang.org/x/exp/constraints"

// A node is a 2-node when elem2 is nil (one element, children 1-2) and a
// 3-node when elem2 is set (two elements, children 1-3). A leaf has no
// children at all. There is no parent pointer: insert and delete hand
// restructuring work back to the caller instead of walking up.
type node[K constraints.Ordered, V any] struct {
	elem1  Element[K, V]
	elem2  *Element[K, V]
	child1 *node[K, V]
	child2 *node[K, V]
	child3 *node[K, V]
}

func newNode[K constraints.Ordered, V any](el Element[K, V]) *node[K, V] {
	return &node[K, V]{elem1: el}
}

func (n *node[K, V]) isLeaf() bool {
	return n.child1 == nil
}

// addLeft grows a 2-node into a 3-node, attaching an element and a child
// subtree on the left side.
func (n *node[K, V]) addLeft(el Element[K, V], child *node[K, V]) {
	prev := n.elem1
	n.elem2 = &prev
	n.elem1 = el
	n.child3 = n.child2
	n.child2 = n.child1
	n.child1 = child
}

// addRight grows a 2-node into a 3-node, attaching an element and a child
// subtree on the right side.
func (n *node[K, V]) addRight(el Element[K, V], child *node[K, V]) {
	e := el
	n.elem2 = &e
	n.child3 = child
}

// trimLeft shrinks a 3-node back to a 2-node, detaching and returning the
// leftmost element and child.
func (n *node[K, V]) trimLeft() (Element[K, V], *node[K, V]) {
	el, child := n.elem1, n.child1
	n.elem1 = *n.elem2
	n.elem2 = nil
	n.child1 = n.child2
	n.child2 = n.child3
	n.child3 = nil
	return el, child
}

// trimRight shrinks a 3-node back to a 2-node, detaching and returning
// the rightmost element and child.
func (n *node[K, V]) trimRight() (Element[K, V], *node[K, V]) {
	el, child := *n.elem2, n.child3
	n.elem2 = nil
	n.child3 = nil
	return el, child
}
