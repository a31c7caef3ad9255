package tree23

import "golang.org/x/exp/constraints"

// splitResult is what an overfull subtree hands back to its caller: the
// middle element is promoted and the remaining elements live on in two
// replacement subtrees the caller must reattach in place of the child it
// descended into.
type splitResult[K constraints.Ordered, V any] struct {
	promoted Element[K, V]
	left     *node[K, V]
	right    *node[K, V]
}

// Insert adds an element to the tree. The key is assumed not to be
// present already; see the package comment for what happens if it is.
func (m *Map[K, V]) Insert(key K, value V) {
	el := Element[K, V]{Key: key, Value: value}
	if m.root == nil {
		m.root = newNode(el)
	} else if sr := m.root.insert(el); sr != nil {
		// The split escaped the root: the tree grows one level.
		root := newNode(sr.promoted)
		root.child1 = sr.left
		root.child2 = sr.right
		m.root = root
	}
	m.length++
}

// insert descends to the leaf whose key range contains el, inserts it
// there, and resolves any split reported by the child. A nil return means
// the subtree absorbed the element; otherwise the subtree itself split
// and the caller has to restructure.
func (n *node[K, V]) insert(el Element[K, V]) *splitResult[K, V] {
	if !n.isLeaf() {
		if el.Key <= n.elem1.Key {
			sr := n.child1.insert(el)
			if sr == nil {
				return nil
			}
			if n.elem2 == nil {
				//    (a)            (p, a)
				//   /   \    =>    /   |  \
				//  sr   (b)       sl   sr' (b)
				prev := n.elem1
				n.elem2 = &prev
				n.elem1 = sr.promoted
				n.child3 = n.child2
				n.child1 = sr.left
				n.child2 = sr.right
				return nil
			}
			//    (a,b)                (a)
			//   /  |  \    =>       /     \
			//  sr (c) (d)         (p)      (b)
			//                    /   \    /   \
			//                   sl   sr' (c)  (d)
			left := newNode(sr.promoted)
			left.child1 = sr.left
			left.child2 = sr.right
			right := newNode(*n.elem2)
			right.child1 = n.child2
			right.child2 = n.child3
			return &splitResult[K, V]{promoted: n.elem1, left: left, right: right}
		}

		if n.elem2 == nil || el.Key <= n.elem2.Key {
			sr := n.child2.insert(el)
			if sr == nil {
				return nil
			}
			if n.elem2 == nil {
				//    (a)           (a, p)
				//   /   \    =>   /  |   \
				//  (b)  sr      (b)  sl  sr'
				p := sr.promoted
				n.elem2 = &p
				n.child2 = sr.left
				n.child3 = sr.right
				return nil
			}
			//    (a,b)                (p)
			//   /  |  \    =>       /     \
			//  (c) sr (d)         (a)      (b)
			//                    /   \    /   \
			//                   (c)  sl  sr'  (d)
			left := newNode(n.elem1)
			left.child1 = n.child1
			left.child2 = sr.left
			right := newNode(*n.elem2)
			right.child1 = sr.right
			right.child2 = n.child3
			return &splitResult[K, V]{promoted: sr.promoted, left: left, right: right}
		}

		sr := n.child3.insert(el)
		if sr == nil {
			return nil
		}
		//    (a,b)                (b)
		//   /  |  \    =>       /     \
		//  (c) (d) sr         (a)      (p)
		//                    /   \    /   \
		//                   (c)  (d) sl   sr'
		left := newNode(n.elem1)
		left.child1 = n.child1
		left.child2 = n.child2
		right := newNode(sr.promoted)
		right.child1 = sr.left
		right.child2 = sr.right
		return &splitResult[K, V]{promoted: *n.elem2, left: left, right: right}
	}

	// Leaf. A 3-node leaf overflows: the middle of the three candidate
	// elements is promoted and the outer two become fresh leaves.
	if n.elem2 != nil {
		if el.Key < n.elem1.Key {
			return &splitResult[K, V]{promoted: n.elem1, left: newNode(el), right: newNode(*n.elem2)}
		}
		if el.Key < n.elem2.Key {
			return &splitResult[K, V]{promoted: el, left: newNode(n.elem1), right: newNode(*n.elem2)}
		}
		return &splitResult[K, V]{promoted: *n.elem2, left: newNode(n.elem1), right: newNode(el)}
	}

	// A 2-node leaf just becomes a 3-node.
	if n.elem1.Key <= el.Key {
		e := el
		n.elem2 = &e
	} else {
		prev := n.elem1
		n.elem2 = &prev
		n.elem1 = el
	}
	return nil
}
