package tree23

import "golang.org/x/exp/constraints"

// deletePhase tracks where a recursive delete currently is.
type deletePhase int

const (
	// phaseDownwards: still descending toward the key.
	phaseDownwards deletePhase = iota
	// phaseFixHole: a child has been left without elements; ancestors
	// must rebalance before the delete can finish.
	phaseFixHole
	// phaseDone: finished; deleteState.found says whether the key
	// existed.
	phaseDone
)

// deleteState is threaded by pointer through the whole recursive delete.
// It is confined to one call stack and never escapes it.
type deleteState[K constraints.Ordered, V any] struct {
	key         K
	phase       deletePhase
	found       bool
	predecessor Element[K, V]
}

// Delete removes the element with the given key, reporting whether it
// was present. The tree is left unchanged when the key is absent.
func (m *Map[K, V]) Delete(key K) bool {
	if m.root == nil {
		return false
	}
	st := &deleteState[K, V]{key: key, phase: phaseDownwards}
	m.root.delete(st)
	switch st.phase {
	case phaseDone:
		if st.found {
			m.length--
		}
		return st.found
	case phaseFixHole:
		// The hole reached the root: the tree shrinks one level, or
		// empties entirely if the root was a leaf.
		m.root = m.root.child1
		m.length--
		return true
	default:
		panic("tree23: delete finished while still descending")
	}
}

// delete is the downward phase. It locates the key, removes it at a leaf
// (replacing an internal hit with its in-order predecessor first) and
// then lets fixHole resolve whatever the child reported.
func (n *node[K, V]) delete(st *deleteState[K, V]) {
	if n.isLeaf() {
		if n.elem1.Key == st.key {
			if n.elem2 != nil {
				n.elem1 = *n.elem2
				n.elem2 = nil
				st.phase = phaseDone
				st.found = true
				return
			}
			// Sole element removed: this leaf is now a hole.
			st.phase = phaseFixHole
			return
		}
		if n.elem2 != nil && n.elem2.Key == st.key {
			n.elem2 = nil
			st.phase = phaseDone
			st.found = true
			return
		}
		st.phase = phaseDone
		st.found = false
		return
	}

	var childNum int
	switch {
	case st.key < n.elem1.Key:
		n.child1.delete(st)
		childNum = 1
	case st.key > n.elem1.Key:
		switch {
		case n.elem2 == nil || st.key < n.elem2.Key:
			n.child2.delete(st)
			childNum = 2
		case st.key > n.elem2.Key:
			n.child3.delete(st)
			childNum = 3
		default:
			// Matched elem2. Its children must stay attached, so pull
			// up the in-order predecessor from child2 instead.
			n.child2.findPredecessor(st)
			pred := st.predecessor
			n.elem2 = &pred
			childNum = 2
		}
	default:
		// Matched elem1; same predecessor replacement, from child1.
		n.child1.findPredecessor(st)
		n.elem1 = st.predecessor
		childNum = 1
	}
	n.fixHole(childNum, st)
}

// fixHole is the upward phase, shared by delete and findPredecessor.
// When the child at childNum has been left empty it either borrows an
// element from a 3-node sibling (rotated through this node) or merges
// the hole, the separating element and a 2-node sibling into one node.
// A merge under a 2-node parent empties the parent as well, re-emitting
// phaseFixHole for the next ancestor; every other case ends the
// propagation.
func (n *node[K, V]) fixHole(childNum int, st *deleteState[K, V]) {
	switch st.phase {
	case phaseDone:
		return
	case phaseDownwards:
		panic("tree23: hole fixing reached while still descending")
	}

	child1, child2 := n.child1, n.child2

	if n.elem2 == nil {
		// 2-node parent.
		if childNum == 1 {
			if child2.elem2 == nil {
				//   (a)            (o)
				//  /   \    =>      |
				// (o)  (b)        (a,b)
				//  |   / \       /  |  \
				// (c) (d) (e)   (c) (d) (e)
				child2.addLeft(n.elem1, child1.child1)
				n.child1 = n.child2
				n.child2 = nil
			} else {
				//   (a)              (b)
				//  /   \     =>     /   \
				// (o)  (b,c)      (a)   (c)
				//  |   / | \      / \   / \
				// (d) (e)(f)(g) (d)(e) (f)(g)
				child1.elem1 = n.elem1
				n.elem1, child1.child2 = child2.trimLeft()
				st.phase = phaseDone
				st.found = true
			}
		} else {
			if child1.elem2 == nil {
				//   (a)            (o)
				//  /   \    =>      |
				// (b)  (o)        (b,a)
				// / \   |        /  |  \
				// ..   (c)       ..    (c)
				child1.addRight(n.elem1, child2.child1)
				n.child2 = nil
			} else {
				//     (a)            (c)
				//    /   \    =>    /   \
				// (b,c)  (o)      (b)   (a)
				// / | \   |       / \   / \
				// ..  (e) (f)     ..   (e)(f)
				child2.elem1 = n.elem1
				child2.child2 = child2.child1
				n.elem1, child2.child1 = child1.trimRight()
				st.phase = phaseDone
				st.found = true
			}
		}
		return
	}

	// 3-node parent: the hole is absorbed at this level either way.
	child3 := n.child3
	switch childNum {
	case 1:
		if child2.elem2 == nil {
			//    (a,b)              (b)
			//   /  |  \    =>      /   \
			//  (o) (c) ..       (a,c)   ..
			//   |  / \          / | \
			//  (d)(e)(f)      (d)(e)(f)
			child2.addLeft(n.elem1, child1.child1)
			n.trimLeft()
		} else {
			//    (a,b)               (c,b)
			//   /  |   \    =>      /  |  \
			//  (o)(c,d) ..        (a) (d)  ..
			//   |  /|\            / \ / \
			child1.elem1 = n.elem1
			n.elem1, child1.child2 = child2.trimLeft()
		}
	case 2:
		if child1.elem2 == nil {
			//    (a,b)             (b)
			//   /  |  \    =>     /   \
			//  (c) (o) ..      (c,a)   ..
			//  / \  |          / | \
			// (d)(e)(f)      (d)(e)(f)
			child1.addRight(n.elem1, child2.child1)
			n.elem1 = *n.elem2
			n.elem2 = nil
			n.child2 = n.child3
			n.child3 = nil
		} else {
			//     (a,b)            (d,b)
			//    /  |  \    =>    /  |  \
			// (c,d) (o) ..      (c) (a)  ..
			// / | \  |          / \ / \
			child2.elem1 = n.elem1
			child2.child2 = child2.child1
			n.elem1, child2.child1 = child1.trimRight()
		}
	default:
		if child2.elem2 == nil {
			//    (a,b)             (a)
			//   /  |  \    =>     /   \
			//  ..  (c) (o)       ..  (c,b)
			//      / \  |            / | \
			//    .. (d)(e)          ..(d)(e)
			sep := *n.elem2
			n.elem2 = nil
			child2.addRight(sep, child3.child1)
			n.child3 = nil
		} else {
			//    (a,b)              (a,d)
			//   /  |   \    =>     /  |  \
			//  .. (c,d) (o)       .. (c) (b)
			//     / | \  |           / \ / \
			child3.elem1 = *n.elem2
			child3.child2 = child3.child1
			var sep Element[K, V]
			sep, child3.child1 = child2.trimRight()
			n.elem2 = &sep
		}
	}
	st.phase = phaseDone
	st.found = true
}

// findPredecessor walks to the rightmost leaf under n, extracts its last
// element into st.predecessor, and repairs any hole left behind on the
// way back up using the same fixHole routine as a plain delete.
func (n *node[K, V]) findPredecessor(st *deleteState[K, V]) {
	switch {
	case n.child3 != nil:
		n.child3.findPredecessor(st)
		n.fixHole(3, st)
	case n.child2 != nil:
		n.child2.findPredecessor(st)
		n.fixHole(2, st)
	default:
		if n.elem2 != nil {
			st.predecessor = *n.elem2
			n.elem2 = nil
			st.phase = phaseDone
			st.found = true
			return
		}
		st.predecessor = n.elem1
		st.phase = phaseFixHole
	}
}
