package tree23

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// checkState carries what the validation traversal has seen so far.
type checkState struct {
	leafDepth int
	elements  int
}

// Check recomputes the structural invariants by full traversal: element
// order within each node, node shape, subtree key ranges against parent
// separators, uniform leaf depth and the tracked element count. It
// returns a descriptive error for the first violation found.
//
// Check is a diagnostic for tests and debugging; insert and delete never
// call it.
func (m *Map[K, V]) Check() error {
	if m.root == nil {
		if m.length != 0 {
			return fmt.Errorf("tree23: empty tree reports length %d", m.length)
		}
		return nil
	}
	st := checkState{leafDepth: -1}
	if err := m.root.check(0, &st); err != nil {
		return err
	}
	if st.elements != m.length {
		return fmt.Errorf("tree23: counted %d elements, tracked length is %d", st.elements, m.length)
	}
	return nil
}

func (n *node[K, V]) check(depth int, st *checkState) error {
	st.elements++
	if n.elem2 != nil {
		if n.elem2.Key < n.elem1.Key {
			return fmt.Errorf("tree23: elements out of order in node: %v > %v", n.elem1.Key, n.elem2.Key)
		}
		st.elements++
	}

	if n.child1 == nil {
		if n.child2 != nil || n.child3 != nil {
			return fmt.Errorf("tree23: leaf node %v has children", n.elem1.Key)
		}
		if st.leafDepth < 0 {
			st.leafDepth = depth
		} else if depth != st.leafDepth {
			return fmt.Errorf("tree23: leaf %v at depth %d, expected %d", n.elem1.Key, depth, st.leafDepth)
		}
		return nil
	}

	if n.child2 == nil {
		return fmt.Errorf("tree23: internal node %v is missing child2", n.elem1.Key)
	}
	if err := checkAtMost(n.child1, n.elem1.Key); err != nil {
		return err
	}
	if err := checkAtLeast(n.child2, n.elem1.Key); err != nil {
		return err
	}
	if n.elem2 != nil {
		if n.child3 == nil {
			return fmt.Errorf("tree23: internal 3-node %v is missing child3", n.elem1.Key)
		}
		if err := checkAtLeast(n.child3, n.elem2.Key); err != nil {
			return err
		}
	} else if n.child3 != nil {
		return fmt.Errorf("tree23: 2-node %v has a third child", n.elem1.Key)
	}

	if err := n.child1.check(depth+1, st); err != nil {
		return err
	}
	if err := n.child2.check(depth+1, st); err != nil {
		return err
	}
	if n.child3 != nil {
		return n.child3.check(depth+1, st)
	}
	return nil
}

// checkAtMost verifies the node's own element keys are <= bound. Bounds
// are non-strict so that coexisting duplicate keys pass.
func checkAtMost[K constraints.Ordered, V any](n *node[K, V], bound K) error {
	if n.elem1.Key > bound {
		return fmt.Errorf("tree23: key %v above parent separator %v", n.elem1.Key, bound)
	}
	if n.elem2 != nil && n.elem2.Key > bound {
		return fmt.Errorf("tree23: key %v above parent separator %v", n.elem2.Key, bound)
	}
	return nil
}

// checkAtLeast verifies the node's own element keys are >= bound.
func checkAtLeast[K constraints.Ordered, V any](n *node[K, V], bound K) error {
	if n.elem1.Key < bound {
		return fmt.Errorf("tree23: key %v below parent separator %v", n.elem1.Key, bound)
	}
	if n.elem2 != nil && n.elem2.Key < bound {
		return fmt.Errorf("tree23: key %v below parent separator %v", n.elem2.Key, bound)
	}
	return nil
}
