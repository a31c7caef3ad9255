package tree23

// Find looks up the element with the given key. It is a pure read-only
// descent and does not allocate.
func (m *Map[K, V]) Find(key K) (Element[K, V], bool) {
	n := m.root
	for n != nil {
		switch {
		case key < n.elem1.Key:
			n = n.child1
		case key > n.elem1.Key:
			if n.elem2 == nil {
				n = n.child2
				continue
			}
			switch {
			case key < n.elem2.Key:
				n = n.child2
			case key > n.elem2.Key:
				n = n.child3
			default:
				return *n.elem2, true
			}
		default:
			return n.elem1, true
		}
	}
	var zero Element[K, V]
	return zero, false
}
