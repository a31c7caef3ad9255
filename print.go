package tree23

import (
	"fmt"
	"io"
	"strings"
)

// String renders the tree one node per line, children indented one "| "
// deeper than their parent. Diagnostic only.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	m.Dump(&b)
	return b.String()
}

// Dump writes the String rendering to w.
func (m *Map[K, V]) Dump(w io.Writer) {
	if m.root == nil {
		fmt.Fprintln(w, "empty tree")
		return
	}
	fmt.Fprintf(w, "Tree(%d):\n", m.length)
	m.root.dump(w, 0)
}

func (n *node[K, V]) dump(w io.Writer, indent int) {
	fmt.Fprint(w, strings.Repeat("| ", indent))
	if n.elem2 != nil {
		fmt.Fprintf(w, "%v %v\n", n.elem1.Key, n.elem2.Key)
	} else {
		fmt.Fprintf(w, "%v\n", n.elem1.Key)
	}
	for _, c := range []*node[K, V]{n.child1, n.child2, n.child3} {
		if c != nil {
			c.dump(w, indent+1)
		}
	}
}
