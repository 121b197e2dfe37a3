package rtree

// Insert adds a point to the tree, splitting any node the insertion pushes
// over the branching factor. Inserting into an empty tree never fails: the
// root simply becomes a leaf holding one point.
func (t *RTree[T]) Insert(p Point[T]) {
	t.insert(t.root, p)
	t.size++
}

func (t *RTree[T]) insert(n *Node[T], p Point[T]) {
	if n.Leaf() {
		n.points = append(n.points, p)
		n.recomputeBound()
		if t.overflowing(n) {
			t.handleOverflow(n)
		}
		return
	}

	t.insert(chooseSubtree(n, p), p)
	// Re-cover the children on the way back up; the subtree below may have
	// been reshaped by a split.
	n.recomputeBound()
}

func (t *RTree[T]) overflowing(n *Node[T]) bool {
	return n.entryCount() > t.branching
}

// chooseSubtree returns the child whose MBR grows the least, by
// half-perimeter, when extended to cover p. The first child wins ties, so
// insertion stays deterministic in child-list order.
func chooseSubtree[T any](n *Node[T], p Point[T]) *Node[T] {
	if len(n.children) == 0 {
		panic("rtree: chooseSubtree called on a node with no children")
	}

	best := n.children[0]
	bestIncrease := perimeterIncrease(best.box, p.X, p.Y)
	for _, child := range n.children[1:] {
		if inc := perimeterIncrease(child.box, p.X, p.Y); inc < bestIncrease {
			best = child
			bestIncrease = inc
		}
	}
	return best
}

// handleOverflow splits n and reattaches the two halves. A non-root split
// can push the parent over capacity in turn; the cascade terminates at the
// root, which grows the tree by one level.
func (t *RTree[T]) handleOverflow(n *Node[T]) {
	s1, s2 := t.split(n)

	if n.parent == nil {
		root := &Node[T]{}
		root.attach(s1)
		root.attach(s2)
		root.recomputeBound()
		t.root = root
		return
	}

	parent := n.parent
	parent.detach(n)
	parent.attach(s1)
	parent.recomputeBound()
	parent.attach(s2)
	parent.recomputeBound()
	if t.overflowing(parent) {
		t.handleOverflow(parent)
	}
}
