package rtree

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// split partitions an overflowing node's entries into two new nodes,
// minimizing the sum of the two resulting half-perimeters. Candidate
// partitions are prefix/suffix cuts of the entries sorted along each axis:
// two orderings for a leaf (x, y), four for an internal node (each MBR
// coordinate). Every cut keeps at least minFill entries on each side.
func (t *RTree[T]) split(n *Node[T]) (*Node[T], *Node[T]) {
	lo := t.minFill
	hi := n.entryCount() - t.minFill
	if lo > hi {
		// New rejects branching factors that could get here.
		panic(fmt.Sprintf("rtree: no valid split positions for %d entries with minimum fill %d", n.entryCount(), t.minFill))
	}

	if n.Leaf() {
		return splitLeaf(n, lo, hi)
	}
	return splitInternal(n, lo, hi)
}

func splitLeaf[T any](n *Node[T], lo, hi int) (*Node[T], *Node[T]) {
	byX := slices.Clone(n.points)
	sort.Slice(byX, func(i, j int) bool { return byX[i].X < byX[j].X })
	byY := slices.Clone(n.points)
	sort.Slice(byY, func(i, j int) bool { return byY[i].Y < byY[j].Y })

	var s1, s2 *Node[T]
	best := math.Inf(1)
	for _, ordered := range [][]Point[T]{byX, byY} {
		for i := lo; i <= hi; i++ {
			left := newLeaf(slices.Clone(ordered[:i]))
			right := newLeaf(slices.Clone(ordered[i:]))
			if p := left.box.Perimeter() + right.box.Perimeter(); p < best {
				best = p
				s1, s2 = left, right
			}
		}
	}
	return s1, s2
}

func splitInternal[T any](n *Node[T], lo, hi int) (*Node[T], *Node[T]) {
	orderings := make([][]*Node[T], 4)
	keys := []func(c *Node[T]) float64{
		func(c *Node[T]) float64 { return c.box.X1 },
		func(c *Node[T]) float64 { return c.box.X2 },
		func(c *Node[T]) float64 { return c.box.Y1 },
		func(c *Node[T]) float64 { return c.box.Y2 },
	}
	for i, key := range keys {
		ordered := slices.Clone(n.children)
		sort.Slice(ordered, func(a, b int) bool { return key(ordered[a]) < key(ordered[b]) })
		orderings[i] = ordered
	}

	var s1, s2 *Node[T]
	best := math.Inf(1)
	for _, ordered := range orderings {
		for i := lo; i <= hi; i++ {
			left := newInternal(slices.Clone(ordered[:i]))
			right := newInternal(slices.Clone(ordered[i:]))
			if p := left.box.Perimeter() + right.box.Perimeter(); p < best {
				best = p
				s1, s2 = left, right
			}
		}
	}

	// Candidate construction leaves parent pointers untouched; rewire the
	// moved children to their final owners.
	for _, c := range s1.children {
		c.parent = s1
	}
	for _, c := range s2.children {
		c.parent = s2
	}
	return s1, s2
}

func newLeaf[T any](points []Point[T]) *Node[T] {
	n := &Node[T]{points: points}
	n.recomputeBound()
	return n
}

func newInternal[T any](children []*Node[T]) *Node[T] {
	n := &Node[T]{children: children}
	n.recomputeBound()
	return n
}
