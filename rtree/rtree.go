// Package rtree implements an in-memory R-tree over 2-D points. Points are
// inserted one at a time; overflowing nodes are split by exhaustive search
// over sorted orderings, minimizing the summed half-perimeter of the two
// halves. The tree never shrinks: there is no deletion or rebalancing.
package rtree

import (
	"fmt"
	"math"
)

// Point is a single indexed entry: a 2-D coordinate with an attached payload.
type Point[T any] struct {
	X, Y float64
	Data T
}

// Node is a vertex of the tree. A leaf node holds points, an internal node
// holds child nodes, never both. Every node keeps the minimum bounding
// rectangle of its contents.
type Node[T any] struct {
	parent   *Node[T]
	children []*Node[T]
	points   []Point[T]
	box      Rect
}

// Leaf reports whether the node holds points rather than child nodes.
func (n *Node[T]) Leaf() bool {
	return len(n.children) == 0
}

// Points returns the points held by a leaf node. The returned slice must not
// be modified.
func (n *Node[T]) Points() []Point[T] {
	return n.points
}

// Children returns the child nodes of an internal node. The returned slice
// must not be modified.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// Bound returns the minimum bounding rectangle of everything under the node.
// Undefined for a node that holds no entries yet.
func (n *Node[T]) Bound() Rect {
	return n.box
}

func (n *Node[T]) entryCount() int {
	if n.Leaf() {
		return len(n.points)
	}
	return len(n.children)
}

// recomputeBound re-establishes the MBR invariant from the node's current
// contents.
func (n *Node[T]) recomputeBound() {
	if n.Leaf() {
		box := rectFromPoint(n.points[0].X, n.points[0].Y)
		for _, p := range n.points[1:] {
			box = box.extendPoint(p.X, p.Y)
		}
		n.box = box
		return
	}
	box := n.children[0].box
	for _, c := range n.children[1:] {
		box = box.union(c.box)
	}
	n.box = box
}

func (n *Node[T]) attach(child *Node[T]) {
	n.children = append(n.children, child)
	child.parent = n
}

func (n *Node[T]) detach(child *Node[T]) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// RTree is an R-tree over 2-D points carrying payloads of type T. It is not
// safe for concurrent mutation; a fully built tree may be read from any
// number of goroutines.
type RTree[T any] struct {
	root      *Node[T]
	branching int
	minFill   int
	size      int
}

// New creates an empty tree. The branching factor defaults to
// DefaultBranchingFactor and can be overridden with WithBranchingFactor; a
// factor the split ranges cannot satisfy is rejected here rather than
// surfacing as a degenerate split later.
func New[T any](opts ...Option) (*RTree[T], error) {
	options := loadOptions(opts...)

	b := options.branching
	if b < 2 {
		return nil, fmt.Errorf("rtree: branching factor must be at least 2, got %d", b)
	}
	minFill := int(math.Ceil(0.4 * float64(b)))
	if 2*minFill > b+1 {
		return nil, fmt.Errorf("rtree: branching factor %d leaves no valid split positions", b)
	}

	return &RTree[T]{
		root:      &Node[T]{},
		branching: b,
		minFill:   minFill,
	}, nil
}

// Root returns the root node. For an empty tree this is a leaf with no
// points.
func (t *RTree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of points in the tree.
func (t *RTree[T]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no points.
func (t *RTree[T]) Empty() bool {
	return t.size == 0
}

// Bound returns the minimum bounding rectangle of the whole tree, or false
// if the tree is empty.
func (t *RTree[T]) Bound() (Rect, bool) {
	if t.Empty() {
		return Rect{}, false
	}
	return t.root.box, true
}

// BranchingFactor returns the maximum number of entries a node may hold.
func (t *RTree[T]) BranchingFactor() int {
	return t.branching
}

// MinFill returns the minimum number of entries each half of a split is
// guaranteed to hold.
func (t *RTree[T]) MinFill() int {
	return t.minFill
}
