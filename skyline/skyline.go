// Package skyline implements Pareto-frontier (skyline) queries over 2-D
// points, where x is a cost to minimize and y a size to maximize. A point is
// on the skyline when no other point dominates it: cheaper-or-equal and
// bigger-or-equal, strictly better in at least one of the two.
package skyline

import (
	"sort"

	"github.com/google/btree"
	"github.com/royalcat/rtreeq/rtree"
	"github.com/sourcegraph/conc"
)

// Dominates reports whether a dominates b.
func Dominates[T any](a, b rtree.Point[T]) bool {
	return a.X <= b.X && a.Y >= b.Y && (a.X < b.X || a.Y > b.Y)
}

func dominatedByAny[T any](points []rtree.Point[T], p rtree.Point[T]) bool {
	for _, other := range points {
		if Dominates(other, p) {
			return true
		}
	}
	return false
}

type orderedPoint[T any] struct {
	point rtree.Point[T]
	seq   int
}

// SequentialScan computes the skyline by checking every point against every
// other. The result is ordered by cost ascending, size descending, with
// input order breaking exact coordinate ties.
func SequentialScan[T any](points []rtree.Point[T]) []rtree.Point[T] {
	ordered := btree.NewG(2, func(a, b orderedPoint[T]) bool {
		if a.point.X != b.point.X {
			return a.point.X < b.point.X
		}
		if a.point.Y != b.point.Y {
			return a.point.Y > b.point.Y
		}
		return a.seq < b.seq
	})

	for seq, p := range points {
		if !dominatedByAny(points, p) {
			ordered.ReplaceOrInsert(orderedPoint[T]{point: p, seq: seq})
		}
	}

	skyline := make([]rtree.Point[T], 0, ordered.Len())
	ordered.Ascend(func(item orderedPoint[T]) bool {
		skyline = append(skyline, item.point)
		return true
	})
	return skyline
}

type worklistEntry[T any] struct {
	dist float64
	node *rtree.Node[T]
}

// BBS computes the skyline with a branch-and-bound traversal of the tree.
// The worklist is kept sorted ascending by each node MBR's lower-bound
// distance to the origin; a subtree is pruned without being opened when the
// dominance corner (X1, Y2) of its MBR is already dominated by the skyline
// found so far. Points are emitted in discovery order.
func BBS[T any](t *rtree.RTree[T]) []rtree.Point[T] {
	var skyline []rtree.Point[T]

	worklist := []worklistEntry[T]{{dist: t.Root().Bound().MinDistToOrigin(), node: t.Root()}}
	for len(worklist) > 0 {
		entry := worklist[0]
		worklist = worklist[1:]

		if entry.node.Leaf() {
			for _, p := range entry.node.Points() {
				if dominatedByAny(skyline, p) {
					continue
				}
				// The new point may retroactively dominate earlier members.
				kept := skyline[:0]
				for _, s := range skyline {
					if !Dominates(p, s) {
						kept = append(kept, s)
					}
				}
				skyline = append(kept, p)
			}
			continue
		}

		for _, child := range entry.node.Children() {
			box := child.Bound()
			corner := rtree.Point[T]{X: box.X1, Y: box.Y2}
			if dominatedByAny(skyline, corner) {
				continue
			}
			worklist = append(worklist, worklistEntry[T]{dist: box.MinDistToOrigin(), node: child})
		}
		sort.SliceStable(worklist, func(i, j int) bool { return worklist[i].dist < worklist[j].dist })
	}

	return skyline
}

// DivideAndConquer splits the dataset at the median cost, runs BBS over a
// tree built from each half, and reduces the concatenated partial skylines
// to the skyline of their union. The two trees are independent and are built
// and queried concurrently.
func DivideAndConquer[T any](points []rtree.Point[T], opts ...rtree.Option) ([]rtree.Point[T], error) {
	halves := [2][]rtree.Point[T]{}
	halves[0], halves[1] = splitAtMedian(points)

	var trees [2]*rtree.RTree[T]
	for i := range trees {
		t, err := rtree.New[T](opts...)
		if err != nil {
			return nil, err
		}
		trees[i] = t
	}

	var partial [2][]rtree.Point[T]
	wg := conc.NewWaitGroup()
	for i := range trees {
		i := i
		wg.Go(func() {
			for _, p := range halves[i] {
				trees[i].Insert(p)
			}
			partial[i] = BBS(trees[i])
		})
	}
	wg.Wait()

	combined := append(partial[0], partial[1]...)
	var final []rtree.Point[T]
	for _, p := range combined {
		if !dominatedByAny(combined, p) {
			final = append(final, p)
		}
	}
	return final, nil
}

// splitAtMedian partitions points at the median of x, lower half first.
func splitAtMedian[T any](points []rtree.Point[T]) (left, right []rtree.Point[T]) {
	ordered := make([]rtree.Point[T], len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].X < ordered[j].X })
	mid := len(ordered) / 2
	return ordered[:mid], ordered[mid:]
}
