// Package nearest implements nearest-neighbor queries over 2-D point sets:
// a linear-scan baseline, a best-first traversal of an R-tree, and a
// divide-and-conquer variant over a pair of trees built from the two halves
// of the dataset.
package nearest

import (
	"math"
	"slices"
	"sort"

	"github.com/royalcat/rtreeq/rtree"
	"github.com/sourcegraph/conc"
)

func distanceSquared(x1, y1, x2, y2 float64) (distance float64) {
	d0 := (x1 - x2)
	d1 := (y1 - y2)
	return d0*d0 + d1*d1
}

// SequentialScan returns the point closest to (qx, qy) by Euclidean
// distance, checking every point. It is the correctness baseline for the
// tree-backed searches. Returns false if points is empty.
func SequentialScan[T any](points []rtree.Point[T], qx, qy float64) (rtree.Point[T], bool) {
	var nearest rtree.Point[T]
	minDist := math.Inf(1)
	for _, p := range points {
		if dist := distanceSquared(qx, qy, p.X, p.Y); dist < minDist {
			minDist = dist
			nearest = p
		}
	}
	return nearest, !math.IsInf(minDist, 1)
}

// BestFirst returns the point in the tree closest to (qx, qy). The traversal
// is depth-first with the children of each internal node visited
// closest-centroid-first. The ordering is local to each node rather than a
// global frontier queue, so nodes are not visited in globally increasing
// distance order. Returns false if the tree is empty.
func BestFirst[T any](t *rtree.RTree[T], qx, qy float64) (rtree.Point[T], bool) {
	var nearest rtree.Point[T]
	minDist := math.Inf(1)

	stack := []*rtree.Node[T]{t.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Leaf() {
			for _, p := range n.Points() {
				if dist := distanceSquared(qx, qy, p.X, p.Y); dist < minDist {
					minDist = dist
					nearest = p
				}
			}
			continue
		}

		// Sorted farthest-first so the closest child ends up on top of the
		// stack.
		children := slices.Clone(n.Children())
		sort.Slice(children, func(i, j int) bool {
			xi, yi := children[i].Bound().Center()
			xj, yj := children[j].Bound().Center()
			return distanceSquared(qx, qy, xi, yi) > distanceSquared(qx, qy, xj, yj)
		})
		stack = append(stack, children...)
	}

	return nearest, !math.IsInf(minDist, 1)
}

// SplitHalves cuts the dataset into two contiguous halves by input order.
func SplitHalves[T any](points []rtree.Point[T]) (left, right []rtree.Point[T]) {
	mid := len(points) / 2
	return points[:mid], points[mid:]
}

// BuildHalves builds one tree per contiguous half of the dataset. The two
// builds share no state and run concurrently.
func BuildHalves[T any](points []rtree.Point[T], opts ...rtree.Option) (left, right *rtree.RTree[T], err error) {
	leftPoints, rightPoints := SplitHalves(points)

	left, err = rtree.New[T](opts...)
	if err != nil {
		return nil, nil, err
	}
	right, err = rtree.New[T](opts...)
	if err != nil {
		return nil, nil, err
	}

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		for _, p := range leftPoints {
			left.Insert(p)
		}
	})
	wg.Go(func() {
		for _, p := range rightPoints {
			right.Insert(p)
		}
	})
	wg.Wait()

	return left, right, nil
}

// DivideAndConquer runs a best-first search over both half trees and keeps
// the closer of the two results.
func DivideAndConquer[T any](left, right *rtree.RTree[T], qx, qy float64) (rtree.Point[T], bool) {
	l, lok := BestFirst(left, qx, qy)
	r, rok := BestFirst(right, qx, qy)
	switch {
	case !lok:
		return r, rok
	case !rok:
		return l, lok
	case distanceSquared(qx, qy, l.X, l.Y) < distanceSquared(qx, qy, r.X, r.Y):
		return l, true
	default:
		return r, true
	}
}
