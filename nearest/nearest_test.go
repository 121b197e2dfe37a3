package nearest_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/royalcat/rtreeq/nearest"
	"github.com/royalcat/rtreeq/rtree"
)

func buildTree(t *testing.T, points []rtree.Point[int], opts ...rtree.Option) *rtree.RTree[int] {
	t.Helper()
	tree, err := rtree.New[int](opts...)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range points {
		tree.Insert(p)
	}
	return tree
}

func TestAgreementScenario(t *testing.T) {
	points := []rtree.Point[int]{
		{X: 0, Y: 0, Data: 1},
		{X: 5, Y: 5, Data: 2},
		{X: 1, Y: 1, Data: 3},
	}
	tree := buildTree(t, points)
	left, right, err := nearest.BuildHalves(points)
	if err != nil {
		t.Fatal(err)
	}

	seq, ok := nearest.SequentialScan(points, 0, 0)
	if !ok || seq.Data != 1 {
		t.Fatalf("sequential scan: expected id 1, got %+v ok=%v", seq, ok)
	}
	bf, ok := nearest.BestFirst(tree, 0, 0)
	if !ok || bf.Data != 1 {
		t.Fatalf("best first: expected id 1, got %+v ok=%v", bf, ok)
	}
	dc, ok := nearest.DivideAndConquer(left, right, 0, 0)
	if !ok || dc.Data != 1 {
		t.Fatalf("divide and conquer: expected id 1, got %+v ok=%v", dc, ok)
	}
}

func TestEmptyDataset(t *testing.T) {
	if _, ok := nearest.SequentialScan[int](nil, 1, 2); ok {
		t.Fatalf("sequential scan over nothing returned a result")
	}

	tree := buildTree(t, nil)
	if _, ok := nearest.BestFirst(tree, 1, 2); ok {
		t.Fatalf("best first over an empty tree returned a result")
	}

	left, right, err := nearest.BuildHalves[int](nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := nearest.DivideAndConquer(left, right, 1, 2); ok {
		t.Fatalf("divide and conquer over nothing returned a result")
	}
}

func TestSingleHalfEmpty(t *testing.T) {
	// One point: the left half is empty, the right half holds everything.
	points := []rtree.Point[int]{{X: 4, Y: 4, Data: 7}}
	left, right, err := nearest.BuildHalves(points)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := nearest.DivideAndConquer(left, right, 0, 0)
	if !ok || p.Data != 7 {
		t.Fatalf("expected id 7, got %+v ok=%v", p, ok)
	}
}

func TestSplitHalves(t *testing.T) {
	points := []rtree.Point[int]{
		{Data: 1}, {Data: 2}, {Data: 3}, {Data: 4}, {Data: 5},
	}
	left, right := nearest.SplitHalves(points)
	if len(left) != 2 || len(right) != 3 {
		t.Fatalf("expected a 2/3 split, got %d/%d", len(left), len(right))
	}
	if left[0].Data != 1 || right[0].Data != 3 {
		t.Fatalf("halves are not contiguous by input order")
	}
}

func TestRandomAgreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	points := make([]rtree.Point[int], 400)
	for i := range points {
		points[i] = rtree.Point[int]{
			X:    rnd.Float64()*1000 - 500,
			Y:    rnd.Float64()*1000 - 500,
			Data: i,
		}
	}
	tree := buildTree(t, points)
	left, right, err := nearest.BuildHalves(points)
	if err != nil {
		t.Fatal(err)
	}

	dist := func(p rtree.Point[int], qx, qy float64) float64 {
		return math.Hypot(p.X-qx, p.Y-qy)
	}

	for i := 0; i < 50; i++ {
		qx := rnd.Float64()*1200 - 600
		qy := rnd.Float64()*1200 - 600

		seq, ok := nearest.SequentialScan(points, qx, qy)
		if !ok {
			t.Fatalf("sequential scan found nothing")
		}
		bf, ok := nearest.BestFirst(tree, qx, qy)
		if !ok {
			t.Fatalf("best first found nothing")
		}
		dc, ok := nearest.DivideAndConquer(left, right, qx, qy)
		if !ok {
			t.Fatalf("divide and conquer found nothing")
		}

		want := dist(seq, qx, qy)
		if got := dist(bf, qx, qy); got != want {
			t.Fatalf("query (%v, %v): best first distance %v, sequential %v", qx, qy, got, want)
		}
		if got := dist(dc, qx, qy); got != want {
			t.Fatalf("query (%v, %v): divide and conquer distance %v, sequential %v", qx, qy, got, want)
		}
	}
}

func TestAgreementAcrossBranchingFactors(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	points := make([]rtree.Point[int], 100)
	for i := range points {
		points[i] = rtree.Point[int]{X: rnd.Float64() * 50, Y: rnd.Float64() * 50, Data: i}
	}

	for _, b := range []int{2, 3, 4, 8} {
		tree := buildTree(t, points, rtree.WithBranchingFactor(b))
		seq, _ := nearest.SequentialScan(points, 25, 25)
		bf, ok := nearest.BestFirst(tree, 25, 25)
		if !ok {
			t.Fatalf("b=%d: best first found nothing", b)
		}
		want := math.Hypot(seq.X-25, seq.Y-25)
		got := math.Hypot(bf.X-25, bf.Y-25)
		if got != want {
			t.Fatalf("b=%d: best first distance %v, sequential %v", b, got, want)
		}
	}
}
