package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/royalcat/rtreeq/dataset"
	"github.com/royalcat/rtreeq/nearest"
	"github.com/royalcat/rtreeq/rtree"
	"github.com/urfave/cli/v3"
)

func nearestAction(ctx *cli.Context) error {
	log := slog.Default()

	rawPoints, err := dataset.Load(ctx.String("dataset"), log)
	if err != nil {
		return err
	}
	points, err := dataset.ParseIntIDs(rawPoints)
	if err != nil {
		return err
	}
	queries, err := dataset.Load(ctx.String("queries"), log)
	if err != nil {
		return err
	}

	opts := []rtree.Option{rtree.WithBranchingFactor(ctx.Int("branching"))}

	log.Info("Building r-tree", "points", humanize.Comma(int64(len(points))))
	tree, err := buildTree(points, opts...)
	if err != nil {
		return err
	}

	log.Info("Building divide-and-conquer half trees")
	left, right, err := nearest.BuildHalves(points, opts...)
	if err != nil {
		return err
	}

	var totalSeq, totalBF, totalDC time.Duration
	results := make([]string, 0, 3*len(queries))

	for i, q := range queries {
		start := time.Now()
		nearestSeq, okSeq := nearest.SequentialScan(points, q.X, q.Y)
		totalSeq += time.Since(start)
		results = append(results, formatNearest("Sequential Scan", i+1, nearestSeq, okSeq))

		start = time.Now()
		nearestBF, okBF := nearest.BestFirst(tree, q.X, q.Y)
		totalBF += time.Since(start)
		results = append(results, formatNearest("Best First", i+1, nearestBF, okBF))

		start = time.Now()
		nearestDC, okDC := nearest.DivideAndConquer(left, right, q.X, q.Y)
		totalDC += time.Since(start)
		results = append(results, formatNearest("Divide and Conquer", i+1, nearestDC, okDC))
	}

	if len(queries) > 0 {
		n := time.Duration(len(queries))
		results = append(results, "")
		results = append(results, formatTiming("Sequential Scan", totalSeq, totalSeq/n))
		results = append(results, formatTiming("Best First", totalBF, totalBF/n))
		results = append(results, formatTiming("Divide and Conquer", totalDC, totalDC/n))
	}

	out := ctx.String("output")
	if err := writeLines(out, results); err != nil {
		return err
	}
	log.Info("Results written", "path", out, "queries", len(queries))
	return nil
}

func formatNearest(method string, query int, p rtree.Point[int], ok bool) string {
	if !ok {
		return fmt.Sprintf("%s - Query %d: no result", method, query)
	}
	return fmt.Sprintf("%s - Query %d: id=%d, x=%.2f, y=%.2f", method, query, p.Data, p.X, p.Y)
}

func formatTiming(method string, total, average time.Duration) string {
	return fmt.Sprintf("Total running time (%s): %s, Average time: %s", method, total, average)
}

func buildTree[T any](points []rtree.Point[T], opts ...rtree.Option) (*rtree.RTree[T], error) {
	tree, err := rtree.New[T](opts...)
	if err != nil {
		return nil, err
	}

	bar := pb.StartNew(len(points))
	bar.Set("prefix", "inserting points ")
	bar.SetRefreshRate(time.Second)
	for _, p := range points {
		tree.Insert(p)
		bar.Increment()
	}
	bar.Finish()

	return tree, nil
}

func writeLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can`t create file error: %s", err.Error())
	}

	w := bufio.NewWriter(file)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
