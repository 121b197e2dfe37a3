package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/royalcat/rtreeq/dataset"
	"github.com/royalcat/rtreeq/rtree"
	"github.com/royalcat/rtreeq/skyline"
	"github.com/urfave/cli/v3"
)

func skylineAction(ctx *cli.Context) error {
	log := slog.Default()

	points, err := dataset.Load(ctx.String("dataset"), log)
	if err != nil {
		return err
	}

	opts := []rtree.Option{rtree.WithBranchingFactor(ctx.Int("branching"))}

	var lines []string

	start := time.Now()
	seq := skyline.SequentialScan(points)
	seqTime := time.Since(start)
	lines = appendSkylineSection(lines, "Sequential Scan Skyline Results:", seq)
	lines = append(lines, fmt.Sprintf("Sequential Scan Time: %s", seqTime), "")

	tree, err := buildTree(points, opts...)
	if err != nil {
		return err
	}
	start = time.Now()
	bbs := skyline.BBS(tree)
	bbsTime := time.Since(start)
	lines = appendSkylineSection(lines, "BBS Skyline Results:", bbs)
	lines = append(lines, fmt.Sprintf("BBS Execution Time: %s", bbsTime), "")

	start = time.Now()
	dc, err := skyline.DivideAndConquer(points, opts...)
	if err != nil {
		return err
	}
	dcTime := time.Since(start)
	lines = appendSkylineSection(lines, "BBS with Divide-and-Conquer Skyline Results:", dc)
	lines = append(lines, fmt.Sprintf("Divide-and-Conquer Execution Time: %s", dcTime))

	out := ctx.String("output")
	if err := writeLines(out, lines); err != nil {
		return err
	}
	log.Info("Results written", "path", out, "skyline_points", len(seq))
	return nil
}

func appendSkylineSection(lines []string, header string, points []rtree.Point[string]) []string {
	lines = append(lines, header)
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%s %v %v", p.Data, p.X, p.Y))
	}
	return lines
}
