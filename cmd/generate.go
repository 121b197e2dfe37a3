package main

import (
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/poissondisc"
	"github.com/royalcat/rtreeq/dataset"
	"github.com/royalcat/rtreeq/rtree"
	"github.com/urfave/cli/v3"
)

func generateAction(ctx *cli.Context) error {
	log := slog.Default()

	width := ctx.Float64("width")
	height := ctx.Float64("height")
	spacing := ctx.Float64("spacing")

	sampled := poissondisc.Sample(0, 0, width, height, spacing, 30, nil)
	points := make([]rtree.Point[string], len(sampled))
	for i, p := range sampled {
		points[i] = rtree.Point[string]{X: p.X, Y: p.Y, Data: strconv.Itoa(i + 1)}
	}

	out := ctx.String("output")
	if err := dataset.Save(out, points); err != nil {
		return err
	}

	log.Info("Dataset generated", "path", out, "points", humanize.Comma(int64(len(points))))
	return nil
}
