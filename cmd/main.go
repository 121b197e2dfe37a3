package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/royalcat/rtreeq/rtree"

	sloglogrus "github.com/samber/slog-logrus/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	_ "go.uber.org/automaxprocs"
)

func main() {
	setupLogging()

	app := &cli.App{
		Name:        "rtreeq",
		Description: "R-tree backed nearest-neighbor and skyline search over 2-D point datasets",
		Commands: []*cli.Command{
			{
				Name:  "nearest",
				Usage: "find the nearest dataset point for every query point",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "dataset",
						Aliases:   []string{"d"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:      "queries",
						Aliases:   []string{"q"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "nearest_output.txt",
					},
					&cli.IntFlag{
						Name:    "branching",
						Aliases: []string{"b"},
						Value:   rtree.DefaultBranchingFactor,
					},
				},
				Action: nearestAction,
			},
			{
				Name:  "skyline",
				Usage: "compute the skyline (pareto frontier) of a cost/size dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "dataset",
						Aliases:   []string{"d"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "skyline_output.txt",
					},
					&cli.IntFlag{
						Name:    "branching",
						Aliases: []string{"b"},
						Value:   rtree.DefaultBranchingFactor,
					},
				},
				Action: skylineAction,
			},
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "generate a synthetic point dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "width",
						Value: 1000,
					},
					&cli.Float64Flag{
						Name:  "height",
						Value: 1000,
					},
					&cli.Float64Flag{
						Name:  "spacing",
						Usage: "minimum distance between generated points",
						Value: 10,
					},
				},
				Action: generateAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogging() {
	handlers := []slog.Handler{
		sloglogrus.Option{Level: slog.LevelDebug, Logger: logrus.StandardLogger()}.NewLogrusHandler(),
	}
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}
