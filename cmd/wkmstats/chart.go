package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/GolyBidoof/wanikani-marathon-stats/src/marathon"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/trend"
)

func chartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "Render a user's metric history across marathons as a line chart",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Username to chart",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "metric",
				Usage: "Metric key: time, pages, characters or sources",
				Value: marathon.MetricTime,
			},
			&cli.StringFlag{
				Name:  "accent",
				Usage: "Accent color: palette name or hex",
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "Marathon range: all or recent (last 4)",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Chart width in pixels",
				Value: trend.DefaultWidth,
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "Chart height in pixels",
				Value: trend.DefaultHeight,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output PNG path (default {user}_{metric}_history.png)",
			},
		},
		Action: runChart,
	}
}

func runChart(ctx context.Context, c *cli.Command) error {
	cfg, stats, err := loadEnv(c)
	if err != nil {
		return err
	}
	accent, err := accentFor(cfg, c.String("accent"))
	if err != nil {
		return err
	}
	mode := rangeMode(c.String("range"))
	if c.String("range") == "" {
		mode = rangeMode(cfg.Range)
	}
	query := strings.ToLower(strings.TrimSpace(c.String("user")))
	metric := strings.ToLower(strings.TrimSpace(c.String("metric")))

	order := marathon.Order(stats, mode)
	labels, values := marathon.BuildSeries(stats, order, query, metric)
	if len(values) == 0 {
		printSuggestions(cfg, query)
		return nil
	}

	img, err := trend.Render(trend.Series{Metric: metric, Labels: labels, Values: values},
		accent.Color(), int(c.Int("width")), int(c.Int("height")))
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		out = fmt.Sprintf("%s_%s_history.png", query, metric)
	}
	if err := writePNG(out, img); err != nil {
		return err
	}
	marathon.Infof("wrote %s (%d data points)", out, len(values))
	return nil
}
