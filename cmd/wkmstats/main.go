// wkmstats renders WaniKani Reading Marathon participation stats: per-user
// and per-marathon summaries, trend charts, and shareable achievement cards.
//
// The two input datasets (all_stats.json, users.json) are read-only; every
// command is a pure recomputation over them. Recompute order is always
// ordering -> aggregation -> theme resolution -> rendering so nothing ever
// renders against a stale aggregate.
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "wkmstats",
		Usage: "Reading marathon stats, trend charts and achievement cards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: "wkmstats.toml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug|info|warn|error)",
				Value: "info",
			},
		},
		Commands: []*cli.Command{
			cardCommand(),
			chartCommand(),
			statsCommand(),
			themesCommand(),
			usersCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
