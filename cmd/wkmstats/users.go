package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/GolyBidoof/wanikani-marathon-stats/src/config"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/marathon"
)

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "List known usernames, optionally filtered by substring",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "match",
				Usage: "Case-insensitive substring filter",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum names to print (0 for all)",
				Value: 0,
			},
		},
		Action: runUsers,
	}
}

func runUsers(ctx context.Context, c *cli.Command) error {
	marathon.SetLogLevel(c.String("log-level"))
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	roster, err := marathon.LoadUsers(cfg.UsersPath)
	if err != nil {
		return err
	}
	match := c.String("match")
	limit := int(c.Int("limit"))
	if match != "" {
		if limit <= 0 {
			limit = len(roster)
		}
		roster = marathon.SuggestUsers(roster, match, limit)
	} else if limit > 0 && len(roster) > limit {
		roster = roster[:limit]
	}
	for _, u := range roster {
		fmt.Println(u)
	}
	return nil
}
