package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/GolyBidoof/wanikani-marathon-stats/src/marathon"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/themes"
)

func themesCommand() *cli.Command {
	return &cli.Command{
		Name:  "themes",
		Usage: "List selectable background themes and the accent palette",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user",
				Usage: "Limit themes to marathons this user participated in",
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "Marathon range: all or recent (last 4)",
			},
		},
		Action: runThemes,
	}
}

func runThemes(ctx context.Context, c *cli.Command) error {
	cfg, stats, err := loadEnv(c)
	if err != nil {
		return err
	}
	mode := rangeMode(c.String("range"))
	if c.String("range") == "" {
		mode = rangeMode(cfg.Range)
	}
	order := marathon.Order(stats, mode)
	query := strings.ToLower(strings.TrimSpace(c.String("user")))

	names := order
	if query != "" {
		res := marathon.AggregateUser(stats, order, query)
		if res.Empty() {
			printSuggestions(cfg, query)
			return nil
		}
		names = res.MatchedEvents
	}
	opts := themes.Options(names)
	if len(opts) == 0 {
		fmt.Println("No background themes available for this selection.")
		return nil
	}
	fmt.Println("Backgrounds:")
	for _, o := range opts {
		fmt.Printf("  %s %-14s %s\n", marathon.SeasonEmoji(o.Event), o.Event, o.AssetID)
	}
	fmt.Println("Accents:")
	for _, a := range themes.Palette {
		fmt.Printf("  %-9s %s\n", a.Name, a.Hex)
	}
	return nil
}
