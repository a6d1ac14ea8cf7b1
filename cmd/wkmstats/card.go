package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/GolyBidoof/wanikani-marathon-stats/src/card"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/marathon"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/themes"
)

func cardCommand() *cli.Command {
	return &cli.Command{
		Name:  "card",
		Usage: "Render an achievement card for a user, or for one marathon when no user is given",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user",
				Usage: "Username to summarize (empty for community mode)",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Background theme: marathon name or asset id (default: kept if eligible, else random eligible)",
			},
			&cli.StringFlag{
				Name:  "accent",
				Usage: "Accent color: palette name or hex",
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "Marathon range: all or recent (last 4)",
			},
			&cli.BoolFlag{
				Name:  "export",
				Usage: "Export rendering: background photo and gradient overlay (preview keeps the background transparent)",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output PNG path (default {user|community}_achievement.png)",
			},
		},
		Action: runCard,
	}
}

func runCard(ctx context.Context, c *cli.Command) error {
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

	order := marathon.Order(stats, mode)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	active := themeAsset(c.String("theme"))

	var res marathon.AggregateResult
	var history []string
	community := query == ""

	if community {
		// Any marathon with a shipped background may be browsed; the card
		// summarizes whichever one the active theme points at.
		opts := themes.Options(order)
		if len(opts) == 0 {
			return fmt.Errorf("no marathons with background assets in range")
		}
		active = themes.Resolve(active, opts, rng)
		event, ok := themes.EventForAsset(order, active)
		if !ok {
			return fmt.Errorf("no marathon matches background %q", active)
		}
		res = marathon.AggregateEvent(stats, event)
		if res.Empty() {
			fmt.Printf("%s has no participants yet; no card rendered.\n", event)
			return nil
		}
	} else {
		res = marathon.AggregateUser(stats, order, query)
		if res.Empty() {
			printSuggestions(cfg, query)
			return nil
		}
		opts := themes.Options(res.MatchedEvents)
		if len(opts) == 0 {
			fmt.Printf("%s participated, but no marathon backgrounds are available; no card rendered.\n", res.DisplayName)
			return nil
		}
		active = themes.Resolve(active, opts, rng)
		for _, name := range res.MatchedEvents {
			history = append(history, marathon.FormatHistoryEntry(name))
		}
	}

	export := c.Bool("export")
	achievement := card.Card{
		DisplayName: res.DisplayName,
		TotalHours:  res.TotalHours,
		Count:       res.MatchCount,
		Pages:       res.TotalPages,
		Characters:  res.TotalCharacters,
		Sources:     res.TotalSources,
		Community:   community,
		History:     history,
		Accent:      accent.Color(),
		Export:      export,
	}
	if export {
		bg := card.NewCache(cfg.AssetsDir)
		if img, ok := bg.Get(active); ok {
			achievement.Background = img
		} else {
			marathon.Warnf("background %s not loaded, using solid fill", active)
		}
	}

	out := c.String("out")
	if out == "" {
		out = outputName(query)
	}
	if err := writePNG(out, card.Render(achievement)); err != nil {
		return err
	}
	marathon.Infof("wrote %s (%s, %d marathons matched, theme %s)", out, res.DisplayName, len(res.MatchedEvents), active)
	return nil
}
