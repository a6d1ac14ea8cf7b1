package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/GolyBidoof/wanikani-marathon-stats/src/config"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/marathon"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/themes"
)

// loadEnv applies the global log level and loads config plus the marathon
// dataset. The roster is loaded separately where suggestions are needed.
func loadEnv(c *cli.Command) (*config.Config, marathon.Stats, error) {
	marathon.SetLogLevel(c.String("log-level"))
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	stats, err := marathon.LoadStats(cfg.StatsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading stats: %w", err)
	}
	return cfg, stats, nil
}

// rangeMode maps the CLI/config range string onto a RangeMode. "recent" and
// the legacy "year" spelling select the trailing window; anything else is all.
func rangeMode(s string) marathon.RangeMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recent", "year":
		return marathon.RangeRecent
	default:
		return marathon.RangeAll
	}
}

// outputName builds the export filename: "{query}_achievement.png", with
// "community" standing in for an empty query.
func outputName(query string) string {
	if query == "" {
		query = "community"
	}
	return query + "_achievement.png"
}

// accentFor resolves the --accent flag, falling back to the configured
// accent when the flag is unset.
func accentFor(cfg *config.Config, flag string) (themes.Accent, error) {
	if flag != "" {
		return themes.ParseAccent(flag)
	}
	return themes.ParseAccent(cfg.Accent)
}

// themeAsset normalizes a --theme value: either an asset id ("fall2024.gif")
// or a marathon name ("Fall 2024").
func themeAsset(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(s), ".gif") {
		return strings.ToLower(s)
	}
	return themes.AssetID(s)
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// printSuggestions shows "did you mean" names for a query that matched
// nothing. Roster load failures are logged, not fatal: the empty result
// message alone is still useful.
func printSuggestions(cfg *config.Config, query string) {
	fmt.Printf("No marathon entries found for %q.\n", query)
	roster, err := marathon.LoadUsers(cfg.UsersPath)
	if err != nil {
		marathon.Warnf("suggestions unavailable: %v", err)
		return
	}
	suggestions := marathon.SuggestUsers(roster, query, 5)
	if len(suggestions) == 0 {
		return
	}
	fmt.Printf("Did you mean: %s\n", strings.Join(suggestions, ", "))
}
