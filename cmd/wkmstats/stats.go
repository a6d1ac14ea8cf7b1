package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/GolyBidoof/wanikani-marathon-stats/src/config"
	"github.com/GolyBidoof/wanikani-marathon-stats/src/marathon"
)

// Terminal styles for the stats listing.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 0)

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 0, 1, 2)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Margin(0, 0, 1, 0)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "List per-marathon stats for a user, or community rollups for every marathon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user",
				Usage: "Username to look up (empty lists every marathon's community totals)",
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "Marathon range: all or recent (last 4)",
			},
		},
		Action: runStats,
	}
}

func runStats(ctx context.Context, c *cli.Command) error {
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

	if query == "" {
		return communityStats(stats, order)
	}
	return userStats(cfg, stats, order, query)
}

// userStats prints the per-marathon breakdown most recent first, then the
// aggregate line the achievement card is built from.
func userStats(cfg *config.Config, stats marathon.Stats, order []string, query string) error {
	res := marathon.AggregateUser(stats, order, query)
	if res.Empty() {
		printSuggestions(cfg, query)
		return nil
	}
	fmt.Println(titleStyle.Render(res.DisplayName))
	for _, name := range marathon.Reversed(res.MatchedEvents) {
		entry, _ := marathon.FindEntry(stats[name], query)
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s %s", marathon.SeasonEmoji(name), name)))
		fmt.Println(blockStyle.Render(entryLines(entry)))
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"Total: %d marathons, %.2f hours, %d pages, %d characters, %d sources",
		res.MatchCount, res.TotalHours, res.TotalPages, res.TotalCharacters, res.TotalSources)))
	return nil
}

func communityStats(stats marathon.Stats, order []string) error {
	for _, name := range marathon.Reversed(order) {
		res := marathon.AggregateEvent(stats, name)
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s %s", marathon.SeasonEmoji(name), name)))
		fmt.Println(blockStyle.Render(fmt.Sprintf(
			"PARTICIPANTS %d\nHOURS        %.2f\nPAGES        %d\nCHARS        %d\nSOURCES      %d",
			res.MatchCount, res.TotalHours, res.TotalPages, res.TotalCharacters, res.TotalSources)))
	}
	return nil
}

func entryLines(e marathon.Entry) string {
	timeStr := "--"
	if e.Time.IsString && e.Time.Value != "" {
		timeStr = e.Time.Value
	}
	lines := fmt.Sprintf("TIME       %s\nPAGES      %s\nCHARACTERS %s\nSOURCES    %s",
		timeStr, dashZero(int(e.Pages)), dashZero(int(e.Characters)), dashZero(int(e.Sources)))
	if e.URL != "" {
		lines += "\n" + urlStyle.Render(e.URL)
	}
	return lines
}

func dashZero(n int) string {
	if n <= 0 {
		return "--"
	}
	return fmt.Sprintf("%d", n)
}
