package marathon

import (
	"fmt"
	"strings"
)

// seasonRank orders seasons within a year for the marathon cycle. This is
// deliberately not calendar order: the Winter marathon closes a year-group,
// so Winter ranks last. Both "Fall" and "Autumn" appear in historical data.
var seasonRank = map[string]int{
	"Winter": 4,
	"Fall":   3,
	"Autumn": 3,
	"Summer": 2,
	"Spring": 1,
}

var seasonEmoji = map[string]string{
	"Winter": "❄️",
	"Summer": "☀️",
	"Spring": "🌷",
	"Fall":   "🍁",
	"Autumn": "🍁",
}

// Season returns the season component of a marathon name ("Fall 2024" -> "Fall").
func Season(name string) string {
	season, _, _ := strings.Cut(name, " ")
	return season
}

// SeasonEmoji returns the emoji for a marathon's season, or "" for an
// unrecognized season.
func SeasonEmoji(name string) string {
	return seasonEmoji[Season(name)]
}

// FormatHistoryEntry abbreviates a marathon name for the card's history
// ticker: "Fall 2024" -> "🍁 FAL '24".
func FormatHistoryEntry(name string) string {
	season, year, _ := strings.Cut(name, " ")
	abbr := season
	if len(abbr) > 3 {
		abbr = abbr[:3]
	}
	shortYear := year
	if len(shortYear) > 2 {
		shortYear = shortYear[len(shortYear)-2:]
	}
	emoji := seasonEmoji[season]
	return fmt.Sprintf("%s %s '%s", emoji, strings.ToUpper(abbr), shortYear)
}
