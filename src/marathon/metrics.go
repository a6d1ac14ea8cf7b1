package marathon

import "strings"

// Metric keys accepted by ExtractMetric. Unknown keys still produce a data
// point (value 0) when the user has an entry, mirroring a missing field.
const (
	MetricTime       = "time"
	MetricPages      = "pages"
	MetricCharacters = "characters"
	MetricSources    = "sources"
)

// ExtractMetric looks up user's entry in one marathon and coerces the named
// field to a plottable float. The second return is false when the user has no
// entry at all: the marathon then contributes no data point (sparse series,
// not a zero).
func ExtractMetric(entries []Entry, user, key string) (float64, bool) {
	e, ok := FindEntry(entries, strings.ToLower(strings.TrimSpace(user)))
	if !ok {
		return 0, false
	}
	switch key {
	case MetricTime:
		if e.Time.IsString {
			return ParseHours(e.Time.Value), true
		}
		return atofLoose(e.Time.Value), true
	case MetricPages:
		return float64(e.Pages), true
	case MetricCharacters:
		return float64(e.Characters), true
	case MetricSources:
		return float64(e.Sources), true
	default:
		return 0, true
	}
}

// BuildSeries collects a user's metric across the ordered marathons for the
// trend chart. Marathons without an entry for the user are omitted, so labels
// and values stay aligned and chronological.
func BuildSeries(stats Stats, order []string, user, key string) ([]string, []float64) {
	var labels []string
	var values []float64
	for _, name := range order {
		v, ok := ExtractMetric(stats[name], user, key)
		if !ok {
			continue
		}
		labels = append(labels, name)
		values = append(values, v)
	}
	return labels, values
}
