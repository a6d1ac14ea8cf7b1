package marathon

import "strings"

// AggregateResult holds the totals from applying a selector across marathons
// in chronological order. It is derived state: recomputed wholesale on every
// query change, never mutated in place.
type AggregateResult struct {
	// DisplayName is the matched entry's canonical username in user mode,
	// or the marathon name in community mode.
	DisplayName     string
	TotalHours      float64
	MatchCount      int
	TotalPages      int
	TotalCharacters int
	TotalSources    int
	// MatchedEvents lists the marathons that contributed, chronological.
	MatchedEvents []string
}

// Empty reports whether nothing matched. Callers must suppress all dependent
// rendering (card, chart, summary) for an empty result.
func (r AggregateResult) Empty() bool { return r.MatchCount == 0 }

// FindEntry returns the first entry whose username equals query, compared
// case-insensitively. query must already be lowercase.
func FindEntry(entries []Entry, query string) (Entry, bool) {
	for _, e := range entries {
		if strings.ToLower(e.User) == query {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *AggregateResult) add(e Entry) {
	if e.Time.IsString && e.Time.Value != "" {
		r.TotalHours += AggregateHours(e.Time.Value)
	}
	r.TotalPages += int(e.Pages)
	r.TotalCharacters += int(e.Characters)
	r.TotalSources += int(e.Sources)
}

// AggregateUser walks the ordered marathons and sums the stats of the entry
// matching query (case-insensitive username) in each. order must be the
// chronological ascending order, which makes MatchedEvents chronological
// regardless of the map's iteration order.
func AggregateUser(stats Stats, order []string, query string) AggregateResult {
	query = strings.ToLower(strings.TrimSpace(query))
	var res AggregateResult
	if query == "" {
		return res
	}
	for _, name := range order {
		e, ok := FindEntry(stats[name], query)
		if !ok {
			continue
		}
		res.DisplayName = e.User
		res.MatchCount++
		res.MatchedEvents = append(res.MatchedEvents, name)
		res.add(e)
	}
	return res
}

// AggregateEvent sums the stats of every participant in one marathon
// (community mode). MatchCount is the participant count.
func AggregateEvent(stats Stats, name string) AggregateResult {
	entries, ok := stats[name]
	if !ok {
		return AggregateResult{}
	}
	res := AggregateResult{
		DisplayName:   name,
		MatchCount:    len(entries),
		MatchedEvents: []string{name},
	}
	for _, e := range entries {
		res.add(e)
	}
	return res
}
