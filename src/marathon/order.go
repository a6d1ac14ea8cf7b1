package marathon

import (
	"sort"
	"strings"
)

// RangeMode selects how much history an operation considers.
type RangeMode string

const (
	// RangeAll considers every marathon in the dataset.
	RangeAll RangeMode = "all"
	// RangeRecent considers only the last four marathons of the ascending
	// order, approximating one year at four marathons per year.
	RangeRecent RangeMode = "recent"
)

// orderKey encodes a marathon name into a sortable composite of year and
// season rank. Unknown seasons rank 0 and unparseable years collapse to 0,
// sorting such names first rather than failing.
func orderKey(name string) int {
	season, year, _ := strings.Cut(name, " ")
	return atoiLoose(year)*10 + seasonRank[season]
}

// Order returns marathon names sorted chronologically ascending. RangeRecent
// keeps only the trailing window of the ascending order. Ascending order is
// what aggregation and trend charts consume; display lists want Reversed.
func Order(stats Stats, mode RangeMode) []string {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return orderKey(names[i]) < orderKey(names[j])
	})
	if mode == RangeRecent && len(names) > 4 {
		names = names[len(names)-4:]
	}
	return names
}

// Reversed returns a copy of names in reverse order (most recent first).
func Reversed(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[len(names)-1-i] = n
	}
	return out
}
