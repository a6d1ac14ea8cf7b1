package marathon

import "strings"

// ParseHours converts a colon-delimited duration ("H:MM" or "H:MM:SS") into
// decimal hours. Missing or unparseable segments count as 0; a string with no
// colon falls back to a loose float parse. Never fails (worst case 0).
func ParseHours(s string) float64 {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return atofLoose(s)
	}
	h := atoiLoose(parts[0])
	m := atoiLoose(parts[1])
	sec := 0
	if len(parts) > 2 {
		sec = atoiLoose(parts[2])
	}
	return float64(h) + float64(m)/60 + float64(sec)/3600
}

// AggregateHours is the minute-granularity variant used when summing times
// across marathons: only hours and minutes contribute, the seconds segment is
// dropped. This matches the historical totals the community publishes, so
// card totals keep agreeing with prior years even though per-entry display
// keeps full precision.
func AggregateHours(s string) float64 {
	parts := strings.Split(s, ":")
	h := atoiLoose(parts[0])
	m := 0
	if len(parts) > 1 {
		m = atoiLoose(parts[1])
	}
	return float64(h) + float64(m)/60
}
