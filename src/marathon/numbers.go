package marathon

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPrefixRe   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefixRe = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

// atoiLoose parses the leading integer of a string, ignoring trailing junk
// ("12 pages" -> 12). Anything without a leading integer yields 0.
func atoiLoose(s string) int {
	m := intPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// atofLoose parses the leading float of a string, yielding 0 when absent.
func atofLoose(s string) float64 {
	m := floatPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
