// Package themes maps marathons to their background assets and resolves
// which theme is active for a given query state.
package themes

import (
	"math/rand"
	"regexp"
	"strings"
)

// KnownBackgrounds is the closed set of background assets that ship with the
// site. A marathon without a matching asset cannot be browsed as a theme.
var KnownBackgrounds = []string{
	"fall2024.gif",
	"autumn2025.gif",
	"spring2025.gif",
	"summer2024.gif",
	"summer2025.gif",
	"winter2024.gif",
	"winter2025.gif",
}

// Known reports whether assetID is in the fixed background set.
func Known(assetID string) bool {
	for _, b := range KnownBackgrounds {
		if b == assetID {
			return true
		}
	}
	return false
}

// AssetID derives a marathon's background asset id: lowercase, spaces
// removed, ".gif" appended ("Fall 2024" -> "fall2024.gif"). The result is
// only usable when Known reports it exists.
func AssetID(event string) string {
	return strings.ReplaceAll(strings.ToLower(event), " ", "") + ".gif"
}

var labelRe = regexp.MustCompile(`^([a-z]+)([0-9]+)$`)

// EventLabel reverses AssetID for display: "fall2024.gif" -> "Fall 2024".
// Returns "" for ids that don't follow the season+year shape.
func EventLabel(assetID string) string {
	base := strings.TrimSuffix(assetID, ".gif")
	m := labelRe.FindStringSubmatch(base)
	if m == nil {
		return ""
	}
	season := strings.ToUpper(m[1][:1]) + m[1][1:]
	return season + " " + m[2]
}

// Option pairs a marathon with its background asset.
type Option struct {
	Event   string
	AssetID string
}

// Options filters marathon names (in the given order) to those whose asset
// exists in the known set. In user mode the input is the matched-marathon
// list; in community mode it is the full ordered marathon list, since any
// marathon may be browsed regardless of a match predicate.
func Options(names []string) []Option {
	var out []Option
	for _, name := range names {
		id := AssetID(name)
		if Known(id) {
			out = append(out, Option{Event: name, AssetID: id})
		}
	}
	return out
}

// Resolve validates the active asset against the eligible options. A still-
// eligible active theme is kept; otherwise a pseudo-random eligible option is
// selected. An empty option set leaves active unchanged (callers suppress the
// summary in that case).
func Resolve(active string, eligible []Option, rng *rand.Rand) string {
	if len(eligible) == 0 {
		return active
	}
	for _, o := range eligible {
		if o.AssetID == active {
			return active
		}
	}
	return eligible[rng.Intn(len(eligible))].AssetID
}

// EventForAsset finds the marathon whose asset id equals assetID, searching
// names in order. Used in community mode to map the browsed background back
// to the marathon being summarized.
func EventForAsset(names []string, assetID string) (string, bool) {
	for _, name := range names {
		if AssetID(name) == assetID {
			return name, true
		}
	}
	return "", false
}
