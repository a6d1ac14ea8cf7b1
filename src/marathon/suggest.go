package marathon

import "strings"

// SuggestUsers filters the roster to names containing query
// (case-insensitive substring), capped at limit. Used for "did you mean"
// hints when a search matches nothing.
func SuggestUsers(roster []string, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}
	var out []string
	for _, u := range roster {
		if strings.Contains(strings.ToLower(u), query) {
			out = append(out, u)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
