package marathon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// stripJSONC reads a JSON file allowing full-line // comments, returning raw
// JSON bytes. Inline // is left alone (URLs contain it); only lines starting
// with // are dropped.
func stripJSONC(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// LoadStats reads the marathon dataset: a JSON object mapping marathon name
// to its participant entries. This is the only load that can surface an
// error to the user; everything downstream degrades silently instead.
func LoadStats(path string) (Stats, error) {
	b, err := stripJSONC(path)
	if err != nil {
		return nil, fmt.Errorf("reading stats dataset: %w", err)
	}
	var stats Stats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, fmt.Errorf("parsing stats dataset %s: %w", path, err)
	}
	total := 0
	for _, entries := range stats {
		total += len(entries)
	}
	Infof("loaded %d marathons (%d entries) from %s", len(stats), total, path)
	return stats, nil
}

// LoadUsers reads the username roster, used only for "did you mean"
// suggestions, never for aggregation.
func LoadUsers(path string) ([]string, error) {
	b, err := stripJSONC(path)
	if err != nil {
		return nil, fmt.Errorf("reading user roster: %w", err)
	}
	var users []string
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("parsing user roster %s: %w", path, err)
	}
	Debugf("loaded %d usernames from %s", len(users), path)
	return users, nil
}
