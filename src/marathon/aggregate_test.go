package marathon

import (
	"encoding/json"
	"reflect"
	"testing"
)

// parseStats builds a Stats from raw JSON so tests exercise the same tolerant
// decoding the loader uses.
func parseStats(t *testing.T, raw string) Stats {
	t.Helper()
	var s Stats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return s
}

func TestAggregateUserTotals(t *testing.T) {
	stats := parseStats(t, `{
		"Fall 2024":   [{"user": "Alice", "time": "2:30", "pages": 50}],
		"Winter 2025": [{"user": "alice", "time": "1:45", "pages": 30, "characters": 12000}]
	}`)
	order := Order(stats, RangeAll)
	res := AggregateUser(stats, order, "ALICE")
	if res.MatchCount != 2 {
		t.Fatalf("match count = %d want 2", res.MatchCount)
	}
	if !almostEqual(res.TotalHours, 4.25) {
		t.Fatalf("total hours = %v want 4.25", res.TotalHours)
	}
	if res.TotalPages != 80 || res.TotalCharacters != 12000 {
		t.Fatalf("pages/chars = %d/%d want 80/12000", res.TotalPages, res.TotalCharacters)
	}
	if !reflect.DeepEqual(res.MatchedEvents, []string{"Fall 2024", "Winter 2025"}) {
		t.Fatalf("matched events = %v", res.MatchedEvents)
	}
	// Canonical spelling comes from a matched entry, not the query.
	if res.DisplayName != "alice" {
		t.Fatalf("display name = %q", res.DisplayName)
	}
}

func TestAggregateUserChronologicalRegardlessOfMapOrder(t *testing.T) {
	// Map iteration order is random in Go; the ordered walk must pin the
	// matched-event order to chronology every time.
	stats := parseStats(t, `{
		"Winter 2025": [{"user": "bob", "time": "1:00"}],
		"Summer 2024": [{"user": "bob", "time": "1:00"}],
		"Spring 2025": [{"user": "bob", "time": "1:00"}]
	}`)
	want := []string{"Summer 2024", "Spring 2025", "Winter 2025"}
	for i := 0; i < 20; i++ {
		res := AggregateUser(stats, Order(stats, RangeAll), "bob")
		if !reflect.DeepEqual(res.MatchedEvents, want) {
			t.Fatalf("iteration %d: matched events = %v want %v", i, res.MatchedEvents, want)
		}
	}
}

func TestAggregateUserEmpty(t *testing.T) {
	stats := parseStats(t, `{"Fall 2024": [{"user": "Alice"}]}`)
	res := AggregateUser(stats, Order(stats, RangeAll), "nobody")
	if !res.Empty() {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if res := AggregateUser(stats, Order(stats, RangeAll), ""); !res.Empty() {
		t.Fatalf("empty query must not match, got %+v", res)
	}
}

func TestAggregateUserMalformedFields(t *testing.T) {
	stats := parseStats(t, `{
		"Fall 2024": [{"user": "Carol", "time": 3, "pages": "40ish", "sources": null}]
	}`)
	res := AggregateUser(stats, Order(stats, RangeAll), "carol")
	// Numeric (non-string) time contributes nothing to the aggregate total.
	if !almostEqual(res.TotalHours, 0) {
		t.Fatalf("total hours = %v want 0 for non-string time", res.TotalHours)
	}
	if res.TotalPages != 40 || res.TotalSources != 0 {
		t.Fatalf("pages/sources = %d/%d want 40/0", res.TotalPages, res.TotalSources)
	}
}

func TestAggregateEvent(t *testing.T) {
	stats := parseStats(t, `{
		"Fall 2024": [
			{"user": "Alice", "time": "3:00", "pages": 50},
			{"user": "Bob", "time": "2:15", "characters": 8000},
			{"user": "Carol", "sources": 4}
		]
	}`)
	res := AggregateEvent(stats, "Fall 2024")
	if res.DisplayName != "Fall 2024" {
		t.Fatalf("display name = %q", res.DisplayName)
	}
	if res.MatchCount != 3 {
		t.Fatalf("participant count = %d want 3", res.MatchCount)
	}
	if !almostEqual(res.TotalHours, 5.25) {
		t.Fatalf("total hours = %v want 5.25", res.TotalHours)
	}
	if res.TotalPages != 50 || res.TotalCharacters != 8000 || res.TotalSources != 4 {
		t.Fatalf("totals = %d/%d/%d", res.TotalPages, res.TotalCharacters, res.TotalSources)
	}
	if !reflect.DeepEqual(res.MatchedEvents, []string{"Fall 2024"}) {
		t.Fatalf("matched events = %v", res.MatchedEvents)
	}
	if !AggregateEvent(stats, "Spring 1999").Empty() {
		t.Fatal("unknown marathon should aggregate empty")
	}
}

// End-to-end: the scenario from the published stats page.
func TestAggregateAndSeriesScenario(t *testing.T) {
	stats := parseStats(t, `{
		"Fall 2024":   [{"user": "Alice", "time": "3:00", "pages": 50}],
		"Winter 2025": [{"user": "Alice", "time": "2:00", "pages": 30}]
	}`)
	order := Order(stats, RangeAll)
	res := AggregateUser(stats, order, "alice")
	if res.MatchCount != 2 || !almostEqual(res.TotalHours, 5) || res.TotalPages != 80 {
		t.Fatalf("aggregate = %+v", res)
	}
	if !reflect.DeepEqual(res.MatchedEvents, []string{"Fall 2024", "Winter 2025"}) {
		t.Fatalf("matched events = %v", res.MatchedEvents)
	}
	labels, values := BuildSeries(stats, order, "alice", MetricTime)
	if !reflect.DeepEqual(labels, []string{"Fall 2024", "Winter 2025"}) {
		t.Fatalf("series labels = %v", labels)
	}
	if len(values) != 2 || !almostEqual(values[0], 3) || !almostEqual(values[1], 2) {
		t.Fatalf("series values = %v want [3 2]", values)
	}
}
