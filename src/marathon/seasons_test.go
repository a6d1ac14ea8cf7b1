package marathon

import (
	"reflect"
	"testing"
)

func TestSeasonEmoji(t *testing.T) {
	cases := map[string]string{
		"Winter 2025":  "❄️",
		"Summer 2024":  "☀️",
		"Spring 2025":  "🌷",
		"Fall 2024":    "🍁",
		"Autumn 2025":  "🍁",
		"Mystery 2024": "",
	}
	for name, want := range cases {
		if got := SeasonEmoji(name); got != want {
			t.Errorf("SeasonEmoji(%q) = %q want %q", name, got, want)
		}
	}
}

func TestFormatHistoryEntry(t *testing.T) {
	cases := map[string]string{
		"Fall 2024":   "🍁 FAL '24",
		"Autumn 2025": "🍁 AUT '25",
		"Winter 2025": "❄️ WIN '25",
		"Summer 2024": "☀️ SUM '24",
		"Spring 2025": "🌷 SPR '25",
	}
	for name, want := range cases {
		if got := FormatHistoryEntry(name); got != want {
			t.Errorf("FormatHistoryEntry(%q) = %q want %q", name, got, want)
		}
	}
}

func TestSuggestUsers(t *testing.T) {
	roster := []string{"BookWorm", "bookish", "Reader1", "NightReader", "Bibliophile", "bookbook"}
	got := SuggestUsers(roster, "BOOK", 5)
	if !reflect.DeepEqual(got, []string{"BookWorm", "bookish", "bookbook"}) {
		t.Fatalf("suggestions = %v", got)
	}
	if got := SuggestUsers(roster, "read", 1); len(got) != 1 {
		t.Fatalf("limit not applied: %v", got)
	}
	if got := SuggestUsers(roster, "", 5); got != nil {
		t.Fatalf("empty query should suggest nothing, got %v", got)
	}
	if got := SuggestUsers(roster, "zzz", 5); got != nil {
		t.Fatalf("no-match query should suggest nothing, got %v", got)
	}
}
