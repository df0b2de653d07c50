package state

import (
	"reflect"
	"testing"
)

func TestSuggestOrdersByTier(t *testing.T) {
	names := []string{"db-servers", "web", "web-dmz", "dmz-web", "wxeyb"}
	got := Suggest(names, "web", 0)
	want := []string{"web", "web-dmz", "dmz-web", "wxeyb"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected suggestions %v", got)
	}
}

func TestSuggestLimitAndEmpty(t *testing.T) {
	names := []string{"web-1", "web-2", "web-3"}
	if got := Suggest(names, "web", 2); len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", got)
	}
	if got := Suggest(names, "  ", 2); got != nil {
		t.Fatalf("expected nil for blank query, got %v", got)
	}
	if got := Suggest(names, "zzz", 0); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}

func TestBestMatch(t *testing.T) {
	names := []string{"First", "Second", "Third"}
	if got := BestMatch(names, "second"); got != "Second" {
		t.Fatalf("expected exact match, got %q", got)
	}
	if got := BestMatch(names, "th"); got != "Third" {
		t.Fatalf("expected prefix match, got %q", got)
	}
	if got := BestMatch(nil, "x"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
