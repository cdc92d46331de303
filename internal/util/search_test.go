package util

import (
	"reflect"
	"testing"
)

func TestParseSearchQuery(t *testing.T) {
	query := "status:not_done type:goal Café Report"
	got := ParseSearchQuery(query)

	if !reflect.DeepEqual(got.Status, []string{"not_done"}) {
		t.Fatalf("Status = %v, want %v", got.Status, []string{"not_done"})
	}
	if !reflect.DeepEqual(got.Type, []string{"goal"}) {
		t.Fatalf("Type = %v, want %v", got.Type, []string{"goal"})
	}
	if !reflect.DeepEqual(got.Text, []string{"cafe", "report"}) {
		t.Fatalf("Text = %v, want %v", got.Text, []string{"cafe", "report"})
	}
}

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Café":        "cafe",
		"NAÏVE":       "naive",
		"Straße":      "strasse",
		"plain words": "plain words",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchesAll(t *testing.T) {
	if !MatchesAll("Write the quarterly Résumé", []string{"write", "resume"}) {
		t.Fatalf("expected match")
	}
	if MatchesAll("Write report", []string{"write", "email"}) {
		t.Fatalf("expected no match")
	}
	if !MatchesAll("anything", nil) {
		t.Fatalf("no terms should match everything")
	}
}
