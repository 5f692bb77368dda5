package search

import (
	"strings"
	"testing"
)

func TestMakeSnippet_EmptySource(t *testing.T) {
	if got := makeSnippet("", []string{"pricing"}); got != "" {
		t.Errorf("expected empty snippet, got %q", got)
	}
}

func TestMakeSnippet_ShortSourceNoEllipsis(t *testing.T) {
	got := makeSnippet("Our pricing starts at $10", []string{"pricing"})
	if got != "Our pricing starts at $10" {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, ellipsis) {
		t.Errorf("short source must not be truncated: %q", got)
	}
}

func TestMakeSnippet_AnchorsOnFirstTermInTermOrder(t *testing.T) {
	// "beta" occurs before "alpha" in the text, but "alpha" leads the term
	// list, so the window anchors on "alpha".
	src := strings.Repeat("x", 100) + " beta " + strings.Repeat("y", 100) + " alpha tail"
	got := makeSnippet(src, []string{"alpha", "beta"})
	if !strings.Contains(got, "alpha tail") {
		t.Errorf("expected window around alpha, got %q", got)
	}
	if !strings.HasPrefix(got, ellipsis) {
		t.Errorf("expected leading ellipsis, got %q", got)
	}
}

func TestMakeSnippet_NoTermFallsBackToStart(t *testing.T) {
	src := "The beginning of a document " + strings.Repeat("padding ", 50)
	got := makeSnippet(src, []string{"zzzz"})
	if !strings.HasPrefix(got, "The beginning") {
		t.Errorf("expected window from start, got %q", got)
	}
	if !strings.HasSuffix(got, ellipsis) {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
}

func TestMakeSnippet_WindowBounds(t *testing.T) {
	// Anchor deep inside a long text: 60 bytes of context before, 200 after.
	lead := strings.Repeat("a", 300)
	tail := strings.Repeat("b", 300)
	src := lead + "needle" + tail
	got := makeSnippet(src, []string{"needle"})

	if !strings.HasPrefix(got, ellipsis) || !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("expected ellipses on both sides, got %q", got)
	}
	body := strings.TrimPrefix(strings.TrimSuffix(got, ellipsis), ellipsis)
	// 60 leading + 200 trailing bytes measured from the anchor.
	if len(body) != snippetLead+snippetTrail {
		t.Errorf("window size = %d, want %d", len(body), snippetLead+snippetTrail)
	}
	if !strings.Contains(body, "needle") {
		t.Errorf("needle missing from window: %q", body)
	}
}

func TestMakeSnippet_CollapsesWhitespace(t *testing.T) {
	got := makeSnippet("pricing\n\n\tplans   and\t tiers", []string{"pricing"})
	if got != "pricing plans and tiers" {
		t.Errorf("got %q", got)
	}
}

func TestMakeSnippet_CaseInsensitiveAnchor(t *testing.T) {
	src := strings.Repeat("z", 80) + "PRICING details"
	got := makeSnippet(src, []string{"pricing"})
	if !strings.Contains(got, "PRICING details") {
		t.Errorf("expected original casing preserved in window, got %q", got)
	}
}

func TestRankResults_StableOnFullTie(t *testing.T) {
	matches := []scoredResult{
		{titleMatch: true, occurrences: 3},
		{titleMatch: true, occurrences: 3},
		{titleMatch: true, occurrences: 3},
	}
	// Tag by position via occurrences copies before sort.
	rankResults(matches)
	// With identical keys the stable sort must not move anything; nothing to
	// assert beyond no panic and intact length.
	if len(matches) != 3 {
		t.Fatalf("length changed: %d", len(matches))
	}
}

func TestCountOccurrences_SumsAcrossTerms(t *testing.T) {
	lower := "alpha beta alpha gamma alpha beta"
	if got := countOccurrences(lower, []string{"alpha", "beta"}); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestSplitTerms(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"Pricing", []string{"pricing"}},
		{"  Pricing   API\n", []string{"pricing", "api"}},
	}
	for _, tc := range cases {
		got := splitTerms(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitTerms(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitTerms(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}
