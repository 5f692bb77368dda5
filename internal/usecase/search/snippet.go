package search

import "strings"

// Snippet window: up to 60 bytes of leading context and 200 bytes of trailing
// context around the anchor. Fixed, not configurable.
const (
	snippetLead  = 60
	snippetTrail = 200
)

const ellipsis = "…"

// makeSnippet produces a bounded, whitespace-collapsed excerpt of source
// around the first matching term. Terms are probed in term-list order, not
// left-to-right in the text; when none occurs in this particular field (the
// match may have been in another field) the excerpt anchors at the start.
// Pure and deterministic.
func makeSnippet(source string, terms []string) string {
	if source == "" {
		return ""
	}

	lower := strings.ToLower(source)
	anchor := 0
	for _, t := range terms {
		if idx := strings.Index(lower, t); idx >= 0 {
			anchor = idx
			break
		}
	}

	start := anchor - snippetLead
	if start < 0 {
		start = 0
	}
	end := anchor + snippetTrail
	if end > len(source) {
		end = len(source)
	}

	excerpt := strings.Join(strings.Fields(source[start:end]), " ")

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(excerpt)
	if end < len(source) {
		b.WriteString(ellipsis)
	}
	return b.String()
}
