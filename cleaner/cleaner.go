// Package cleaner strips markup and per-journal boilerplate from abstracts.
package cleaner

import (
	"regexp"
	"strings"
)

// RuleKind selects the journal-specific pass applied after the generic
// markup cleanup.
type RuleKind int

const (
	// RuleNone leaves the text alone after the generic passes.
	RuleNone RuleKind = iota

	// RuleStripLeadSentence drops everything up to and including the first
	// period; used for feeds that prepend a citation line to the abstract.
	RuleStripLeadSentence

	// RuleExtractBetweenMarkers keeps the text strictly between the first
	// Start marker and the last End marker. A no-op when either marker is
	// missing or they are out of order.
	RuleExtractBetweenMarkers
)

// Rule describes one journal's cleanup. Start and End only apply to
// RuleExtractBetweenMarkers.
type Rule struct {
	Kind  RuleKind
	Start string
	End   string
}

// journalRules maps journal names to their cleanup. Adding a journal is a
// data change here, not a new code branch.
var journalRules = map[string]Rule{
	"Socius":                             {Kind: RuleStripLeadSentence},
	"American Sociological Review (AoP)": {Kind: RuleStripLeadSentence},
	"American Sociological Review":       {Kind: RuleStripLeadSentence},
	"Sociological Methodology":           {Kind: RuleStripLeadSentence},
	"Sociological Methods and Research":  {Kind: RuleStripLeadSentence},
	"Sociological Science":               {Kind: RuleExtractBetweenMarkers, Start: "Abstract", End: "Close"},
}

var (
	tagRe = regexp.MustCompile(`<[^>]+>`)
	// Matches the word "abstract" only when glued to following word
	// characters, e.g. "AbstractThe". A standalone "Abstract" survives so
	// the marker rule below can still find it.
	abstractWordRe = regexp.MustCompile(`(?i)\babstract(\w+)`)
)

// Clean normalizes a raw abstract for the given journal: strips tags,
// unglues a leading "Abstract", applies the journal's rule, and trims.
func Clean(text, journal string) string {
	text = tagRe.ReplaceAllString(text, "")
	// "AbstractThe study shows..." -> "The study shows..."
	text = abstractWordRe.ReplaceAllString(text, "$1")

	switch rule := journalRules[journal]; rule.Kind {
	case RuleStripLeadSentence:
		if i := strings.Index(text, "."); i >= 0 {
			text = text[i+1:]
		}
	case RuleExtractBetweenMarkers:
		text = extractBetween(text, rule.Start, rule.End)
	}

	return strings.TrimSpace(text)
}

func extractBetween(text, start, end string) string {
	i := strings.Index(text, start)
	j := strings.LastIndex(text, end)
	if i < 0 || j < 0 || j <= i+len(start) {
		return text
	}
	return text[i+len(start) : j]
}
