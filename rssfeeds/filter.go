package rssfeeds

import (
	"strings"
	"unicode/utf8"
)

// Minimum lengths, in runes, separating real papers from stubs and notices.
const (
	minTitleLen       = 50
	minDescriptionLen = 50
)

// IsValidPaper reports whether an entry looks like an actual paper rather
// than a review, corrigendum, or stub. It expects the cleaned description,
// since cleaning can materially shrink the text. Lengths are counted in
// runes so curly quotes and accented names do not pad short entries.
func IsValidPaper(title, description string) bool {
	if utf8.RuneCountInString(title) < minTitleLen || utf8.RuneCountInString(description) < minDescriptionLen {
		return false
	}

	lower := strings.ToLower(title)
	if strings.HasPrefix(lower, "review") || strings.HasPrefix(lower, "corrigendum") {
		return false
	}

	return true
}
