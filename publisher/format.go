package publisher

import (
	"paperbot/config"
	"paperbot/types"
)

// FormatPost renders a paper as post text: title, optional "(authors)"
// segment, and description, truncated to the post budget, then the fixed
// hashtag suffix. The link is not part of the text; it travels as a facet.
func FormatPost(p types.Paper) string {
	text := p.Title
	if p.Authors != "" {
		text += " (" + p.Authors + ")"
	}
	if p.Description != "" {
		text += " " + p.Description
	}
	return truncateRunes(text, config.MaxPostTextLen) + config.HashtagSuffix
}

// truncateRunes cuts on rune boundaries so multi-byte characters are never
// split.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
