package rssfeeds

import (
	"strings"

	"paperbot/cleaner"
	"paperbot/types"

	"github.com/mmcdole/gofeed"
)

// abstractMarker separates feed boilerplate from the abstract body in some
// journal feeds.
const abstractMarker = "Abstract:"

// maxNamedAuthors is how many surnames appear before the list collapses to
// "et al".
const maxNamedAuthors = 3

// NormalizeItem maps one raw feed item onto a canonical Paper for the given
// journal. The second return is false when the item has no usable link or
// title and should be skipped.
func NormalizeItem(item *gofeed.Item, journal string) (types.Paper, bool) {
	link := strings.TrimSpace(item.Link)
	title := strings.TrimSpace(item.Title)
	if link == "" || title == "" {
		return types.Paper{}, false
	}

	desc := item.Description
	if desc == "" {
		desc = item.Content
	}
	if _, after, found := strings.Cut(desc, abstractMarker); found {
		desc = after
	}
	desc = strings.TrimSpace(desc)

	return types.Paper{
		Link:        link,
		Title:       title,
		Description: cleaner.Clean(desc, journal),
		Authors:     FormatAuthors(itemAuthors(item)),
		Journal:     journal,
	}, true
}

// itemAuthors flattens a feed item's author metadata into one
// comma-separated string, matching how journal feeds report it.
func itemAuthors(item *gofeed.Item) string {
	if len(item.Authors) > 0 {
		names := make([]string, 0, len(item.Authors))
		for _, a := range item.Authors {
			if a != nil && a.Name != "" {
				names = append(names, a.Name)
			}
		}
		return strings.Join(names, ", ")
	}
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

// FormatAuthors collapses a comma-separated author list to surnames only,
// shortening long lists: "Jane Smith, Bob Lee" -> "Smith, Lee", and more
// than three names -> "A, B, C et al".
func FormatAuthors(raw string) string {
	surnames := make([]string, 0, maxNamedAuthors+1)
	for _, name := range strings.Split(raw, ",") {
		fields := strings.Fields(name)
		if len(fields) == 0 {
			continue
		}
		surnames = append(surnames, fields[len(fields)-1])
	}

	switch {
	case len(surnames) == 0:
		return ""
	case len(surnames) > maxNamedAuthors:
		return strings.Join(surnames[:maxNamedAuthors], ", ") + " et al"
	default:
		return strings.Join(surnames, ", ")
	}
}
