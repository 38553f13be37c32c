// Package rssfeeds retrieves journal feeds and normalizes their entries
// into canonical papers.
package rssfeeds

import (
	"context"
	"log"
	"time"

	"paperbot/config"
	"paperbot/sources"
	"paperbot/types"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves and normalizes entries from a set of journal feeds.
type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewFetcher creates a fetcher with the given per-source timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = config.DefaultFetchTimeout
	}
	return &Fetcher{
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

// FetchAll walks every source and returns valid papers in feed-discovery
// order, deduplicated by link. An unreachable or malformed feed is logged
// and skipped; it never fails the whole run.
func (f *Fetcher) FetchAll(ctx context.Context, srcs []sources.Source) []types.Paper {
	index := make(map[string]int)
	papers := make([]types.Paper, 0)

	for _, src := range srcs {
		items, err := f.fetchOne(ctx, src.URL)
		if err != nil {
			log.Printf("Warning: skipping feed %q: %v", src.Name, err)
			continue
		}

		kept := 0
		for _, item := range items {
			paper, ok := NormalizeItem(item, src.Name)
			if !ok {
				continue
			}
			if !IsValidPaper(paper.Title, paper.Description) {
				continue
			}

			// Links are expected globally unique across journals; on a
			// repeat the later value wins but the first position is kept.
			if i, seen := index[paper.Link]; seen {
				papers[i] = paper
				continue
			}
			index[paper.Link] = len(papers)
			papers = append(papers, paper)
			kept++
		}
		log.Printf("Fetched %q: %d entries, %d valid papers", src.Name, len(items), kept)
	}

	return papers
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) ([]*gofeed.Item, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, fetchCtx)
	if err != nil {
		return nil, err
	}
	return feed.Items, nil
}
