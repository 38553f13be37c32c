package config

import "time"

// Post Formatting Constants
const (
	// MaxPostTextLen is the rune budget for title+authors+description before
	// the hashtag suffix. Bluesky caps a post record at 300 graphemes; the
	// budget leaves room for the suffix and the trailing link token.
	MaxPostTextLen = 280

	// HashtagSuffix is appended after truncation, never truncated itself.
	HashtagSuffix = "\n #sociology "
)

// Publishing Pace Constants
const (
	// NewPostDelayMin/Max bound the randomized pause after each new post.
	NewPostDelayMin = 60 * time.Second
	NewPostDelayMax = 300 * time.Second

	// FallbackDelayMin/Max bound the pause after a random re-post.
	FallbackDelayMin = 30 * time.Second
	FallbackDelayMax = 60 * time.Second

	// FallbackMinEntries is the archive size the random re-post branch
	// requires the archive to exceed, so a fresh bot does not loop over a
	// handful of papers.
	FallbackMinEntries = 2
)

// Default Runtime Settings
const (
	DefaultArchivePath  = "combined.json"
	DefaultArchiveS3Key = "archive/combined.json"
	DefaultBskyHost     = "https://bsky.social"
	DefaultFetchTimeout = 30 * time.Second
)
