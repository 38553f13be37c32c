// Package orchestrator wires one full fetch-dedupe-publish cycle.
package orchestrator

import (
	"context"
	"fmt"
	"log"

	"paperbot/archive"
	"paperbot/bsky"
	"paperbot/config"
	"paperbot/publisher"
	"paperbot/rssfeeds"
	"paperbot/sources"
	"paperbot/types"
)

// RunOnce executes a single end-to-end cycle: load the archive, fetch and
// normalize the feeds, publish the new papers, fall back to one random
// archived paper when nothing is new, and persist the archive as posts
// succeed.
func RunOnce(ctx context.Context, cfg *config.Config) error {
	log.Println("=== paperbot run ===")

	store, err := NewStore(ctx, cfg)
	if err != nil {
		return err
	}

	arch, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load archive: %w", err)
	}
	log.Printf("Archive loaded: %d papers", arch.Len())

	srcs := sources.Defaults()
	fetcher := rssfeeds.NewFetcher(cfg.FetchTimeout)
	candidates := fetcher.FetchAll(ctx, srcs)
	log.Printf("Fetched %d valid papers from %d feeds", len(candidates), len(srcs))

	client := bsky.NewClient(cfg.Host)
	if err := client.Login(ctx, cfg.Handle, cfg.Password); err != nil {
		return fmt.Errorf("bluesky login failed: %w", err)
	}

	return Publish(ctx, publisher.New(client), arch, store, candidates)
}

// Publish applies the posting policy against the given archive and store.
// Split out from RunOnce so tests can drive it with fake posters and
// in-memory feeds.
func Publish(ctx context.Context, pub *publisher.Publisher, arch *archive.Archive, store archive.Store, candidates []types.Paper) error {
	snapshot := arch.Snapshot()

	// The archive is persisted only after each successful post. A crash
	// can lose at most the currently in-flight post, never repeat one.
	record := func(p types.Paper) error {
		arch.Add(p)
		if err := store.Save(ctx, arch); err != nil {
			return fmt.Errorf("failed to save archive: %w", err)
		}
		return nil
	}

	posted, err := pub.PublishNew(ctx, candidates, snapshot, record)
	if err != nil {
		return err
	}
	log.Printf("Published %d new paper(s), archive now holds %d", posted, arch.Len())

	if posted == 0 {
		return pub.PublishFallback(ctx, arch)
	}
	return nil
}

// NewStore selects the archive backend from configuration: S3 when a
// bucket is set, the local file otherwise.
func NewStore(ctx context.Context, cfg *config.Config) (archive.Store, error) {
	if cfg.S3Bucket != "" {
		log.Printf("Using S3 archive s3://%s/%s", cfg.S3Bucket, cfg.S3Key)
		store, err := archive.NewS3Store(ctx, archive.S3Config{
			Bucket:       cfg.S3Bucket,
			Key:          cfg.S3Key,
			Region:       cfg.S3Region,
			Profile:      cfg.S3Profile,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 archive: %w", err)
		}
		return store, nil
	}
	return archive.NewFileStore(cfg.ArchivePath), nil
}
