// Package publisher applies the posting policy: publish every new paper
// with randomized pacing, or re-post one random archived paper when
// nothing new exists.
package publisher

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"paperbot/archive"
	"paperbot/config"
	"paperbot/types"
)

// Poster is the external posting capability.
type Poster interface {
	Publish(ctx context.Context, text, link string) (string, error)
}

// DelayPolicy picks a pause uniformly from [Min, Max]. The pause is the
// bot's rate limit against the posting API.
type DelayPolicy struct {
	Min time.Duration
	Max time.Duration
}

// Pick returns a random duration within the policy's bounds.
func (d DelayPolicy) Pick(rng *rand.Rand) time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(rng.Int63n(int64(d.Max-d.Min)+1))
}

// Publisher posts papers through a Poster with randomized inter-post delays.
type Publisher struct {
	poster        Poster
	rng           *rand.Rand
	sleep         func(time.Duration)
	newDelay      DelayPolicy
	fallbackDelay DelayPolicy
}

// Option customizes a Publisher.
type Option func(*Publisher)

// WithSleep replaces the blocking sleep; tests use it to record delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Publisher) { p.sleep = sleep }
}

// WithRand replaces the random source for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(p *Publisher) { p.rng = rng }
}

// New creates a Publisher with the standard pacing policy.
func New(poster Poster, opts ...Option) *Publisher {
	p := &Publisher{
		poster:        poster,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:         time.Sleep,
		newDelay:      DelayPolicy{Min: config.NewPostDelayMin, Max: config.NewPostDelayMax},
		fallbackDelay: DelayPolicy{Min: config.FallbackDelayMin, Max: config.FallbackDelayMax},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PublishNew posts every candidate absent from the run-start snapshot, in
// feed-discovery order. record runs after each successful post and before
// the pause so the caller can persist the archive while the double-post
// window is closed. Returns how many posts went out; a publish or record
// error aborts the remaining run with earlier posts already recorded.
func (p *Publisher) PublishNew(ctx context.Context, candidates []types.Paper, seen map[string]bool, record func(types.Paper) error) (int, error) {
	posted := 0
	for _, paper := range candidates {
		if seen[paper.Link] {
			continue
		}

		if _, err := p.poster.Publish(ctx, FormatPost(paper), paper.Link); err != nil {
			return posted, fmt.Errorf("failed to publish %q: %w", paper.Title, err)
		}
		posted++

		if record != nil {
			if err := record(paper); err != nil {
				return posted, err
			}
		}

		log.Printf("Posted: %s", paper.Title)
		p.sleep(p.newDelay.Pick(p.rng))
	}
	return posted, nil
}

// PublishFallback re-posts one random archived paper to keep the account
// alive on days with no new papers. Skipped for near-empty archives so a
// fresh bot does not spam its own backlog. The paper is already archived,
// so nothing is written back.
func (p *Publisher) PublishFallback(ctx context.Context, arch *archive.Archive) error {
	if arch.Len() <= config.FallbackMinEntries {
		return nil
	}

	paper, ok := arch.Random(p.rng)
	if !ok {
		return nil
	}

	if _, err := p.poster.Publish(ctx, FormatPost(paper), paper.Link); err != nil {
		return fmt.Errorf("failed to publish fallback %q: %w", paper.Title, err)
	}
	log.Printf("Posted from archive: %s", paper.Title)
	p.sleep(p.fallbackDelay.Pick(p.rng))
	return nil
}
