// Package archive maintains the durable set of every paper the bot has
// posted, keyed by canonical link. Presence in the archive means both
// "seen" and "published"; no separate posted-log exists.
package archive

import (
	"context"
	"math/rand"

	"paperbot/types"
)

// Store persists an Archive across runs.
type Store interface {
	Load(ctx context.Context) (*Archive, error)
	Save(ctx context.Context, a *Archive) error
}

// Archive is append-only: once a link is recorded it is never removed or
// overwritten. An ordered link slice sits alongside the map so iteration
// stays deterministic.
type Archive struct {
	papers map[string]types.Paper
	links  []string
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{papers: make(map[string]types.Paper)}
}

// Has reports whether the link is already recorded.
func (a *Archive) Has(link string) bool {
	_, ok := a.papers[link]
	return ok
}

// Add records the paper unless its link is already present and reports
// whether it was inserted.
func (a *Archive) Add(p types.Paper) bool {
	if _, ok := a.papers[p.Link]; ok {
		return false
	}
	a.papers[p.Link] = p
	a.links = append(a.links, p.Link)
	return true
}

// Merge inserts every paper whose link is not yet present and reports
// whether anything changed. Existing entries are never overwritten.
func (a *Archive) Merge(papers []types.Paper) bool {
	changed := false
	for _, p := range papers {
		if a.Add(p) {
			changed = true
		}
	}
	return changed
}

// Len returns the number of recorded papers.
func (a *Archive) Len() int {
	return len(a.links)
}

// Snapshot returns the current key set. The publisher diffs candidates
// against the snapshot taken at run start, not the live archive.
func (a *Archive) Snapshot() map[string]bool {
	seen := make(map[string]bool, len(a.papers))
	for link := range a.papers {
		seen[link] = true
	}
	return seen
}

// Random returns one archived paper chosen uniformly.
func (a *Archive) Random(rng *rand.Rand) (types.Paper, bool) {
	if len(a.links) == 0 {
		return types.Paper{}, false
	}
	return a.papers[a.links[rng.Intn(len(a.links))]], true
}

// Papers returns all recorded papers in insertion order.
func (a *Archive) Papers() []types.Paper {
	out := make([]types.Paper, 0, len(a.links))
	for _, link := range a.links {
		out = append(out, a.papers[link])
	}
	return out
}
