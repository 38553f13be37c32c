package archive

import (
	"math/rand"
	"testing"

	"paperbot/types"
)

func paper(link string) types.Paper {
	return types.Paper{
		Link:        link,
		Title:       "Title for " + link,
		Description: "Description for " + link,
		Journal:     "Test Journal",
	}
}

func TestAddIsAppendOnly(t *testing.T) {
	a := New()

	if !a.Add(paper("https://example.org/p1")) {
		t.Fatal("first Add returned false")
	}

	replacement := paper("https://example.org/p1")
	replacement.Title = "Different title, same link"
	if a.Add(replacement) {
		t.Fatal("Add overwrote an existing link")
	}

	if got := a.Papers()[0].Title; got != "Title for https://example.org/p1" {
		t.Errorf("existing entry was mutated: %q", got)
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d; want 1", a.Len())
	}
}

func TestMergeReportsChange(t *testing.T) {
	a := New()
	a.Add(paper("https://example.org/p1"))

	batch := []types.Paper{paper("https://example.org/p1"), paper("https://example.org/p2")}
	if !a.Merge(batch) {
		t.Fatal("Merge with one new paper reported no change")
	}
	if a.Len() != 2 {
		t.Fatalf("Len = %d; want 2", a.Len())
	}

	if a.Merge(batch) {
		t.Fatal("idempotent re-Merge reported a change")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	a := New()
	a.Add(paper("https://example.org/p1"))

	snap := a.Snapshot()
	a.Add(paper("https://example.org/p2"))

	if !snap["https://example.org/p1"] {
		t.Error("snapshot missing existing link")
	}
	if snap["https://example.org/p2"] {
		t.Error("snapshot reflects a link added after it was taken")
	}
}

func TestRandom(t *testing.T) {
	a := New()
	if _, ok := a.Random(rand.New(rand.NewSource(1))); ok {
		t.Fatal("Random on empty archive returned ok")
	}

	links := []string{"https://example.org/p1", "https://example.org/p2", "https://example.org/p3"}
	for _, l := range links {
		a.Add(paper(l))
	}

	rng := rand.New(rand.NewSource(42))
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p, ok := a.Random(rng)
		if !ok {
			t.Fatal("Random returned !ok on populated archive")
		}
		if !a.Has(p.Link) {
			t.Fatalf("Random returned unarchived paper %q", p.Link)
		}
		seen[p.Link] = true
	}
	if len(seen) != len(links) {
		t.Errorf("100 draws hit %d distinct papers; want %d", len(seen), len(links))
	}
}

func TestPapersKeepInsertionOrder(t *testing.T) {
	a := New()
	links := []string{"https://example.org/z", "https://example.org/a", "https://example.org/m"}
	for _, l := range links {
		a.Add(paper(l))
	}

	got := a.Papers()
	for i, l := range links {
		if got[i].Link != l {
			t.Fatalf("Papers()[%d].Link = %q; want %q", i, got[i].Link, l)
		}
	}
}
