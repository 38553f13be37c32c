package rssfeeds

import (
	"testing"

	"github.com/mmcdole/gofeed"
)

func TestFormatAuthors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"single author", "Jane Smith", "Smith"},
		{"three authors", "Jane Smith, Bob Lee, Ana Torres", "Smith, Lee, Torres"},
		{"four authors collapse", "Jane Smith, Bob Lee, A B, C D", "Smith, Lee, B et al"},
		{"empty segments dropped", "Jane Smith, , Bob Lee", "Smith, Lee"},
		{"whitespace only", "  ,  ", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FormatAuthors(c.raw)
			if got != c.want {
				t.Fatalf("FormatAuthors(%q) = %q; want %q", c.raw, got, c.want)
			}
		})
	}
}

func TestNormalizeItem(t *testing.T) {
	item := &gofeed.Item{
		Title:       "  Residential Segregation and Intergenerational Mobility  ",
		Link:        " https://example.org/papers/1 ",
		Description: "Journal of Examples, Volume 3. Abstract: The study follows a cohort of respondents over two decades.",
		Authors: []*gofeed.Person{
			{Name: "Jane Smith"},
			{Name: "Bob Lee"},
		},
	}

	paper, ok := NormalizeItem(item, "Test Journal")
	if !ok {
		t.Fatal("NormalizeItem returned ok=false for a complete item")
	}
	if paper.Link != "https://example.org/papers/1" {
		t.Errorf("link not trimmed: %q", paper.Link)
	}
	if paper.Title != "Residential Segregation and Intergenerational Mobility" {
		t.Errorf("title not trimmed: %q", paper.Title)
	}
	if paper.Description != "The study follows a cohort of respondents over two decades." {
		t.Errorf("description = %q; want text after Abstract: marker", paper.Description)
	}
	if paper.Authors != "Smith, Lee" {
		t.Errorf("authors = %q; want %q", paper.Authors, "Smith, Lee")
	}
	if paper.Journal != "Test Journal" {
		t.Errorf("journal = %q; want %q", paper.Journal, "Test Journal")
	}
}

func TestNormalizeItemWithoutMarker(t *testing.T) {
	item := &gofeed.Item{
		Title:       "A Title",
		Link:        "https://example.org/papers/2",
		Description: "  Plain description with no marker.  ",
	}

	paper, ok := NormalizeItem(item, "Test Journal")
	if !ok {
		t.Fatal("NormalizeItem returned ok=false")
	}
	if paper.Description != "Plain description with no marker." {
		t.Errorf("description = %q", paper.Description)
	}
	if paper.Authors != "" {
		t.Errorf("authors = %q; want empty", paper.Authors)
	}
}

func TestNormalizeItemCleansPerJournal(t *testing.T) {
	item := &gofeed.Item{
		Title:       "A Title",
		Link:        "https://example.org/papers/3",
		Description: "Citation line, Volume 9. The actual abstract body follows here.",
	}

	paper, ok := NormalizeItem(item, "Socius")
	if !ok {
		t.Fatal("NormalizeItem returned ok=false")
	}
	if paper.Description != "The actual abstract body follows here." {
		t.Errorf("description = %q; want lead sentence stripped", paper.Description)
	}
}

func TestNormalizeItemSkipsIncomplete(t *testing.T) {
	cases := []struct {
		name string
		item *gofeed.Item
	}{
		{"missing link", &gofeed.Item{Title: "A Title", Description: "text"}},
		{"missing title", &gofeed.Item{Link: "https://example.org/x", Description: "text"}},
		{"whitespace link", &gofeed.Item{Title: "A Title", Link: "   "}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, ok := NormalizeItem(c.item, "Test Journal"); ok {
				t.Fatal("NormalizeItem accepted an incomplete item")
			}
		})
	}
}
