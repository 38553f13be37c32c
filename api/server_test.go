package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"paperbot/archive"
	"paperbot/config"
	"paperbot/types"
)

func newTestServer(t *testing.T, papers []types.Paper) *Server {
	t.Helper()

	store := archive.NewFileStore(filepath.Join(t.TempDir(), "combined.json"))
	a := archive.New()
	a.Merge(papers)
	if err := store.Save(context.Background(), a); err != nil {
		t.Fatal(err)
	}

	return NewServer(&config.Config{ArchivePath: store.Path}, store)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	s.NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
}

func TestArchiveCountEndpoint(t *testing.T) {
	s := newTestServer(t, []types.Paper{
		{Link: "https://example.org/p1", Title: "One", Description: "d"},
		{Link: "https://example.org/p2", Title: "Two", Description: "d"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/archive/count", nil)
	s.NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["count"] != 2 {
		t.Errorf("count = %d; want 2", body["count"])
	}
}

func TestArchiveRandomEndpoint(t *testing.T) {
	s := newTestServer(t, []types.Paper{
		{Link: "https://example.org/p1", Title: "One", Description: "d"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/archive/random", nil)
	s.NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var paper types.Paper
	if err := json.Unmarshal(w.Body.Bytes(), &paper); err != nil {
		t.Fatal(err)
	}
	if paper.Link != "https://example.org/p1" {
		t.Errorf("random paper = %q", paper.Link)
	}
}

func TestArchiveRandomEmptyArchive(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/archive/random", nil)
	s.NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404 on empty archive", w.Code)
	}
}

func TestRefreshEndpointRejectsOverlappingRuns(t *testing.T) {
	s := newTestServer(t, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	s.refresh = func(ctx context.Context, cfg *config.Config) error {
		close(started)
		<-release
		return nil
	}
	r := s.NewRouter()

	post := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rss/refresh", nil))
		return w.Code
	}

	if code := post(); code != http.StatusAccepted {
		t.Fatalf("first refresh status = %d; want 202", code)
	}
	<-started

	if code := post(); code != http.StatusConflict {
		t.Fatalf("overlapping refresh status = %d; want 409", code)
	}

	close(release)
	for i := 0; s.refreshInFlight.Load() && i < 200; i++ {
		time.Sleep(5 * time.Millisecond)
	}

	s.refresh = func(ctx context.Context, cfg *config.Config) error { return nil }
	if code := post(); code != http.StatusAccepted {
		t.Fatalf("refresh after completion status = %d; want 202", code)
	}
}

func TestSourcesEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rss/sources", nil)
	s.NewRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var srcs []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &srcs); err != nil {
		t.Fatal(err)
	}
	if len(srcs) == 0 {
		t.Fatal("no sources returned")
	}
}
