package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"paperbot/types"
)

// FileStore persists the archive as a JSON object keyed by link.
type FileStore struct {
	Path string
}

// NewFileStore creates a file-backed archive store.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the archive file. A missing file yields an empty archive; a
// file that exists but cannot be parsed is an error, so a bad deploy never
// silently wipes history.
func (s *FileStore) Load(ctx context.Context) (*Archive, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", s.Path, err)
	}
	return decode(data)
}

// Save writes the whole archive. The write goes through a temp file and
// rename so a crash mid-write leaves the previous archive intact.
func (s *FileStore) Save(ctx context.Context, a *Archive) error {
	data, err := encode(a)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".archive-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp archive: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace archive %s: %w", s.Path, err)
	}
	return nil
}

func encode(a *Archive) ([]byte, error) {
	data, err := json.Marshal(a.papers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Archive, error) {
	var m map[string]types.Paper
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse archive: %w", err)
	}

	links := make([]string, 0, len(m))
	for link := range m {
		links = append(links, link)
	}
	// JSON objects carry no order; sort so loads are deterministic.
	sort.Strings(links)

	a := New()
	for _, link := range links {
		p := m[link]
		// Older archives may predate the authors/journal fields or omit
		// the link inside the value; the key is authoritative.
		if p.Link == "" {
			p.Link = link
		}
		a.Add(p)
	}
	return a, nil
}
