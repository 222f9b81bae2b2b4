// Package snapshot persists downloaded season datasets as JSON files under a
// data directory, one directory per season, one file per dataset slug. The
// stored bytes are exactly what the upstream API returned; the manifest layer
// adds sizes and checksums on top.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gridironlabs/cfbrank/internal/rankings"
)

// ErrNotFound is returned when a season or dataset has not been downloaded.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes season snapshot files under a root directory.
type Store struct {
	root string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) seasonDir(year int) string {
	return filepath.Join(s.root, strconv.Itoa(year))
}

func (s *Store) path(year int, slug string) string {
	return filepath.Join(s.seasonDir(year), slug+".json")
}

// HasSeason reports whether any dataset has been stored for the year.
func (s *Store) HasSeason(year int) bool {
	entries, err := os.ReadDir(s.seasonDir(year))
	return err == nil && len(entries) > 0
}

// Write persists one dataset and returns the file path written.
func (s *Store) Write(year int, slug string, raw []byte) (string, error) {
	dir := s.seasonDir(year)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create season directory: %w", err)
	}
	file := s.path(year, slug)
	if err := os.WriteFile(file, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", slug, err)
	}
	return file, nil
}

// Read returns the stored bytes for a dataset, or ErrNotFound.
func (s *Store) Read(year int, slug string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(year, slug))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %d/%s", ErrNotFound, year, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", slug, err)
	}
	return raw, nil
}

// Records decodes a stored dataset into loose records for the ranking engine.
// A dataset that is not a JSON array is a contract violation by whoever wrote
// it and fails fast with a descriptive error.
func (s *Store) Records(year int, slug string) ([]rankings.Record, error) {
	raw, err := s.Read(year, slug)
	if err != nil {
		return nil, err
	}
	return DecodeRecords(slug, raw)
}

// DecodeRecords decodes raw dataset bytes into loose records.
func DecodeRecords(slug string, raw []byte) ([]rankings.Record, error) {
	var records []rankings.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("dataset %s is not a JSON array of objects: %v", slug, err)
	}
	return records, nil
}
