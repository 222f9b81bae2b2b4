package snapshot

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/segmentio/fasthash/jody"
)

// FileInfo describes one stored dataset file. The checksum doubles as an ETag
// for the manifest endpoint: consumers skip re-downloading unchanged files.
type FileInfo struct {
	Name     string `json:"name"`
	Bytes    int64  `json:"bytes"`
	Checksum uint64 `json:"checksum"`
}

// Manifest lists every dataset stored for a season.
type Manifest struct {
	Year  int        `json:"year"`
	Files []FileInfo `json:"files"`
}

// Manifest returns the stored files for a season in name order. A season with
// no downloads yields an empty manifest, not an error; downstream consumers
// always get a renderable answer.
func (s *Store) Manifest(year int) (Manifest, error) {
	m := Manifest{Year: year, Files: []FileInfo{}}
	entries, err := os.ReadDir(s.seasonDir(year))
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.seasonDir(year), e.Name()))
		if err != nil {
			return m, err
		}
		m.Files = append(m.Files, FileInfo{
			Name:     e.Name(),
			Bytes:    int64(len(raw)),
			Checksum: jody.HashString64(string(raw)),
		})
	}
	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Name < m.Files[j].Name })
	return m, nil
}
