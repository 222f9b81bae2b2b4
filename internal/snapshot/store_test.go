package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWriteRead(t *testing.T) {
	store := NewStore(t.TempDir())

	raw := []byte(`[{"school":"Alpha"},{"school":"Bravo"}]`)
	path, err := store.Write(2024, "teams", raw)
	require.NoError(t, err, "Should write dataset")
	assert.FileExists(t, path)
	assert.Equal(t, filepath.Join(store.Root(), "2024", "teams.json"), path)

	got, err := store.Read(2024, "teams")
	require.NoError(t, err, "Should read dataset back")
	assert.Equal(t, raw, got)
}

func TestStoreReadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Read(2024, "teams")
	assert.True(t, errors.Is(err, ErrNotFound), "missing dataset should be ErrNotFound, got %v", err)
}

func TestStoreRecords(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Write(2024, "teams", []byte(`[{"school":"Alpha","classification":"fbs"}]`))
	require.NoError(t, err)

	records, err := store.Records(2024, "teams")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alpha", records[0]["school"])
}

func TestStoreRecordsNotArray(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Write(2024, "teams", []byte(`{"school":"Alpha"}`))
	require.NoError(t, err)

	_, err = store.Records(2024, "teams")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a JSON array")
}

func TestHasSeason(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.False(t, store.HasSeason(2024))

	_, err := store.Write(2024, "teams", []byte(`[]`))
	require.NoError(t, err)
	assert.True(t, store.HasSeason(2024))
}

func TestManifest(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Write(2024, "teams", []byte(`[{"school":"Alpha"}]`))
	require.NoError(t, err)
	_, err = store.Write(2024, "games-regular", []byte(`[]`))
	require.NoError(t, err)

	manifest, err := store.Manifest(2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, manifest.Year)
	require.Len(t, manifest.Files, 2)

	// Name-sorted.
	assert.Equal(t, "games-regular.json", manifest.Files[0].Name)
	assert.Equal(t, "teams.json", manifest.Files[1].Name)
	for _, f := range manifest.Files {
		assert.NotZero(t, f.Bytes, "%s should have a size", f.Name)
		assert.NotEmpty(t, f.Checksum, "%s should have a checksum", f.Name)
	}
}

func TestManifestEmptySeason(t *testing.T) {
	store := NewStore(t.TempDir())

	manifest, err := store.Manifest(1999)
	require.NoError(t, err, "a season with no data should yield an empty manifest")
	assert.Empty(t, manifest.Files)
}

func TestManifestChecksumTracksContent(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Write(2024, "teams", []byte(`[{"school":"Alpha"}]`))
	require.NoError(t, err)
	before, err := store.Manifest(2024)
	require.NoError(t, err)

	_, err = store.Write(2024, "teams", []byte(`[{"school":"Bravo"}]`))
	require.NoError(t, err)
	after, err := store.Manifest(2024)
	require.NoError(t, err)

	assert.NotEqual(t, before.Files[0].Checksum, after.Files[0].Checksum)
}

func TestWriteCreatesSeasonDir(t *testing.T) {
	root := t.TempDir()
	store := NewStore(filepath.Join(root, "deep", "data"))

	_, err := store.Write(2030, "teams", []byte(`[]`))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "deep", "data", "2030"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
