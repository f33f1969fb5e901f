package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []testDoc{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, store.Save("docs", in))

	var out []testDoc
	require.NoError(t, store.Load("docs", &out))
	require.Equal(t, in, out)
}

func TestFileStoreMissingCollectionIsZero(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []testDoc
	require.NoError(t, store.Load("never-saved", &out))
	require.Empty(t, out)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("docs", []testDoc{{Name: "old"}}))
	require.NoError(t, store.Save("docs", []testDoc{{Name: "new"}}))

	var out []testDoc
	require.NoError(t, store.Load("docs", &out))
	require.Len(t, out, 1)
	require.Equal(t, "new", out[0].Name)

	// One file per collection on disk.
	_, err = os.Stat(filepath.Join(dir, "docs.json"))
	require.NoError(t, err)
}
