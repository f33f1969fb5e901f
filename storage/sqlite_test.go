package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	in := []testDoc{{Name: "a", Count: 1}}
	require.NoError(t, store.Save("docs", in))

	var out []testDoc
	require.NoError(t, store.Load("docs", &out))
	require.Equal(t, in, out)
}

func TestSQLiteStoreMissingCollectionIsZero(t *testing.T) {
	store := newTestSQLiteStore(t)

	var out []testDoc
	require.NoError(t, store.Load("never-saved", &out))
	require.Empty(t, out)
}

func TestSQLiteStoreUpsertOverwrites(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Save("docs", []testDoc{{Name: "old"}, {Name: "older"}}))
	require.NoError(t, store.Save("docs", []testDoc{{Name: "new"}}))

	var out []testDoc
	require.NoError(t, store.Load("docs", &out))
	require.Len(t, out, 1)
	require.Equal(t, "new", out[0].Name)
}
