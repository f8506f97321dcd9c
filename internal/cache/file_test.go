package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_MissingFileStartsEmpty verifies that a nonexistent cache
// path opens as an empty store rather than failing — first runs start
// with no cache file.
func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len(context.Background()))
}

// TestFileStore_RoundTrip verifies Put/Flush/reopen/Get across store
// instances, including Polish diacritics surviving the JSON encoding.
func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "the caller", "wywołujący"))
	require.NoError(t, store.Put(ctx, "return statement", "instrukcja return"))
	require.NoError(t, store.Close(ctx))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Len(ctx))

	v, ok, err := reopened.Get(ctx, "the caller")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "wywołujący", v)
}

// TestFileStore_CorruptFileFails verifies that an unparseable cache file
// is reported instead of being silently replaced by an empty cache.
func TestFileStore_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

// TestFileStore_FlushOnlyWhenDirty verifies that Flush without pending
// writes does not create a file.
func TestFileStore_FlushOnlyWhenDirty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Flush(ctx))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "clean store should not write a file")
}

// TestFileStore_Delete verifies entry removal and that the removal is
// persisted.
func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "bad", "zły"))
	require.NoError(t, store.Delete(ctx, "bad"))
	require.NoError(t, store.Close(ctx))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok, err := reopened.Get(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestFileStore_Seed verifies that a seed cache fills gaps but never
// overrides entries already present.
func TestFileStore_Seed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	seedPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seedPath,
		[]byte(`{"a":"seed-a","b":"seed-b"}`), 0o644))

	store, err := NewFileStore(filepath.Join(dir, "cache.json"))
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "a", "own-a"))

	require.NoError(t, store.Seed(seedPath))

	a, _, _ := store.Get(ctx, "a")
	b, _, _ := store.Get(ctx, "b")
	assert.Equal(t, "own-a", a, "existing entry must win over seed")
	assert.Equal(t, "seed-b", b, "missing entry should come from seed")

	// Missing seed file is not an error.
	assert.NoError(t, store.Seed(filepath.Join(dir, "nope.json")))
}
