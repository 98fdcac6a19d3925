package localfs

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiedTimeMissingFile(t *testing.T) {
	store := NewOSStore()

	_, err := store.ModifiedTime(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestModifiedTimeIsUTC(t *testing.T) {
	store := NewOSStore()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	mt, err := store.ModifiedTime(path)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, mt.Location())
}

func TestWriteAtomicCreatesParents(t *testing.T) {
	store := NewOSStore()
	path := filepath.Join(t.TempDir(), "nested", "dir", "a.txt")

	require.NoError(t, store.WriteAtomic(path, strings.NewReader("payload")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))
}

func TestSetModTimeRoundTrip(t *testing.T) {
	store := NewOSStore()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	want := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, store.SetModTime(path, want))

	got, err := store.ModifiedTime(path)
	require.NoError(t, err)
	assert.True(t, want.Equal(got.Truncate(time.Second)))
}

func TestOpenMissingFile(t *testing.T) {
	store := NewOSStore()

	_, err := store.Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenReadsContent(t *testing.T) {
	store := NewOSStore()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	rc, err := store.Open(path)
	require.NoError(t, err)

	defer func() {
		_ = rc.Close()
	}()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}
