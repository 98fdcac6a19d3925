package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()

	select {
	case p := <-ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestWatcherReportsDeclaredFileWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(watched, []byte("v1"), 0644))

	w, err := New(10)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch([]string{watched}))

	require.NoError(t, os.WriteFile(watched, []byte("v2"), 0644))

	abs, err := filepath.Abs(watched)
	require.NoError(t, err)
	assert.Equal(t, abs, waitFor(t, w.Events()))
}

func TestWatcherIgnoresUndeclaredFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(watched, []byte("v1"), 0644))

	w, err := New(10)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch([]string{watched}))

	require.NoError(t, os.WriteFile(other, []byte("noise"), 0644))

	select {
	case p := <-w.Events():
		t.Fatalf("unexpected event for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherPicksUpFileCreatedLater(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "future.txt")

	w, err := New(10)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch([]string{watched}))

	require.NoError(t, os.WriteFile(watched, []byte("now exists"), 0644))

	abs, err := filepath.Abs(watched)
	require.NoError(t, err)
	assert.Equal(t, abs, waitFor(t, w.Events()))
}
