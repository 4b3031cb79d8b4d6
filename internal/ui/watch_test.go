package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: {id: a}\n"), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("root: {id: b}\n"), 0o600))
	select {
	case <-w.Changed():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	assert.IsType(t, layoutChangedMsg{}, func() any {
		require.NoError(t, os.WriteFile(path, []byte("root: {id: c}\n"), 0o600))
		return watchCmd(w)()
	}())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "layout.yaml"))
	assert.Error(t, err)
}
