package runnables

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnTaskFileChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".palettekit"), 0o755))

	changed := make(chan struct{}, 1)
	w, err := WatchTaskFiles([]string{root}, DefaultTaskFile, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	writeTaskFile(t, root, `{"tasks":[{"name":"build","command":"go"}]}`)

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for task file change notification")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".palettekit"), 0o755))

	changed := make(chan struct{}, 1)
	w, err := WatchTaskFiles([]string{root}, DefaultTaskFile, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	other := filepath.Join(root, ".palettekit", "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("scratch"), 0o644))

	select {
	case <-changed:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(700 * time.Millisecond):
	}
}
