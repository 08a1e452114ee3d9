package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runtime:\n  frame_limit: 60\n"), 0o644))

	changes := make(chan Config, 4)
	w, err := Watch(path, func(cfg Config) { changes <- cfg })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("runtime:\n  frame_limit: 30\n"), 0o644))

	select {
	case cfg := <-changes:
		assert.Equal(t, 30.0, cfg.Runtime.FrameLimit)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchSkipsInvalidAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runtime:\n  frame_limit: 60\n"), 0o644))

	changes := make(chan Config, 4)
	w, err := Watch(path, func(cfg Config) { changes <- cfg })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("runtime:\n  frame_limit: -5\n"), 0o644))

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload: %+v", cfg.Runtime)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	w, err := Watch(path, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
