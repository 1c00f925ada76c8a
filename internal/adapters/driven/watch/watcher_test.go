package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_DeliversTickOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 v1"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcherWithRate(100)
	ticks, err := w.Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 v2"), 0600))

	select {
	case _, ok := <-ticks:
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a reload tick after writing the file")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	other := filepath.Join(dir, "other.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcherWithRate(100)
	ticks, err := w.Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(other, []byte("%PDF-1.7"), 0600))

	select {
	case <-ticks:
		t.Fatal("unexpected tick for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0600))

	ctx, cancel := context.WithCancel(context.Background())

	w := NewWatcher()
	ticks, err := w.Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ticks:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(3 * time.Second):
		t.Fatal("expected the tick channel to close after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	w := NewWatcher()
	_, err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "doc.pdf"))
	assert.Error(t, err)
}
