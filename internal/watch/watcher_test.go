package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batchCollector struct {
	mu      sync.Mutex
	batches [][]string
	notify  chan struct{}
}

func newBatchCollector() *batchCollector {
	return &batchCollector{notify: make(chan struct{}, 16)}
}

func (c *batchCollector) callback(paths []string) {
	c.mu.Lock()
	c.batches = append(c.batches, paths)
	c.mu.Unlock()
	c.notify <- struct{}{}
}

func (c *batchCollector) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-c.notify:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change batch")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batches[len(c.batches)-1]
}

func TestWatcher_BatchesChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{dir}, nil)
	require.NoError(t, err)
	defer w.Stop()
	w.debounce = 50 * time.Millisecond

	c := newBatchCollector()
	w.Start(context.Background(), c.callback)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.py"), []byte("y"), 0644))

	batch := c.wait(t)
	assert.GreaterOrEqual(t, len(batch), 1)
}

func TestWatcher_FilterDropsPaths(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{dir}, func(path string) bool {
		return strings.HasSuffix(path, ".py")
	})
	require.NoError(t, err)
	defer w.Stop()
	w.debounce = 50 * time.Millisecond

	c := newBatchCollector()
	w.Start(context.Background(), c.callback)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.log"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.py"), []byte("y"), 0644))

	batch := c.wait(t)
	for _, p := range batch {
		assert.True(t, strings.HasSuffix(p, ".py"), "unexpected path %q", p)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New([]string{t.TempDir()}, nil)
	require.NoError(t, err)

	w.Start(context.Background(), func([]string) {})
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := New([]string{t.TempDir()}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}
