package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replaceFile swaps content in with a rename so the watcher never sees a
// half-written description.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(t, os.Rename(tmp, path))
}

func waitEvent(t *testing.T, events <-chan WatchEvent) WatchEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "events channel closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return WatchEvent{}
	}
}

func TestWatcherRegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "gain.yaml")
	writeTestFile(t, source, gainYAML)

	g := newTestGenerator(t, Config{Exclude: []string{"lv2ttl.yaml"}})
	w, err := NewWatcher(g, WatcherConfig{Root: dir, DebounceDelay: 20 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, err := w.GenerateExisting(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NoError(t, w.Start(ctx))

	// Config files and non-descriptions are ignored.
	replaceFile(t, filepath.Join(dir, "lv2ttl.yaml"), "render:\n  indent_size: 4\n")
	replaceFile(t, filepath.Join(dir, "notes.txt"), "hello")

	replaceFile(t, source, strings.Replace(gainYAML, "name: Gain", "name: Louder", 1))
	ev := waitEvent(t, w.Events())
	assert.Equal(t, "gain.yaml", ev.Path)
	assert.Equal(t, OpModify, ev.Operation)
	require.NoError(t, ev.Error)
	require.NotNil(t, ev.Result)

	written, err := os.ReadFile(filepath.Join(dir, "gain.ttl"))
	require.NoError(t, err)
	assert.Contains(t, string(written), `doap:name "Louder".`)

	nested := filepath.Join(dir, "more", "extra.toml")
	replaceFile(t, nested, "name = \"Extra\"\nuri = \"urn:extra\"\n")
	ev = waitEvent(t, w.Events())
	assert.Equal(t, filepath.Join("more", "extra.toml"), ev.Path)
	assert.Equal(t, OpCreate, ev.Operation)
	require.NoError(t, ev.Error)

	replaceFile(t, source, "name: Broken\n")
	ev = waitEvent(t, w.Events())
	assert.Equal(t, "gain.yaml", ev.Path)
	assert.Error(t, ev.Error)
	assert.Nil(t, ev.Result)

	cancel()
	for range w.Events() {
	}
}

func TestWatcherReportsDelete(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "gain.yaml")
	replaceFile(t, source, gainYAML)

	g := newTestGenerator(t, Config{})
	w, err := NewWatcher(g, WatcherConfig{Root: dir, DebounceDelay: 20 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err = w.GenerateExisting(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.Remove(source))
	ev := waitEvent(t, w.Events())
	assert.Equal(t, OpDelete, ev.Operation)
	assert.Equal(t, "gain.yaml", ev.Path)

	_, err = os.Stat(filepath.Join(dir, "gain.ttl"))
	assert.NoError(t, err, "generated manifest is kept")
}

func TestWatcherInitialPassContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "gain.yaml"), gainYAML)
	writeTestFile(t, filepath.Join(dir, "broken.yaml"), "name: Broken\n")

	g := newTestGenerator(t, Config{})
	w, err := NewWatcher(g, WatcherConfig{Root: dir, DebounceDelay: 20 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, err := w.GenerateExisting(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join(dir, "gain.yaml"), results[0].Source)

	_, err = os.Stat(filepath.Join(dir, "gain.ttl"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "broken.ttl"))
	assert.True(t, os.IsNotExist(err))

	ev := waitEvent(t, w.Events())
	assert.Equal(t, "broken.yaml", ev.Path)
	assert.Error(t, ev.Error)
	assert.Nil(t, ev.Result)

	_, ok := w.getHash("gain.yaml")
	assert.True(t, ok)
	_, ok = w.getHash("broken.yaml")
	assert.False(t, ok)

	// Fixing the broken description regenerates it.
	require.NoError(t, w.Start(ctx))
	replaceFile(t, filepath.Join(dir, "broken.yaml"), "name: Broken\nuri: urn:broken\n")
	ev = waitEvent(t, w.Events())
	assert.Equal(t, "broken.yaml", ev.Path)
	assert.Equal(t, OpCreate, ev.Operation)
	require.NoError(t, ev.Error)
	require.NotNil(t, ev.Result)
}
