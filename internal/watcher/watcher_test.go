package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/wpg/internal/loader"
	"github.com/blackwell-systems/wpg/internal/store"
	"github.com/blackwell-systems/wpg/internal/words"
)

func newTestWatcher(t *testing.T, path string) (*Watcher, *store.Store) {
	t.Helper()
	st, err := store.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.CreateSchema())
	t.Cleanup(func() { st.Close() })

	w, err := New(loader.New(st), path, words.Filter{}, nil)
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond
	return w, st
}

// waitResult returns the first merge result accepted by ok. Results in
// between are skipped; a save can show up as more than one change.
func waitResult(t *testing.T, ch <-chan *loader.Result, ok func(*loader.Result) bool) *loader.Result {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case res := <-ch:
			if ok(res) {
				return res
			}
		case <-deadline:
			t.Fatal("timed out waiting for merge")
			return nil
		}
	}
}

func TestNew_NilLoader(t *testing.T) {
	_, err := New(nil, "words.txt", words.Filter{}, nil)
	assert.Error(t, err)
}

func TestNew_ResolvesAbsolutePath(t *testing.T) {
	w, _ := newTestWatcher(t, "words.txt")
	assert.True(t, filepath.IsAbs(w.Path()))
}

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	w, _ := newTestWatcher(t, path)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.matches(tt.event))
		})
	}
}

func TestRun_MergesOnStartAndChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\nact\n"), 0644))

	w, st := newTestWatcher(t, path)
	results := make(chan *loader.Result, 16)
	w.OnReload = func(res *loader.Result) { results <- res }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	first := waitResult(t, results, func(*loader.Result) bool { return true })
	assert.Equal(t, 2, first.Added)

	require.NoError(t, os.WriteFile(path, []byte("cat\nact\ntea\n"), 0644))

	second := waitResult(t, results, func(r *loader.Result) bool { return r.Accepted == 3 })
	assert.Equal(t, 3, second.Accepted)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	n, err := st.CountWords()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRun_MissingDirectory(t *testing.T) {
	w, _ := newTestWatcher(t, filepath.Join(t.TempDir(), "missing", "words.txt"))

	err := w.Run(context.Background())
	assert.Error(t, err)
}
