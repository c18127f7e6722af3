package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blackwell-systems/wpg/internal/loader"
	"github.com/blackwell-systems/wpg/internal/words"
)

// DefaultDebounce is how long the watcher waits after the last change
// before merging.
const DefaultDebounce = 250 * time.Millisecond

// Watcher merges a word list into the dictionary whenever it changes.
type Watcher struct {
	loader *loader.Loader
	path   string
	filter words.Filter
	logger *slog.Logger

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// OnReload, if set, is called after every successful merge.
	OnReload func(*loader.Result)
}

// New creates a Watcher for the word list at path. A nil logger uses
// slog.Default().
func New(l *loader.Loader, path string, filter words.Filter, logger *slog.Logger) (*Watcher, error) {
	if l == nil {
		return nil, fmt.Errorf("loader cannot be nil")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		loader: l,
		path:   abs,
		filter: filter,
		logger: logger.With(slog.String("file", abs)),
	}, nil
}

// Path returns the absolute path of the watched word list.
func (w *Watcher) Path() string {
	return w.path
}

// Run merges the word list once and then again after every change until
// ctx is done. Merge failures are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.reload()

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.Any("error", err))

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		}
	}
}

// matches reports whether event changed the contents of the watched file.
func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	start := time.Now()

	res, err := w.loader.Merge(w.path, w.filter)
	if err != nil {
		w.logger.Warn("merge failed", slog.Any("error", err))
		return
	}

	w.logger.Info("word list merged",
		slog.Int("read", res.Read),
		slog.Int("accepted", res.Accepted),
		slog.Int("added", res.Added),
		slog.Duration("took", time.Since(start)))

	if w.OnReload != nil {
		w.OnReload(res)
	}
}
