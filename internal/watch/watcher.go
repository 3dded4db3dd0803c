// Package watch provides a debounced recursive directory watcher used by
// watch-mode extraction runs.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

var logger = log.With().Str("sys", "watch").Logger()

// DefaultDebounce is the quiet period after the last event before the
// callback fires. Editors and build tools tend to write in bursts.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches directory trees and fires a callback with the batch of
// changed paths once the filesystem has been quiet for the debounce period.
type Watcher struct {
	fsw      *fsnotify.Watcher
	filter   func(path string) bool
	debounce time.Duration

	callback func(paths []string)
	cancel   context.CancelFunc

	mu          sync.Mutex
	accumulated map[string]struct{}
	timer       *time.Timer

	stopOnce sync.Once
	done     chan struct{}
}

// New creates a watcher over the given directory trees. The filter decides
// whether a changed path is interesting; nil accepts everything.
func New(dirs []string, filter func(path string) bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = func(string) bool { return true }
	}

	w := &Watcher{
		fsw:         fsw,
		filter:      filter,
		debounce:    DefaultDebounce,
		accumulated: make(map[string]struct{}),
		done:        make(chan struct{}),
	}

	for _, dir := range dirs {
		if err := w.addTree(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Start begins delivering change batches to the callback until the context
// is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, callback func(paths []string)) {
	w.callback = callback
	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx)
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
			<-w.done
		} else {
			close(w.done)
		}
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			// New directories need to join the watch set before anything
			// inside them changes.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						logger.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.filter(event.Name) {
				continue
			}

			w.mu.Lock()
			w.accumulated[event.Name] = struct{}{}
			w.resetTimerLocked(fire)
			w.mu.Unlock()

		case <-fire:
			w.flush()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) resetTimerLocked(fire chan struct{}) {
	if w.timer != nil {
		if !w.timer.Stop() {
			select {
			case <-fire:
			default:
			}
		}
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.accumulated) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.accumulated))
	for p := range w.accumulated {
		paths = append(paths, p)
	}
	w.accumulated = make(map[string]struct{})
	w.mu.Unlock()

	logger.Debug().Int("changed", len(paths)).Msg("change batch ready")
	if w.callback != nil {
		w.callback(paths)
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Err(err).Str("path", path).Msg("cannot access path")
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			logger.Warn().Err(err).Str("dir", path).Msg("failed to watch directory")
		}
		return nil
	})
}
