// Package watch reloads a deck when its sources change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"pitchdeck/internal/eventbus"
)

const (
	defaultDebounce = 300 * time.Millisecond
	defaultPattern  = "**/*.md"
)

// Watcher publishes a DeckChangedEvent when the deck file, or a slide file
// matching the deck pattern inside a directory deck, is written, created,
// removed or renamed. Bursts of events (editors writing temp files) are
// coalesced.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	bus      eventbus.EventBus
	path     string
	dir      string
	isDir    bool
	pattern  string
	dirs     map[string]struct{} // watched directories of a directory deck
	debounce time.Duration
	logger   *zap.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New creates a watcher for the deck at path. pattern selects the slide
// files of a directory deck, relative to it; empty means "**/*.md".
func New(path, pattern string, bus eventbus.EventBus, logger *zap.Logger) (*Watcher, error) {
	if pattern == "" {
		pattern = defaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid slide pattern %q", pattern)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat deck: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		bus:      bus,
		path:     abs,
		isDir:    info.IsDir(),
		pattern:  pattern,
		dirs:     make(map[string]struct{}),
		debounce: defaultDebounce,
		logger:   logger.Named("watch"),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	// Editors replace files on save, so watch the parent directory of a
	// single-file deck rather than the file itself.
	w.dir = abs
	if !w.isDir {
		w.dir = filepath.Dir(abs)
	}
	return w, nil
}

// SetDebounce changes the quiet period before a change is published
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addDirs(); err != nil {
		return err
	}
	w.logger.Info("watching deck", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

func (w *Watcher) addDirs() error {
	if !w.isDir {
		if err := w.watcher.Add(w.dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", w.dir, err)
		}
		return nil
	}
	return filepath.WalkDir(w.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		w.dirs[filepath.Clean(p)] = struct{}{}
		return nil
	})
}

// Stop stops the watcher and waits for cleanup
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("error closing watcher", zap.Error(err))
	}
	w.logger.Info("watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 && w.isDir {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err == nil {
						w.dirs[filepath.Clean(event.Name)] = struct{}{}
					}
				}
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("deck source event", zap.String("path", event.Name), zap.Stringer("op", event.Op))

			w.mu.Lock()
			d := w.debounce
			w.mu.Unlock()
			if timer == nil {
				timer = time.NewTimer(d)
			} else {
				timer.Reset(d)
			}
			timerCh = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-timerCh:
			timerCh = nil
			w.bus.Publish(eventbus.DeckChangedEvent{Path: w.path})
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if !w.isDir {
		return name == w.path
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		if _, ok := w.dirs[name]; ok {
			// A watched subdirectory went away with whatever slides it held
			delete(w.dirs, name)
			return true
		}
	}
	// Slides whose name starts with "_" are skipped by the loader
	if strings.HasPrefix(filepath.Base(name), "_") {
		return false
	}
	rel, err := filepath.Rel(w.path, name)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(w.pattern, filepath.ToSlash(rel))
	return err == nil && ok
}
