package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements ports.Watcher using fsnotify.
// It watches the directories containing the target files, since editors often
// replace a file instead of writing it in place.
type Watcher struct {
	logger    ports.Logger
	window    time.Duration
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	targets   map[string]struct{}
	events    chan ports.WatchEvent
	stopOnce  sync.Once
}

// NewWatcher creates a watcher. Nothing is opened until Start.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{
		logger:  logger,
		window:  window,
		targets: make(map[string]struct{}),
		events:  make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching the given files.
func (w *Watcher) Start(ctx context.Context, paths ...string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	w.fsWatcher = fsWatcher
	w.debouncer = NewDebouncer(w.window, w.publish)

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", p)
		}
		w.targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			_ = w.fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced events.
// It ends when the context passed to Start is done or the watcher is stopped.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if watchEvent, ok := w.convertEvent(event); ok {
				w.debouncer.Add(watchEvent)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: %v", err))
		}
	}
}

// shutdown stops the debouncer before closing the channel it publishes to.
func (w *Watcher) shutdown() {
	w.stopOnce.Do(func() {
		w.debouncer.Stop()
		close(w.events)
	})
}

// publish forwards a batch without blocking; a slow consumer only misses duplicates.
func (w *Watcher) publish(batch []ports.WatchEvent) {
	for _, event := range batch {
		select {
		case w.events <- event:
		default:
		}
	}
}

// convertEvent maps an fsnotify event on a target file. ok is false for anything else.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)
	if _, watched := w.targets[path]; !watched {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	return ports.WatchEvent{Path: path, Operation: op}, true
}
