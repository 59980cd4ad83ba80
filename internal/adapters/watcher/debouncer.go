// Package watcher watches program files and reports debounced changes.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/runner/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces rapid file system events into one batch per quiet window.
// The last operation seen for a path wins.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]ports.WatchOp
	timer   *time.Timer
	window  time.Duration
	emit    func([]ports.WatchEvent)
	stopped bool
}

// NewDebouncer creates a new debouncer with the given time window and callback.
// emit runs on the timer goroutine, or on the caller's goroutine for Flush.
func NewDebouncer(window time.Duration, emit func([]ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending: make(map[string]ports.WatchOp),
		window:  window,
		emit:    emit,
	}
}

// Add records an event and restarts the window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[event.Path] = event.Operation
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.Flush)
}

// Flush emits all pending events immediately, sorted by path.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.stopped || len(d.pending) == 0 {
		return
	}

	batch := make([]ports.WatchEvent, 0, len(d.pending))
	for path, op := range d.pending {
		batch = append(batch, ports.WatchEvent{Path: path, Operation: op})
	}
	clear(d.pending)
	slices.SortFunc(batch, func(a, b ports.WatchEvent) int {
		return strings.Compare(a.Path, b.Path)
	})

	if d.emit != nil {
		d.emit(batch)
	}
}

// Stop discards pending events. No batch is emitted after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
	d.stopped = true
}
