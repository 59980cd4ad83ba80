package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/watcher"
	"go.trai.ch/runner/internal/core/ports"
)

type batches struct {
	mu  sync.Mutex
	got [][]ports.WatchEvent
}

func (b *batches) emit(batch []ports.WatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, batch)
}

func (b *batches) all() [][]ports.WatchEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.emit)

		d.Add(write("/snippets/hello.rs"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{write("/snippets/hello.rs")}, b.all()[0])
	})
}

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.emit)

		d.Add(write("/snippets/b.rs"))
		d.Add(ports.WatchEvent{Path: "/snippets/a.rs", Operation: ports.OpCreate})
		d.Add(write("/snippets/a.rs"))
		d.Add(write("/snippets/b.rs"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []ports.WatchEvent{
			write("/snippets/a.rs"),
			write("/snippets/b.rs"),
		}, b.all()[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.emit)

		d.Add(write("/snippets/a.rs"))
		time.Sleep(50 * time.Millisecond)
		d.Add(write("/snippets/b.rs"))
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		assert.Empty(t, b.all())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 1)
		assert.Len(t, b.all()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.emit)

		d.Flush()
		assert.Empty(t, b.all())

		d.Add(write("/snippets/a.rs"))
		d.Flush()
		require.Len(t, b.all(), 1)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.emit)

		d.Add(write("/snippets/a.rs"))
		d.Stop()
		d.Add(write("/snippets/b.rs"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Empty(t, b.all())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add(write("/snippets/a.rs"))
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
