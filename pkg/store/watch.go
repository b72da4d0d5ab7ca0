package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the state document changes
// on disk, e.g. because another process saved.
type Event struct{}

// Watch streams change notifications until ctx is cancelled. Callers
// should drain the returned channel to avoid blocking the watcher; the
// channel closes once ctx is done.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func() {
			select {
			case events <- Event{}:
			default:
				// Drop when the consumer lags; the next refresh reads
				// the full document anyway.
			}
		}

		throttle := newWriteThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Everything under the base path is the one state
				// document, so any write means "reload".
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// writeThrottle coalesces rapid filesystem notifications so consumers
// redraw once per burst instead of on every single write.
type writeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newWriteThrottle(delay time.Duration) *writeThrottle {
	return &writeThrottle{delay: delay}
}

func (t *writeThrottle) Enqueue(send func()) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *writeThrottle) flush(send func()) {
	t.mu.Lock()
	fire := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()
	if fire {
		send()
	}
}

func (t *writeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
