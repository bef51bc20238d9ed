package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StartFsNotify requests a sweep when fsnotify reports relevant changes.
func (w *Watcher) StartFsNotify(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	w.mu.RLock()
	dir := w.dir
	debounce := w.debounce
	w.mu.RUnlock()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	// Channel to request debounce resets
	resetCh := make(chan struct{}, 1)

	// Debounce goroutine
	go func() {
		var t *time.Timer
		for range resetCh {
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(debounce, func() {
				w.request("fsnotify")
			})
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				w.log.Error("events channel closed")
				return nil
			}

			w.log.Debug("event", "name", ev.Name, "op", ev.Op)

			if !w.watches(filepath.Base(ev.Name)) {
				continue
			}
			// The worker's own renames land here too; the resulting
			// sweep is a cheap no-op.

			// Non-blocking send to reset debounce
			select {
			case resetCh <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error", "error", err)
		}
	}
}
