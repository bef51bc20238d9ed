package watcher

import (
	"context"
	"time"
)

// StartPolling rescans the directory on a fixed interval and requests a
// sweep when new or updated movie files show up.
func (w *Watcher) StartPolling(ctx context.Context) {
	w.mu.RLock()
	interval := w.interval
	w.mu.RUnlock()

	seen := make(map[string]time.Time)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.scan(seen)
		}
	}
}
