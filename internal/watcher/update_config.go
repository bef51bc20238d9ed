package watcher

import (
	"github.com/qtmov/movrename/internal/config"
)

// UpdateConfig updates watcher fields atomically for hot-reload. Mode and
// schedule changes take effect on the next start; the running strategy is
// not restarted.
func (w *Watcher) UpdateConfig(cfg *config.Config) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.dir = cfg.Watch.Path
	w.extension = cfg.Rename.Extension
	w.interval = cfg.Watch.PollInterval.Duration()
	w.debounce = cfg.Watch.DebounceWindow.Duration()
}
