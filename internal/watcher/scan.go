package watcher

import (
	"os"
	"path/filepath"
	"time"
)

// contains the directory scanning logic behind poll mode.

// scan reads the directory and requests a sweep when a watched file is
// new or carries a newer mtime than last seen. Renames performed by the
// worker drop old paths out of the seen map naturally.
func (w *Watcher) scan(seen map[string]time.Time) {
	w.mu.RLock()
	dir := w.dir
	w.mu.RUnlock()

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.Error("watcher: failed to read dir", "dir", dir, "error", err)
		return
	}

	changed := false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		if !w.watches(name) {
			continue
		}

		full := filepath.Join(dir, name)

		info, err := os.Stat(full)
		if err != nil {
			w.log.Warn("watcher: stat failed", "file", full, "error", err)
			continue
		}

		mod := info.ModTime()
		last, ok := seen[full]

		if !ok || mod.After(last) {
			seen[full] = mod
			changed = true
		}
	}

	if changed {
		w.request("poll")
	}
}
