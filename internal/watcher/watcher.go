// Package watcher monitors the ingest directory and emits sweep jobs.
package watcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/qtmov/movrename/internal/config"
	"github.com/qtmov/movrename/internal/fsprobe"
	"github.com/qtmov/movrename/internal/logging"
	"github.com/qtmov/movrename/internal/mailbox"
	"github.com/qtmov/movrename/internal/worker"
)

// Watcher observes the ingest directory and requests a sweep whenever
// movie files appear or change.
type Watcher struct {
	mu sync.RWMutex

	dir       string
	extension string
	interval  time.Duration
	mode      string
	debounce  time.Duration
	schedule  string

	log logging.Logger

	mb *mailbox.Mailbox[worker.Job]
}

// New creates a watcher from the configuration.
func New(cfg *config.Config, log logging.Logger, mb *mailbox.Mailbox[worker.Job]) *Watcher {
	return &Watcher{
		dir:       cfg.Watch.Path,
		extension: cfg.Rename.Extension,
		interval:  cfg.Watch.PollInterval.Duration(),
		mode:      cfg.Watch.Mode,
		debounce:  cfg.Watch.DebounceWindow.Duration(),
		schedule:  cfg.Watch.Schedule,
		log:       log,
		mb:        mb,
	}
}

// Start chooses the correct watching strategy based on config and runs
// the optional sweep schedule alongside it.
func (w *Watcher) Start(ctx context.Context) error {
	w.startSchedule(ctx)

	// Pick up whatever is already sitting in the directory.
	w.request("startup")

	switch w.mode {
	case "fsnotify":
		return w.StartFsNotify(ctx)

	case "poll":
		w.StartPolling(ctx)
		return nil

	case "auto":
		res := fsprobe.Probe(w.dir)
		if res.FsnotifySupported {
			return w.StartFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled: %s", res.Reason)
		w.StartPolling(ctx)
		return nil

	default:
		return fmt.Errorf("unknown mode %q", w.mode)
	}
}

// request puts a sweep job in the mailbox. Jobs coalesce there, so
// calling this for every trigger is fine.
func (w *Watcher) request(reason string) {
	w.mb.Put(worker.Job{Reason: reason, Time: time.Now()})
	w.log.Debug("watcher: sweep requested", "reason", reason)
}

// watches reports whether name carries the watched extension.
func (w *Watcher) watches(name string) bool {
	w.mu.RLock()
	ext := w.extension
	w.mu.RUnlock()
	return strings.HasSuffix(strings.ToLower(name), "."+strings.ToLower(ext))
}
