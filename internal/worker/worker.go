// Package worker processes sweep jobs: it discovers movie files in the
// watched directory and renames the stable ones after their timestamps.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/qtmov/movrename/internal/config"
	"github.com/qtmov/movrename/internal/fs"
	"github.com/qtmov/movrename/internal/logging"
	"github.com/qtmov/movrename/internal/mailbox"
)

// Worker renames files in the watched directory and applies the optional
// mtime fix.
type Worker struct {
	mu        sync.RWMutex
	rename    config.RenameConfig
	dir       string
	stability time.Duration

	fs  fs.FS
	log logging.Logger
	mb  *mailbox.Mailbox[Job]
}

// New creates a worker from the rename and watch config and a mailbox.
func New(cfg *config.Config, log logging.Logger, mb *mailbox.Mailbox[Job], filesystem fs.FS) *Worker {
	log.Debug("creating worker")
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Worker{
		rename:    cfg.Rename,
		dir:       cfg.Watch.Path,
		stability: cfg.Watch.StabilityWindow.Duration(),
		fs:        filesystem,
		log:       log,
		mb:        mb,
	}
}

// Start runs the worker loop using mailbox semantics.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("starting worker")
	for {
		job := w.mb.Take()
		if ctx.Err() != nil {
			return
		}
		if err := w.Sweep(ctx, job); err != nil {
			w.log.Error("worker: sweep failed", "error", err)
		}
	}
}

// UpdateConfig hot-reloads rename and watch settings.
func (w *Worker) UpdateConfig(cfg *config.Config) {
	w.log.Debug("entering Worker.UpdateConfig()")
	w.mu.Lock()
	w.rename = cfg.Rename
	w.dir = cfg.Watch.Path
	w.stability = cfg.Watch.StabilityWindow.Duration()
	w.mu.Unlock()
}
