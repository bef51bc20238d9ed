package worker

import (
	"context"
	"time"

	"github.com/qtmov/movrename/internal/discover"
	"github.com/qtmov/movrename/internal/fs"
	"github.com/qtmov/movrename/internal/movie"
	"github.com/qtmov/movrename/internal/plan"
)

// Sweep discovers movie files in the watched directory, drops the ones
// still being written, and renames the rest after their timestamps. Files
// whose names are already correct come out as no-op moves and are
// skipped.
func (w *Worker) Sweep(ctx context.Context, job Job) error {
	w.log.Debug("entering Worker.Sweep()", "reason", job.Reason)

	w.mu.RLock()
	rename := w.rename
	dir := w.dir
	stability := w.stability
	w.mu.RUnlock()

	files, err := discover.Resolve([]string{dir}, rename.Extension)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	files = w.stable(ctx, files, stability)
	if len(files) == 0 {
		return nil
	}

	entries := make([]plan.Entry, 0, len(files))
	for _, path := range files {
		bundle, err := movie.Read(w.fs, path)
		if err != nil {
			w.log.Warn("worker: cannot read timestamps", "file", path, "error", err)
			continue
		}
		entries = append(entries, plan.Entry{Path: path, Bundle: bundle})
	}

	source, err := plan.ParseSource(rename.Source)
	if err != nil {
		return err
	}
	moves, err := plan.Build(entries, plan.Options{
		Source: source,
		Field:  plan.FieldModification,
		Layout: rename.Format,
	})
	if err != nil {
		return err
	}

	for _, m := range moves {
		if err := w.apply(ctx, m, rename.FixMTime); err != nil {
			w.log.Error("worker: rename failed", "src", m.Src, "error", err)
		}
	}
	return nil
}

func (w *Worker) apply(ctx context.Context, m plan.Move, fix bool) error {
	if m.Dst != m.Src {
		if err := w.fs.Rename(ctx, m.Src, m.Dst); err != nil {
			return err
		}
		w.log.Info("renamed", "src", m.Src, "dst", m.Dst)
	}
	if fix && !m.When.IsZero() {
		if err := w.fs.SetTimes(ctx, m.Dst, m.When); err != nil {
			return err
		}
	}
	return nil
}

// stable stats every file twice across the stability window and keeps
// only the ones whose size, mtime and inode did not move. One shared
// sleep covers the whole batch.
func (w *Worker) stable(ctx context.Context, files []string, window time.Duration) []string {
	before := make(map[string]fs.FileInfo, len(files))
	for _, path := range files {
		if info, err := w.fs.Stat(path); err == nil {
			before[path] = info
		}
	}

	select {
	case <-ctx.Done():
		return nil
	case <-time.After(window):
	}

	keep := files[:0]
	for _, path := range files {
		orig, ok := before[path]
		if !ok {
			continue
		}
		now, err := w.fs.Stat(path)
		if err != nil {
			continue
		}
		if fs.Changed(orig, now) {
			w.log.Debug("worker: file still changing, skipping", "file", path)
			continue
		}
		keep = append(keep, path)
	}
	return keep
}
