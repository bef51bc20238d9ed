// Package fs defines the filesystem abstraction used by movrename.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
	Inode uint64
}

type FS interface {
	Stat(path string) (FileInfo, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	SetTimes(ctx context.Context, path string, mtime time.Time) error
}

// Changed reports whether two observations of the same path describe
// different file contents. The watch-mode worker stats a candidate twice
// across the stability window and skips it while this returns true.
func Changed(orig, now FileInfo) bool {
	if now.Inode != 0 && orig.Inode != 0 && now.Inode != orig.Inode {
		return true
	}
	if now.MTime.After(orig.MTime) {
		return true
	}
	if now.Size != orig.Size {
		return true
	}
	return false
}
