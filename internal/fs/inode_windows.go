//go:build windows

package fs

import "os"

// provides a Windows stub for inode extraction.
// Windows does not expose POSIX inodes, so this implementation returns zero.

func inodeOf(info os.FileInfo) uint64 {
	// Change detection falls back to size and mtime on Windows.
	_ = info
	return 0
}
