package fs

import (
	"context"
	"os"
	"time"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.
// Platform-specific details (such as inode extraction) are handled in build-tagged files.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:  path,
		Size:  st.Size(),
		MTime: st.ModTime(),
		Inode: inodeOf(st),
	}, nil
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return renameWithRetry(ctx, oldPath, newPath)
}

func (o *OSFS) SetTimes(ctx context.Context, path string, mtime time.Time) error {
	return setTimesWithRetry(ctx, path, mtime)
}
