package fs

import (
	"context"
	"os"
)

// wraps os.Rename with retry logic.
// Renames stay inside the source directory, so no cross-device handling is needed.

func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
