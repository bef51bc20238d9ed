package fs

import (
	"context"
	"os"
	"time"
)

// wraps os.Chtimes with retry logic.
// Used by the mtime-fix step to stamp the chosen movie timestamp onto the file.

func setTimesWithRetry(ctx context.Context, path string, mtime time.Time) error {
	return retry(ctx, "chtimes", func() error {
		return os.Chtimes(path, mtime, mtime)
	})
}
