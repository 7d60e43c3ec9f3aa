package fs

import (
	"context"
	"os"

	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

// renameWithRetry finalizes a snapshot atomically, riding out transient
// errors the same way copies do.
func renameWithRetry(ctx context.Context, log logging.Logger, oldPath, newPath string) error {
	return retry(ctx, log, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
