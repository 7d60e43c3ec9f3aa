package fs

import (
	"context"
	"fmt"
	"io"
	"os"
)

// copyWithRetry copies src to dst, re-statting the source before each
// attempt. A copy of a live database is only trusted if the source did not
// change while the bytes were in flight.
func copyWithRetry(ctx context.Context, o *OSFS, src, dst string) error {
	orig, err := o.Stat(src)
	if err != nil {
		return err
	}

	return retry(ctx, o.log, "copy", func() error {
		now, err := o.Stat(src)
		if err != nil {
			return err
		}

		if sourceChanged(orig, now) {
			return fmt.Errorf("source changed during copy")
		}

		return copyOnce(src, dst)
	})
}

// sourceChanged compares two stat snapshots of the same path. Inodes only
// participate when both sides have one; otherwise size and mod time decide.
func sourceChanged(orig, now FileInfo) bool {
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

func copyOnce(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
