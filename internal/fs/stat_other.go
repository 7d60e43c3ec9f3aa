//go:build !linux

package fs

import (
	"os"
	"time"
)

// provides stubs for platforms without syscall.Stat_t (or with different
// field names). Inode 0 disables inode comparison during copies; mod time
// stands in for the change time.

func inodeOf(info os.FileInfo) uint64 {
	_ = info
	return 0
}

func ctimeOf(info os.FileInfo) time.Time {
	return info.ModTime()
}
