//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"
)

// extracts inode and change-time information from syscall.Stat_t on Linux.
// Inode values detect whether a source file changed during copy; the change
// time is the closest portable stand-in for file creation time and drives
// catalog ordering.

func inodeOf(info os.FileInfo) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0
	}
	return st.Ino
}

func ctimeOf(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
}
