// Package fs defines the filesystem abstraction used by sqlite-archiver.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Name  string
	Size  int64
	MTime time.Time
	CTime time.Time
	Inode uint64
}

type FS interface {
	Stat(path string) (FileInfo, error)
	ReadDir(dir string) ([]FileInfo, error)
	CopyFile(ctx context.Context, src, dst string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	MkdirAll(path string) error
	Remove(path string) error
}
