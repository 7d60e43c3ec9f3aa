package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

// OSFS is the concrete implementation of FS backed by the local OS filesystem.
// Platform-specific details (inode and change-time extraction) are handled in
// build-tagged files.
type OSFS struct {
	log logging.Logger
}

func New() *OSFS {
	return &OSFS{log: logging.Nop()}
}

// NewLogged is New with retry attempts reported through log.
func NewLogged(log logging.Logger) *OSFS {
	if log == nil {
		log = logging.Nop()
	}
	return &OSFS{log: log}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return fileInfoOf(path, st), nil
}

func (o *OSFS) ReadDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var infos []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		st, err := e.Info()
		if err != nil {
			// entry removed between ReadDir and Info
			continue
		}
		infos = append(infos, fileInfoOf(filepath.Join(dir, e.Name()), st))
	}
	return infos, nil
}

func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (o *OSFS) Remove(path string) error {
	return os.Remove(path)
}

func (o *OSFS) CopyFile(ctx context.Context, src, dst string) error {
	return copyWithRetry(ctx, o, src, dst)
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return renameWithRetry(ctx, o.log, oldPath, newPath)
}

func fileInfoOf(path string, st os.FileInfo) FileInfo {
	return FileInfo{
		Path:  path,
		Name:  filepath.Base(path),
		Size:  st.Size(),
		MTime: st.ModTime(),
		CTime: ctimeOf(st),
		Inode: inodeOf(st),
	}
}
