// Package catalog enumerates snapshot files in a backup directory.
// The directory listing is the sole source of truth; no index file exists.
package catalog

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/fs"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
	"github.com/archivist-tools/sqlite-archiver/internal/verify"
)

// SnapshotInfo describes one catalog entry. Valid and Checksum are only
// populated when the caller opted into checksum computation.
type SnapshotInfo struct {
	Filename   string
	Path       string
	Size       int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	Valid      *bool
	Checksum   string
}

type Catalog struct {
	fsys fs.FS
	ver  *verify.Verifier
	sum  *verify.Checksummer
	log  logging.Logger
}

func New(fsys fs.FS, ver *verify.Verifier, sum *verify.Checksummer, log logging.Logger) *Catalog {
	if fsys == nil {
		fsys = fs.New()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Catalog{fsys: fsys, ver: ver, sum: sum, log: log}
}

// List returns the snapshots in dir matching pattern, newest first.
// A missing directory yields an empty catalog, not an error. Checksums and
// validity verdicts are computed serially, one file at a time, so the
// ordering of the result never depends on verification latency.
func (c *Catalog) List(ctx context.Context, dir, pattern string, includeChecksums bool) ([]SnapshotInfo, error) {
	entries, err := c.fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []SnapshotInfo{}, nil
		}
		return nil, err
	}

	infos := make([]SnapshotInfo, 0, len(entries))
	for _, e := range entries {
		if !Match(pattern, e.Name) {
			continue
		}
		infos = append(infos, SnapshotInfo{
			Filename:   e.Name,
			Path:       e.Path,
			Size:       e.Size,
			CreatedAt:  e.CTime,
			ModifiedAt: e.MTime,
		})
	}

	// Newest first. CreatedAt drives the order; mod time and filename break
	// ties so equal timestamps still list reproducibly.
	sort.Slice(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if !a.ModifiedAt.Equal(b.ModifiedAt) {
			return a.ModifiedAt.After(b.ModifiedAt)
		}
		return a.Filename < b.Filename
	})

	if includeChecksums {
		for i := range infos {
			valid := c.ver.Verify(ctx, infos[i].Path)
			infos[i].Valid = &valid
			if sum, ok := c.sum.Checksum(ctx, infos[i].Path); ok {
				infos[i].Checksum = sum
			}
		}
	}

	return infos, nil
}
