// Package retention decides which snapshots survive and deletes the rest.
package retention

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/catalog"
	"github.com/archivist-tools/sqlite-archiver/internal/fs"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

// ErrNoCriterion is returned when a policy sets neither criterion. It is
// raised before any file is touched.
var ErrNoCriterion = errors.New("retention: neither max age nor max count set")

// Policy holds exactly one retention criterion. When both are set, age takes
// precedence and the count cap is ignored.
type Policy struct {
	MaxAgeDays *float64
	MaxCount   *int
}

// Result reports the outcome of one retention pass. Removed plus the error
// count may fall short of the selected set only when a file vanished between
// selection and deletion; that still shows up in Errors.
type Result struct {
	Removed      int
	RemovedFiles []string
	Errors       []string
	Total        int
	Remaining    int
}

type Engine struct {
	fsys fs.FS
	log  logging.Logger
	now  func() time.Time
}

func New(fsys fs.FS, log logging.Logger) *Engine {
	if fsys == nil {
		fsys = fs.New()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{fsys: fsys, log: log, now: time.Now}
}

// Apply deletes the entries selected by pol and reports the outcome.
// Individual deletion failures are captured per file; the pass always runs
// to the end of the selected set.
func (e *Engine) Apply(pol Policy, entries []catalog.SnapshotInfo) (Result, error) {
	doomed, err := e.selectDoomed(pol, entries)
	if err != nil {
		return Result{}, err
	}

	res := Result{Total: len(entries)}
	for _, en := range doomed {
		if err := e.fsys.Remove(en.Path); err != nil {
			e.log.Warn("retention: delete failed", "file", en.Filename, "error", err)
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", en.Filename, err))
			continue
		}
		e.log.Debug("retention: deleted", "file", en.Filename)
		res.Removed++
		res.RemovedFiles = append(res.RemovedFiles, en.Filename)
	}

	res.Remaining = res.Total - res.Removed
	return res, nil
}

// selectDoomed computes the removal set without touching the filesystem.
func (e *Engine) selectDoomed(pol Policy, entries []catalog.SnapshotInfo) ([]catalog.SnapshotInfo, error) {
	switch {
	case pol.MaxAgeDays != nil:
		if *pol.MaxAgeDays <= 0 {
			return nil, fmt.Errorf("retention: max age must be positive, got %v", *pol.MaxAgeDays)
		}
		cutoff := e.now().Add(-time.Duration(*pol.MaxAgeDays * float64(24*time.Hour)))
		var doomed []catalog.SnapshotInfo
		for _, en := range entries {
			// boundary is exclusive: a file exactly at the cutoff survives
			if en.ModifiedAt.Before(cutoff) {
				doomed = append(doomed, en)
			}
		}
		return doomed, nil

	case pol.MaxCount != nil:
		if *pol.MaxCount < 0 {
			return nil, fmt.Errorf("retention: max count must not be negative, got %d", *pol.MaxCount)
		}
		sorted := append([]catalog.SnapshotInfo(nil), entries...)
		sort.Slice(sorted, func(i, j int) bool {
			if !sorted[i].ModifiedAt.Equal(sorted[j].ModifiedAt) {
				return sorted[i].ModifiedAt.After(sorted[j].ModifiedAt)
			}
			return sorted[i].Filename < sorted[j].Filename
		})
		if len(sorted) <= *pol.MaxCount {
			return nil, nil
		}
		return sorted[*pol.MaxCount:], nil

	default:
		return nil, ErrNoCriterion
	}
}
