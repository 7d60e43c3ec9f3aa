package backup

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
)

// RestoreRequest configures a restore. The zero value restores over the
// configured database path with both safety checks enabled.
type RestoreRequest struct {
	// Target overrides the destination; defaults to the configured
	// database path.
	Target string

	// NoVerifyBefore skips the pre-restore check of the candidate snapshot.
	NoVerifyBefore bool

	// NoSnapshotCurrent skips the pre-restore safety copy of the live
	// database.
	NoSnapshotCurrent bool
}

// RestoreResult is a tagged success/failure value. SafetyCopy is set when a
// pre-restore snapshot was taken, on failure results too, so a caller can
// roll back by hand.
type RestoreResult struct {
	Success    bool
	Snapshot   string
	Target     string
	SafetyCopy string
	Err        string
}

// Restore reinstates the snapshot at snapPath as the live database.
//
// The sequence is linear: verify the candidate, optionally snapshot the
// current state, copy over the target, verify the result. The target is
// never written before the candidate passed its check, and never written
// without a safety copy when one was requested. A post-restore verification
// failure is reported as failure with no automatic rollback.
func (m *Manager) Restore(ctx context.Context, snapPath string, req RestoreRequest) RestoreResult {
	target := req.Target
	if target == "" {
		target = m.cfg.DatabasePath
	}

	res := RestoreResult{Snapshot: snapPath, Target: target}
	fail := func(err error) RestoreResult {
		m.log.Error("restore failed", "snapshot", snapPath, "target", target, "error", err)
		res.Err = err.Error()
		return res
	}

	if !req.NoVerifyBefore && !m.ver.Verify(ctx, snapPath) {
		return fail(fmt.Errorf("snapshot %s failed pre-restore verification", snapPath))
	}

	if !req.NoSnapshotCurrent {
		if _, err := m.fsys.Stat(target); err == nil {
			safety := filepath.Join(m.cfg.BackupDir, preRestoreName(target, m.now()))
			if err := m.prod.Produce(ctx, snapshot.NativeCopy, target, safety); err != nil {
				return fail(fmt.Errorf("pre-restore snapshot: %w", err))
			}
			res.SafetyCopy = safety
			m.log.Info("pre-restore snapshot taken", "file", safety)
		}
	}

	if err := m.fsys.CopyFile(ctx, snapPath, target); err != nil {
		return fail(fmt.Errorf("writing %s: %w", target, err))
	}

	if !m.ver.Verify(ctx, target) {
		return fail(fmt.Errorf("restored file %s failed verification", target))
	}

	m.log.Info("restore complete", "snapshot", snapPath, "target", target)
	res.Success = true
	return res
}

// preRestoreName builds the distinguishing filename for the safety copy.
func preRestoreName(target string, now time.Time) string {
	ext := filepath.Ext(target)
	if ext == "" {
		ext = ".db"
	}
	base := strings.TrimSuffix(filepath.Base(target), ext)
	return base + "-pre-restore-" + snapshot.Stamp(now) + ext
}
