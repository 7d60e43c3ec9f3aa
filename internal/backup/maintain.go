package backup

import (
	"context"

	"github.com/archivist-tools/sqlite-archiver/internal/catalog"
	"github.com/archivist-tools/sqlite-archiver/internal/retention"
)

// ListBackups enumerates the snapshots in the backup directory, newest
// first. Checksums and validity verdicts cost one verification pass per file
// and are only computed when asked for.
func (m *Manager) ListBackups(ctx context.Context, includeChecksums bool) ([]catalog.SnapshotInfo, error) {
	return m.cat.List(ctx, m.cfg.BackupDir, m.listPattern(), includeChecksums)
}

// Cleanup applies pol to the current catalog. The policy is validated before
// any file is deleted; per-file deletion failures land in the result, not in
// the returned error.
func (m *Manager) Cleanup(ctx context.Context, pol retention.Policy) (retention.Result, error) {
	entries, err := m.ListBackups(ctx, false)
	if err != nil {
		return retention.Result{}, err
	}
	return m.ret.Apply(pol, entries)
}

// Verify runs the integrity check against an arbitrary database file.
func (m *Manager) Verify(ctx context.Context, path string) bool {
	return m.ver.Verify(ctx, path)
}

// Checksum computes the advisory content digest of an arbitrary file.
func (m *Manager) Checksum(ctx context.Context, path string) (string, bool) {
	return m.sum.Checksum(ctx, path)
}
