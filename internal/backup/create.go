package backup

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
)

// CreateRequest configures one backup. The zero value asks for a timestamped,
// verified snapshot using the engine's native hot copy.
type CreateRequest struct {
	// Filename overrides the generated name. The database extension is
	// appended when missing; no timestamp is added to a custom name.
	Filename string

	// NoTimestamp drops the timestamp from the generated filename.
	NoTimestamp bool

	// NoVerify skips the post-create integrity check.
	NoVerify bool

	Strategy snapshot.Strategy
}

// CreateResult is a tagged success/failure value. CreateBackup never returns
// an error; callers inspect Success.
type CreateResult struct {
	Success   bool
	Path      string
	Filename  string
	Size      int64
	Checksum  string
	Duration  time.Duration
	Timestamp time.Time
	Strategy  snapshot.Strategy
	Err       string
}

// CreateBackup produces one snapshot of the configured database.
// A snapshot that fails its own integrity check is deleted before the
// failure is reported, so no bad file lingers in the catalog.
func (m *Manager) CreateBackup(ctx context.Context, req CreateRequest) CreateResult {
	start := m.now()

	strat := req.Strategy
	if strat == "" {
		strat = snapshot.NativeCopy
	}

	name := snapshot.TargetFilename(m.cfg.DatabasePath, req.Filename, !req.NoTimestamp, start)
	dst := filepath.Join(m.cfg.BackupDir, name)

	fail := func(err error) CreateResult {
		m.log.Error("backup failed", "file", name, "error", err)
		return CreateResult{Timestamp: start, Err: err.Error()}
	}

	if err := m.prod.Produce(ctx, strat, m.cfg.DatabasePath, dst); err != nil {
		return fail(err)
	}

	if !req.NoVerify && !m.ver.Verify(ctx, dst) {
		_ = m.fsys.Remove(dst)
		return fail(fmt.Errorf("backup %s failed integrity check", name))
	}

	st, err := m.fsys.Stat(dst)
	if err != nil {
		return fail(fmt.Errorf("backup written but unreadable: %w", err))
	}

	sum, _ := m.sum.Checksum(ctx, dst)

	m.log.Info("backup created",
		"file", name, "size", st.Size, "strategy", string(strat),
		"duration", m.now().Sub(start))

	return CreateResult{
		Success:   true,
		Path:      dst,
		Filename:  name,
		Size:      st.Size,
		Checksum:  sum,
		Duration:  m.now().Sub(start),
		Timestamp: start,
		Strategy:  strat,
	}
}
