// Package backup is the lifecycle manager for point-in-time copies of a
// local SQLite database: create, verify, list, retention cleanup, restore.
// A Manager owns two configured paths and nothing else; every operation
// re-reads the filesystem, so results reflect the state at call time.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/archivist-tools/sqlite-archiver/internal/catalog"
	"github.com/archivist-tools/sqlite-archiver/internal/engine"
	"github.com/archivist-tools/sqlite-archiver/internal/fs"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
	"github.com/archivist-tools/sqlite-archiver/internal/retention"
	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
	"github.com/archivist-tools/sqlite-archiver/internal/verify"
)

// ErrConfig marks invalid construction input.
var ErrConfig = errors.New("backup: invalid configuration")

// Config is immutable after NewManager. The database path is validated to
// exist exactly once, at construction; callers that delete it afterwards get
// filesystem or verifier errors from the individual operations.
type Config struct {
	// DatabasePath is the absolute path of the live database file.
	DatabasePath string

	// BackupDir is the absolute directory holding whole-file snapshots.
	// Created at construction unless NoCreateDir is set.
	BackupDir string

	NoCreateDir bool
}

type Manager struct {
	cfg  Config
	fsys fs.FS
	log  logging.Logger

	prod *snapshot.Producer
	ver  *verify.Verifier
	sum  *verify.Checksummer
	cat  *catalog.Catalog
	ret  *retention.Engine

	now func() time.Time
}

// NewManager validates cfg and builds a manager. A nil eng selects the
// command-line sqlite tooling, a nil fsys the OS filesystem, a nil log a
// no-op logger.
func NewManager(cfg Config, eng engine.Engine, fsys fs.FS, log logging.Logger) (*Manager, error) {
	if log == nil {
		log = logging.Nop()
	}
	if eng == nil {
		eng = engine.NewCommand()
	}
	if fsys == nil {
		fsys = fs.NewLogged(log)
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("%w: database path is required", ErrConfig)
	}
	if !filepath.IsAbs(cfg.DatabasePath) {
		return nil, fmt.Errorf("%w: database path %q is not absolute", ErrConfig, cfg.DatabasePath)
	}
	st, err := os.Stat(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("%w: database %q: %v", ErrConfig, cfg.DatabasePath, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: database %q is not a regular file", ErrConfig, cfg.DatabasePath)
	}

	if cfg.BackupDir == "" {
		return nil, fmt.Errorf("%w: backup directory is required", ErrConfig)
	}
	if !filepath.IsAbs(cfg.BackupDir) {
		return nil, fmt.Errorf("%w: backup directory %q is not absolute", ErrConfig, cfg.BackupDir)
	}
	if !cfg.NoCreateDir {
		if err := fsys.MkdirAll(cfg.BackupDir); err != nil {
			return nil, fmt.Errorf("%w: creating backup directory: %v", ErrConfig, err)
		}
	}

	ver := verify.NewVerifier(eng, fsys, log)
	sum := verify.NewChecksummer(eng, log)

	return &Manager{
		cfg:  cfg,
		fsys: fsys,
		log:  log,
		prod: snapshot.NewProducer(eng, fsys, log),
		ver:  ver,
		sum:  sum,
		cat:  catalog.New(fsys, ver, sum, log),
		ret:  retention.New(fsys, log),
		now:  time.Now,
	}, nil
}

// Config returns a copy of the manager's configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// listPattern matches every snapshot the manager could have produced: any
// file carrying the database's extension.
func (m *Manager) listPattern() string {
	ext := filepath.Ext(m.cfg.DatabasePath)
	if ext == "" {
		ext = ".db"
	}
	return "*" + ext
}
