// Package verify wraps the engine's consistency check and content digest
// behind fail-closed helpers. Neither helper ever returns an error: a
// verdict of false (or a missing checksum) is always safe to act on, which
// keeps the hot paths around backup and restore free of error plumbing.
package verify

import (
	"context"

	"github.com/archivist-tools/sqlite-archiver/internal/engine"
	"github.com/archivist-tools/sqlite-archiver/internal/fs"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

const okToken = "ok"

// Verifier answers "can this database file be trusted".
type Verifier struct {
	eng  engine.Engine
	fsys fs.FS
	log  logging.Logger
}

func NewVerifier(eng engine.Engine, fsys fs.FS, log logging.Logger) *Verifier {
	if fsys == nil {
		fsys = fs.New()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Verifier{eng: eng, fsys: fsys, log: log}
}

// Verify reports whether the file at path passes the engine's consistency
// check. Missing file, missing tool, or any verdict other than the canonical
// ok token all yield false.
func (v *Verifier) Verify(ctx context.Context, path string) bool {
	if _, err := v.fsys.Stat(path); err != nil {
		v.log.Debug("verify: stat failed", "path", path, "error", err)
		return false
	}

	token, err := v.eng.Check(ctx, path)
	if err != nil {
		v.log.Debug("verify: check failed", "path", path, "error", err)
		return false
	}
	return token == okToken
}

// Checksummer computes advisory content digests.
type Checksummer struct {
	eng engine.Engine
	log logging.Logger
}

func NewChecksummer(eng engine.Engine, log logging.Logger) *Checksummer {
	if log == nil {
		log = logging.Nop()
	}
	return &Checksummer{eng: eng, log: log}
}

// Checksum returns the lowercase hex digest of the file at path, or
// ("", false) when it cannot be computed. A missing checksum never aborts
// the surrounding operation.
func (c *Checksummer) Checksum(ctx context.Context, path string) (string, bool) {
	sum, err := c.eng.Digest(ctx, path)
	if err != nil {
		c.log.Debug("checksum failed", "path", path, "error", err)
		return "", false
	}
	return sum, true
}
