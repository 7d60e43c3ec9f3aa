package snapshot

import (
	"context"
	"fmt"

	"github.com/archivist-tools/sqlite-archiver/internal/engine"
	"github.com/archivist-tools/sqlite-archiver/internal/fs"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

// Producer writes one immutable snapshot file per call.
type Producer struct {
	eng  engine.Engine
	fsys fs.FS
	log  logging.Logger
}

func NewProducer(eng engine.Engine, fsys fs.FS, log logging.Logger) *Producer {
	if fsys == nil {
		fsys = fs.New()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Producer{eng: eng, fsys: fsys, log: log}
}

// Produce creates a snapshot of src at dst using the given strategy.
// On failure any partial file at dst is removed, so a retry starts clean.
func (p *Producer) Produce(ctx context.Context, strat Strategy, src, dst string) error {
	p.log.Debug("producing snapshot", "strategy", string(strat), "src", src, "dst", dst)

	var err error
	switch strat {
	case RawCopy:
		err = p.rawCopy(ctx, src, dst)
	case CompactCopy:
		err = p.eng.Compact(ctx, src, dst)
	case NativeCopy, "":
		err = p.eng.Backup(ctx, src, dst)
	default:
		return fmt.Errorf("unknown strategy %q", strat)
	}

	if err != nil {
		_ = p.fsys.Remove(dst)
		return err
	}
	return nil
}

// rawCopy writes to a temp name and renames, so dst only ever holds a
// complete copy.
func (p *Producer) rawCopy(ctx context.Context, src, dst string) error {
	tmp := dst + ".tmp"
	if err := p.fsys.CopyFile(ctx, src, tmp); err != nil {
		_ = p.fsys.Remove(tmp)
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := p.fsys.Rename(ctx, tmp, dst); err != nil {
		_ = p.fsys.Remove(tmp)
		return fmt.Errorf("finalizing snapshot: %w", err)
	}
	return nil
}
